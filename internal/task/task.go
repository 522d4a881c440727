// Package task provides the task data model and persistence for todo.
package task

import (
	"encoding/json"
	"strings"
	"time"
)

// Priority represents the urgency of a task.
type Priority string

const (
	// PriorityHigh marks urgent tasks.
	PriorityHigh Priority = "high"
	// PriorityMedium is the default priority.
	PriorityMedium Priority = "medium"
	// PriorityLow marks tasks that can wait.
	PriorityLow Priority = "low"
)

// ParsePriority normalizes s to a Priority. An empty string yields
// PriorityMedium. Returns false if s is not a known priority.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return PriorityMedium, true
	}
	return p, p.IsValid()
}

// IsValid returns true if the priority is a known valid priority.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the priority.
func (p Priority) String() string {
	return string(p)
}

// Title returns the priority capitalized for display (e.g. "High").
func (p Priority) Title() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// Wire formats for the persisted file. Due dates are calendar dates,
// creation times carry a time of day.
const (
	DateFormat      = "2006-01-02"
	TimestampFormat = "2006-01-02 15:04:05"
)

// Timestamp is a time.Time that marshals as "YYYY-MM-DD HH:MM:SS".
type Timestamp time.Time

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(TimestampFormat))
}

// UnmarshalJSON implements json.Unmarshaler. An empty or null value
// yields the zero Timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = Timestamp(time.Time{})
		return nil
	}
	parsed, err := time.ParseInLocation(TimestampFormat, s, time.Local)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// Time returns the timestamp as a time.Time.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// String returns the timestamp in its display format.
func (t Timestamp) String() string {
	return time.Time(t).Format(TimestampFormat)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.ParseInLocation(DateFormat, s, time.Local)
	return err == nil
}

// Task represents a single to-do item.
type Task struct {
	// ID is the unique numeric identifier. IDs are assigned from a
	// monotonic counter and never reused after deletion.
	ID int `json:"id"`
	// Description is the task text. Never empty.
	Description string `json:"description"`
	// Priority is one of high, medium, low.
	Priority Priority `json:"priority"`
	// DueDate is an optional YYYY-MM-DD calendar date. Empty means no
	// deadline.
	DueDate string `json:"due_date,omitempty"`
	// Completed marks the task done.
	Completed bool `json:"completed"`
	// CreatedAt is when the task was created. Immutable.
	CreatedAt Timestamp `json:"created_at"`
}

// NewTask creates a task with the given ID and fields, stamped with the
// current time. The caller validates the description and priority.
func NewTask(id int, description string, priority Priority, dueDate string) *Task {
	return &Task{
		ID:          id,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   Timestamp(time.Now()),
	}
}

// Overdue reports whether the task's due date is strictly before the
// calendar date of now. Completed tasks and tasks without a deadline are
// never overdue. This is display-time advisory state, never persisted.
func (t *Task) Overdue(now time.Time) bool {
	if t.Completed || t.DueDate == "" {
		return false
	}
	due, err := time.ParseInLocation(DateFormat, t.DueDate, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return due.Before(today)
}

// Clone returns a copy of the task.
func (t *Task) Clone() *Task {
	clone := *t
	return &clone
}
