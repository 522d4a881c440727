// Package task provides the task data model and persistence for todo.
package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dbmrq/todo/internal/errors"
	"github.com/dbmrq/todo/internal/logging"
)

// DefaultStoreFilename is the default filename for task storage.
const DefaultStoreFilename = "todo.json"

// StoreMetadata contains information about the task store itself.
// NextID is the monotonic ID counter; it only ever grows, so deleted
// task IDs are never reused.
type StoreMetadata struct {
	Version   string    `json:"version"`
	NextID    int       `json:"next_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// document is the persisted JSON envelope.
type document struct {
	Metadata StoreMetadata `json:"metadata"`
	Tasks    []*Task       `json:"tasks"`
}

func newDocument() *document {
	now := time.Now()
	return &document{
		Metadata: StoreMetadata{
			Version:   "1.0",
			NextID:    1,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Tasks: []*Task{},
	}
}

// Store owns the ordered task collection and its JSON file.
// Insertion order is preserved and significant for display.
type Store struct {
	path string
	mu   sync.RWMutex
	doc  *document
}

// NewStore creates a new Store instance for the given path.
// It does not touch the file; call Load() or Save() for that.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		doc:  newDocument(),
	}
}

// NewStoreInDir creates a Store for the default todo.json in the given directory.
func NewStoreInDir(dir string) *Store {
	return NewStore(filepath.Join(dir, DefaultStoreFilename))
}

// Path returns the file path of the store.
func (s *Store) Path() string {
	return s.path
}

// Load reads tasks from the JSON file, replacing the in-memory collection.
// A missing file or malformed content (bad JSON, schema-invalid document)
// resets the store to empty and returns nil; only unrecoverable read
// errors propagate. Legacy files holding a bare task array still load,
// seeding the ID counter at max(id)+1.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.doc = newDocument()
			return nil
		}
		return errors.LoadFailed(s.path, err)
	}

	doc, ok := decodeDocument(data)
	if !ok {
		logging.Warn("task file malformed, starting empty", "path", s.path)
		s.doc = newDocument()
		return nil
	}

	s.doc = doc
	return nil
}

// decodeDocument parses data as the current envelope or a legacy bare
// task array. Returns false if neither form parses and validates.
func decodeDocument(data []byte) (*document, bool) {
	if err := validateDocument(data); err == nil {
		var doc document
		if err := json.Unmarshal(data, &doc); err == nil {
			if doc.Tasks == nil {
				doc.Tasks = []*Task{}
			}
			if doc.Metadata.NextID < 1 {
				doc.Metadata.NextID = maxID(doc.Tasks) + 1
			}
			return &doc, true
		}
	}

	// Legacy format: a bare array of task records.
	var tasks []*Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, false
	}
	for _, t := range tasks {
		if t == nil || t.ID < 1 || t.Description == "" {
			return nil, false
		}
	}
	doc := newDocument()
	doc.Tasks = tasks
	doc.Metadata.NextID = maxID(tasks) + 1
	return doc, true
}

func maxID(tasks []*Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}

// Save writes the whole collection to the JSON file, overwriting any
// existing content. Creates parent directories if they don't exist.
// A failed save leaves the in-memory collection untouched.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Metadata.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return errors.SaveFailed(s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.SaveFailed(s.path, err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.SaveFailed(s.path, err)
	}

	logging.Debug("tasks saved", "path", s.path, "count", len(s.doc.Tasks))
	return nil
}

// Add validates the fields, constructs a new task with the next ID, and
// appends it to the end of the collection. An empty priority defaults to
// medium; dueDate must be empty or YYYY-MM-DD. Returns a clone of the
// created task.
func (s *Store) Add(description string, priority Priority, dueDate string) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if description == "" {
		return nil, errors.EmptyDescription()
	}
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.IsValid() {
		return nil, errors.InvalidPriority(string(priority))
	}
	if dueDate != "" && !ValidDate(dueDate) {
		return nil, errors.InvalidDueDate(dueDate)
	}

	t := NewTask(s.doc.Metadata.NextID, description, priority, dueDate)
	s.doc.Metadata.NextID++
	s.doc.Tasks = append(s.doc.Tasks, t)

	logging.Info("task added", "id", t.ID, "priority", t.Priority)
	return t.Clone(), nil
}

// Get retrieves a task by ID.
func (s *Store) Get(id int) (*Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t := s.find(id); t != nil {
		return t.Clone(), true
	}
	return nil, false
}

// Complete marks the task with the given ID as completed. Completing an
// already-completed task is a no-op. Unknown IDs return ErrNotFound.
func (s *Store) Complete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(id)
	if t == nil {
		return errors.TaskNotFound(id)
	}
	t.Completed = true
	logging.Info("task completed", "id", id)
	return nil
}

// Edit replaces the description of the task with the given ID.
// Unknown IDs return ErrNotFound.
func (s *Store) Edit(id int, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if description == "" {
		return errors.EmptyDescription()
	}
	t := s.find(id)
	if t == nil {
		return errors.TaskNotFound(id)
	}
	t.Description = description
	logging.Info("task edited", "id", id)
	return nil
}

// Delete removes the task with the given ID from the collection.
// Unknown IDs return ErrNotFound, the same policy as Complete and Edit.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.doc.Tasks {
		if t.ID == id {
			s.doc.Tasks = append(s.doc.Tasks[:i], s.doc.Tasks[i+1:]...)
			logging.Info("task deleted", "id", id)
			return nil
		}
	}
	return errors.TaskNotFound(id)
}

// List returns tasks in insertion order as clones. Completed tasks are
// excluded unless includeCompleted is true. Each call is a fresh pass.
func (s *Store) List(includeCompleted bool) []*Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*Task, 0, len(s.doc.Tasks))
	for _, t := range s.doc.Tasks {
		if t.Completed && !includeCompleted {
			continue
		}
		tasks = append(tasks, t.Clone())
	}
	return tasks
}

// Tasks returns a copy of all tasks in insertion order.
func (s *Store) Tasks() []*Task {
	return s.List(true)
}

// Count returns the total number of tasks.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.doc.Tasks)
}

// Clear removes all tasks. The ID counter is not reset.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Tasks = []*Task{}
}

// NextID returns the ID the next added task will receive.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Metadata.NextID
}

// Metadata returns the store metadata.
func (s *Store) Metadata() StoreMetadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Metadata
}

// find returns the task with the given ID, or nil. Caller holds the lock.
func (s *Store) find(id int) *Task {
	for _, t := range s.doc.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// String describes the store for logging.
func (s *Store) String() string {
	return fmt.Sprintf("task.Store(%s, %d tasks)", s.path, s.Count())
}
