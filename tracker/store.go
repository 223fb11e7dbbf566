package tracker

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// Collection identifies which entity collection a change touched.
type Collection string

const (
	// CollectionProjects identifies the project collection.
	CollectionProjects Collection = "projects"

	// CollectionTasks identifies the task collection.
	CollectionTasks Collection = "tasks"
)

// Change describes a committed mutation. It carries a snapshot of the
// affected collection; the other slice is nil.
type Change struct {
	Collection Collection
	Projects   []Project
	Tasks      []Task
}

// Subscriber receives change notifications. Subscribers are called
// synchronously, in registration order, after the mutation is committed and
// before the operation returns to its caller. They may read from the store
// but must not mutate the snapshot they receive.
type Subscriber func(Change)

// Options configures a Store.
type Options struct {
	// Remote models the round trip to the backing service. If nil,
	// NopRemote is used.
	Remote Remote

	// Now supplies timestamps. If nil, time.Now is used. Tests inject a
	// fixed clock here.
	Now func() time.Time
}

// Store is the sole authority over the project and task collections.
//
// Locking: mu guards the collections; opMu serializes mutations end to end
// (apply + notify), so notification order always matches commit order.
// Reads take only the read lock and never block behind the remote.
type Store struct {
	opMu sync.Mutex
	mu   sync.RWMutex

	projects []Project
	tasks    []Task

	remote Remote
	now    func() time.Time

	subMu   sync.Mutex
	subs    map[int]Subscriber
	nextSub int
}

// NewStore creates an empty store.
func NewStore(opts Options) *Store {
	remote := opts.Remote
	if remote == nil {
		remote = NopRemote{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		remote: remote,
		now:    now,
		subs:   make(map[int]Subscriber),
	}
}

// Subscribe registers a change listener and returns its unsubscribe func.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// Projects returns a snapshot of all projects, ordered by creation time
// then id.
func (s *Store) Projects(ctx context.Context) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProjects(s.projects), nil
}

// Project returns a snapshot of a single project.
func (s *Store) Project(ctx context.Context, id string) (Project, error) {
	if err := ctx.Err(); err != nil {
		return Project{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			return cloneProject(s.projects[i]), nil
		}
	}
	return Project{}, ErrProjectNotFound
}

// TaskFilter configures which tasks Tasks returns. The zero value matches
// everything.
type TaskFilter struct {
	// ProjectID limits results to one project.
	ProjectID string

	// Status limits results to one kanban column.
	Status *TaskStatus

	// Search limits results to tasks whose title or description contains
	// the substring, case-insensitively.
	Search string
}

// Tasks returns a snapshot of tasks matching the filter.
func (s *Store) Tasks(ctx context.Context, filter TaskFilter) ([]Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidTaskStatus
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []Task
	for i := range s.tasks {
		if !matchTask(s.tasks[i], filter) {
			continue
		}
		result = append(result, cloneTask(s.tasks[i]))
	}
	return result, nil
}

// Task returns a snapshot of a single task.
func (s *Store) Task(ctx context.Context, id string) (Task, error) {
	if err := ctx.Err(); err != nil {
		return Task{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return cloneTask(s.tasks[i]), nil
		}
	}
	return Task{}, ErrTaskNotFound
}

// IDIndex returns a prefix index over every project and task id.
func (s *Store) IDIndex() IDIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]string, 0, len(s.projects)+len(s.tasks))
	for i := range s.projects {
		all = append(all, s.projects[i].ID)
	}
	for i := range s.tasks {
		all = append(all, s.tasks[i].ID)
	}
	return NewIDIndex(all)
}

// Seed replaces both collections without consulting the remote or notifying
// subscribers. It is meant for loading a persisted snapshot at startup,
// before any subscribers are registered.
func (s *Store) Seed(projects []Project, tasks []Task) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = cloneProjects(projects)
	s.tasks = cloneTasks(tasks)
}

// mutate runs the shared mutation protocol: round-trip the remote, apply
// under the write lock, then notify subscribers before returning. apply
// returns the change to publish, or a nil collection to publish nothing.
func (s *Store) mutate(ctx context.Context, op string, apply func() (Change, error)) error {
	if err := s.remote.Do(ctx, op); err != nil {
		return err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	change, err := apply()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.notify(change)
	return nil
}

func (s *Store) notify(change Change) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	subs := make([]Subscriber, 0, len(ids))
	for _, id := range ids {
		subs = append(subs, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(change)
	}
}

func (s *Store) projectChange() Change {
	return Change{Collection: CollectionProjects, Projects: cloneProjects(s.projects)}
}

func (s *Store) taskChange() Change {
	return Change{Collection: CollectionTasks, Tasks: cloneTasks(s.tasks)}
}

func matchTask(t Task, filter TaskFilter) bool {
	if filter.ProjectID != "" && t.ProjectID != filter.ProjectID {
		return false
	}
	if filter.Status != nil && t.Status != *filter.Status {
		return false
	}
	if filter.Search != "" && !containsFold(t.Title, filter.Search) && !containsFold(t.Description, filter.Search) {
		return false
	}
	return true
}

func cloneProject(p Project) Project {
	clone := p
	if p.TeamMembers != nil {
		clone.TeamMembers = append([]string(nil), p.TeamMembers...)
	}
	return clone
}

func cloneProjects(projects []Project) []Project {
	result := make([]Project, 0, len(projects))
	for i := range projects {
		result = append(result, cloneProject(projects[i]))
	}
	return result
}

func cloneTask(t Task) Task {
	clone := t
	if t.Tags != nil {
		clone.Tags = append([]string(nil), t.Tags...)
	}
	if t.Attachments != nil {
		clone.Attachments = append([]Attachment(nil), t.Attachments...)
	}
	if t.Comments != nil {
		clone.Comments = append([]Comment(nil), t.Comments...)
	}
	return clone
}

func cloneTasks(tasks []Task) []Task {
	result := make([]Task, 0, len(tasks))
	for i := range tasks {
		result = append(result, cloneTask(tasks[i]))
	}
	return result
}

func containsFold(value, substring string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(substring))
}
