// Package board holds the project store: the single authoritative list of
// projects on the board, and the listeners that are told about every change.
//
// The store is created once by the composition root and handed to everything
// that needs it; there is no package-level instance.
//
//	store := board.NewStore()
//	sub := store.Subscribe(func(projects []project.Project) {
//	    render(project.Filter(projects, project.StatusActive))
//	})
//	defer sub.Cancel()
//
//	p := store.AddProject("Build API", "Design the REST layer", 3)
//	store.MoveProject(p.ID, project.StatusFinished)
package board

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/project-board/internal/domain/project"
)

// Listener receives a full copy of the project list after every change.
// The slice belongs to the listener and may be kept or modified freely.
//
// Listeners run synchronously on the goroutine that changed the store and
// must return promptly. They may read the store, subscribe, or cancel
// subscriptions, but must not add or move projects: the calling mutation
// still holds the store and a nested one would wait on it forever. A listener
// that needs to react with a change starts it on another goroutine; it is
// applied, and dispatched, once the current notification round has finished.
type Listener func(projects []project.Project)

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUID v4 generator used for new project IDs.
// The generator must return a value not seen before on every call.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// Store is the single source of truth for the board's projects.
//
// Every mutating operation runs to completion, including listener dispatch,
// before the next one starts, so listeners observe changes one at a time in
// the order they happened and always see a consistent list.
type Store struct {
	// opMu serializes mutations together with their dispatch.
	opMu sync.Mutex

	// mu guards the fields below.
	mu        sync.RWMutex
	projects  []project.Project
	listeners []subscriber
	nextSubID uint64

	newID func() string
}

type subscriber struct {
	id uint64
	fn Listener
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to be called after every future change. It is not
// called for the current state. Listeners are called in subscription order.
func (s *Store) Subscribe(fn Listener) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	s.listeners = append(s.listeners, subscriber{id: s.nextSubID, fn: fn})
	return &Subscription{store: s, id: s.nextSubID}
}

// AddProject creates an active project with a fresh ID, appends it to the
// board and notifies every listener. It performs no validation and never
// fails; the created project is returned for the caller's convenience.
func (s *Store) AddProject(title, description string, people int) project.Project {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	p := project.Project{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      project.StatusActive,
	}

	s.mu.Lock()
	s.projects = append(s.projects, p)
	s.mu.Unlock()

	s.notify()
	return p
}

// MoveProject sets the status of the project with the given ID and notifies
// every listener. When no project has that ID, or the project already has
// that status, nothing changes and no listener is called. The result reports
// whether the project was moved.
func (s *Store) MoveProject(id string, status project.Status) bool {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	idx := slices.IndexFunc(s.projects, func(p project.Project) bool { return p.ID == id })
	if idx < 0 || s.projects[idx].Status == status {
		s.mu.Unlock()
		return false
	}
	s.projects[idx].Status = status
	s.mu.Unlock()

	s.notify()
	return true
}

// Projects returns a copy of the current project list in creation order.
func (s *Store) Projects() []project.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.projects)
}

// Len returns the number of projects on the board.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}

// Subscribers returns the number of active subscriptions.
func (s *Store) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// notify calls every listener with its own copy of the project list. The
// listener set is copied first so listeners can subscribe or cancel while
// being notified; such changes take effect from the next notification.
// Must be called with opMu held and mu released.
func (s *Store) notify() {
	s.mu.RLock()
	snapshot := slices.Clone(s.projects)
	listeners := slices.Clone(s.listeners)
	s.mu.RUnlock()

	for _, l := range listeners {
		l.fn(slices.Clone(snapshot))
	}
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = slices.DeleteFunc(s.listeners, func(sub subscriber) bool { return sub.id == id })
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	store *Store
	id    uint64
	once  sync.Once
}

// Cancel stops further notifications to the listener. Safe to call more than
// once and from inside a listener.
func (sub *Subscription) Cancel() {
	sub.once.Do(func() {
		sub.store.unsubscribe(sub.id)
	})
}
