package views

import (
	"sync"

	"github.com/google/uuid"
)

// Event names published on the view bus.
const (
	EventModuleCompleted = "module-completed"
)

// Event is a cross-view notification.
type Event struct {
	ID       string
	Name     string
	CourseID string
	ModuleID string
}

// Bus is a small same-process publish/subscribe registry. The lesson view
// publishes module completions on it; the course listing subscribes so it
// can refresh its counts.
type Bus struct {
	mu   sync.Mutex
	subs map[string][]func(Event)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]func(Event))}
}

// Subscribe registers a handler for an event name.
func (b *Bus) Subscribe(name string, fn func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[name] = append(b.subs[name], fn)
}

// Publish delivers an event to every subscriber of its name.
func (b *Bus) Publish(ev Event) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}

	b.mu.Lock()
	subs := make([]func(Event), len(b.subs[ev.Name]))
	copy(subs, b.subs[ev.Name])
	b.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}
