package engine

import (
	"testing"

	"github.com/skelwright/veilcutter/component"
	"github.com/skelwright/veilcutter/event"
)

// stubSystem records calls for ordering and routing assertions
type stubSystem struct {
	name     string
	priority int
	types    []event.EventType

	updates []string // Shared log, appended on Update
	events  []event.GameEvent
}

func (s *stubSystem) Name() string { return s.name }

func (s *stubSystem) Priority() int { return s.priority }

func (s *stubSystem) EventTypes() []event.EventType { return s.types }
func (s *stubSystem) HandleEvent(ev event.GameEvent) {
	s.events = append(s.events, ev)
}
func (s *stubSystem) Update() {}

// orderedSystem appends its name to a shared slice on Update
type orderedSystem struct {
	stubSystem
	order *[]string
}

func (s *orderedSystem) Update() {
	*s.order = append(*s.order, s.name)
}

func TestWorldEntityLifecycle(t *testing.T) {
	w := NewWorld()

	a := w.CreateEntity()
	b := w.CreateEntity()
	if a == b {
		t.Fatal("entity IDs collide")
	}

	w.Components.Transform.Set(a, component.TransformComponent{})
	w.Components.Aberration.Set(a, component.AberrationComponent{})

	w.DestroyEntity(a)
	if w.Components.Transform.Has(a) || w.Components.Aberration.Has(a) {
		t.Error("destroyed entity still has components")
	}
}

func TestWorldClearResetsIDs(t *testing.T) {
	w := NewWorld()
	first := w.CreateEntity()
	w.Components.Transform.Set(first, component.TransformComponent{})

	w.Clear()
	if w.Components.Transform.Count() != 0 {
		t.Error("components survived Clear")
	}
	if got := w.CreateEntity(); got != first {
		t.Errorf("first entity after Clear = %d, want %d", got, first)
	}
}

func TestWorldUpdateRunsByPriority(t *testing.T) {
	w := NewWorld()
	var order []string

	// Added out of order; Update must run lowest priority first
	w.AddSystem(&orderedSystem{stubSystem{name: "late", priority: 100}, &order})
	w.AddSystem(&orderedSystem{stubSystem{name: "early", priority: 1}, &order})
	w.AddSystem(&orderedSystem{stubSystem{name: "mid", priority: 50}, &order})

	w.Update()

	want := []string{"early", "mid", "late"}
	if len(order) != len(want) {
		t.Fatalf("ran %d systems, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("run order = %v, want %v", order, want)
		}
	}
}

func TestRouterDispatch(t *testing.T) {
	w := NewWorld()
	q := w.Resources.Events

	deaths := &stubSystem{name: "deaths", types: []event.EventType{event.EventDeathBatch}}
	sounds := &stubSystem{name: "sounds", types: []event.EventType{event.EventSoundRequest}}
	w.AddSystem(deaths)
	w.AddSystem(sounds)

	r := NewRouter(q)
	r.RegisterAll(w)

	q.Push(event.GameEvent{Type: event.EventSoundRequest, Frame: 1})
	q.Push(event.GameEvent{Type: event.EventDeathBatch, Frame: 2})
	q.Push(event.GameEvent{Type: event.EventSoundRequest, Frame: 3})

	r.DispatchAll()

	if len(sounds.events) != 2 || len(deaths.events) != 1 {
		t.Fatalf("routed %d sound / %d death events, want 2/1", len(sounds.events), len(deaths.events))
	}
	if sounds.events[0].Frame != 1 || sounds.events[1].Frame != 3 {
		t.Error("events routed out of FIFO order")
	}

	// Queue drained; a second dispatch routes nothing
	r.DispatchAll()
	if len(sounds.events) != 2 {
		t.Error("dispatch re-delivered consumed events")
	}
}
