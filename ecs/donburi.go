package ecs

import (
	"cmp"
	"slices"

	"github.com/phanxgames/codequest"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// ScreenEventType is the Donburi event type for codequest screen events.
var ScreenEventType = events.NewEventType[codequest.ScreenEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Screen events are published to ScreenEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) codequest.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitScreenEvent(event codequest.ScreenEvent) {
	ScreenEventType.Publish(s.world, event)
}

// ScreenVisitData records one screen becoming active.
type ScreenVisitData struct {
	Screen string
	From   string
	Seq    int
}

// ScreenVisit is the component TrackScreens attaches to visit entities.
var ScreenVisit = donburi.NewComponentType[ScreenVisitData]()

// TrackScreens subscribes to ScreenEventType and creates a ScreenVisit
// entity for every swap. Visits appear when the world's events are
// processed.
func TrackScreens(world donburi.World) {
	seq := 0
	ScreenEventType.Subscribe(world, func(w donburi.World, e codequest.ScreenEvent) {
		if e.Type != codequest.EventScreenSwapped {
			return
		}
		seq++
		entity := w.Create(ScreenVisit)
		ScreenVisit.SetValue(w.Entry(entity), ScreenVisitData{Screen: e.To, From: e.From, Seq: seq})
	})
}

// Visits returns the recorded visits in order.
func Visits(world donburi.World) []ScreenVisitData {
	var out []ScreenVisitData
	donburi.NewQuery(filter.Contains(ScreenVisit)).Each(world, func(entry *donburi.Entry) {
		out = append(out, *ScreenVisit.Get(entry))
	})
	slices.SortFunc(out, func(a, b ScreenVisitData) int { return cmp.Compare(a.Seq, b.Seq) })
	return out
}
