package ecs

import (
	"testing"

	"github.com/phanxgames/codequest"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitScreenEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []codequest.ScreenEvent
	ScreenEventType.Subscribe(world, func(w donburi.World, e codequest.ScreenEvent) {
		received = append(received, e)
	})

	sink.EmitScreenEvent(codequest.ScreenEvent{
		Type: codequest.EventTransitionStarted,
		From: "menu",
	})
	sink.EmitScreenEvent(codequest.ScreenEvent{
		Type:   codequest.EventActionRouted,
		From:   "menu",
		Action: codequest.Action{Kind: codequest.ActionActivate, Index: 2},
	})

	// Events are queued until processed.
	ScreenEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != codequest.EventTransitionStarted || received[0].From != "menu" {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Action.Kind != codequest.ActionActivate || received[1].Action.Index != 2 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink codequest.EventSink = NewDonburiSink(world)
	_ = sink
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	ScreenEventType.Subscribe(world, func(w donburi.World, e codequest.ScreenEvent) {
		count1++
	})
	ScreenEventType.Subscribe(world, func(w donburi.World, e codequest.ScreenEvent) {
		count2++
	})

	sink.EmitScreenEvent(codequest.ScreenEvent{Type: codequest.EventQuitRequested})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestTrackScreens(t *testing.T) {
	world := donburi.NewWorld()
	TrackScreens(world)
	sink := NewDonburiSink(world)

	sink.EmitScreenEvent(codequest.ScreenEvent{Type: codequest.EventTransitionStarted, From: "menu"})
	sink.EmitScreenEvent(codequest.ScreenEvent{Type: codequest.EventScreenSwapped, From: "menu", To: "intro"})
	sink.EmitScreenEvent(codequest.ScreenEvent{Type: codequest.EventScreenSwapped, From: "intro", To: "menu"})
	events.ProcessAllEvents(world)

	visits := Visits(world)
	if len(visits) != 2 {
		t.Fatalf("visits = %d, want 2", len(visits))
	}
	if visits[0].Screen != "intro" || visits[0].From != "menu" || visits[0].Seq != 1 {
		t.Errorf("visit 0: %+v", visits[0])
	}
	if visits[1].Screen != "menu" || visits[1].Seq != 2 {
		t.Errorf("visit 1: %+v", visits[1])
	}
}
