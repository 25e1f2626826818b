package codequest

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "key", "key": "enter"},
			{"action": "wait", "frames": 3},
			{"action": "tap", "x": 100, "y": 200}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "key" || runner.steps[1].Key != "enter" {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].X != 100 || runner.steps[3].Y != 200 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":       `not json`,
		"empty":          `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "drag"}]}`,
		"unknown key":    `{"steps": [{"action": "key", "key": "f13"}]}`,
	}
	for name, data := range cases {
		if _, err := LoadTestScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestRunnerStep_Key(t *testing.T) {
	g := newTestGame(t, RunConfig{})
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "key", "key": "down"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g.SetTestRunner(runner)

	runner.step(g)
	if len(g.injectQueue) != 1 || g.injectQueue[0] != KeyEvent(KeyDown) {
		t.Fatalf("queue = %+v", g.injectQueue)
	}
	// Runner should not be done yet: the injection is still pending.
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	g.processInjectedInput()
	runner.step(g)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	g := newTestGame(t, RunConfig{})
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1: execute wait (waitCount becomes 2).
	runner.step(g)
	if runner.Done() {
		t.Error("should not be done during wait")
	}
	// Frame 2: waitCount 2→1.
	runner.step(g)
	// Frame 3: waitCount 1→0.
	runner.step(g)
	if runner.Done() || len(g.screenshotQueue) != 0 {
		t.Error("screenshot step should not have run yet")
	}
	// Frame 4: execute screenshot step, runner finishes.
	runner.step(g)
	if !runner.Done() {
		t.Error("runner should be done after screenshot step")
	}
	if len(g.screenshotQueue) != 1 || g.screenshotQueue[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", g.screenshotQueue)
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	g := newTestGame(t, RunConfig{})
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "tap", "x": 50, "y": 50},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(g)
	if len(g.injectQueue) != 1 {
		t.Fatalf("expected 1 event, got %d", len(g.injectQueue))
	}
	// Should not advance while the inject queue is not drained.
	runner.step(g)
	if runner.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", runner.cursor)
	}

	g.injectQueue = g.injectQueue[:0]
	runner.step(g)
	if len(g.screenshotQueue) != 1 || g.screenshotQueue[0] != "after" {
		t.Errorf("expected screenshot 'after', got %v", g.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerDrivesGame(t *testing.T) {
	g := newTestGame(t, RunConfig{Script: []byte(`{"steps": [
		{"action": "key", "key": "enter"},
		{"action": "wait", "frames": 90}
	]}`)})
	for i := 0; i < 120; i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if !g.testRunner.Done() {
		t.Error("script should have finished")
	}
	if name := g.Controller().Active().Name(); name != "intro" {
		t.Errorf("active = %s, want intro", name)
	}
}
