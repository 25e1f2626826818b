package codequest

// InjectKey queues a synthetic key press. Injected events are consumed one
// per frame, ahead of real input, in the order they were queued.
func (g *Game) InjectKey(k Key) {
	g.injectQueue = append(g.injectQueue, KeyEvent(k))
}

// InjectTap queues a synthetic tap at logical screen coordinates.
func (g *Game) InjectTap(x, y float64) {
	g.injectQueue = append(g.injectQueue, TapEvent(x, y))
}

// processInjectedInput pops one event from the inject queue and hands it to
// the controller. Returns true if an event was consumed.
func (g *Game) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	ev := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]
	g.ctrl.Inject(ev)
	return true
}
