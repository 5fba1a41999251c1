package osier

// Synthetic sample injection. Queued samples are consumed by Tick — at most
// one per button per tick, in queue order — and while any are pending the
// real Poller is not consulted, so scripted sequences replay exactly as
// queued regardless of live mouse state.

// InjectSample queues one raw sample for a future tick.
func (r *Router) InjectSample(s Sample) {
	r.injectQueue = append(r.injectQueue, s)
}

// InjectPress queues a press edge for the button at (x, y).
func (r *Router) InjectPress(b Button, x, y float64) {
	r.InjectSample(Sample{Button: b, Kind: SamplePressed, Position: Vec2{X: x, Y: y}})
}

// InjectDragTo queues a held-and-moved sample for the button at (x, y).
// Use between InjectPress and InjectRelease to simulate drag motion.
func (r *Router) InjectDragTo(b Button, x, y float64) {
	r.InjectSample(Sample{Button: b, Kind: SampleDragging, Position: Vec2{X: x, Y: y}})
}

// InjectRelease queues a release edge for the button at (x, y).
func (r *Router) InjectRelease(b Button, x, y float64) {
	r.InjectSample(Sample{Button: b, Kind: SampleReleased, Position: Vec2{X: x, Y: y}})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two ticks; the single-click event itself fires once the
// multi-click window has expired with no further input.
func (r *Router) InjectClick(b Button, x, y float64) {
	r.InjectPress(b, x, y)
	r.InjectRelease(b, x, y)
}

// InjectDoubleClick queues two press/release pairs at the same position.
// Consumes four ticks; run them within the multi-click window for the
// second release to promote to a double click.
func (r *Router) InjectDoubleClick(b Button, x, y float64) {
	r.InjectClick(b, x, y)
	r.InjectClick(b, x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated drag samples over frames-2 intermediate ticks, and release
// at (toX, toY). The total sequence consumes `frames` ticks. Minimum frames
// is 2 (press + release).
func (r *Router) InjectDrag(b Button, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	r.InjectPress(b, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.InjectDragTo(b, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	r.InjectRelease(b, toX, toY)
}

// PendingInjections reports how many queued samples have not yet been
// consumed by Tick.
func (r *Router) PendingInjections() int {
	return len(r.injectQueue)
}

// takeInjected pops the longest front run of queued samples that touches
// each button at most once. A nil map means the queue was empty and real
// polling may run this tick.
func (r *Router) takeInjected() map[Button]Sample {
	if len(r.injectQueue) == 0 {
		return nil
	}
	taken := make(map[Button]Sample)
	i := 0
	for i < len(r.injectQueue) {
		s := r.injectQueue[i]
		if _, dup := taken[s.Button]; dup {
			break
		}
		taken[s.Button] = s
		i++
	}
	r.injectQueue = r.injectQueue[i:]
	return taken
}
