package osier

// Occluder decides, per sample, whether the cursor is covered by a surface
// that should not receive pointer gestures (e.g. an unrelated overlay).
// When the router's suspend-when-occluded flag is on, samples over occluded
// positions are diverted to the trackers' non-committal suspension path.
type Occluder interface {
	Occluded(position Vec2) bool
}

// EventSink is the interface for optional ECS integration. When set on a
// Router, every dispatched event is forwarded to the sink after the
// callback channels have run.
type EventSink interface {
	EmitEvent(event Event)
}

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(Event)
}

type channel uint8

const (
	channelSingleClick channel = iota
	channelDoubleClick
	channelDragStart
	channelDrag
	channelDragComplete
	channelCatchAll
)

type handlerRegistry struct {
	singleClick  []eventHandler
	doubleClick  []eventHandler
	dragStart    []eventHandler
	drag         []eventHandler
	dragComplete []eventHandler
	catchAll     []eventHandler
	nextID       uint32
}

func (reg *handlerRegistry) add(ch channel, fn func(Event)) CallbackHandle {
	reg.nextID++
	h := eventHandler{id: reg.nextID, fn: fn}
	switch ch {
	case channelSingleClick:
		reg.singleClick = append(reg.singleClick, h)
	case channelDoubleClick:
		reg.doubleClick = append(reg.doubleClick, h)
	case channelDragStart:
		reg.dragStart = append(reg.dragStart, h)
	case channelDrag:
		reg.drag = append(reg.drag, h)
	case channelDragComplete:
		reg.dragComplete = append(reg.dragComplete, h)
	case channelCatchAll:
		reg.catchAll = append(reg.catchAll, h)
	}
	return CallbackHandle{id: reg.nextID, reg: reg, ch: ch}
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
	ch  channel
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.ch {
	case channelSingleClick:
		h.reg.singleClick = removeEventHandler(h.reg.singleClick, h.id)
	case channelDoubleClick:
		h.reg.doubleClick = removeEventHandler(h.reg.doubleClick, h.id)
	case channelDragStart:
		h.reg.dragStart = removeEventHandler(h.reg.dragStart, h.id)
	case channelDrag:
		h.reg.drag = removeEventHandler(h.reg.drag, h.id)
	case channelDragComplete:
		h.reg.dragComplete = removeEventHandler(h.reg.dragComplete, h.id)
	case channelCatchAll:
		h.reg.catchAll = removeEventHandler(h.reg.catchAll, h.id)
	}
}

func removeEventHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Router ---

// Router owns one tracker per monitored button, steps them all once per
// tick, and turns their state transitions into the callback stream.
//
// A Router is single-threaded by contract: all mutation happens
// synchronously inside Tick (or Update), and exactly one caller may step a
// given Router.
type Router struct {
	cfg      config
	trackers map[Button]*tracker
	order    []Button // monitoring order, for deterministic iteration
	handlers handlerRegistry
	poller   Poller
	occluder Occluder
	sink     EventSink

	injectQueue []Sample
	debug       bool
}

// NewRouter creates a router with no monitored buttons, no poller, and
// default thresholds. Call SetPoller and StartMonitoring before ticking.
func NewRouter() *Router {
	return &Router{
		cfg: config{
			multiClickTime: defaultMultiClickTime,
			dragThreshold:  defaultDragThreshold,
		},
		trackers: make(map[Button]*tracker),
	}
}

// SetPoller sets the per-tick raw input source.
func (r *Router) SetPoller(p Poller) {
	r.poller = p
}

// SetOccluder sets the occlusion policy consulted when suspend-when-occluded
// is enabled. A nil occluder disables suspension regardless of the flag.
func (r *Router) SetOccluder(o Occluder) {
	r.occluder = o
}

// SetEventSink sets the optional ECS bridge.
func (r *Router) SetEventSink(sink EventSink) {
	r.sink = sink
}

// StartMonitoring begins tracking a button with a fresh tracker at Idle.
// Monitoring ButtonNone or an already-monitored button is a no-op.
func (r *Router) StartMonitoring(b Button) {
	if b == ButtonNone || r.trackers[b] != nil {
		return
	}
	t := &tracker{button: b, kind: KindIdle, cfg: &r.cfg, notify: r.dispatch}
	r.trackers[b] = t
	r.order = append(r.order, b)
}

// StopMonitoring discards a button's tracker. Any in-flight gesture is
// dropped; re-adding the button starts from Idle with no residual state.
func (r *Router) StopMonitoring(b Button) {
	if r.trackers[b] == nil {
		return
	}
	delete(r.trackers, b)
	for i, ob := range r.order {
		if ob == b {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// IsMonitored reports whether the button currently has a tracker.
func (r *Router) IsMonitored(b Button) bool {
	return r.trackers[b] != nil
}

// CurrentEvent returns a snapshot of the button's live interaction state.
// For buttons that are not monitored it returns the ButtonNone sentinel
// event. The query never mutates tracker state.
func (r *Router) CurrentEvent(b Button) Event {
	if t := r.trackers[b]; t != nil {
		return t.snapshot()
	}
	return Event{}
}

// Tick advances the router by one host tick of dt seconds. Time advances
// for every tracker before any sample is dispatched, so promotions decided
// this tick use last tick's elapsed time rather than this tick's samples.
// Then each monitored button receives at most one sample — injected samples
// take precedence over the poller — routed through the occlusion policy.
func (r *Router) Tick(dt float64) {
	for _, b := range r.order {
		r.trackers[b].advanceTick(dt)
	}

	injected := r.takeInjected()
	for _, b := range r.order {
		s, ok := injected[b]
		if !ok {
			if injected != nil || r.poller == nil {
				// While scripted input is draining, real input stays out.
				continue
			}
			s, ok = r.poller.Poll(b)
		}
		if !ok || s.Kind == SampleNone {
			continue
		}
		t := r.trackers[b]
		if r.cfg.suspendWhenOccluded && r.occluder != nil && r.occluder.Occluded(s.Position) {
			t.suspend(s)
		} else {
			t.processSample(s)
		}
	}
}

// dispatch fans a transition event out to its kind-specific channel, then
// the catch-all channel, then the optional sink. The specific-before-general
// order is a contract.
func (r *Router) dispatch(e Event) {
	if r.debug {
		r.debugLogTransition(e)
	}
	switch e.Kind {
	case KindSingleClick:
		for _, h := range r.handlers.singleClick {
			h.fn(e)
		}
	case KindDoubleClick:
		for _, h := range r.handlers.doubleClick {
			h.fn(e)
		}
	case KindDragStart:
		for _, h := range r.handlers.dragStart {
			h.fn(e)
		}
	case KindDragging:
		for _, h := range r.handlers.drag {
			h.fn(e)
		}
	case KindDragComplete:
		for _, h := range r.handlers.dragComplete {
			h.fn(e)
		}
	}
	for _, h := range r.handlers.catchAll {
		h.fn(e)
	}
	if r.sink != nil {
		r.sink.EmitEvent(e)
	}
}

// --- Callback registration ---

// OnSingleClick registers a callback for completed single clicks.
func (r *Router) OnSingleClick(fn func(Event)) CallbackHandle {
	return r.handlers.add(channelSingleClick, fn)
}

// OnDoubleClick registers a callback for completed double clicks.
func (r *Router) OnDoubleClick(fn func(Event)) CallbackHandle {
	return r.handlers.add(channelDoubleClick, fn)
}

// OnDragStart registers a callback for the first sample of a drag gesture.
func (r *Router) OnDragStart(fn func(Event)) CallbackHandle {
	return r.handlers.add(channelDragStart, fn)
}

// OnDrag registers a callback fired on every moved sample of an ongoing drag.
func (r *Router) OnDrag(fn func(Event)) CallbackHandle {
	return r.handlers.add(channelDrag, fn)
}

// OnDragComplete registers a callback for releases that end a drag.
func (r *Router) OnDragComplete(fn func(Event)) CallbackHandle {
	return r.handlers.add(channelDragComplete, fn)
}

// OnEvent registers a catch-all callback that observes every transition,
// including the Idle and pending transitions that have no dedicated channel.
// It always runs after the kind-specific callbacks.
func (r *Router) OnEvent(fn func(Event)) CallbackHandle {
	return r.handlers.add(channelCatchAll, fn)
}
