// Package osier disambiguates raw per-tick pointer samples into semantic
// interaction events for [Ebitengine] games and tools: single click, double
// click, drag start, ongoing drag, and drag completion.
//
// A release is inherently ambiguous: it could end a single click, open a
// double click, or finish a drag. Osier resolves that ambiguity across
// tick boundaries without dropping or duplicating events: a lone release is
// held as pending until the multi-click window expires, a second release
// inside the window becomes a double click, and movement while a click is
// pending reports the click immediately before any drag begins.
//
// # Quick start
//
// Create a [Router], give it a [Poller], pick the buttons to monitor, and
// step it once per tick from your game's Update:
//
//	router := osier.NewRouter()
//	router.SetPoller(osier.NewCursorPoller())
//	router.StartMonitoring(osier.ButtonPrimary)
//
//	router.OnDoubleClick(func(e osier.Event) {
//		fmt.Println("double click at", e.Position)
//	})
//	router.OnDrag(func(e osier.Event) {
//		fmt.Println("dragging, delta", e.DragDelta())
//	})
//
//	func (g *Game) Update() error {
//		router.Update() // or router.Tick(dt) off Ebitengine
//		return nil
//	}
//
// # Callback channels
//
// Six channels exist: [Router.OnSingleClick], [Router.OnDoubleClick],
// [Router.OnDragStart], [Router.OnDrag], [Router.OnDragComplete], and the
// catch-all [Router.OnEvent]. Kind-specific callbacks always run before the
// catch-all. Every registration returns a [CallbackHandle] whose Remove
// unregisters it.
//
// [Router.CurrentEvent] answers "what is this button doing right now"
// without waiting for a callback.
//
// # Ticks and time
//
// osier has no clock of its own. The host drives it with one [Router.Tick]
// per discrete sampling step, and all timing (the multi-click window,
// terminal events clearing themselves after one tick of observability)
// derives from the dt values passed in. [Router.Update] is the Ebitengine
// shorthand for Tick(1/TPS).
//
// # Occlusion
//
// When the cursor is over a surface that should not receive gestures (a
// modal overlay, another window's region), set an [Occluder] and enable
// [Router.SetSuspendWhenOccluded]. Samples over occluded positions take a
// non-committal path: presses that begin there can never complete as clicks
// or drags, while an already-pending click is still allowed to resolve.
//
// # Scripted input
//
// The Inject family ([Router.InjectClick], [Router.InjectDrag], ...) queues
// synthetic samples consumed one per button per tick, and [ScenarioRunner]
// plays back JSON scripts of presses, drags, and waits — the basis of the
// package's own tests and of automated interaction testing.
//
// [Ebitengine]: https://ebitengine.org
package osier
