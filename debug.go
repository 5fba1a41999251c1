package osier

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables debug mode. When enabled, every state
// transition the router dispatches is logged to stderr.
func (r *Router) SetDebugMode(enabled bool) {
	r.debug = enabled
}

// debugLogTransition prints one dispatched transition to stderr.
func (r *Router) debugLogTransition(e Event) {
	if e.Kind.IsDrag() {
		d := e.DragDelta()
		_, _ = fmt.Fprintf(os.Stderr,
			"[osier] %s -> %s at (%g, %g) delta (%g, %g)\n",
			e.Button, e.Kind, e.Position.X, e.Position.Y, d.X, d.Y)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[osier] %s -> %s at (%g, %g)\n",
		e.Button, e.Kind, e.Position.X, e.Position.Y)
}
