package osier

// Event is an immutable snapshot of a button's interaction at the moment of
// a state transition: what happened, where the gesture started, and where
// the cursor is now. Events are plain values with no shared state — copy
// them freely, keep them across ticks.
//
// The zero value (Button == ButtonNone) is the sentinel returned for
// buttons that were never monitored.
type Event struct {
	Button    Button
	Kind      Kind
	Modifiers KeyModifiers
	Anchor    Vec2 // drag anchor; equals Position outside drag gestures
	Position  Vec2 // cursor position at the transition
}

// DragDelta returns the cursor displacement from the drag anchor.
// Zero outside drag gestures (Anchor equals Position there).
func (e Event) DragDelta() Vec2 {
	return e.Position.Sub(e.Anchor)
}

// DragRect returns the axis-aligned bounding box spanned by the drag anchor
// and the current position. Width and Height are always non-negative.
func (e Event) DragRect() Rect {
	x, w := e.Anchor.X, e.Position.X-e.Anchor.X
	if w < 0 {
		x, w = e.Position.X, -w
	}
	y, h := e.Anchor.Y, e.Position.Y-e.Anchor.Y
	if h < 0 {
		y, h = e.Position.Y, -h
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// IsClick reports whether the event is a completed single or double click.
func (e Event) IsClick() bool { return e.Kind.IsClick() }

// IsDrag reports whether the event belongs to a drag gesture.
func (e Event) IsDrag() bool { return e.Kind.IsDrag() }

// IsTerminal reports whether the event's kind clears itself on the next tick.
func (e Event) IsTerminal() bool { return e.Kind.IsTerminal() }
