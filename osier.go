package osier

// Vec2 is a 2D vector used for cursor positions, drag anchors, and deltas
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Sub returns the component-wise difference v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Button identifies a mouse button. ButtonNone is the sentinel carried by
// events for buttons that were never monitored; it cannot be monitored
// itself.
type Button uint8

const (
	ButtonNone      Button = iota // sentinel, "no event"
	ButtonPrimary                 // primary (left) mouse button
	ButtonSecondary               // secondary (right) mouse button
	ButtonAuxiliary               // auxiliary (middle) mouse button
)

// String returns the button name for logging and test output.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "Primary"
	case ButtonSecondary:
		return "Secondary"
	case ButtonAuxiliary:
		return "Auxiliary"
	default:
		return "None"
	}
}

// Kind identifies the interaction a button is currently in, or has just
// produced. Exactly one Kind is active per tracked button at any tick.
//
// KindSingleClick, KindDoubleClick, and KindDragComplete are terminal: they
// exist for exactly one tick of observability before the tracker clears
// itself back to KindIdle.
type Kind uint8

const (
	KindIdle               Kind = iota // nothing in flight
	KindSingleClickPending             // release seen, multi-click window still open
	KindSingleClick                    // window expired with no follow-up (terminal)
	KindDoubleClick                    // second release inside the window (terminal)
	KindDragStart                      // first drag sample of a gesture
	KindDragging                       // drag in progress
	KindDragComplete                   // release ended a drag (terminal)
)

// String returns the kind name for logging and test output.
func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "Idle"
	case KindSingleClickPending:
		return "SingleClickPending"
	case KindSingleClick:
		return "SingleClick"
	case KindDoubleClick:
		return "DoubleClick"
	case KindDragStart:
		return "DragStart"
	case KindDragging:
		return "Dragging"
	case KindDragComplete:
		return "DragComplete"
	default:
		return "Unknown"
	}
}

// IsClick reports whether k is a completed click (single or double).
func (k Kind) IsClick() bool {
	return k == KindSingleClick || k == KindDoubleClick
}

// IsDrag reports whether k is any phase of a drag gesture.
func (k Kind) IsDrag() bool {
	return k == KindDragStart || k == KindDragging || k == KindDragComplete
}

// IsTerminal reports whether k lives for exactly one tick before the
// tracker clears back to KindIdle.
func (k Kind) IsTerminal() bool {
	return k == KindSingleClick || k == KindDoubleClick || k == KindDragComplete
}

// SampleKind identifies the raw signal a Poller observed for a button
// during one tick.
type SampleKind uint8

const (
	SampleNone     SampleKind = iota // no signal this tick
	SamplePressed                    // button went down this tick
	SampleDragging                   // button held and the cursor moved
	SampleReleased                   // button went up this tick
)

// String returns the sample kind name for logging and test output.
func (k SampleKind) String() string {
	switch k {
	case SamplePressed:
		return "Pressed"
	case SampleDragging:
		return "Dragging"
	case SampleReleased:
		return "Released"
	default:
		return "None"
	}
}

// KeyModifiers is a bitmask of keyboard modifier keys active when a sample
// was taken. Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
