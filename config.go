package osier

import "fmt"

const (
	defaultMultiClickTime = 0.25 // seconds
	defaultDragThreshold  = 0.0  // pixels
)

// config holds the router-owned tuning values. Trackers read it through a
// shared pointer each tick; it is never copied into a tracker, so setter
// changes take effect on the next sample.
type config struct {
	multiClickTime      float64 // seconds a lone release stays pending
	dragThreshold       float64 // pixels of travel before a drag opens
	suspendWhenOccluded bool
}

// SetMultiClickTime sets the multi-click window in seconds: how long a lone
// release stays pending before it is reported as a single click, and within
// which a second release becomes a double click. Values ≤ 0 are rejected and
// leave the previous setting unchanged.
func (r *Router) SetMultiClickTime(seconds float64) error {
	if seconds <= 0 {
		return fmt.Errorf("osier: multi-click time must be > 0 seconds, got %v", seconds)
	}
	r.cfg.multiClickTime = seconds
	return nil
}

// MultiClickTime returns the current multi-click window in seconds.
func (r *Router) MultiClickTime() float64 {
	return r.cfg.multiClickTime
}

// SetDragThreshold sets the minimum cursor travel in pixels, measured from
// the press position, before drag samples open a drag gesture. Negative
// values are rejected and leave the previous setting unchanged. Zero (the
// default) starts a drag on the first drag sample.
func (r *Router) SetDragThreshold(pixels float64) error {
	if pixels < 0 {
		return fmt.Errorf("osier: drag threshold must be >= 0 pixels, got %v", pixels)
	}
	r.cfg.dragThreshold = pixels
	return nil
}

// DragThreshold returns the current drag threshold in pixels.
func (r *Router) DragThreshold() float64 {
	return r.cfg.dragThreshold
}

// SetSuspendWhenOccluded controls whether samples taken while the Occluder
// reports the cursor as covered are diverted to the non-committal suspension
// path instead of the normal state machine.
func (r *Router) SetSuspendWhenOccluded(enabled bool) {
	r.cfg.suspendWhenOccluded = enabled
}
