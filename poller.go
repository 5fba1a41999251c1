package osier

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Update is the Ebitengine convenience for stepping the router from a
// game's Update method: one Tick with dt derived from the configured TPS.
func (r *Router) Update() {
	r.Tick(1.0 / float64(ebiten.TPS()))
}

// CursorPoller reads the host mouse through Ebitengine and reduces it to
// the per-tick net signal the router consumes: a press edge, a release
// edge, or a held-and-moved drag sample. Buttons that are merely held
// without cursor movement produce no signal.
//
// One CursorPoller serves all buttons of a single router; it keeps the
// previous tick's button and cursor state for edge detection.
type CursorPoller struct {
	prevDown [4]bool
	lastPos  [4]Vec2
}

// NewCursorPoller creates a poller with no remembered button state.
func NewCursorPoller() *CursorPoller {
	return &CursorPoller{}
}

// Poll implements Poller. It must be called at most once per button per
// tick; calling it twice in the same tick would consume the edge twice.
func (p *CursorPoller) Poll(b Button) (Sample, bool) {
	eb, ok := ebitenButton(b)
	if !ok {
		return Sample{}, false
	}

	mx, my := ebiten.CursorPosition()
	pos := Vec2{X: float64(mx), Y: float64(my)}
	down := ebiten.IsMouseButtonPressed(eb)
	was := p.prevDown[b]
	p.prevDown[b] = down

	switch {
	case down && !was:
		p.lastPos[b] = pos
		return Sample{Button: b, Kind: SamplePressed, Position: pos, Modifiers: readModifiers()}, true
	case !down && was:
		return Sample{Button: b, Kind: SampleReleased, Position: pos, Modifiers: readModifiers()}, true
	case down:
		if pos == p.lastPos[b] {
			return Sample{}, false
		}
		p.lastPos[b] = pos
		return Sample{Button: b, Kind: SampleDragging, Position: pos, Modifiers: readModifiers()}, true
	default:
		return Sample{}, false
	}
}

// ebitenButton maps a Button to its ebiten counterpart. ButtonNone has no
// counterpart and reports ok=false.
func ebitenButton(b Button) (ebiten.MouseButton, bool) {
	switch b {
	case ButtonPrimary:
		return ebiten.MouseButtonLeft, true
	case ButtonSecondary:
		return ebiten.MouseButtonRight, true
	case ButtonAuxiliary:
		return ebiten.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}
