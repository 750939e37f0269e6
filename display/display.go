// Package display ties a parameter snapshot to a drawing surface.
//
// A Display is the per-instance handle a host keeps for one spectrum
// widget. The host calls OnInit once with the full port set and OnUpdate
// for every single-value change; each call rebuilds and redraws the whole
// frame. A Display is not safe for concurrent use; hosts serialize calls
// the same way their event loop does.
package display

import (
	"github.com/cwbudde/spectrum-display/display/coord"
	"github.com/cwbudde/spectrum-display/display/params"
	"github.com/cwbudde/spectrum-display/display/scene"
)

// Surface is the host-owned drawing target.
type Surface interface {
	// Configure sets the surface size in pixels.
	Configure(width, height int)
	// Clear removes everything drawn so far.
	Clear()
	// Draw renders one primitive on top of what is already drawn.
	Draw(p scene.Primitive)
}

// Display renders a spectrum widget onto a Surface.
type Display struct {
	surface  Surface
	snapshot *params.Snapshot
	frame    scene.Scene
	frames   int
}

// New returns a display drawing onto s. A nil surface is allowed; frames
// are still built but nothing is drawn until Attach is called.
func New(s Surface) *Display {
	return &Display{surface: s, snapshot: params.New()}
}

// Attach replaces the drawing surface. Passing nil detaches it.
func (d *Display) Attach(s Surface) {
	d.surface = s
}

// OnInit replaces the snapshot with ports and draws the first frame.
func (d *Display) OnInit(ports []params.Port) scene.Scene {
	if d.surface != nil {
		d.surface.Configure(coord.Width, coord.SurfaceHeight)
		d.surface.Clear()
		for _, p := range scene.Placeholder().Primitives {
			d.surface.Draw(p)
		}
	}

	d.snapshot = params.FromPorts(ports)
	return d.rebuild()
}

// OnUpdate stores one value and redraws the frame.
func (d *Display) OnUpdate(symbol string, value float64) scene.Scene {
	d.snapshot.Set(symbol, value)
	return d.rebuild()
}

// Snapshot returns a copy of the current parameter snapshot.
func (d *Display) Snapshot() *params.Snapshot {
	return d.snapshot.Clone()
}

// Scene returns the most recently built frame.
func (d *Display) Scene() scene.Scene {
	return d.frame
}

// Frames returns the number of frames built so far.
func (d *Display) Frames() int {
	return d.frames
}

func (d *Display) rebuild() scene.Scene {
	d.frame = scene.Build(d.snapshot)
	d.frames++

	if d.surface == nil {
		return d.frame
	}

	d.surface.Clear()
	for _, p := range d.frame.Primitives {
		d.surface.Draw(p)
	}
	return d.frame
}
