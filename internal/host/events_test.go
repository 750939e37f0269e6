package host

import (
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/spectrum-display/display"
	"github.com/cwbudde/spectrum-display/display/coord"
	"github.com/cwbudde/spectrum-display/display/scene"
)

const stream = `{"type":"start","ports":[{"symbol":"bin1","value":1},{"symbol":":bypass","value":0}]}
{"type":"change","symbol":"bin2","value":0.5}
{"type":"change","symbol":":bypass","value":1}
`

func TestReplay(t *testing.T) {
	d := display.New(nil)
	var frames []scene.Scene

	n, err := Replay(d, strings.NewReader(stream), func(i int, sc scene.Scene) error {
		if i != len(frames) {
			t.Fatalf("callback index=%d want=%d", i, len(frames))
		}
		frames = append(frames, sc)
		return nil
	})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if n != 3 || len(frames) != 3 || d.Frames() != 3 {
		t.Fatalf("events=%d frames=%d display frames=%d", n, len(frames), d.Frames())
	}

	curve := frames[1].ByKind(scene.KindPolyline)[0]
	if curve.Points[0].Y != 0 || curve.Points[1].Y != coord.Height/2.0 {
		t.Fatalf("curve after change: %v %v", curve.Points[0], curve.Points[1])
	}
	if frames[2].ByKind(scene.KindPolyline)[0].Style.Stroke != scene.ColorBypassed {
		t.Fatal("host bypass not applied")
	}
}

func TestReplayStopsOnCallbackError(t *testing.T) {
	boom := errors.New("boom")
	n, err := Replay(display.New(nil), strings.NewReader(stream), func(int, scene.Scene) error { return boom })
	if !errors.Is(err, boom) || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestApplyRejectsBadEvents(t *testing.T) {
	d := display.New(nil)
	if _, err := Apply(d, Event{Type: "resize"}); !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("err=%v want ErrUnknownEvent", err)
	}
	if _, err := Apply(d, Event{Type: EventChange}); !errors.Is(err, ErrMissingSymbol) {
		t.Fatalf("err=%v want ErrMissingSymbol", err)
	}
	if d.Frames() != 0 {
		t.Fatal("rejected events must not rebuild")
	}
}

func TestReplayMalformedInput(t *testing.T) {
	n, err := Replay(display.New(nil), strings.NewReader(`{"type":"start"} {"type":`), nil)
	if err == nil || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestEventConstructors(t *testing.T) {
	d := display.New(nil)
	if _, err := Apply(d, StartEvent(nil)); err != nil {
		t.Fatal(err)
	}
	sc, err := Apply(d, ChangeEvent("bin1", 1))
	if err != nil {
		t.Fatal(err)
	}
	if sc.ByKind(scene.KindPolyline)[0].Points[0].Y != 0 {
		t.Fatal("change event not applied")
	}
}
