package scene_test

import (
	"fmt"

	"github.com/cwbudde/spectrum-display/display/params"
	"github.com/cwbudde/spectrum-display/display/scene"
)

func ExampleBuild() {
	s := params.New()
	s.Set("bin1", 1)
	s.Set("bin2", 0.5)
	s.Set(params.BypassSymbol, 1)

	sc := scene.Build(s)
	curve := sc.ByKind(scene.KindPolyline)[0]
	fmt.Println(len(sc.Primitives), curve.Style.Stroke)
	fmt.Println(curve.Points[0], curve.Points[1], curve.Points[2])
	// Output:
	// 26 #444444
	// {0 0} {1 87.5} {2 175}
}
