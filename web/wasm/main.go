//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/spectrum-display/display"
	"github.com/cwbudde/spectrum-display/display/params"
	"github.com/cwbudde/spectrum-display/render/svg"
)

var (
	surface = svg.New()
	widget  = display.New(surface)
	funcs   []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	// start(ports) takes [{symbol, value}, ...] and returns SVG markup.
	api.Set("start", export(func(args []js.Value) any {
		var ports []params.Port
		if len(args) > 0 && args[0].Truthy() {
			arr := args[0]
			ports = make([]params.Port, 0, arr.Length())
			for i := 0; i < arr.Length(); i++ {
				item := arr.Index(i)
				ports = append(ports, params.Port{
					Symbol: item.Get("symbol").String(),
					Value:  number(item.Get("value")),
				})
			}
		}
		widget.OnInit(ports)
		return string(surface.Bytes())
	}))

	// change(symbol, value) applies one update and returns SVG markup.
	api.Set("change", export(func(args []js.Value) any {
		if len(args) < 2 {
			return string(surface.Bytes())
		}
		widget.OnUpdate(args[0].String(), number(args[1]))
		return string(surface.Bytes())
	}))

	api.Set("frames", export(func(args []js.Value) any {
		return widget.Frames()
	}))

	js.Global().Set("SpectrumDisplay", api)
	select {}
}

// number reads a JS number; anything else (undefined, null) reads as 0,
// which draws at the floor.
func number(v js.Value) float64 {
	if v.Type() != js.TypeNumber {
		return 0
	}
	return v.Float()
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
