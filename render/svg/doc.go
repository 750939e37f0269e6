// Package svg renders spectrum display scenes as SVG markup.
//
// Surface implements display.Surface. Each primitive becomes one SVG
// element, in drawing order, so the document mirrors the scene exactly.
package svg
