// Package scene builds the drawing primitives for one spectrum display frame.
//
// A Scene is rebuilt from scratch for every parameter snapshot. Primitives
// are ordered back to front and never patched in place; surfaces draw them
// in sequence.
package scene
