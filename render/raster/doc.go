// Package raster paints spectrum display scenes onto an RGBA image.
//
// Paths, dashes and translucent fills go through go-chart's drawing
// package; labels use a fixed bitmap face from golang.org/x/image. Clip
// regions are honoured by painting clipped primitives on a scratch layer
// and compositing only the clip rectangle.
package raster
