// Package coord maps audio domain units onto the fixed spectrum canvas.
//
// Frequencies use a logarithmic axis spanning 20 Hz to 20 kHz across the
// canvas width. Levels use a linear axis where 0 dBFS is the top row and
// -96 dBFS is the bottom of the chart. None of the functions clamp: values
// outside the nominal ranges map to pixels outside the visible chart.
package coord
