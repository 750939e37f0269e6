// Package host adapts external event sources to a spectrum display.
//
// Events arrive as a stream of JSON objects, one "start" carrying the
// full port set followed by any number of single-value "change" events.
// The package also provides the YAML configuration of the specrender
// command and a small HTTP preview server.
package host
