// Package params holds the parameter snapshot that drives a spectrum display.
//
// Hosts deliver values keyed by port symbol. Response bins arrive as
// "bin1" .. "bin256" and are kept in a typed array, one per canvas column;
// every other symbol is stored as a named control value.
package params
