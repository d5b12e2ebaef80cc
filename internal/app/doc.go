// Package app wires the configuration loader, renderer and emitter into the
// runnable application: it owns the logger, resolves input files, and writes
// the generated pipeline files. The translation core below it stays free of
// I/O.
package app
