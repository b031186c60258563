// Package render defines the renderer contract, a name-keyed registry, and
// the snapshot view renderers consume.
package render
