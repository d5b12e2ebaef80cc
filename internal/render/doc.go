// Package render turns a build-matrix configuration into a provider-agnostic
// pipeline descriptor: an ordered job list, the global environment defaults,
// and the guarded before-script/script tables.
//
// Rendering is a pure transformation. The conditionals visible in the emitted
// pipeline are data produced here, not control flow of the renderer itself;
// the renderer walks fixed role tables and never branches on anything but the
// configuration it was given, so identical input always yields an identical
// descriptor.
package render
