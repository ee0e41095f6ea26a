// Package convert drives the external mesh-to-USD converter: destination
// path derivation, argument construction, and per-file execution. The
// conversion itself (geometry, rescaling, collision meshes, occupancy
// grids) belongs entirely to the external command.
package convert
