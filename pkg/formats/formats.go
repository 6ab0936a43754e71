// Package formats encodes triangulated mesh snapshots into the Unreal
// Engine 1 vertex-animation model format: an animation file of bit-packed
// per-frame vertex positions (_a.3d) and a data file of triangle topology
// and per-face attributes (_d.3d).
package formats

// Note: the animation file encoder is in anim.go
// Note: the data file encoder is in data.go
// Note: Wavefront OBJ snapshot loading is in obj.go
