// Package vector provides fixed-size 2/3/4-component value types.
//
// Three families share one surface:
//
//   - Float2, Float3, Float4: packed float32 components (8/12/16 bytes).
//   - Int2..Int4 and Uint2..Uint4: 32-bit integer components with modulo.
//   - Vector2, Vector3, Vector4: float32 components laid out for SIMD
//     loads (Vector3 is padded to 16 bytes) with a raw uint32 bit view
//     (Bits / VectorNFromBits).
//
// All operations are pure and return new values. Degenerate input falls back
// to zero instead of failing:
//
//   - Normalized of a zero-length vector is the zero vector, never NaN.
//   - Any component divided (or reduced modulo) by zero is 0.
//
// Cross is defined on the 3-wide float types only; Perpendicular on the 2-wide.
//
// DetectCPUFeatures reports the SIMD extensions of the running CPU and how
// many float32 lanes its widest register holds.
package vector
