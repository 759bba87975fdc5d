// SPDX-License-Identifier: MIT

package vector

import "unsafe"

// Compile-time size contracts. Each line fails to compile unless the type
// occupies exactly the listed number of bytes.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(Float2{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Float3{})-12]
	_ = [1]struct{}{}[unsafe.Sizeof(Float4{})-16]

	_ = [1]struct{}{}[unsafe.Sizeof(Int2{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Int3{})-12]
	_ = [1]struct{}{}[unsafe.Sizeof(Int4{})-16]

	_ = [1]struct{}{}[unsafe.Sizeof(Uint2{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Uint3{})-12]
	_ = [1]struct{}{}[unsafe.Sizeof(Uint4{})-16]

	_ = [1]struct{}{}[unsafe.Sizeof(Vector2{})-8]
	_ = [1]struct{}{}[unsafe.Sizeof(Vector3{})-16]
	_ = [1]struct{}{}[unsafe.Sizeof(Vector4{})-16]

	// Vector2 follows uint64 alignment: 8 bytes on 64-bit targets.
	_ = [1]struct{}{}[unsafe.Alignof(Vector2{})-unsafe.Alignof(uint64(0))]
)
