// SPDX-License-Identifier: MIT

package matrix

import "unsafe"

// Element storage sizes: exactly rows x cols x 4 bytes.
const (
	Mat3x3StorageBytes = 3 * 3 * 4
	Mat3x4StorageBytes = 3 * 4 * 4
	Mat4x3StorageBytes = 4 * 3 * 4
	Mat4x4StorageBytes = 4 * 4 * 4
)

// Compile-time layout contracts. Indexing a one-element array with a constant
// fails to compile unless the difference is exactly zero (a negative
// difference overflows uintptr and fails too).
var (
	_ = [1]struct{}{}[unsafe.Sizeof(Mat3x3{}.M)-Mat3x3StorageBytes]
	_ = [1]struct{}{}[unsafe.Sizeof(Mat3x4{}.M)-Mat3x4StorageBytes]
	_ = [1]struct{}{}[unsafe.Sizeof(Mat4x3{}.M)-Mat4x3StorageBytes]
	_ = [1]struct{}{}[unsafe.Sizeof(Mat4x4{}.M)-Mat4x4StorageBytes]

	// Alignment follows uint64: 8 bytes on 64-bit targets.
	_ = [1]struct{}{}[unsafe.Alignof(Mat3x3{})-unsafe.Alignof(uint64(0))]
	_ = [1]struct{}{}[unsafe.Alignof(Mat3x4{})-unsafe.Alignof(uint64(0))]
	_ = [1]struct{}{}[unsafe.Alignof(Mat4x3{})-unsafe.Alignof(uint64(0))]
	_ = [1]struct{}{}[unsafe.Alignof(Mat4x4{})-unsafe.Alignof(uint64(0))]
)
