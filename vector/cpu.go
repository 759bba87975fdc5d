// SPDX-License-Identifier: MIT

package vector

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUFeatures lists the vector extensions of the running CPU that the
// 16-byte Vector3/Vector4 slots line up with. Fields for other
// architectures stay false.
type CPUFeatures struct {
	SSE2    bool
	SSE41   bool
	AVX     bool
	AVX2    bool
	AVX512F bool
	FMA     bool
	ASIMD   bool // arm64 NEON
}

// DetectCPUFeatures reads the feature flags probed by golang.org/x/sys/cpu
// at program start.
func DetectCPUFeatures() CPUFeatures {
	return CPUFeatures{
		SSE2:    cpu.X86.HasSSE2,
		SSE41:   cpu.X86.HasSSE41,
		AVX:     cpu.X86.HasAVX,
		AVX2:    cpu.X86.HasAVX2,
		AVX512F: cpu.X86.HasAVX512F,
		FMA:     cpu.X86.HasFMA,
		ASIMD:   cpu.ARM64.HasASIMD,
	}
}

// Lanes returns how many float32 values fit the widest vector register:
// 16 (AVX-512), 8 (AVX), 4 (SSE2/NEON) or 1 without any extension.
// A Vector4 fills a 4-lane register exactly; wider units take several.
func (f CPUFeatures) Lanes() int {
	switch {
	case f.AVX512F:
		return 16
	case f.AVX || f.AVX2:
		return 8
	case f.SSE2 || f.SSE41 || f.ASIMD:
		return 4
	default:
		return 1
	}
}

// String lists the detected extensions joined by "+", or "scalar".
func (f CPUFeatures) String() string {
	var names []string
	for _, e := range []struct {
		on   bool
		name string
	}{
		{f.SSE2, "SSE2"},
		{f.SSE41, "SSE4.1"},
		{f.AVX, "AVX"},
		{f.AVX2, "AVX2"},
		{f.AVX512F, "AVX512F"},
		{f.FMA, "FMA"},
		{f.ASIMD, "ASIMD"},
	} {
		if e.on {
			names = append(names, e.name)
		}
	}
	if len(names) == 0 {
		return "scalar"
	}

	return strings.Join(names, "+")
}
