// Package simd selects the SIMD lane width fuzzlane's bucketer and scorer
// should run at, once per process, from CPU feature detection (or from the
// FUZZLANE_FORCE_SIMD override used in tests).
//
// Vector register width is detected but not hand-coded in assembly here:
// the scorer and bucketer are parameterized over the lane count L rather
// than shipping separate AVX2/AVX-512/NEON kernels, so Width only needs to
// report "how many lanes", not dispatch to a specific kernel. See
// DESIGN.md for the rationale.
package simd

import (
	"os"
	"sync"

	"golang.org/x/sys/cpu"
)

// Width is a detected (or forced) SIMD register width.
type Width int

const (
	// WidthScalar processes one haystack at a time (L=1). It exists so
	// FUZZLANE_FORCE_SIMD=scalar is a meaningful override, not an error;
	// the scorer and bucketer are correct (if unaccelerated) at L=1.
	WidthScalar Width = 1
	// Width128 is a 128-bit register: 8 lanes of 16 bits each.
	Width128 Width = 128
	// Width256 is a 256-bit register: 16 lanes of 16 bits each.
	Width256 Width = 256
	// Width512 is a 512-bit register: 32 lanes of 16 bits each.
	Width512 Width = 512
)

// Lanes returns the number of 16-bit lanes for w.
func (w Width) Lanes() int {
	switch w {
	case WidthScalar:
		return 1
	case Width128:
		return 8
	case Width256:
		return 16
	case Width512:
		return 32
	default:
		return 8
	}
}

// String implements fmt.Stringer.
func (w Width) String() string {
	switch w {
	case WidthScalar:
		return "scalar"
	case Width128:
		return "128"
	case Width256:
		return "256"
	case Width512:
		return "512"
	default:
		return "unknown"
	}
}

// ForceSIMDEnv is the environment variable that overrides CPU-feature
// detection, for testing. Accepted values: "128", "256", "512", "scalar".
const ForceSIMDEnv = "FUZZLANE_FORCE_SIMD"

var (
	detectOnce sync.Once
	detected   Width
)

// DetectWidth returns the process-wide SIMD lane width: the value forced
// by FUZZLANE_FORCE_SIMD if set and valid, else the widest width the CPU
// supports, else Width128 as a safe default. The probe runs once per
// process (a one-shot, read-only-after-init cache); later calls return the
// cached value even if the environment variable changes.
func DetectWidth() Width {
	detectOnce.Do(func() {
		detected = detectWidthUncached()
	})
	return detected
}

func detectWidthUncached() Width {
	if w, ok := parseForcedWidth(os.Getenv(ForceSIMDEnv)); ok {
		return w
	}
	return probeCPU()
}

func parseForcedWidth(s string) (Width, bool) {
	switch s {
	case "512":
		return Width512, true
	case "256":
		return Width256, true
	case "128":
		return Width128, true
	case "scalar":
		return WidthScalar, true
	default:
		return 0, false
	}
}

// probeCPU detects the widest lane width the running CPU supports.
// Detection failure (an architecture golang.org/x/sys/cpu has no feature
// bits for) is never fatal: it falls back to Width128, per the core's
// error-handling design.
func probeCPU() Width {
	switch {
	case cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL:
		return Width512
	case cpu.X86.HasAVX2:
		return Width256
	case cpu.X86.HasSSE2:
		return Width128
	case cpu.ARM64.HasASIMD:
		return Width128
	default:
		return Width128
	}
}

// resetForTest clears the one-shot cache so tests can exercise every
// branch of DetectWidth within a single process. Not part of the public
// API: production code must see exactly one detection per process
// lifetime.
func resetForTest() {
	detectOnce = sync.Once{}
	detected = 0
}
