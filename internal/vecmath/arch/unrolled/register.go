package unrolled

import (
	"github.com/cwbudde/algo-spectrograph/internal/vecmath/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the unrolled kernels.
//
// They need no special instructions, so they are always compatible; the
// higher priority makes them win over the plain loops unless ForceGeneric
// pins the baseline.
//
// Priority: 10
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "unrolled",
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,

		Copy:   Copy,
		Add:    Add,
		Mul:    Mul,
		Square: Square,
		Sqrt:   Sqrt,
	})
}
