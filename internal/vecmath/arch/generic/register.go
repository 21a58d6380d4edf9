package generic

import (
	"github.com/cwbudde/algo-spectrograph/internal/vecmath/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the plain loop kernels.
//
// Priority: 0 (baseline, also selected when ForceGeneric is set)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Copy:   Copy,
		Add:    Add,
		Mul:    Mul,
		Square: Square,
		Sqrt:   Sqrt,
	})
}
