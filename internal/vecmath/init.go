package vecmath

// This file imports the implementation packages to trigger their init()
// functions, which register kernel sets with the global registry.

import (
	_ "github.com/cwbudde/algo-spectrograph/internal/vecmath/arch/generic"
	_ "github.com/cwbudde/algo-spectrograph/internal/vecmath/arch/unrolled"
	_ "github.com/cwbudde/algo-spectrograph/internal/vecmath/registry"
)
