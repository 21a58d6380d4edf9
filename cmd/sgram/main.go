// Command sgram computes log power spectrogram columns from raw PCM audio.
//
// Usage:
//
//	sgram transform [file|-]   spectra of every frame of a PCM stream
//	sgram tone                 spectrum of a synthesized sine frame
//	sgram backends             available FFT backends and kernels
//	sgram window               spectral properties of the analysis window
//
// Examples:
//
//	sgram transform --encoding s16le --hop 64 -o csv capture.raw
//	sgram tone --freq 1000 --sample-rate 8000 --verify
//	SGRAM_FRAME_LENGTH=1024 sgram window --all
package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
