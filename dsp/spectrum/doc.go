// Package spectrum provides helpers for reading log power spectra produced
// by the spectrograph: bin to frequency mapping, peak location and shape
// descriptors such as centroid, flatness and rolloff.
//
// The package does not transform audio itself.
package spectrum
