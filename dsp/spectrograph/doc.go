// Package spectrograph converts fixed-length real audio frames into log
// power spectra, one spectrogram column per call.
//
// Each Transform runs five stages over buffers allocated once in New:
// the frame is copied and multiplied by the window, packed as complex
// input with a zero imaginary part, transformed by the FFT engine, reduced
// to normalized power re²+im² for bins 0..N/2, and compressed to decibels
// as 10·log10(max(p, 1e-30)).
//
// A Spectrograph is not safe for concurrent use. Use one instance per
// goroutine, or a Pool.
package spectrograph
