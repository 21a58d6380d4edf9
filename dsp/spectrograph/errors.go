package spectrograph

import (
	"errors"

	"github.com/cwbudde/algo-spectrograph/dsp/fftengine"
)

var (
	// ErrResourceExhausted is returned when New cannot create the FFT engine.
	ErrResourceExhausted = errors.New("spectrograph: resource exhausted")

	// ErrTransformFailed is returned when the FFT engine reports an error.
	ErrTransformFailed = errors.New("spectrograph: transform failed")

	// ErrInvalidFrameLength is returned for frame lengths that are odd or below 2.
	ErrInvalidFrameLength = errors.New("spectrograph: invalid frame length")

	// ErrLengthMismatch is returned when src or dst have the wrong length.
	ErrLengthMismatch = errors.New("spectrograph: buffer length mismatch")

	// ErrClosed is returned by operations on a closed instance.
	ErrClosed = errors.New("spectrograph: use of closed instance")

	// ErrUnknownBackend is returned for backend names with no registered engine.
	ErrUnknownBackend = fftengine.ErrUnknownBackend
)
