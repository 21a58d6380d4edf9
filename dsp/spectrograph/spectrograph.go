package spectrograph

import (
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-spectrograph/dsp/fftengine"
	"github.com/cwbudde/algo-spectrograph/dsp/window"
	"github.com/cwbudde/algo-spectrograph/internal/vecmath"
	"go.uber.org/zap"
)

// PowerFloor is the smallest power value passed to the logarithm.
const PowerFloor float32 = 1e-30

// Spectrograph holds the window table, FFT engine and scratch buffers for
// one frame length.
type Spectrograph struct {
	n       int
	bins    int
	backend string
	norm    Normalization
	table   *window.Table
	engine  fftengine.Engine
	log     *zap.Logger

	// io holds the packed complex input in [0,n) and the spectrum in [n,2n).
	io []complex64

	// scratch holds the frame in [0,n), real parts in [n,n+bins) and
	// imaginary parts in [n+bins,n+2·bins). Power reuses the frame prefix.
	scratch []float32

	closed bool
}

// OutputLen returns the number of spectrum bins for frame length n.
func OutputLen(n int) int {
	return n/2 + 1
}

// New builds a Spectrograph. The FFT engine is created last; if it cannot
// be created, or reports the wrong size, New returns an error wrapping
// ErrResourceExhausted and closes whatever it acquired.
func New(opts ...Option) (*Spectrograph, error) {
	cfg := ApplyOptions(opts...)

	n := cfg.FrameLength
	if n < 2 || n%2 != 0 {
		return nil, fmt.Errorf("%w: %d (must be even and >= 2)", ErrInvalidFrameLength, n)
	}

	factory := cfg.Factory
	backend := cfg.Backend
	if factory == nil {
		var err error
		if backend, err = fftengine.ParseBackend(backend); err != nil {
			return nil, err
		}
		if factory, err = fftengine.Lookup(backend); err != nil {
			return nil, err
		}
	}

	table, err := window.NewTable(cfg.Window, n, float32(cfg.Normalization.Scale(n)))
	if err != nil {
		return nil, fmt.Errorf("spectrograph: window table: %w", err)
	}

	engine, err := factory(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %s engine for frame length %d: %w", ErrResourceExhausted, backend, n, err)
	}
	if engine == nil {
		return nil, fmt.Errorf("%w: %s engine for frame length %d is nil", ErrResourceExhausted, backend, n)
	}
	if got := engine.Len(); got != n {
		closeEngine(engine)
		return nil, fmt.Errorf("%w: %s engine has size %d, want %d", ErrResourceExhausted, backend, got, n)
	}

	s := &Spectrograph{
		n:       n,
		bins:    OutputLen(n),
		backend: backend,
		norm:    cfg.Normalization,
		table:   table,
		engine:  engine,
		log:     cfg.Logger,
		io:      make([]complex64, 2*n),
		scratch: make([]float32, 3*n),
	}

	s.log.Debug("spectrograph created",
		zap.Int("frame_length", n),
		zap.Int("bins", s.bins),
		zap.String("backend", backend),
		zap.Stringer("window", cfg.Window),
		zap.Stringer("normalization", cfg.Normalization),
		zap.String("kernels", vecmath.Implementation()),
	)

	return s, nil
}

// FrameLen returns the frame length N.
func (s *Spectrograph) FrameLen() int { return s.n }

// Bins returns the number of output bins, N/2+1.
func (s *Spectrograph) Bins() int { return s.bins }

// Backend returns the FFT backend name.
func (s *Spectrograph) Backend() string { return s.backend }

// Normalization returns the configured power normalization.
func (s *Spectrograph) Normalization() Normalization { return s.norm }

// Window returns the analysis window type.
func (s *Spectrograph) Window() window.Type { return s.table.Type() }

// WindowCoeffs returns a copy of the float32 window.
func (s *Spectrograph) WindowCoeffs() []float32 {
	return append([]float32(nil), s.table.Window()...)
}

// PowerCoeff returns a copy of the N-element power scale table. Every
// element holds the same constant.
func (s *Spectrograph) PowerCoeff() []float32 {
	return append([]float32(nil), s.table.PowerCoeff()...)
}

// Transform writes the log power spectrum of src into dst in decibels.
// len(src) must be FrameLen() and len(dst) must be Bins(). On error dst
// is left unmodified.
func (s *Spectrograph) Transform(dst, src []float32) error {
	power, err := s.power(dst, src)
	if err != nil {
		return err
	}

	for k, p := range power {
		dst[k] = float32(10 * math.Log10(float64(max(p, PowerFloor))))
	}

	return nil
}

// PowerSpectrum writes the normalized linear power of src into dst.
func (s *Spectrograph) PowerSpectrum(dst, src []float32) error {
	power, err := s.power(dst, src)
	if err != nil {
		return err
	}

	vecmath.Copy(dst, power)
	return nil
}

// MagnitudeSpectrum writes the square root of the normalized power into dst.
func (s *Spectrograph) MagnitudeSpectrum(dst, src []float32) error {
	power, err := s.power(dst, src)
	if err != nil {
		return err
	}

	vecmath.Sqrt(dst, power)
	return nil
}

// Close releases the buffers and closes the engine if it implements
// io.Closer. Closing an already closed instance is a no-op.
func (s *Spectrograph) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	err := closeEngine(s.engine)
	s.engine = nil
	s.io = nil
	s.scratch = nil

	s.log.Debug("spectrograph closed", zap.String("backend", s.backend), zap.Error(err))

	if err != nil {
		return fmt.Errorf("spectrograph: close engine: %w", err)
	}
	return nil
}

// power runs load, window, pack, FFT and power stages and returns the
// normalized power held in scratch.
func (s *Spectrograph) power(dst, src []float32) ([]float32, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if len(src) != s.n {
		return nil, fmt.Errorf("%w: src has %d samples, want %d", ErrLengthMismatch, len(src), s.n)
	}
	if len(dst) != s.bins {
		return nil, fmt.Errorf("%w: dst has %d bins, want %d", ErrLengthMismatch, len(dst), s.bins)
	}

	n, b := s.n, s.bins
	frame := s.scratch[:n]
	re := s.scratch[n : n+b]
	im := s.scratch[n+b : n+2*b]

	if n%vecmath.CopyWidth == 0 {
		vecmath.CopyTiled16(frame, src)
	} else {
		vecmath.Copy(frame, src)
	}

	if n%vecmath.ArithWidth == 0 {
		vecmath.MulTiled64(frame, frame, s.table.Window())
	} else {
		vecmath.Mul(frame, frame, s.table.Window())
	}

	in := s.io[:n]
	out := s.io[n:]
	for i, v := range frame {
		in[i] = complex(v, 0)
	}

	if err := s.engine.Forward(out, in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransformFailed, err)
	}

	for k, c := range out[:b] {
		re[k] = real(c)
		im[k] = imag(c)
	}

	power := frame[:b]
	vecmath.Square(re, re)
	vecmath.Square(im, im)
	vecmath.Add(power, re, im)
	vecmath.Mul(power, power, s.table.PowerCoeff()[:b])

	return power, nil
}

func closeEngine(e fftengine.Engine) error {
	if c, ok := e.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
