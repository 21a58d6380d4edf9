package spectrograph

import "sync"

// Pool provides sync.Pool-based Spectrograph reuse so concurrent callers
// each get their own instance without rebuilding tables and FFT plans on
// every frame.
//
// Instances dropped by the garbage collector are not closed, so engines
// that hold resources beyond memory should not be pooled.
type Pool struct {
	opts []Option
	pool sync.Pool
}

// NewPool validates opts by building one instance and returns a Pool
// seeded with it.
func NewPool(opts ...Option) (*Pool, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}

	p := &Pool{opts: append([]Option(nil), opts...)}
	p.pool.Put(s)
	return p, nil
}

// Get returns an instance built from the pool's options.
// Callers must return it via Put when done.
func (p *Pool) Get() (*Spectrograph, error) {
	if v := p.pool.Get(); v != nil {
		return v.(*Spectrograph), nil
	}
	return New(p.opts...)
}

// Put returns an instance to the pool for reuse. Nil and closed instances
// are ignored. The caller must not use the instance after calling Put.
func (p *Pool) Put(s *Spectrograph) {
	if s == nil || s.closed {
		return
	}
	p.pool.Put(s)
}
