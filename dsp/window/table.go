package window

// Table is an immutable float32 window paired with a broadcast scale
// coefficient, sized for one frame length.
//
// The window and coefficient arrays are shared with callers through the
// accessors and must not be modified.
type Table struct {
	typ    Type
	coeff  float32
	window []float32
	scale  []float32
}

// NewTable builds a table of length n for window type t. Every entry of
// the coefficient array holds coeff.
func NewTable(t Type, n int, coeff float32, opts ...Option) (*Table, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}

	w := Generate(t, n, opts...)

	tbl := &Table{
		typ:    t,
		coeff:  coeff,
		window: make([]float32, n),
		scale:  make([]float32, n),
	}
	for i, v := range w {
		tbl.window[i] = float32(v)
		tbl.scale[i] = coeff
	}

	return tbl, nil
}

// Type returns the window type the table was built from.
func (t *Table) Type() Type { return t.typ }

// Len returns the table length.
func (t *Table) Len() int { return len(t.window) }

// Coeff returns the broadcast scale coefficient.
func (t *Table) Coeff() float32 { return t.coeff }

// Window returns the float32 window coefficients.
func (t *Table) Window() []float32 { return t.window }

// PowerCoeff returns the coefficient array; every element equals Coeff().
func (t *Table) PowerCoeff() []float32 { return t.scale }
