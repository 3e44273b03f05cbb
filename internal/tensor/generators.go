package tensor

import "math"

// Indexing selects the output layout of Meshgrid.
type Indexing uint8

// Meshgrid indexing modes.
const (
	IndexingXY Indexing = iota // Cartesian: first two outputs swap their axes
	IndexingIJ                 // matrix
)

type genConfig struct {
	dtype    DataType
	hasDType bool
	endpoint bool
	base     float64
	indexing Indexing
	sparse   bool
	copy     bool
}

// GenOption configures a generator.
type GenOption func(*genConfig)

func newGenConfig(opts []GenOption) genConfig {
	cfg := genConfig{endpoint: true, base: 10, copy: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDType sets the dtype of the generated array.
func WithDType(dt DataType) GenOption {
	return func(c *genConfig) { c.dtype, c.hasDType = dt, true }
}

// WithEndpoint controls whether stop is the last sample (default true).
func WithEndpoint(endpoint bool) GenOption {
	return func(c *genConfig) { c.endpoint = endpoint }
}

// WithBase sets the base of Logspace (default 10).
func WithBase(base float64) GenOption {
	return func(c *genConfig) { c.base = base }
}

// WithIndexing sets the Meshgrid indexing mode (default IndexingXY).
func WithIndexing(ix Indexing) GenOption {
	return func(c *genConfig) { c.indexing = ix }
}

// WithSparse makes Meshgrid return broadcastable arrays instead of full grids.
func WithSparse(sparse bool) GenOption {
	return func(c *genConfig) { c.sparse = sparse }
}

// WithCopy controls whether Meshgrid copies its outputs (default true).
// Without a copy dense outputs are stride-0 views of the inputs.
func WithCopy(copy bool) GenOption {
	return func(c *genConfig) { c.copy = copy }
}

// Arange returns evenly spaced values in the half-open interval
// [start, stop), ceil((stop-start)/step) of them (none when negative).
// The dtype follows T unless WithDType is given.
//
// Example:
//
//	a, _ := tensor.Arange(2, 11, 1, tensor.WithDType(tensor.Int8)) // [ 2  3  4  5  6  7  8  9 10]
//	b, _ := tensor.Arange(2.5, 11.5, 2.0)                         // [ 2.5  4.5  6.5  8.5 10.5]
func Arange[T Number](start, stop, step T, opts ...GenOption) (*Array, error) {
	if step == 0 {
		return nil, newError("arange", ErrInvalidArgument, "step must not be zero")
	}
	cfg := newGenConfig(opts)
	dt := dataTypeOf[T]()
	if cfg.hasDType {
		dt = cfg.dtype
	}
	if !dt.IsNumeric() {
		return nil, newError("arange", ErrDTypeMismatch, "cannot generate %s values", dt)
	}
	n := int(math.Ceil((float64(stop) - float64(start)) / float64(step)))
	if n < 0 {
		n = 0
	}
	out, err := Empty(Shape{n}, dt)
	if err != nil {
		return nil, err
	}
	integral := dataTypeOf[T]().IsInteger()
	for i := 0; i < n; i++ {
		var v Scalar
		if integral {
			v = IntScalar(int64(start) + int64(i)*int64(step))
		} else {
			v = FloatScalar(float64(start) + float64(i)*float64(step))
		}
		out.store(i*dt.size, v)
	}
	return out, nil
}

// Linspace returns num evenly spaced samples over [start, stop] (or
// [start, stop) without the endpoint). start and stop may be real or
// complex; integer dtypes floor the samples.
//
// Example:
//
//	a, _ := tensor.Linspace(2.0, 3.0, 5) // [2.   2.25 2.5  2.75 3.  ]
func Linspace(start, stop any, num int, opts ...GenOption) (*Array, error) {
	out, _, err := LinspaceStep(start, stop, num, opts...)
	return out, err
}

// LinspaceStep is Linspace that also returns the spacing between samples.
// The step is NaN when it is undefined (a single sample with the endpoint).
func LinspaceStep(start, stop any, num int, opts ...GenOption) (*Array, Scalar, error) {
	if num < 0 {
		return nil, Scalar{}, newError("linspace", ErrInvalidArgument, "number of samples, %d, must be non-negative", num)
	}
	lo, ldt, err := scalarOf(start)
	if err != nil {
		return nil, Scalar{}, err
	}
	hi, hdt, err := scalarOf(stop)
	if err != nil {
		return nil, Scalar{}, err
	}
	cfg := newGenConfig(opts)
	isComplex := ldt.kind == KindComplex || hdt.kind == KindComplex
	dt := Float64
	if isComplex {
		dt = Complex128
	}
	if cfg.hasDType {
		dt = cfg.dtype
	}
	if !dt.IsNumeric() {
		return nil, Scalar{}, newError("linspace", ErrDTypeMismatch, "cannot generate %s values", dt)
	}

	div := num
	if cfg.endpoint {
		div = num - 1
	}
	a, b := lo.Complex128(), hi.Complex128()
	delta := b - a
	step := complex(math.NaN(), 0)
	if div > 0 {
		step = delta / complex(float64(div), 0)
	}
	vals := make([]complex128, num)
	for i := range vals {
		if div > 0 {
			vals[i] = a + complex(float64(i), 0)*step
		} else {
			vals[i] = a + complex(float64(i), 0)*delta
		}
	}
	if cfg.endpoint && num > 1 {
		vals[num-1] = b
	}

	out, err := Empty(Shape{num}, dt)
	if err != nil {
		return nil, Scalar{}, err
	}
	for i, v := range vals {
		var s Scalar
		switch {
		case isComplex:
			s = ComplexScalar(v)
		case dt.IsInteger():
			s = FloatScalar(math.Floor(real(v)))
		default:
			s = FloatScalar(real(v))
		}
		out.store(i*dt.size, s)
	}
	if isComplex {
		return out, ComplexScalar(step), nil
	}
	return out, FloatScalar(real(step)), nil
}

// Logspace returns num samples spaced evenly on a log scale:
// base**linspace(start, stop, num).
//
// Example:
//
//	a, _ := tensor.Logspace(2.0, 3.0, 4) // [ 100.  215.443469  464.15888336 1000.  ]
func Logspace(start, stop float64, num int, opts ...GenOption) (*Array, error) {
	cfg := newGenConfig(opts)
	exps, err := Linspace(start, stop, num, WithEndpoint(cfg.endpoint))
	if err != nil {
		return nil, err
	}
	defer exps.Release()
	return powSamples("logspace", cfg, exps.Float64s(), nil)
}

// powSamples builds base**e for every exponent, optionally overriding the
// first and last samples, and casts to the configured dtype.
func powSamples(op string, cfg genConfig, exps []float64, fix func([]float64)) (*Array, error) {
	dt := Float64
	if cfg.hasDType {
		dt = cfg.dtype
	}
	if !dt.IsNumeric() {
		return nil, newError(op, ErrDTypeMismatch, "cannot generate %s values", dt)
	}
	vals := make([]float64, len(exps))
	for i, e := range exps {
		vals[i] = math.Pow(cfg.base, e)
	}
	if fix != nil {
		fix(vals)
	}
	out := mustEmpty(Shape{len(vals)}, dt)
	for i, v := range vals {
		out.store(i*dt.size, FloatScalar(v))
	}
	return out, nil
}

// Geomspace returns num samples spaced evenly on a log scale between start
// and stop (a geometric progression). Both bounds must be non-zero and of
// the same sign; the endpoints are exact.
//
// Example:
//
//	a, _ := tensor.Geomspace(1, 1000, 4) // [   1.   10.  100. 1000.]
func Geomspace(start, stop float64, num int, opts ...GenOption) (*Array, error) {
	if start == 0 || stop == 0 {
		return nil, newError("geomspace", ErrInvalidArgument, "geometric sequence cannot include zero")
	}
	if (start < 0) != (stop < 0) {
		return nil, newError("geomspace", ErrSignMismatch,
			"start %g and stop %g have different signs", start, stop)
	}
	sign := 1.0
	if start < 0 {
		sign = -1
	}
	cfg := newGenConfig(opts)
	cfg.base = 10
	exps, err := Linspace(math.Log10(sign*start), math.Log10(sign*stop), num, WithEndpoint(cfg.endpoint))
	if err != nil {
		return nil, err
	}
	defer exps.Release()
	return powSamples("geomspace", cfg, exps.Float64s(), func(vals []float64) {
		for i := range vals {
			vals[i] *= sign
		}
		if len(vals) > 0 {
			vals[0] = start
		}
		if cfg.endpoint && len(vals) > 1 {
			vals[len(vals)-1] = stop
		}
	})
}

// Meshgrid returns coordinate arrays for a grid spanned by 1-D coordinate
// vectors (other inputs are flattened). With IndexingXY the first two
// output axes are swapped, matching Cartesian conventions.
//
// Example:
//
//	x, _ := tensor.Linspace(0, 1, 3)
//	y, _ := tensor.Linspace(0, 1, 2)
//	g, _ := tensor.Meshgrid([]*tensor.Array{x, y}, tensor.WithSparse(true))
//	// g[0].Shape() == (1, 3), g[1].Shape() == (2, 1)
func Meshgrid(arrays []*Array, opts ...GenOption) ([]*Array, error) {
	cfg := newGenConfig(opts)
	nd := len(arrays)
	grids := make([]*Array, nd)
	for i, x := range arrays {
		dims := make([]int, nd)
		for d := range dims {
			dims[d] = 1
		}
		pos := i
		if cfg.indexing == IndexingXY && nd > 1 && i < 2 {
			pos = 1 - i
		}
		dims[pos] = -1
		g, err := x.Reshape(dims...)
		if err != nil {
			releaseAll(grids[:i])
			return nil, err
		}
		grids[i] = g
	}
	if !cfg.sparse {
		dense, err := BroadcastArrays(grids...)
		releaseAll(grids)
		if err != nil {
			return nil, err
		}
		grids = dense
	}
	if cfg.copy {
		for i, g := range grids {
			grids[i] = g.Copy()
			g.Release()
		}
	}
	return grids, nil
}
