package tensor

import "fmt"

type indexKind uint8

const (
	indexInt indexKind = iota
	indexSlice
	indexEllipsis
	indexNewAxis
	indexArray
	indexMask
)

// Index is one term of an index expression: an integer, a slice, an
// ellipsis, a new-axis marker, a boolean mask or an integer array.
type Index struct {
	kind  indexKind
	n     int
	slice sliceSpec
	arr   *Array
}

type sliceSpec struct {
	start, stop, step          int
	hasStart, hasStop, hasStep bool
}

// Int selects a single position along an axis and removes that axis.
func Int(i int) Index { return Index{kind: indexInt, n: i} }

// All selects a whole axis (":").
func All() Index { return Index{kind: indexSlice} }

// Range selects [start, stop) ("start:stop").
func Range(start, stop int) Index {
	return Index{kind: indexSlice, slice: sliceSpec{start: start, stop: stop, hasStart: true, hasStop: true}}
}

// RangeStep selects start:stop:step.
func RangeStep(start, stop, step int) Index {
	return Index{kind: indexSlice, slice: sliceSpec{
		start: start, stop: stop, step: step, hasStart: true, hasStop: true, hasStep: true,
	}}
}

// From selects "start:".
func From(start int) Index {
	return Index{kind: indexSlice, slice: sliceSpec{start: start, hasStart: true}}
}

// To selects ":stop".
func To(stop int) Index {
	return Index{kind: indexSlice, slice: sliceSpec{stop: stop, hasStop: true}}
}

// Step selects "::step".
func Step(step int) Index {
	return Index{kind: indexSlice, slice: sliceSpec{step: step, hasStep: true}}
}

// SliceOf builds a slice term where nil bounds take their defaults.
func SliceOf(start, stop, step *int) Index {
	var s sliceSpec
	if start != nil {
		s.start, s.hasStart = *start, true
	}
	if stop != nil {
		s.stop, s.hasStop = *stop, true
	}
	if step != nil {
		s.step, s.hasStep = *step, true
	}
	return Index{kind: indexSlice, slice: s}
}

// Ellipsis expands to as many full slices as needed ("...").
func Ellipsis() Index { return Index{kind: indexEllipsis} }

// NewAxis inserts a length-1 dimension.
func NewAxis() Index { return Index{kind: indexNewAxis} }

// Idx uses an array as an index: boolean arrays act as masks, integer
// arrays select coordinates. Both always produce copies.
func Idx(a *Array) Index {
	if a.dtype.kind == KindBool {
		return Index{kind: indexMask, arr: a}
	}
	return Index{kind: indexArray, arr: a}
}

// Ints is shorthand for Idx with a 1-D integer array.
func Ints(values ...int) Index {
	a, _ := FromSlice(values)
	return Index{kind: indexArray, arr: a}
}

// Bools is shorthand for Idx with a 1-D boolean mask.
func Bools(values ...bool) Index {
	a, _ := FromSlice(values)
	return Index{kind: indexMask, arr: a}
}

// String renders the term in NumPy syntax.
func (ix Index) String() string {
	switch ix.kind {
	case indexInt:
		return fmt.Sprint(ix.n)
	case indexSlice:
		s := ""
		if ix.slice.hasStart {
			s += fmt.Sprint(ix.slice.start)
		}
		s += ":"
		if ix.slice.hasStop {
			s += fmt.Sprint(ix.slice.stop)
		}
		if ix.slice.hasStep {
			s += ":" + fmt.Sprint(ix.slice.step)
		}
		return s
	case indexEllipsis:
		return "..."
	case indexNewAxis:
		return "None"
	default:
		return ix.arr.String()
	}
}

// resolve clamps the slice against an axis of extent n and returns the
// first position, the number of selected positions and the step.
func (s sliceSpec) resolve(n int) (start, length, step int, err error) {
	step = 1
	if s.hasStep {
		if s.step == 0 {
			return 0, 0, 0, newError("index", ErrInvalidArgument, "slice step cannot be zero")
		}
		step = s.step
	}
	clamp := func(v, lo, hi int) int {
		if v < 0 {
			v += n
		}
		return min(max(v, lo), hi)
	}
	if step > 0 {
		start, stop := 0, n
		if s.hasStart {
			start = clamp(s.start, 0, n)
		}
		if s.hasStop {
			stop = clamp(s.stop, 0, n)
		}
		if stop > start {
			length = (stop-start-1)/step + 1
		}
		return start, length, step, nil
	}
	start, stop := n-1, -1
	if s.hasStart {
		start = clamp(s.start, -1, n-1)
	}
	if s.hasStop {
		stop = clamp(s.stop, -1, n-1)
	}
	if start > stop {
		length = (start-stop-1)/(-step) + 1
	}
	return start, length, step, nil
}

// advancedTerm is an integer-array index bound to one dimension of the
// basic view.
type advancedTerm struct {
	arr     *Array
	viewDim int
	term    int
}

// indexPlan is the result of resolving an index expression: the view made
// by the basic terms and, when advanced terms are present, the byte offsets
// of every selected element.
type indexPlan struct {
	view    *Array
	shape   Shape
	offsets []int
	fancy   bool
}

// expand normalizes the expression: it replaces the ellipsis, pads missing
// trailing dimensions, turns masks into integer arrays and, when any array
// term is present, treats integer terms as 0-d arrays.
func (a *Array) expand(terms []Index) ([]Index, error) {
	consumed, ellipses, fancy := 0, 0, false
	for _, t := range terms {
		switch t.kind {
		case indexInt, indexSlice, indexArray:
			consumed++
		case indexMask:
			if t.arr.NDim() == 0 {
				return nil, newError("index", ErrInvalidArgument, "0-d boolean masks are not supported")
			}
			consumed += t.arr.NDim()
		case indexEllipsis:
			ellipses++
		}
		if t.kind == indexArray || t.kind == indexMask {
			fancy = true
		}
	}
	if ellipses > 1 {
		return nil, newError("index", ErrInvalidArgument, "an index can only have a single ellipsis")
	}
	if consumed > a.NDim() {
		return nil, newError("index", ErrIndexOutOfRange,
			"too many indices for array: array is %d-dimensional, but %d were indexed", a.NDim(), consumed)
	}

	out := make([]Index, 0, len(terms)+a.NDim())
	fill := func() {
		for i := 0; i < a.NDim()-consumed; i++ {
			out = append(out, All())
		}
	}
	dim := 0
	for _, t := range terms {
		switch t.kind {
		case indexEllipsis:
			fill()
			dim += a.NDim() - consumed
		case indexNewAxis:
			out = append(out, t)
		case indexMask:
			k := t.arr.NDim()
			if !t.arr.shape.Equal(a.shape[dim : dim+k]) {
				return nil, newError("index", ErrShapeMismatch,
					"boolean index shape %v does not match indexed dimensions %v", t.arr.shape, a.shape[dim:dim+k])
			}
			for _, coords := range Nonzero(t.arr) {
				out = append(out, Index{kind: indexArray, arr: coords})
			}
			dim += k
		case indexInt:
			if fancy {
				out = append(out, Index{kind: indexArray, arr: FromScalar(int64(t.n))})
			} else {
				out = append(out, t)
			}
			dim++
		default:
			out = append(out, t)
			dim++
		}
	}
	if ellipses == 0 {
		fill()
	}
	return out, nil
}

// plan resolves terms in two passes: basic terms first into one view, then
// advanced terms into element offsets.
func (a *Array) plan(terms []Index) (*indexPlan, error) {
	terms, err := a.expand(terms)
	if err != nil {
		return nil, err
	}

	var (
		shape    Shape
		strides  []int
		offset   = a.offset
		advanced []advancedTerm
		dim      int
	)
	for ti, t := range terms {
		switch t.kind {
		case indexInt:
			n := a.shape[dim]
			i := t.n
			if i < 0 {
				i += n
			}
			if i < 0 || i >= n {
				return nil, newError("index", ErrIndexOutOfRange,
					"index %d is out of bounds for axis %d with size %d", t.n, dim, n)
			}
			offset += i * a.strides[dim]
			dim++
		case indexSlice:
			start, length, step, err := t.slice.resolve(a.shape[dim])
			if err != nil {
				return nil, err
			}
			if length > 0 {
				offset += start * a.strides[dim]
			}
			shape = append(shape, length)
			strides = append(strides, a.strides[dim]*step)
			dim++
		case indexNewAxis:
			shape = append(shape, 1)
			strides = append(strides, 0)
		case indexArray:
			if !t.arr.dtype.IsInteger() {
				return nil, newError("index", ErrInvalidArgument,
					"arrays used as indices must be of integer or boolean type, got %s", t.arr.dtype)
			}
			shape = append(shape, a.shape[dim])
			strides = append(strides, a.strides[dim])
			advanced = append(advanced, advancedTerm{arr: t.arr, viewDim: len(shape) - 1, term: ti})
			dim++
		}
	}
	view, err := newView(a, a.dtype, shape, strides, offset)
	if err != nil {
		return nil, err
	}
	if len(advanced) == 0 {
		return &indexPlan{view: view, shape: view.shape}, nil
	}
	p, err := gather(view, advanced)
	if err != nil {
		view.Release()
		return nil, err
	}
	return p, nil
}

// gather computes the element offsets selected by the advanced terms.
func gather(v *Array, advanced []advancedTerm) (*indexPlan, error) {
	idxShapes := make([]Shape, len(advanced))
	for i, t := range advanced {
		idxShapes[i] = t.arr.shape
	}
	bshape, err := BroadcastShapes(idxShapes...)
	if err != nil {
		return nil, newError("index", ErrShapeMismatch,
			"indexing arrays could not be broadcast together with shapes %v", idxShapes)
	}

	// Contiguous advanced terms keep their place; split ones move to the front.
	contiguous := true
	for i := 1; i < len(advanced); i++ {
		if advanced[i].term != advanced[i-1].term+1 {
			contiguous = false
		}
	}
	isAdvanced := make([]bool, v.NDim())
	for _, t := range advanced {
		isAdvanced[t.viewDim] = true
	}
	var restDims []int
	insertAt := 0
	for d := 0; d < v.NDim(); d++ {
		if isAdvanced[d] {
			continue
		}
		if contiguous && d < advanced[0].viewDim {
			insertAt++
		}
		restDims = append(restDims, d)
	}

	shape := make(Shape, 0, len(restDims)+len(bshape))
	for _, d := range restDims[:insertAt] {
		shape = append(shape, v.shape[d])
	}
	shape = append(shape, bshape...)
	for _, d := range restDims[insertAt:] {
		shape = append(shape, v.shape[d])
	}

	// Byte contribution of every broadcast selection position.
	nsel := bshape.NumElements()
	selOff := make([]int, nsel)
	for _, t := range advanced {
		idx, err := BroadcastTo(t.arr, bshape)
		if err != nil {
			return nil, err
		}
		defer idx.Release()
		n := v.shape[t.viewDim]
		stride := v.strides[t.viewDim]
		it := newIter(bshape, idx)
		for k := 0; it.next(); k++ {
			raw := idx.load(it.offs[0]).Int64()
			i := raw
			if i < 0 {
				i += int64(n)
			}
			if i < 0 || i >= int64(n) {
				return nil, newError("index", ErrIndexOutOfRange,
					"index %d is out of bounds for axis %d with size %d", raw, t.viewDim, n)
			}
			selOff[k] += int(i) * stride
		}
	}

	rest := make([]int, len(restDims))
	restShape := make(Shape, len(restDims))
	for i, d := range restDims {
		rest[i] = v.strides[d]
		restShape[i] = v.shape[d]
	}
	lead := restShape[:insertAt].NumElements()
	trail := restShape[insertAt:].NumElements()
	leadView := &Array{shape: restShape[:insertAt], strides: rest[:insertAt]}
	trailView := &Array{shape: restShape[insertAt:], strides: rest[insertAt:]}

	offsets := make([]int, 0, shape.NumElements())
	if shape.NumElements() > 0 {
		for l := 0; l < lead; l++ {
			lo := leadView.flatOffset(l)
			for s := 0; s < nsel; s++ {
				for r := 0; r < trail; r++ {
					offsets = append(offsets, v.offset+lo+selOff[s]+trailView.flatOffset(r))
				}
			}
		}
	}
	return &indexPlan{view: v, shape: shape, offsets: offsets, fancy: true}, nil
}

// Get evaluates an index expression. Integer, slice, ellipsis and new-axis
// terms produce a view sharing a's buffer; any boolean-mask or integer-array
// term produces a copy.
//
// Example:
//
//	a, _ := tensor.Arange(0, 12, 1)
//	a, _ = a.Reshape(3, 4)
//	row, _ := a.Get(tensor.Int(1))                       // view, shape (4,)
//	inner, _ := a.Get(tensor.Range(1, -1), tensor.Step(2)) // view, shape (1, 2)
//	picked, _ := a.Get(tensor.All(), tensor.Ints(0, 3))   // copy, shape (3, 2)
func (a *Array) Get(terms ...Index) (*Array, error) {
	p, err := a.plan(terms)
	if err != nil {
		return nil, err
	}
	if !p.fancy {
		return p.view, nil
	}
	out := mustEmpty(p.shape, a.dtype)
	n := a.dtype.size
	for i, off := range p.offsets {
		copy(out.buf.data[i*n:(i+1)*n], a.buf.data[off:off+n])
	}
	p.view.Release()
	return out, nil
}

// Set writes value into the region addressed by the index expression, in
// place. value is broadcast to the region's shape and cast to a's dtype, so
// the write is visible through every array aliasing the region.
func (a *Array) Set(value *Array, terms ...Index) error {
	p, err := a.plan(terms)
	if err != nil {
		return err
	}
	defer p.view.Release()
	if !p.fancy {
		return copyInto("setitem", p.view, value)
	}
	src, err := BroadcastTo(value, p.shape)
	if err != nil {
		return &Error{Op: "setitem", Err: ErrShapeMismatch,
			Details: "could not broadcast input array from shape " + value.shape.String() + " into shape " + p.shape.String()}
	}
	defer src.Release()
	if SharesMemory(a, value) {
		c := src.Copy()
		defer c.Release()
		src = c
	}
	if err := requireNumeric("setitem", a, value); err != nil {
		return err
	}
	it := newIter(p.shape, src)
	for i := 0; it.next(); i++ {
		a.store(p.offsets[i], src.load(it.offs[0]))
	}
	return nil
}

// SetScalar writes a Go scalar into the addressed region.
func (a *Array) SetScalar(value any, terms ...Index) error {
	s, dt, err := scalarOf(value)
	if err != nil {
		return err
	}
	v := mustEmpty(Shape{}, dt)
	v.store(0, s)
	return a.Set(v, terms...)
}
