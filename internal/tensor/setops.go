package tensor

import "sort"

// setOperands returns the flattened values of a and b cast to their
// common kind, and the common dtype.
func setOperands(op string, a, b *Array) (av, bv []Scalar, dtype DataType, err error) {
	if err = requireNumeric(op, a, b); err != nil {
		return nil, nil, DataType{}, err
	}
	if dtype, err = PromoteTypes(a.dtype, b.dtype); err != nil {
		return nil, nil, DataType{}, err
	}
	cast := func(vals []Scalar) []Scalar {
		for i := range vals {
			vals[i] = vals[i].As(dtype.kind)
		}
		return vals
	}
	return cast(a.Values()), cast(b.Values()), dtype, nil
}

// sortedSet returns the sorted distinct values.
func sortedSet(vals []Scalar) []Scalar {
	sorted := append([]Scalar(nil), vals...)
	sort.SliceStable(sorted, func(i, j int) bool { return lessScalar(sorted[i], sorted[j]) })
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || !sameScalar(out[len(out)-1], v) {
			out = append(out, v)
		}
	}
	return out
}

// contains reports whether v is in the sorted set.
func contains(set []Scalar, v Scalar) bool {
	i := sort.Search(len(set), func(i int) bool { return !lessScalar(set[i], v) })
	return i < len(set) && sameScalar(set[i], v)
}

func set1D(dtype DataType, vals []Scalar) *Array {
	return fromScalars(Shape{len(vals)}, dtype, vals)
}

// Intersect1D returns the sorted unique values present in both a and b.
func Intersect1D(a, b *Array) (*Array, error) {
	av, bv, dt, err := setOperands("intersect1d", a, b)
	if err != nil {
		return nil, err
	}
	bs := sortedSet(bv)
	var out []Scalar
	for _, v := range sortedSet(av) {
		if contains(bs, v) {
			out = append(out, v)
		}
	}
	return set1D(dt, out), nil
}

// Union1D returns the sorted unique values present in a or b.
func Union1D(a, b *Array) (*Array, error) {
	av, bv, dt, err := setOperands("union1d", a, b)
	if err != nil {
		return nil, err
	}
	return set1D(dt, sortedSet(append(av, bv...))), nil
}

// SetXor1D returns the sorted unique values present in exactly one of a and b.
func SetXor1D(a, b *Array) (*Array, error) {
	av, bv, dt, err := setOperands("setxor1d", a, b)
	if err != nil {
		return nil, err
	}
	as, bs := sortedSet(av), sortedSet(bv)
	var out []Scalar
	for _, v := range as {
		if !contains(bs, v) {
			out = append(out, v)
		}
	}
	for _, v := range bs {
		if !contains(as, v) {
			out = append(out, v)
		}
	}
	return set1D(dt, sortedSet(out)), nil
}

// SetDiff1D returns the sorted unique values of a that are not in b.
func SetDiff1D(a, b *Array) (*Array, error) {
	av, bv, dt, err := setOperands("setdiff1d", a, b)
	if err != nil {
		return nil, err
	}
	bs := sortedSet(bv)
	var out []Scalar
	for _, v := range sortedSet(av) {
		if !contains(bs, v) {
			out = append(out, v)
		}
	}
	return set1D(dt, out), nil
}

func membership(op string, a, b *Array, invert bool) ([]bool, error) {
	av, bv, _, err := setOperands(op, a, b)
	if err != nil {
		return nil, err
	}
	bs := sortedSet(bv)
	mask := make([]bool, len(av))
	for i, v := range av {
		mask[i] = contains(bs, v) != invert
	}
	return mask, nil
}

// In1D tests every element of the flattened a for membership in b and
// returns a 1-D boolean mask. invert negates the result.
//
// Example:
//
//	test, _ := tensor.FromSlice([]int64{0, 1, 2, 5, 0})
//	states, _ := tensor.FromSlice([]int64{0, 2})
//	mask, _ := tensor.In1D(test, states, false) // [true false true false true]
func In1D(a, b *Array, invert bool) (*Array, error) {
	mask, err := membership("in1d", a, b, invert)
	if err != nil {
		return nil, err
	}
	return FromSlice(mask)
}

// IsIn is In1D with the mask shaped like a.
func IsIn(a, b *Array, invert bool) (*Array, error) {
	mask, err := membership("isin", a, b, invert)
	if err != nil {
		return nil, err
	}
	out := mustEmpty(a.shape, Bool)
	for i, m := range mask {
		out.store(i, BoolScalar(m))
	}
	return out, nil
}
