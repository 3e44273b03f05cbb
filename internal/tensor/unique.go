package tensor

import "sort"

// UniqueOptions selects what Unique returns besides the sorted values.
type UniqueOptions struct {
	// ByAxis makes Unique compare whole sub-arrays along Axis instead of
	// flattened elements.
	ByAxis bool
	Axis   int

	ReturnIndex   bool // first occurrence of every unique value
	ReturnInverse bool // positions in Values that rebuild the input
	ReturnCounts  bool // occurrences of every unique value
}

// UniqueResult holds the outputs of Unique. Arrays that were not requested
// are nil. Indices, Inverse and Counts are 1-D int64 arrays.
type UniqueResult struct {
	Values  *Array
	Indices *Array
	Inverse *Array
	Counts  *Array
}

// Release drops every array held by the result.
func (r *UniqueResult) Release() {
	for _, a := range []*Array{r.Values, r.Indices, r.Inverse, r.Counts} {
		if a != nil {
			a.Release()
		}
	}
}

// Unique returns the sorted unique elements of a (flattened unless
// opts.ByAxis is set). NaN values compare equal to each other.
//
// The outputs satisfy:
//
//	Values[i] == ravel(a)[Indices[i]]
//	Values[Inverse] == ravel(a)
//	sum(Counts) == a.Size()
//
// Example:
//
//	x, _ := tensor.FromSlice([]int64{1, 2, 3, 1, 3, 4, 5, 4, 4})
//	r, _ := tensor.Unique(x, tensor.UniqueOptions{ReturnCounts: true})
//	// r.Values: [1 2 3 4 5], r.Counts: [2 1 2 3 1]
func Unique(a *Array, opts UniqueOptions) (*UniqueResult, error) {
	if err := requireNumeric("unique", a); err != nil {
		return nil, err
	}
	if opts.ByAxis {
		return uniqueAxis(a, opts)
	}
	flat := a.Ravel()
	defer flat.Release()
	vals := flat.Values()
	perm := argsortScalars(vals)
	firsts := groupStarts(len(perm), func(i, j int) bool { return sameScalar(vals[perm[i]], vals[perm[j]]) })

	res := &UniqueResult{}
	uniq := make([]Scalar, len(firsts))
	for k, f := range firsts {
		uniq[k] = vals[perm[f]]
	}
	res.Values = fromScalars(Shape{len(uniq)}, a.dtype.WithNativeOrder(), uniq)
	fillUniqueExtras(res, opts, perm, firsts)
	return res, nil
}

// groupStarts returns the positions in [0, n) where a new run of equal
// elements begins.
func groupStarts(n int, equal func(i, j int) bool) []int {
	var starts []int
	for i := 0; i < n; i++ {
		if i == 0 || !equal(i-1, i) {
			starts = append(starts, i)
		}
	}
	return starts
}

func fillUniqueExtras(res *UniqueResult, opts UniqueOptions, perm, firsts []int) {
	if opts.ReturnIndex {
		idx := make([]int64, len(firsts))
		for k, f := range firsts {
			idx[k] = int64(perm[f])
		}
		res.Indices, _ = FromSlice(idx)
	}
	if opts.ReturnInverse {
		inv := make([]int64, len(perm))
		k := -1
		for i, p := range perm {
			if k+1 < len(firsts) && firsts[k+1] == i {
				k++
			}
			inv[p] = int64(k)
		}
		res.Inverse, _ = FromSlice(inv)
	}
	if opts.ReturnCounts {
		counts := make([]int64, len(firsts))
		for k, f := range firsts {
			end := len(perm)
			if k+1 < len(firsts) {
				end = firsts[k+1]
			}
			counts[k] = int64(end - f)
		}
		res.Counts, _ = FromSlice(counts)
	}
}

// uniqueAxis finds the unique sub-arrays along opts.Axis, ordered
// lexicographically.
func uniqueAxis(a *Array, opts UniqueOptions) (*UniqueResult, error) {
	axis, err := normalizeAxis("unique", opts.Axis, a.NDim())
	if err != nil {
		return nil, err
	}
	moved, err := a.MoveAxis(axis, 0)
	if err != nil {
		return nil, err
	}
	n := moved.shape[0]
	rowLen := 0
	if n > 0 {
		rowLen = moved.Size() / n
	}
	all := moved.Values()
	moved.Release()
	rows := make([][]Scalar, n)
	for i := range rows {
		rows[i] = all[i*rowLen : (i+1)*rowLen]
	}
	lessRow := func(x, y []Scalar) bool {
		for k := range x {
			if lessScalar(x[k], y[k]) {
				return true
			}
			if lessScalar(y[k], x[k]) {
				return false
			}
		}
		return false
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool { return lessRow(rows[perm[i]], rows[perm[j]]) })
	firsts := groupStarts(n, func(i, j int) bool {
		x, y := rows[perm[i]], rows[perm[j]]
		return !lessRow(x, y) && !lessRow(y, x)
	})

	pick := make([]int, len(firsts))
	for k, f := range firsts {
		pick[k] = perm[f]
	}
	values, err := a.Get(append(allBefore(axis), Ints(pick...))...)
	if err != nil {
		return nil, err
	}
	res := &UniqueResult{Values: values}
	fillUniqueExtras(res, opts, perm, firsts)
	return res, nil
}

// fromScalars builds a new array of the given shape from row-major values.
func fromScalars(shape Shape, dtype DataType, vals []Scalar) *Array {
	out := mustEmpty(shape, dtype)
	for i, v := range vals {
		out.store(i*dtype.size, v)
	}
	return out
}
