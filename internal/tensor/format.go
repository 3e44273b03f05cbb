package tensor

import (
	"math"
	"strconv"
	"strings"
)

const (
	lineWidth        = 75
	summaryThreshold = 1000
	summaryEdge      = 3
)

// formatScalar renders a single value: True/False, integers in decimal,
// floats with at most precision fractional digits.
func formatScalar(s Scalar, precision int) string {
	switch s.Kind {
	case KindBool:
		if s.B {
			return "True"
		}
		return "False"
	case KindInt:
		return strconv.FormatInt(s.I, 10)
	case KindUint:
		return strconv.FormatUint(s.U, 10)
	case KindFloat:
		str := formatFloats([]float64{s.F}, precision)[0]
		if strings.HasSuffix(str, ".") {
			str += "0"
		}
		return str
	case KindComplex:
		return "(" + formatComplexes([]complex128{s.C}, precision)[0] + ")"
	}
	return "?"
}

// formatFloats renders floats as a column: fixed notation unless the
// magnitudes call for scientific, fractional digits trimmed per value and
// padded with spaces so the decimal points align.
func formatFloats(vals []float64, precision int) []string {
	maxv, minv := 0.0, math.Inf(1)
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
			continue
		}
		abs := math.Abs(v)
		maxv = math.Max(maxv, abs)
		minv = math.Min(minv, abs)
	}
	sci := maxv >= 1e8 || (maxv > 0 && (minv < 1e-4 || maxv/minv > 1e3))

	heads := make([]string, len(vals))
	tails := make([]string, len(vals))
	headW, tailW := 0, 0
	for i, v := range vals {
		switch {
		case math.IsNaN(v):
			heads[i] = "nan"
		case math.IsInf(v, 1):
			heads[i] = "inf"
		case math.IsInf(v, -1):
			heads[i] = "-inf"
		case sci:
			str := strconv.FormatFloat(v, 'e', precision, 64)
			mant, exp, _ := strings.Cut(str, "e")
			mant = strings.TrimRight(mant, "0")
			heads[i], tails[i] = splitPoint(mant)
			tails[i] += "\x00" + "e" + exp
		default:
			str := strconv.FormatFloat(v, 'f', precision, 64)
			if strings.Contains(str, ".") {
				str = strings.TrimRight(str, "0")
			}
			heads[i], tails[i] = splitPoint(str)
		}
		headW = max(headW, len(heads[i]))
		frac, _, _ := strings.Cut(tails[i], "\x00")
		tailW = max(tailW, len(frac))
	}

	out := make([]string, len(vals))
	for i := range vals {
		head := strings.Repeat(" ", headW-len(heads[i])) + heads[i]
		if tails[i] == "" && !strings.HasSuffix(heads[i], ".") && (math.IsNaN(vals[i]) || math.IsInf(vals[i], 0)) {
			out[i] = strings.Repeat(" ", headW+tailW-len(heads[i])) + heads[i]
			continue
		}
		frac, exp, hasExp := strings.Cut(tails[i], "\x00")
		if hasExp {
			out[i] = head + frac + strings.Repeat("0", tailW-len(frac)) + exp
		} else {
			out[i] = head + frac + strings.Repeat(" ", tailW-len(frac))
		}
	}
	return out
}

// splitPoint splits "12.5" into "12." and "5".
func splitPoint(s string) (string, string) {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i+1], s[i+1:]
	}
	return s + ".", ""
}

func formatComplexes(vals []complex128, precision int) []string {
	re := make([]float64, len(vals))
	im := make([]float64, len(vals))
	for i, v := range vals {
		re[i], im[i] = real(v), math.Abs(imag(v))
	}
	rs := formatFloats(re, precision)
	is := formatFloats(im, precision)
	out := make([]string, len(vals))
	for i, v := range vals {
		sign := "+"
		if imag(v) < 0 || (imag(v) == 0 && math.Signbit(imag(v))) {
			sign = "-"
		}
		part := strings.TrimRight(is[i], " ")
		pad := strings.Repeat(" ", len(is[i])-len(part))
		out[i] = rs[i] + sign + strings.TrimLeft(part, " ") + "j" + pad
	}
	return out
}

// formatColumn renders values of one kind with a common width.
func formatColumn(vals []Scalar, kind Kind, precision int) []string {
	out := make([]string, len(vals))
	switch kind {
	case KindFloat:
		fs := make([]float64, len(vals))
		for i, v := range vals {
			fs[i] = v.F
		}
		return formatFloats(fs, precision)
	case KindComplex:
		cs := make([]complex128, len(vals))
		for i, v := range vals {
			cs[i] = v.C
		}
		return formatComplexes(cs, precision)
	}
	width := 0
	for i, v := range vals {
		out[i] = formatScalar(v, precision)
		width = max(width, len(out[i]))
	}
	for i := range out {
		out[i] = strings.Repeat(" ", width-len(out[i])) + out[i]
	}
	return out
}

// printer lays out the elements of an array as nested bracketed rows.
type printer struct {
	a         *Array
	summarize bool
	cells     map[int]string
}

// shown returns the positions displayed along an axis of extent n; -1
// marks the elided middle.
func (p *printer) shown(n int) []int {
	if !p.summarize || n <= 2*summaryEdge {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, 2*summaryEdge+1)
	for i := 0; i < summaryEdge; i++ {
		out = append(out, i)
	}
	out = append(out, -1)
	for i := n - summaryEdge; i < n; i++ {
		out = append(out, i)
	}
	return out
}

func (p *printer) collect(dim, off int, offs *[]int) {
	if dim == p.a.NDim() {
		*offs = append(*offs, off)
		return
	}
	for _, i := range p.shown(p.a.shape[dim]) {
		if i >= 0 {
			p.collect(dim+1, off+i*p.a.strides[dim], offs)
		}
	}
}

func (p *printer) element(off int) Scalar {
	return p.a.load(off)
}

func (p *printer) recordCell(off int, precision int) string {
	fields := p.a.dtype.fields
	parts := make([]string, len(fields))
	for i, f := range fields {
		fa := &Array{buf: p.a.buf, dtype: f.Type}
		parts[i] = formatScalar(fa.load(off+f.Offset), precision)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (p *printer) render(dim, off int) string {
	nd := p.a.NDim()
	var b strings.Builder
	b.WriteByte('[')
	if dim == nd-1 {
		indent := strings.Repeat(" ", dim+1)
		lineLen := dim + 1
		for k, i := range p.shown(p.a.shape[dim]) {
			word := "..."
			if i >= 0 {
				word = p.cells[off+i*p.a.strides[dim]]
			}
			if k > 0 {
				if lineLen+1+len(word) > lineWidth {
					b.WriteString("\n" + indent)
					lineLen = len(indent)
				} else {
					b.WriteByte(' ')
					lineLen++
				}
			}
			b.WriteString(word)
			lineLen += len(word)
		}
		b.WriteByte(']')
		return b.String()
	}
	sep := strings.Repeat("\n", nd-dim-1) + strings.Repeat(" ", dim+1)
	for k, i := range p.shown(p.a.shape[dim]) {
		if k > 0 {
			b.WriteString(sep)
		}
		if i < 0 {
			b.WriteString("...")
			continue
		}
		b.WriteString(p.render(dim+1, off+i*p.a.strides[dim]))
	}
	b.WriteByte(']')
	return b.String()
}

// String renders the array the way NumPy prints it, e.g.
//
//	[[1 2]
//	 [3 4]]
//
// Floats share a column layout ("[2.   2.25 3.  ]"), booleans print as
// True/False and arrays over 1000 elements are summarized with "...".
func (a *Array) String() string {
	precision := CurrentConfig().PrintPrecision
	if a.Size() == 0 {
		return "[]"
	}
	p := &printer{a: a, summarize: a.Size() > summaryThreshold, cells: make(map[int]string)}
	var offs []int
	p.collect(0, a.offset, &offs)
	if a.dtype.kind == KindRecord {
		for _, off := range offs {
			p.cells[off] = p.recordCell(off, precision)
		}
	} else {
		vals := make([]Scalar, len(offs))
		for i, off := range offs {
			vals[i] = p.element(off)
		}
		for i, s := range formatColumn(vals, a.dtype.kind, precision) {
			p.cells[offs[i]] = s
		}
	}
	if a.NDim() == 0 {
		if a.dtype.kind == KindRecord {
			return p.cells[a.offset]
		}
		return formatScalar(a.load(a.offset), precision)
	}
	return p.render(0, a.offset)
}

// Describe renders the values followed by the shape, byte strides and
// dtype.
func (a *Array) Describe() string {
	strides := make([]string, len(a.strides))
	for i, s := range a.strides {
		strides[i] = strconv.Itoa(s)
	}
	st := "(" + strings.Join(strides, ", ")
	if len(a.strides) == 1 {
		st += ","
	}
	st += ")"
	return a.String() + "\nshape: " + a.shape.String() + ", strides: " + st + ", dtype: " + a.dtype.String()
}
