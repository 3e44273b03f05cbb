package tensor

import "testing"

func benchGrid(b *testing.B, rows, cols int) *Array {
	b.Helper()
	a, err := Arange(0.0, float64(rows*cols), 1.0)
	if err != nil {
		b.Fatal(err)
	}
	r, err := a.Reshape(rows, cols)
	if err != nil {
		b.Fatal(err)
	}
	return r
}

func BenchmarkAdd_Contiguous(b *testing.B) {
	a := benchGrid(b, 512, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := Add(a, a)
		if err != nil {
			b.Fatal(err)
		}
		out.Release()
	}
}

func BenchmarkAdd_Broadcast(b *testing.B) {
	a := benchGrid(b, 512, 512)
	row := benchGrid(b, 1, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := Add(a, row)
		if err != nil {
			b.Fatal(err)
		}
		out.Release()
	}
}

func BenchmarkCopy_Transposed(b *testing.B) {
	a := benchGrid(b, 512, 512).T()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Copy().Release()
	}
}

func BenchmarkGet_Mask(b *testing.B) {
	a := benchGrid(b, 256, 256)
	mask, err := Greater(a, FromScalar(32768.0))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := a.Get(Idx(mask))
		if err != nil {
			b.Fatal(err)
		}
		out.Release()
	}
}

func BenchmarkSum_Axis(b *testing.B) {
	a := benchGrid(b, 512, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := Sum(a, 0)
		if err != nil {
			b.Fatal(err)
		}
		out.Release()
	}
}

func BenchmarkUnique(b *testing.B) {
	a := benchGrid(b, 64, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := Unique(a, UniqueOptions{ReturnCounts: true})
		if err != nil {
			b.Fatal(err)
		}
		r.Release()
	}
}
