package chk

import (
	"math/cmplx"
	"testing"

	"github.com/rmera/gonmr/spinor"
)

func TestRoundTrip(Te *testing.T) {
	dir := Te.TempDir()
	c, err := New(dir)
	if err != nil {
		Te.Fatal(err)
	}
	mats := []*spinor.Matrix{
		spinor.New(2, 2, []complex128{1 + 1i, 2, 3, 4 - 2i}),
		spinor.New(2, 3, []complex128{5, 6i, 7, 8, 9, 10 + 1i}),
	}
	if err := c.Store("nmr/h1", mats); err != nil {
		Te.Fatal(err)
	}
	got, err := Read(dir, "nmr/h1")
	if err != nil {
		Te.Fatal(err)
	}
	if len(got) != len(mats) {
		Te.Fatalf("stored %d matrices, read %d", len(mats), len(got))
	}
	for k, m := range mats {
		r, cols := m.Dims()
		gr, gc := got[k].Dims()
		if gr != r || gc != cols {
			Te.Fatalf("matrix %d dims changed: %dx%d -> %dx%d", k, r, cols, gr, gc)
		}
		for i := 0; i < r; i++ {
			for j := 0; j < cols; j++ {
				if cmplx.Abs(m.At(i, j)-got[k].At(i, j)) > 0 {
					Te.Errorf("matrix %d element %d,%d changed", k, i, j)
				}
			}
		}
	}
}

func TestMissingKey(Te *testing.T) {
	dir := Te.TempDir()
	if _, err := Read(dir, "nope"); err == nil {
		Te.Error("reading a missing key did not fail")
	}
}

func TestOverwrite(Te *testing.T) {
	dir := Te.TempDir()
	c, err := New(dir)
	if err != nil {
		Te.Fatal(err)
	}
	a := []*spinor.Matrix{spinor.New(1, 1, []complex128{1})}
	b := []*spinor.Matrix{spinor.New(1, 1, []complex128{2})}
	if err := c.Store("k", a); err != nil {
		Te.Fatal(err)
	}
	if err := c.Store("k", b); err != nil {
		Te.Fatal(err)
	}
	got, err := Read(dir, "k")
	if err != nil {
		Te.Fatal(err)
	}
	if got[0].At(0, 0) != 2 {
		Te.Error("second Store did not replace the entry")
	}
}
