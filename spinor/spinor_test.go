/*
 * spinor_test.go, part of gonmr.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package spinor

import (
	"math/cmplx"
	"testing"
)

const tol = 1e-12

func testMatrix() *Matrix {
	return New(4, 4, []complex128{
		1 + 1i, 2, 3, 4,
		5, 6 + 2i, 7, 8,
		9, 10, 11 - 1i, 12,
		13, 14, 15, 16 + 3i,
	})
}

func TestQuadrants(Te *testing.T) {
	m := testMatrix()
	if m.N2c() != 2 {
		Te.Fatal("wrong half dimension")
	}
	ss := m.Block(SS)
	if ss.At(0, 0) != 11-1i || ss.At(1, 1) != 16+3i {
		Te.Error("SS quadrant read back wrong values")
	}
	ls := m.Block(LS)
	if ls.At(0, 0) != 3 || ls.At(1, 1) != 8 {
		Te.Error("LS quadrant read back wrong values")
	}
	n := Zeros(4, 4)
	n.SetBlock(SL, ss)
	if n.At(2, 0) != 11-1i || n.At(3, 1) != 16+3i {
		Te.Error("SetBlock misplaced the quadrant")
	}
	n.AddBlockDagger(LS, 1, ss)
	if n.At(0, 2) != cmplx.Conj(ss.At(0, 0)) {
		Te.Error("AddBlockDagger did not conjugate-transpose")
	}
}

func TestAddDagger(Te *testing.T) {
	m := testMatrix()
	orig := m.Clone()
	m.AddDagger()
	if !m.IsHermitian(tol) {
		Te.Error("AddDagger did not produce a Hermitian matrix")
	}
	//check one element explicitly: m[0,1] = orig[0,1] + conj(orig[1,0])
	want := orig.At(0, 1) + cmplx.Conj(orig.At(1, 0))
	if cmplx.Abs(m.At(0, 1)-want) > tol {
		Te.Errorf("AddDagger element wrong: got %v, want %v", m.At(0, 1), want)
	}
}

func TestHermiTriu(Te *testing.T) {
	//the diagonal is left as stored, so a Hermitian completion needs a
	//real diagonal in the source triangle
	m := New(4, 4, []complex128{
		1, 0, 0, 0,
		5 - 1i, 6, 0, 0,
		9 + 2i, 10, 11, 0,
		13, 14 - 4i, 15i, 16,
	})
	m.HermiTriu(Hermitian)
	if !m.IsHermitian(tol) {
		Te.Error("Hermitian triangle completion failed")
	}
	if m.At(0, 2) != cmplx.Conj(m.At(2, 0)) {
		Te.Error("upper triangle not conjugated from the lower")
	}
	a := testMatrix()
	lower := a.At(2, 1)
	a.HermiTriu(AntiHermitian)
	if cmplx.Abs(a.At(1, 2)+cmplx.Conj(lower)) > tol {
		Te.Error("anti-Hermitian triangle completion failed")
	}
}

func TestMul(Te *testing.T) {
	a := New(2, 2, []complex128{1, 2i, 3, 4})
	b := New(2, 2, []complex128{5, 6, 7i, 8})
	c := Zeros(2, 2)
	c.Mul(a, b)
	//row 0: [1*5 + 2i*7i, 1*6 + 2i*8] = [5-14, 6+16i]
	if c.At(0, 0) != -9 || c.At(0, 1) != 6+16i {
		Te.Errorf("Mul wrong: got %v, %v", c.At(0, 0), c.At(0, 1))
	}
	d := Zeros(2, 2)
	d.MulDagger(a, b)
	//d[0,0] = conj(a[0,0])*b[0,0] + conj(a[1,0])*b[1,0] = 5 + 21i
	if d.At(0, 0) != 5+21i {
		Te.Errorf("MulDagger wrong: got %v", d.At(0, 0))
	}
}

func TestTraceProduct(Te *testing.T) {
	a := New(2, 2, []complex128{1, 2, 3, 4})
	b := New(2, 2, []complex128{5, 6, 7, 8})
	//tr(a b) = (5+14) + (18+32) = 69
	if got := TraceProduct(a, b); got != 69 {
		Te.Errorf("TraceProduct wrong: got %v", got)
	}
}

func TestAO2MO(Te *testing.T) {
	//identity coefficients: the transform just picks occupied columns
	c := New(2, 2, []complex128{1, 0, 0, 1})
	x := New(2, 2, []complex128{1, 2, 3, 4})
	occ := []float64{0, 2}
	got := AO2MO(x, c, occ)
	r, cols := got.Dims()
	if r != 2 || cols != 1 {
		Te.Fatalf("AO2MO dims wrong: %d x %d", r, cols)
	}
	if got.At(0, 0) != 2 || got.At(1, 0) != 4 {
		Te.Errorf("AO2MO values wrong: %v, %v", got.At(0, 0), got.At(1, 0))
	}
}

func TestOccCoeff(Te *testing.T) {
	c := New(2, 2, []complex128{1, 2, 3, 4})
	occ := []float64{2, 0}
	w := OccCoeff(c, occ, func(o float64) float64 { return o })
	if w.At(0, 0) != 2 || w.At(1, 0) != 6 {
		Te.Error("occupation scaling wrong")
	}
	plain := OccCoeff(c, occ, nil)
	if plain.At(0, 0) != 1 || plain.At(1, 0) != 3 {
		Te.Error("unscaled occupied columns wrong")
	}
}
