/*
 * matrix.go, part of gonmr.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package spinor provides complex matrices over a four-component spinor basis.
//A matrix of dimension n4c is understood as four n2c x n2c quadrants
//(large-large, large-small, small-large and small-small), with n2c=n4c/2.
//Quadrants are addressed through the Quadrant type rather than by index
//arithmetic. The package wraps the gonum CDense type, much as the coordinate
//matrices elsewhere wrap Dense.

package spinor

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

/*Note: as with the fundamental coordinate functions, dimension errors here
 * panic instead of returning errors. If quadrants stop lining up something is
 * wrong enough that the calculation should not continue.*/

//Quadrant names one of the four blocks of a four-component matrix.
type Quadrant int

const (
	LL Quadrant = iota //large-large
	LS                 //large-small
	SL                 //small-large
	SS                 //small-small
)

//TriKind selects how a triangle-stored matrix is to be completed.
type TriKind int

const (
	Hermitian     TriKind = 1
	AntiHermitian TriKind = 2
)

//Matrix is a dense complex matrix. The quadrant methods additionally require
//it to be square with even dimension.
type Matrix struct {
	*mat.CDense
}

//Zeros returns a zero-filled r x c Matrix.
func Zeros(r, c int) *Matrix {
	return &Matrix{mat.NewCDense(r, c, nil)}
}

//New returns an r x c Matrix backed by data, which must have length r*c.
func New(r, c int, data []complex128) *Matrix {
	if len(data) != r*c {
		panic("goNMR/spinor.New: data length does not match dimensions")
	}
	return &Matrix{mat.NewCDense(r, c, data)}
}

//Dense2Matrix wraps an existing CDense.
func Dense2Matrix(a *mat.CDense) *Matrix {
	return &Matrix{a}
}

//Clone returns an independent copy of M.
func (M *Matrix) Clone() *Matrix {
	r, c := M.Dims()
	ret := Zeros(r, c)
	copy(ret.data(), M.data())
	return ret
}

//data panics if M is backed by a non-contiguous view. All constructors in
//this package produce contiguous storage.
func (M *Matrix) data() []complex128 {
	raw := M.RawCMatrix()
	if raw.Stride != raw.Cols {
		panic("goNMR/spinor: matrix view is not contiguous")
	}
	return raw.Data
}

//N2c returns half the dimension of the (square, even-dimensioned) matrix M.
func (M *Matrix) N2c() int {
	r, c := M.Dims()
	if r != c || r%2 != 0 {
		panic("goNMR/spinor.N2c: matrix is not square with even dimension")
	}
	return r / 2
}

//Add puts a+b in the receiver. The receiver may be a or b.
func (M *Matrix) Add(a, b *Matrix) {
	sameDims3(M, a, b, "Add")
	da, db, dm := a.data(), b.data(), M.data()
	for i, v := range da {
		dm[i] = v + db[i]
	}
}

//Sub puts a-b in the receiver. The receiver may be a or b.
func (M *Matrix) Sub(a, b *Matrix) {
	sameDims3(M, a, b, "Sub")
	da, db, dm := a.data(), b.data(), M.data()
	for i, v := range da {
		dm[i] = v - db[i]
	}
}

//Scale puts alpha*a in the receiver. The receiver may be a.
func (M *Matrix) Scale(alpha complex128, a *Matrix) {
	sameDims2(M, a, "Scale")
	da, dm := a.data(), M.data()
	for i, v := range da {
		dm[i] = alpha * v
	}
}

//AddScaled adds alpha*a to the receiver.
func (M *Matrix) AddScaled(alpha complex128, a *Matrix) {
	sameDims2(M, a, "AddScaled")
	da, dm := a.data(), M.data()
	for i, v := range da {
		dm[i] += alpha * v
	}
}

//Mul puts the matrix product a*b in the receiver, which must not alias
//either operand.
func (M *Matrix) Mul(a, b *Matrix) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	mr, mc := M.Dims()
	if ac != br || mr != ar || mc != bc {
		panic("goNMR/spinor.Mul: dimension mismatch")
	}
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.RawCMatrix(), b.RawCMatrix(), 0, M.RawCMatrix())
}

//MulDagger puts aᴴ*b in the receiver, which must not alias either operand.
func (M *Matrix) MulDagger(a, b *Matrix) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	mr, mc := M.Dims()
	if ar != br || mr != ac || mc != bc {
		panic("goNMR/spinor.MulDagger: dimension mismatch")
	}
	cblas128.Gemm(blas.ConjTrans, blas.NoTrans, 1, a.RawCMatrix(), b.RawCMatrix(), 0, M.RawCMatrix())
}

//MulByDagger puts a*bᴴ in the receiver, which must not alias either operand.
func (M *Matrix) MulByDagger(a, b *Matrix) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	mr, mc := M.Dims()
	if ac != bc || mr != ar || mc != br {
		panic("goNMR/spinor.MulByDagger: dimension mismatch")
	}
	cblas128.Gemm(blas.NoTrans, blas.ConjTrans, 1, a.RawCMatrix(), b.RawCMatrix(), 0, M.RawCMatrix())
}

//Dagger puts the conjugate transpose of a in the receiver, which must not
//alias a.
func (M *Matrix) Dagger(a *Matrix) {
	ar, ac := a.Dims()
	mr, mc := M.Dims()
	if ar != mc || ac != mr {
		panic("goNMR/spinor.Dagger: dimension mismatch")
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			M.Set(j, i, cmplx.Conj(a.At(i, j)))
		}
	}
}

//AddDagger adds the conjugate transpose of M to M itself, in place. This is
//the completion step for operators built as "half" of a Hermitian result:
//only M += Mᴴ recovers the full operator. It is not interchangeable with
//averaging.
func (M *Matrix) AddDagger() {
	r, c := M.Dims()
	if r != c {
		panic("goNMR/spinor.AddDagger: matrix is not square")
	}
	for i := 0; i < r; i++ {
		for j := i; j < c; j++ {
			a := M.At(i, j)
			b := M.At(j, i)
			M.Set(i, j, a+cmplx.Conj(b))
			if j != i {
				M.Set(j, i, b+cmplx.Conj(a))
			}
		}
	}
}

//HermiTriu completes, in place, a matrix whose lower triangle (diagonal
//included) holds valid data: the upper triangle is filled with the conjugate
//(Hermitian) or negated conjugate (AntiHermitian) of the lower one.
func (M *Matrix) HermiTriu(kind TriKind) {
	r, c := M.Dims()
	if r != c {
		panic("goNMR/spinor.HermiTriu: matrix is not square")
	}
	sign := complex(1, 0)
	if kind == AntiHermitian {
		sign = complex(-1, 0)
	}
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			M.Set(i, j, sign*cmplx.Conj(M.At(j, i)))
		}
	}
}

//Block returns a copy of the named quadrant as an n2c x n2c Matrix.
func (M *Matrix) Block(q Quadrant) *Matrix {
	n2c := M.N2c()
	ri, ci := quadOffset(q, n2c)
	ret := Zeros(n2c, n2c)
	for i := 0; i < n2c; i++ {
		for j := 0; j < n2c; j++ {
			ret.Set(i, j, M.At(ri+i, ci+j))
		}
	}
	return ret
}

//SetBlock copies a into the named quadrant of M.
func (M *Matrix) SetBlock(q Quadrant, a *Matrix) {
	n2c := M.N2c()
	checkBlock(a, n2c, "SetBlock")
	ri, ci := quadOffset(q, n2c)
	for i := 0; i < n2c; i++ {
		for j := 0; j < n2c; j++ {
			M.Set(ri+i, ci+j, a.At(i, j))
		}
	}
}

//AddBlock adds alpha*a into the named quadrant of M.
func (M *Matrix) AddBlock(q Quadrant, alpha complex128, a *Matrix) {
	n2c := M.N2c()
	checkBlock(a, n2c, "AddBlock")
	ri, ci := quadOffset(q, n2c)
	for i := 0; i < n2c; i++ {
		for j := 0; j < n2c; j++ {
			M.Set(ri+i, ci+j, M.At(ri+i, ci+j)+alpha*a.At(i, j))
		}
	}
}

//AddBlockDagger adds alpha*aᴴ into the named quadrant of M.
func (M *Matrix) AddBlockDagger(q Quadrant, alpha complex128, a *Matrix) {
	n2c := M.N2c()
	checkBlock(a, n2c, "AddBlockDagger")
	ri, ci := quadOffset(q, n2c)
	for i := 0; i < n2c; i++ {
		for j := 0; j < n2c; j++ {
			M.Set(ri+i, ci+j, M.At(ri+i, ci+j)+alpha*cmplx.Conj(a.At(j, i)))
		}
	}
}

//IsHermitian reports whether M equals its own conjugate transpose to within
//tol, element-wise.
func (M *Matrix) IsHermitian(tol float64) bool {
	r, c := M.Dims()
	if r != c {
		return false
	}
	for i := 0; i < r; i++ {
		for j := i; j < c; j++ {
			if cmplx.Abs(M.At(i, j)-cmplx.Conj(M.At(j, i))) > tol {
				return false
			}
		}
	}
	return true
}

//MaxImag returns the largest absolute imaginary part found in M.
func (M *Matrix) MaxImag() float64 {
	var max float64
	for _, v := range M.data() {
		if a := math.Abs(imag(v)); a > max {
			max = a
		}
	}
	return max
}

//EqualApprox reports element-wise equality of M and a within tol.
func (M *Matrix) EqualApprox(a *Matrix, tol float64) bool {
	mr, mc := M.Dims()
	ar, ac := a.Dims()
	if mr != ar || mc != ac {
		return false
	}
	da, dm := a.data(), M.data()
	for i, v := range dm {
		if cmplx.Abs(v-da[i]) > tol {
			return false
		}
	}
	return true
}

//TraceProduct returns tr(a*b).
func TraceProduct(a, b *Matrix) complex128 {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br || bc != ar {
		panic("goNMR/spinor.TraceProduct: dimension mismatch")
	}
	var sum complex128
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			sum += a.At(i, j) * b.At(j, i)
		}
	}
	return sum
}

func quadOffset(q Quadrant, n2c int) (int, int) {
	switch q {
	case LL:
		return 0, 0
	case LS:
		return 0, n2c
	case SL:
		return n2c, 0
	case SS:
		return n2c, n2c
	}
	panic("goNMR/spinor: unknown quadrant")
}

func checkBlock(a *Matrix, n2c int, caller string) {
	ar, ac := a.Dims()
	if ar != n2c || ac != n2c {
		panic("goNMR/spinor." + caller + ": block dimensions do not match the quadrant")
	}
}

func sameDims2(a, b *Matrix, caller string) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		panic("goNMR/spinor." + caller + ": dimension mismatch")
	}
}

func sameDims3(a, b, c *Matrix, caller string) {
	sameDims2(a, b, caller)
	sameDims2(a, c, caller)
}
