/*
 * ao2mo.go, part of gonmr.
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

//OccIndices returns the molecular-orbital indices with occupation above zero.
func OccIndices(occ []float64) []int {
	var ret []int
	for i, o := range occ {
		if o > 0 {
			ret = append(ret, i)
		}
	}
	return ret
}

//OccCoeff returns the occupied columns of the coefficient matrix c, each
//scaled by scale(occupation). Passing nil for scale keeps the columns as
//they are.
func OccCoeff(c *Matrix, occ []float64, scale func(float64) float64) *Matrix {
	nao, nmo := c.Dims()
	if nmo != len(occ) {
		panic("goNMR/spinor.OccCoeff: occupation length does not match the coefficients")
	}
	idx := OccIndices(occ)
	ret := Zeros(nao, len(idx))
	for k, j := range idx {
		f := complex(1, 0)
		if scale != nil {
			f = complex(scale(occ[j]), 0)
		}
		for i := 0; i < nao; i++ {
			ret.Set(i, k, f*c.At(i, j))
		}
	}
	return ret
}

//AO2MO transforms the AO-basis matrix x into the MO basis, keeping only the
//occupied columns: cᴴ x c_occ. The result is nmo x nocc.
func AO2MO(x, c *Matrix, occ []float64) *Matrix {
	nao, nmo := c.Dims()
	xr, xc := x.Dims()
	if xr != nao || xc != nao {
		panic("goNMR/spinor.AO2MO: operator dimensions do not match the coefficients")
	}
	cocc := OccCoeff(c, occ, nil)
	_, nocc := cocc.Dims()
	tmp := Zeros(nmo, nao)
	tmp.MulDagger(c, x)
	ret := Zeros(nmo, nocc)
	ret.Mul(tmp, cocc)
	return ret
}
