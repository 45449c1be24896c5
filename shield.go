/*
 * shield.go, part of gonmr.
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

//shield.go assembles the per-nucleus magnetic shielding tensors from the
//diamagnetic (static) and paramagnetic (response) contributions.

package nmr

import (
	"fmt"
	"log"
	"math"
	"math/cmplx"
	"sort"

	"github.com/rmera/gonmr/spinor"
)

//Tensor is a 3x3 shielding tensor, rows indexed by the field direction and
//columns by the nuclear-moment direction.
type Tensor [3][3]float64

//Iso returns the isotropic shielding, a third of the trace.
func (T Tensor) Iso() float64 {
	return (T[0][0] + T[1][1] + T[2][2]) / 3
}

//Aniso returns the shielding anisotropy from the eigenvalues of the
//symmetric part of the tensor.
func (T Tensor) Aniso() float64 {
	ev := T.symEigen()
	return ev[2] - (ev[0]+ev[1])/2
}

//Add returns the element-wise sum of T and a.
func (T Tensor) Add(a Tensor) Tensor {
	var ret Tensor
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ret[i][j] = T[i][j] + a[i][j]
		}
	}
	return ret
}

//Scale returns T scaled by f.
func (T Tensor) Scale(f float64) Tensor {
	var ret Tensor
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ret[i][j] = f * T[i][j]
		}
	}
	return ret
}

func (T Tensor) String() string {
	return fmt.Sprintf("[% .6f % .6f % .6f]\n[% .6f % .6f % .6f]\n[% .6f % .6f % .6f]",
		T[0][0], T[0][1], T[0][2], T[1][0], T[1][1], T[1][2], T[2][0], T[2][1], T[2][2])
}

//symEigen returns the sorted eigenvalues of the symmetric part of T,
//by Jacobi rotations. Three sweeps are plenty for a 3x3 matrix.
func (T Tensor) symEigen() [3]float64 {
	var a [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = (T[i][j] + T[j][i]) / 2
		}
	}
	for sweep := 0; sweep < 30; sweep++ {
		var off float64
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				off += a[i][j] * a[i][j]
			}
		}
		if off < 1e-24 {
			break
		}
		for p := 0; p < 3; p++ {
			for q := p + 1; q < 3; q++ {
				if math.Abs(a[p][q]) < 1e-300 {
					continue
				}
				theta := (a[q][q] - a[p][p]) / (2 * a[p][q])
				t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				cth := 1 / math.Sqrt(t*t+1)
				s := t * cth
				for k := 0; k < 3; k++ {
					akp, akq := a[k][p], a[k][q]
					a[k][p] = cth*akp - s*akq
					a[k][q] = s*akp + cth*akq
				}
				for k := 0; k < 3; k++ {
					apk, aqk := a[p][k], a[q][k]
					a[p][k] = cth*apk - s*aqk
					a[q][k] = s*apk + cth*aqk
				}
			}
		}
	}
	ev := []float64{a[0][0], a[1][1], a[2][2]}
	sort.Float64s(ev)
	return [3]float64{ev[0], ev[1], ev[2]}
}

//Result holds the shielding tensors of one calculation, in atomic-unit
//scale times the ppm conversion, plus the response diagnostics.
type Result struct {
	Nuclei  []int
	Total   []Tensor
	Dia     []Tensor
	Para    []Tensor
	ParaOcc []Tensor //occupied part of the paramagnetic term
	ParaPos []Tensor //positive-energy virtual part
	ParaNeg []Tensor //negative-energy part
	MO1     *MO1
}

//Dia computes the diamagnetic shielding tensor for each requested nucleus
//(0-based; nil means all) by contracting the recentered second-derivative
//operator with the zeroth-order density. The contraction is real by
//construction; a non-negligible imaginary remainder indicates a broken
//symmetry upstream and is logged, not discarded silently.
func Dia(mol Integraler, dm0 *spinor.Matrix, gauge []float64, nuclei []int, mb Balance) ([]Tensor, error) {
	if err := checkDM(mol, dm0); err != nil {
		return nil, errDecorate(err, "Dia")
	}
	nuclei, err := resolveNuclei(mol, nuclei)
	if err != nil {
		return nil, errDecorate(err, "Dia")
	}
	n4c := 2 * mol.NBas2c()
	ret := make([]Tensor, 0, len(nuclei))
	for _, at := range nuclei {
		coord := mol.AtomCoord(at)
		rinv := coord[:]
		t11, err := diaIntegrals(mol, rinv, gauge, mb)
		if err != nil {
			return nil, errDecorate(err, "Dia")
		}
		var tensor Tensor
		if t11 != nil {
			for k := 0; k < 9; k++ {
				h11 := spinor.Zeros(n4c, n4c)
				h11.AddBlock(spinor.SL, 0.5, t11[k])
				h11.AddBlockDagger(spinor.LS, 0.5, t11[k])
				val := spinor.TraceProduct(dm0, h11)
				if math.Abs(imag(val)) > imagTol {
					log.Printf("goNMR: Dia: imaginary remainder %.3g in component %d of nucleus %d", imag(val), k, at)
				}
				tensor[k/3][k%3] = real(val)
			}
		}
		ret = append(ret, tensor)
	}
	return ret, nil
}

//diaIntegrals picks the second-derivative operator family for the given
//balance scheme and gauge setting. A nil result means the term vanishes
//identically (RKB with a fixed origin).
func diaIntegrals(mol Integraler, rinv, gauge []float64, mb Balance) ([]*spinor.Matrix, error) {
	switch mb {
	case RMB:
		if gauge == nil {
			a, err := mol.Int1e("giao_sa10sa01", 9, rinv, nil)
			if err != nil {
				return nil, err
			}
			b, err := mol.Int1e("spgsa01", 9, rinv, nil)
			if err != nil {
				return nil, err
			}
			for i := range a {
				a[i].Add(a[i], b[i])
			}
			return a, nil
		}
		return mol.Int1e("cg_sa10sa01", 9, rinv, gauge)
	case RKB:
		if gauge == nil {
			return mol.Int1e("spgsa01", 9, rinv, nil)
		}
		return nil, nil
	}
	panic("goNMR: unknown magnetic balance scheme")
}

//Para computes the paramagnetic shielding tensors from the first-order
//response, together with its negative-energy, occupied and positive-virtual
//partial sums. The positive-virtual part is the complement of the other
//two; the total is the sum over all orbital indices.
func Para(mol Integraler, mo1 []*spinor.Matrix, c *spinor.Matrix, occ []float64, nuclei []int) (para, paraPos, paraNeg, paraOcc []Tensor, err error) {
	nuclei, err = resolveNuclei(mol, nuclei)
	if err != nil {
		return nil, nil, nil, nil, errDecorate(err, "Para")
	}
	n2c := mol.NBas2c()
	n4c := 2 * n2c
	nao, nmo := c.Dims()
	if nao != n4c || len(occ) != nmo {
		return nil, nil, nil, nil, CError{ErrDimMismatch, []string{"Para"}}
	}
	para = make([]Tensor, len(nuclei))
	paraPos = make([]Tensor, len(nuclei))
	paraNeg = make([]Tensor, len(nuclei))
	paraOcc = make([]Tensor, len(nuclei))
	for n, at := range nuclei {
		coord := mol.AtomCoord(at)
		t01, err := mol.Int1e("sa01sp", 3, coord[:], nil)
		if err != nil {
			return nil, nil, nil, nil, errDecorate(err, "Para")
		}
		h01mo := make([]*spinor.Matrix, 3)
		for m := 0; m < 3; m++ {
			h01 := spinor.Zeros(n4c, n4c)
			h01.AddBlock(spinor.LS, 0.5, t01[m])
			h01.AddBlockDagger(spinor.SL, 0.5, t01[m])
			h01mo[m] = spinor.AO2MO(h01, c, occ)
		}
		_, nocc := h01mo[0].Dims()
		for b := 0; b < 3; b++ {
			for m := 0; m < 3; m++ {
				//doubled for the implicit complex-conjugate pairing
				var tot, neg, occSum float64
				for i := 0; i < nmo; i++ {
					var pi float64
					for j := 0; j < nocc; j++ {
						z := cmplx.Conj(mo1[b].At(i, j)) * h01mo[m].At(i, j)
						pi += 2 * real(z)
					}
					tot += pi
					if i < n2c {
						neg += pi
					}
					if occ[i] > 0 {
						occSum += pi
					}
				}
				para[n][b][m] = tot
				paraNeg[n][b][m] = neg
				paraOcc[n][b][m] = occSum
				paraPos[n][b][m] = tot - neg - occSum
			}
		}
	}
	return para, paraPos, paraNeg, paraOcc, nil
}

//Shielding runs the whole calculation for a converged mean field: first
//order operators, coupled-perturbed response, and per-nucleus tensor
//assembly. A convergence failure is reported through the returned error
//while the Result remains filled with the best available data.
func Shielding(mol Integraler, mf MeanField, o *Options) (*Result, error) {
	if o == nil {
		o = DefaultOptions()
	}
	nuclei, err := resolveNuclei(mol, o.Nuclei)
	if err != nil {
		return nil, errDecorate(err, "Shielding")
	}
	ret := &Result{Nuclei: nuclei}
	if len(nuclei) == 0 {
		return ret, nil
	}
	dm0 := mf.MakeRDM1()
	if err := checkDM(mol, dm0); err != nil {
		return nil, errDecorate(err, "Shielding")
	}

	dia, err := Dia(mol, dm0, o.GaugeOrigin, nuclei, o.Balance)
	if err != nil {
		return nil, errDecorate(err, "Shielding")
	}

	h1, err := MakeH10(mol, dm0, o.GaugeOrigin, o.Balance, o.WithGaunt, o.Chk)
	if err != nil {
		return nil, errDecorate(err, "Shielding")
	}
	s1, err := MakeS10(mol, o.GaugeOrigin, o.Balance)
	if err != nil {
		return nil, errDecorate(err, "Shielding")
	}
	mo1, cerr := SolveMO1(mol, mf, h1, s1, o)
	if cerr != nil {
		if _, ok := cerr.(*ConvergenceError); !ok {
			return nil, errDecorate(cerr, "Shielding")
		}
		log.Printf("goNMR: Shielding: %v", cerr)
	}
	ret.MO1 = mo1

	para, paraPos, paraNeg, paraOcc, err := Para(mol, mo1.C, mf.MOCoeff(), mf.MOOcc(), nuclei)
	if err != nil {
		return nil, errDecorate(err, "Shielding")
	}
	ret.Dia = scaleTensors(dia, PPM)
	ret.Para = scaleTensors(para, PPM)
	ret.ParaPos = scaleTensors(paraPos, PPM)
	ret.ParaNeg = scaleTensors(paraNeg, PPM)
	ret.ParaOcc = scaleTensors(paraOcc, PPM)
	ret.Total = make([]Tensor, len(nuclei))
	for i := range nuclei {
		ret.Total[i] = ret.Dia[i].Add(ret.Para[i])
	}
	return ret, cerr
}

//resolveNuclei expands a nil selection to all atoms and validates indices.
//An explicitly empty selection stays empty.
func resolveNuclei(mol Integraler, nuclei []int) ([]int, error) {
	if nuclei == nil {
		all := make([]int, mol.NAtoms())
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	for _, at := range nuclei {
		if at < 0 || at >= mol.NAtoms() {
			return nil, CError{ErrNucIndex, []string{"resolveNuclei"}}
		}
	}
	return nuclei, nil
}

func scaleTensors(ts []Tensor, f float64) []Tensor {
	ret := make([]Tensor, len(ts))
	for i, t := range ts {
		ret[i] = t.Scale(f)
	}
	return ret
}
