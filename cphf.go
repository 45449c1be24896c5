/*
 * cphf.go, part of gonmr.
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

//cphf.go solves the coupled-perturbed equations for the first-order
//molecular-orbital response to a magnetic field. The first-order Fock
//operator depends on the response itself through the induced density, so
//the perturbation-theory update and the effective-potential evaluation are
//alternated until the coefficients stop moving.

package nmr

import (
	"math"

	"github.com/rmera/gonmr/spinor"
	"gonum.org/v1/gonum/cmplxs"
)

//MO1 is the solution of the coupled-perturbed equations: the first-order
//expansion of each occupied orbital in the zeroth-order MO basis, one
//nmo x nocc matrix per cartesian field component, with the matching
//first-order orbital-energy corrections.
type MO1 struct {
	C         []*spinor.Matrix //response coefficients, one per direction
	E         [][]complex128   //first-order orbital energies, [direction][occupied]
	Converged bool
	Cycles    int
	Residuals []float64 //max-norm change of C per cycle
}

//SolveMO1 computes the first-order MO response for the perturbation pair
//(h1, s1). With o.CPHF unset the bare perturbation formula is applied once
//and no effective potential is evaluated. With o.CPHF set, each cycle feeds
//the induced density to the mean field's effective potential; o.MaxCycle of
//1 (the default) keeps the single-evaluation behavior of the reference
//regime where the self-consistency term is weak. When more cycles are
//allowed and the tolerance is still not met, the best available response is
//returned together with a *ConvergenceError.
func SolveMO1(mol Integraler, mf MeanField, h1, s1 []*spinor.Matrix, o *Options) (*MO1, error) {
	if o == nil {
		o = DefaultOptions()
	}
	c := mf.MOCoeff()
	occ := mf.MOOcc()
	e := mf.MOEnergy()
	nao, nmo := c.Dims()
	if nao != 2*mol.NBas2c() || len(occ) != nmo || len(e) != nmo {
		return nil, CError{ErrDimMismatch, []string{"SolveMO1"}}
	}
	h1mo := make([]*spinor.Matrix, 3)
	s1mo := make([]*spinor.Matrix, 3)
	for i := 0; i < 3; i++ {
		h1mo[i] = spinor.AO2MO(h1[i], c, occ)
		s1mo[i] = spinor.AO2MO(s1[i], c, occ)
	}
	occIdx := spinor.OccIndices(occ)

	ret := new(MO1)
	f1 := cloneSet(h1mo)
	ret.C, ret.E = mo1Update(f1, s1mo, e, occIdx)
	if !o.CPHF {
		ret.Converged = true
		return ret, nil
	}
	for cycle := 1; cycle <= o.MaxCycle; cycle++ {
		v1, err := inducedPotential(mol, mf, ret.C, c, occ)
		if err != nil {
			return nil, errDecorate(err, "SolveMO1")
		}
		for i := 0; i < 3; i++ {
			f1[i].Add(h1mo[i], v1[i])
		}
		mo1, e1 := mo1Update(f1, s1mo, e, occIdx)
		res := maxDistance(mo1, ret.C)
		ret.C, ret.E = mo1, e1
		ret.Cycles = cycle
		ret.Residuals = append(ret.Residuals, res)
		if res < o.Tol {
			ret.Converged = true
			return ret, nil
		}
	}
	if o.MaxCycle <= 1 {
		//single-evaluation regime: one explicit potential evaluation is the
		//contract, not a converged fixed point
		ret.Converged = true
		return ret, nil
	}
	return ret, &ConvergenceError{
		Cycles:   ret.Cycles,
		Residual: ret.Residuals[len(ret.Residuals)-1],
		Tol:      o.Tol,
	}
}

//mo1Update applies the non-degenerate perturbation formula: off-diagonal
//elements are driven by (f1 - e_j s1) over the orbital-energy gap, the
//occupied diagonal keeps the -s1/2 normalization term.
func mo1Update(f1, s1mo []*spinor.Matrix, e []float64, occIdx []int) ([]*spinor.Matrix, [][]complex128) {
	nmo, nocc := f1[0].Dims()
	mo1 := make([]*spinor.Matrix, 3)
	e1 := make([][]complex128, 3)
	for b := 0; b < 3; b++ {
		mo1[b] = spinor.Zeros(nmo, nocc)
		e1[b] = make([]complex128, nocc)
		for jo, jj := range occIdx {
			ej := e[jj]
			e1[b][jo] = f1[b].At(jj, jo) - s1mo[b].At(jj, jo)*complex(ej, 0)
			for i := 0; i < nmo; i++ {
				if i == jj {
					mo1[b].Set(i, jo, -0.5*s1mo[b].At(i, jo))
					continue
				}
				de := ej - e[i]
				if math.Abs(de) < degenThresh {
					continue
				}
				num := f1[b].At(i, jo) - s1mo[b].At(i, jo)*complex(ej, 0)
				mo1[b].Set(i, jo, num/complex(de, 0))
			}
		}
	}
	return mo1, e1
}

//inducedPotential maps the current response onto a first-order effective
//potential in the MO basis. The collaborator's direct-SCF optimization is
//suspended for exactly the duration of the call: the restore is deferred so
//it runs on every exit path.
func inducedPotential(mol Integraler, mf MeanField, mo1 []*spinor.Matrix, c *spinor.Matrix, occ []float64) ([]*spinor.Matrix, error) {
	dm1 := MakeRDM1Response(mo1, c, occ)
	vAO, err := func() ([]*spinor.Matrix, error) {
		bak := mf.DirectSCF()
		mf.SetDirectSCF(false)
		defer mf.SetDirectSCF(bak)
		//hermitian because dm1 already carries its conjugate pair
		return mf.Veff(dm1, true)
	}()
	if err != nil {
		return nil, errDecorate(err, "inducedPotential")
	}
	ret := make([]*spinor.Matrix, len(vAO))
	for i, v := range vAO {
		ret[i] = spinor.AO2MO(v, c, occ)
	}
	return ret, nil
}

//MakeRDM1Response builds the first-order density induced by a response:
//dm1 = C mo1 (C_occ occ)ᴴ plus its conjugate, in the AO basis, one matrix
//per direction.
func MakeRDM1Response(mo1 []*spinor.Matrix, c *spinor.Matrix, occ []float64) []*spinor.Matrix {
	nao, _ := c.Dims()
	mocc := spinor.OccCoeff(c, occ, func(o float64) float64 { return o })
	_, nocc := mocc.Dims()
	ret := make([]*spinor.Matrix, len(mo1))
	for i, m := range mo1 {
		tmp := spinor.Zeros(nao, nocc)
		tmp.Mul(c, m)
		dm := spinor.Zeros(nao, nao)
		dm.MulByDagger(tmp, mocc)
		dm.AddDagger()
		ret[i] = dm
	}
	return ret
}

func cloneSet(set []*spinor.Matrix) []*spinor.Matrix {
	ret := make([]*spinor.Matrix, len(set))
	for i, m := range set {
		ret[i] = m.Clone()
	}
	return ret
}

//maxDistance returns the largest max-norm difference across the direction
//pairs of a and b.
func maxDistance(a, b []*spinor.Matrix) float64 {
	var max float64
	for i := range a {
		ra := a[i].RawCMatrix()
		rb := b[i].RawCMatrix()
		if d := cmplxs.Distance(ra.Data, rb.Data, math.Inf(1)); d > max {
			max = d
		}
	}
	return max
}
