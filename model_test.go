/*
 * model_test.go, part of gonmr.
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

package nmr

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/rmera/gonmr/spinor"
)

//testMol is a deterministic stand-in for the integral oracle: every
//operator maps to a reproducible matrix, so calculations on it are pure
//and repeatable. The gauge-dependent second-derivative family is wired so
//that the fixed-origin operator at the charge center coincides with the
//gauge-including pair, as the physical integrals do.
type testMol struct {
	n2c   int
	atoms [][3]float64
	c     float64
}

func newTestMol() *testMol {
	return &testMol{
		n2c:   3,
		atoms: [][3]float64{{0, 0, 0.7}, {0, 0, -0.7}},
		c:     5.0,
	}
}

func (m *testMol) NBas2c() int { return m.n2c }

func (m *testMol) NAtoms() int { return len(m.atoms) }

func (m *testMol) LightSpeed() float64 { return m.c }

func (m *testMol) AtomCoord(i int) [3]float64 { return m.atoms[i] }

func (m *testMol) ChargeCenter() [3]float64 {
	var ret [3]float64
	for _, a := range m.atoms {
		for d := 0; d < 3; d++ {
			ret[d] += a[d] / float64(len(m.atoms))
		}
	}
	return ret
}

//operators whose matrices are Hermitian for real basis functions
var hermOps = map[string]bool{
	"spgsp":    true,
	"gnuc":     true,
	"spgnucsp": true,
	"govlp":    true,
}

func (m *testMol) Int1e(op string, comp int, rinv, gauge []float64) ([]*spinor.Matrix, error) {
	ret := make([]*spinor.Matrix, comp)
	for k := 0; k < comp; k++ {
		if op == "cg_sa10sa01" {
			if gauge == nil {
				return nil, CError{"cg operator needs a gauge origin", []string{"testMol.Int1e"}}
			}
			a := m.base("giao_sa10sa01", k, rinv)
			a.Add(a, m.base("spgsa01", k, rinv))
			cc := m.ChargeCenter()
			for d := 0; d < 3; d++ {
				if delta := gauge[d] - cc[d]; delta != 0 {
					a.AddScaled(complex(delta, 0), m.base(fmt.Sprintf("gshift%d", d), k, rinv))
				}
			}
			ret[k] = a
			continue
		}
		tag := op
		if gauge != nil {
			tag = fmt.Sprintf("%s@%.3f,%.3f,%.3f", op, gauge[0], gauge[1], gauge[2])
		}
		ret[k] = m.base(tag, k, rinv)
	}
	return ret, nil
}

func (m *testMol) Contract2e(op, aosym string, patterns []string, dms []*spinor.Matrix, comp int) ([][]*spinor.Matrix, error) {
	if len(dms) != 1 && len(dms) != len(patterns) {
		return nil, CError{ErrDimMismatch, []string{"testMol.Contract2e"}}
	}
	ret := make([][]*spinor.Matrix, len(patterns))
	for p, pat := range patterns {
		dm := dms[0]
		if len(dms) > 1 {
			dm = dms[p]
		}
		ret[p] = make([]*spinor.Matrix, comp)
		for k := 0; k < comp; k++ {
			g := m.gen(fmt.Sprintf("2e|%s|%s|%s|%d", op, aosym, pat, k), false)
			o := spinor.Zeros(m.n2c, m.n2c)
			o.Mul(g, dm)
			o.Scale(complex(0.3, 0), o)
			if strings.Contains(pat, "->s2") {
				//compressed storage: only the lower triangle is valid, and
				//it must come from a Hermitian parent (real diagonal), as
				//the physical integrals guarantee
				o.AddDagger()
				o.Scale(0.5, o)
				for i := 0; i < m.n2c; i++ {
					for j := i + 1; j < m.n2c; j++ {
						o.Set(i, j, 0)
					}
				}
			}
			ret[p][k] = o
		}
	}
	return ret, nil
}

//base returns the matrix of a one-electron operator, recentered if rinv is
//given and hermitized when the operator family calls for it.
func (m *testMol) base(op string, k int, rinv []float64) *spinor.Matrix {
	tag := fmt.Sprintf("1e|%s|%d", op, k)
	if rinv != nil {
		tag += fmt.Sprintf("|%.3f,%.3f,%.3f", rinv[0], rinv[1], rinv[2])
	}
	return m.gen(tag, hermOps[op])
}

//gen fills a matrix from a hash-seeded linear congruential sequence.
func (m *testMol) gen(tag string, hermitian bool) *spinor.Matrix {
	h := fnv.New64a()
	h.Write([]byte(tag))
	x := h.Sum64()
	next := func() float64 {
		x = x*6364136223846793005 + 1442695040888963407
		return float64(x>>11)/float64(1<<52) - 1 //in [-1, 1)
	}
	ret := spinor.Zeros(m.n2c, m.n2c)
	for i := 0; i < m.n2c; i++ {
		for j := 0; j < m.n2c; j++ {
			ret.Set(i, j, complex(next(), next()))
		}
	}
	if hermitian {
		ret.AddDagger()
		ret.Scale(0.5, ret)
	}
	return ret
}

//testMF is a converged-mean-field stand-in. Its effective potential is a
//linear map of the trial density, scaled by lambda, which makes the
//coupled-perturbed fixed point well or badly conditioned at will.
type testMF struct {
	mol       *testMol
	lambda    float64
	directSCF bool
	//toggles records every value passed to SetDirectSCF
	toggles []bool
	//sawDirect records the flag state at each Veff call
	sawDirect []bool
}

func newTestMF(mol *testMol, lambda float64) *testMF {
	return &testMF{mol: mol, lambda: lambda, directSCF: true}
}

func (mf *testMF) MOCoeff() *spinor.Matrix {
	n4c := 2 * mf.mol.n2c
	c := spinor.Zeros(n4c, n4c)
	for i := 0; i < n4c; i++ {
		c.Set(i, i, 1)
	}
	pert := mf.mol.gen("mo-coeff", false)
	for i := 0; i < mf.mol.n2c; i++ {
		for j := 0; j < mf.mol.n2c; j++ {
			c.Set(i, j+mf.mol.n2c, c.At(i, j+mf.mol.n2c)+0.1*pert.At(i, j))
		}
	}
	return c
}

func (mf *testMF) MOOcc() []float64 {
	occ := make([]float64, 2*mf.mol.n2c)
	occ[mf.mol.n2c] = 2 //one occupied positive-energy orbital
	return occ
}

func (mf *testMF) MOEnergy() []float64 {
	n4c := 2 * mf.mol.n2c
	e := make([]float64, n4c)
	for i := range e {
		if i < mf.mol.n2c {
			e[i] = -2*float64(mf.mol.c)*float64(mf.mol.c) - float64(mf.mol.n2c-i)
		} else {
			e[i] = float64(i-mf.mol.n2c) + 0.5
		}
	}
	return e
}

func (mf *testMF) MakeRDM1() *spinor.Matrix {
	c := mf.MOCoeff()
	occ := mf.MOOcc()
	n4c := 2 * mf.mol.n2c
	cocc := spinor.OccCoeff(c, occ, func(o float64) float64 { return o })
	plain := spinor.OccCoeff(c, occ, nil)
	dm := spinor.Zeros(n4c, n4c)
	dm.MulByDagger(cocc, plain)
	return dm
}

func (mf *testMF) Veff(dms []*spinor.Matrix, hermitian bool) ([]*spinor.Matrix, error) {
	mf.sawDirect = append(mf.sawDirect, mf.directSCF)
	ret := make([]*spinor.Matrix, len(dms))
	for i, dm := range dms {
		r, c := dm.Dims()
		v := spinor.Zeros(r, c)
		v.Scale(complex(mf.lambda, 0), dm)
		ret[i] = v
	}
	return ret, nil
}

func (mf *testMF) DirectSCF() bool { return mf.directSCF }

func (mf *testMF) SetDirectSCF(on bool) {
	mf.directSCF = on
	mf.toggles = append(mf.toggles, on)
}
