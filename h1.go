/*
 * h1.go, part of gonmr.
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

//h1.go assembles the first-order (magnetic field) Fock and overlap
//operators. One matrix per cartesian field component, over the
//four-component spinor basis.

package nmr

import (
	"github.com/rmera/gonmr/spinor"
)

//Balance selects how the small-component basis follows the large one under
//a magnetic perturbation.
type Balance int

const (
	//RMB is restricted magnetic balance.
	RMB Balance = iota
	//RKB is restricted kinetic balance.
	RKB
)

func (b Balance) String() string {
	switch b {
	case RMB:
		return "RMB"
	case RKB:
		return "RKB"
	}
	return "unknown"
}

//MakeH10 builds the first-order Fock operator for the three field
//components. A nil gauge origin selects gauge-including atomic orbitals,
//which adds the GIAO balance correction on top of the balance-scheme term.
//chk, when not nil, receives the balance-scheme part under "nmr/h1" and the
//full operator under "nmr/h1giao". The Gaunt correction is not implemented
//and requesting it is an error.
func MakeH10(mol Integraler, dm0 *spinor.Matrix, gauge []float64, mb Balance, withGaunt bool, chk Checkpointer) ([]*spinor.Matrix, error) {
	if err := checkDM(mol, dm0); err != nil {
		return nil, errDecorate(err, "MakeH10")
	}
	var h1 []*spinor.Matrix
	var err error
	switch mb {
	case RMB:
		h1, err = makeH10RMB(mol, dm0, gauge, withGaunt)
	case RKB:
		h1, err = makeH10RKB(mol, gauge, withGaunt)
	default:
		panic("goNMR: unknown magnetic balance scheme")
	}
	if err != nil {
		return nil, errDecorate(err, "MakeH10")
	}
	if chk != nil {
		if err := chk.Store("nmr/h1", h1); err != nil {
			return nil, errDecorate(err, "MakeH10")
		}
	}
	if gauge == nil {
		giao, err := makeH10GIAO(mol, dm0, withGaunt)
		if err != nil {
			return nil, errDecorate(err, "MakeH10")
		}
		for i := range h1 {
			h1[i].Add(h1[i], giao[i])
		}
		if chk != nil {
			if err := chk.Store("nmr/h1giao", h1); err != nil {
				return nil, errDecorate(err, "MakeH10")
			}
		}
	}
	return h1, nil
}

//makeH10RMB builds the restricted-magnetic-balance part of the first-order
//Fock operator: the two-electron response of the density plus the balance
//coupling of the field-derivative kinetic and nuclear operators.
func makeH10RMB(mol Integraler, dm0 *spinor.Matrix, gauge []float64, withGaunt bool) ([]*spinor.Matrix, error) {
	if withGaunt {
		return nil, CError{ErrGaunt, []string{"makeH10RMB"}}
	}
	c := mol.LightSpeed()
	n2c := mol.NBas2c()
	mode := "giao"
	if gauge != nil {
		mode = "cg"
	}
	t1, err := mol.Int1e(mode+"_sa10sp", 3, nil, gauge)
	if err != nil {
		return nil, errDecorate(err, "makeH10RMB")
	}
	v1, err := mol.Int1e(mode+"_sa10nucsp", 3, nil, gauge)
	if err != nil {
		return nil, errDecorate(err, "makeH10RMB")
	}
	vj, vk, err := rmbVHF1(mol, dm0, mode)
	if err != nil {
		return nil, errDecorate(err, "makeH10RMB")
	}
	w := complex(0.25/(c*c), 0)
	h1 := make([]*spinor.Matrix, 3)
	for i := range h1 {
		h1[i] = spinor.Zeros(2*n2c, 2*n2c)
		h1[i].Sub(vj[i], vk[i])
		t1cc := t1[i].Clone()
		t1cc.AddDagger()
		v1cc := v1[i].Clone()
		v1cc.AddDagger()
		h1[i].AddBlock(spinor.LS, 0.5, t1cc)
		h1[i].AddBlock(spinor.SL, 0.5, t1cc)
		h1[i].AddBlock(spinor.SS, -0.5, t1cc)
		h1[i].AddBlock(spinor.SS, w, v1cc)
	}
	return h1, nil
}

//makeH10RKB builds the restricted-kinetic-balance part: only the direct
//one-electron field derivative enters, split across the off-diagonal
//quadrants.
func makeH10RKB(mol Integraler, gauge []float64, withGaunt bool) ([]*spinor.Matrix, error) {
	if withGaunt {
		return nil, CError{ErrGaunt, []string{"makeH10RKB"}}
	}
	n2c := mol.NBas2c()
	op := "giao_sa10sp"
	if gauge != nil {
		op = "cg_sa10sp"
	}
	t1, err := mol.Int1e(op, 3, nil, gauge)
	if err != nil {
		return nil, errDecorate(err, "makeH10RKB")
	}
	h1 := make([]*spinor.Matrix, 3)
	for i := range h1 {
		h1[i] = spinor.Zeros(2*n2c, 2*n2c)
		h1[i].AddBlock(spinor.LS, 0.5, t1[i])
		h1[i].AddBlockDagger(spinor.SL, 0.5, t1[i])
	}
	return h1, nil
}

//makeH10GIAO builds the gauge-including correction to the first-order Fock
//operator. Valid only without a fixed gauge origin.
func makeH10GIAO(mol Integraler, dm0 *spinor.Matrix, withGaunt bool) ([]*spinor.Matrix, error) {
	if withGaunt {
		return nil, CError{ErrGaunt, []string{"makeH10GIAO"}}
	}
	c := mol.LightSpeed()
	tg, err := mol.Int1e("spgsp", 3, nil, nil)
	if err != nil {
		return nil, errDecorate(err, "makeH10GIAO")
	}
	vg, err := mol.Int1e("gnuc", 3, nil, nil)
	if err != nil {
		return nil, errDecorate(err, "makeH10GIAO")
	}
	wg, err := mol.Int1e("spgnucsp", 3, nil, nil)
	if err != nil {
		return nil, errDecorate(err, "makeH10GIAO")
	}
	vj, vk, err := giaoVHF1(mol, dm0)
	if err != nil {
		return nil, errDecorate(err, "makeH10GIAO")
	}
	w := complex(0.25/(c*c), 0)
	h1 := make([]*spinor.Matrix, 3)
	for i := range h1 {
		h1[i] = vj[i]
		h1[i].Sub(vj[i], vk[i])
		h1[i].AddBlock(spinor.LL, 1, vg[i])
		h1[i].AddBlock(spinor.SL, 0.5, tg[i])
		h1[i].AddBlockDagger(spinor.LS, 0.5, tg[i])
		h1[i].AddBlock(spinor.SS, w, wg[i])
		h1[i].AddBlock(spinor.SS, -0.5, tg[i])
	}
	return h1, nil
}

//MakeS10 builds the first-order overlap operator for the three field
//components. Under RMB the magnetic-balance coupling fills the small-small
//quadrant; without a fixed gauge origin the GIAO overlap derivatives are
//added on top for either balance scheme.
func MakeS10(mol Integraler, gauge []float64, mb Balance) ([]*spinor.Matrix, error) {
	c := mol.LightSpeed()
	n2c := mol.NBas2c()
	w := complex(0.25/(c*c), 0)
	s1 := make([]*spinor.Matrix, 3)
	for i := range s1 {
		s1[i] = spinor.Zeros(2*n2c, 2*n2c)
	}
	switch mb {
	case RMB:
		op := "giao_sa10sp"
		if gauge != nil {
			op = "cg_sa10sp"
		}
		t1, err := mol.Int1e(op, 3, nil, gauge)
		if err != nil {
			return nil, errDecorate(err, "MakeS10")
		}
		for i := range s1 {
			t1cc := t1[i].Clone()
			t1cc.AddDagger()
			s1[i].AddBlock(spinor.SS, w, t1cc)
		}
	case RKB:
		//kinetic balance carries no field dependence of its own
	default:
		panic("goNMR: unknown magnetic balance scheme")
	}
	if gauge == nil {
		sg, err := mol.Int1e("govlp", 3, nil, nil)
		if err != nil {
			return nil, errDecorate(err, "MakeS10")
		}
		tg, err := mol.Int1e("spgsp", 3, nil, nil)
		if err != nil {
			return nil, errDecorate(err, "MakeS10")
		}
		for i := range s1 {
			s1[i].AddBlock(spinor.LL, 1, sg[i])
			s1[i].AddBlock(spinor.SS, w, tg[i])
		}
	}
	return s1, nil
}

//checkDM verifies the density matrix against the basis dimension.
func checkDM(mol Integraler, dm *spinor.Matrix) error {
	if dm == nil {
		return CError{ErrNilData, []string{"checkDM"}}
	}
	r, c := dm.Dims()
	n4c := 2 * mol.NBas2c()
	if r != n4c || c != n4c {
		return CError{ErrDimMismatch, []string{"checkDM"}}
	}
	return nil
}
