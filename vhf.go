/*
 * vhf.go, part of gonmr.
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

//vhf.go computes the two-electron response matrices (direct and exchange)
//of a partitioned density for the magnetic-derivative integral families.
//Each contraction only produces half of the Hermitian result; the final
//vj += vjᴴ / vk += vkᴴ doubling recovers the full operator while halving
//the number of two-electron contractions. That exact step, not an average,
//is part of the algebra.

package nmr

import (
	"github.com/rmera/gonmr/spinor"
)

//rmbVHF1 contracts the restricted-magnetic-balance two-electron derivative
//families against the four quadrants of dm. mode is "giao" or "cg" and
//selects the gauge convention of the integral family.
func rmbVHF1(mol Integraler, dm *spinor.Matrix, mode string) (vj, vk []*spinor.Matrix, err error) {
	c1 := 0.5 / mol.LightSpeed()
	c2 := complex(c1*c1, 0)
	c4 := c2 * c2
	n4c := 2 * mol.NBas2c()
	dmll := dm.Block(spinor.LL)
	dmls := dm.Block(spinor.LS)
	dmsl := dm.Block(spinor.SL)
	dmss := dm.Block(spinor.SS)
	vj = zeroSet(3, n4c)
	vk = zeroSet(3, n4c)

	//small-small density against the doubly spin-contracted family
	vx, err := mol.Contract2e(mode+"_sa10sp1spsp2", "s2kl",
		[]string{"ji->s2kl", "lk->s1ij", "jk->s1il", "li->s1kj"},
		[]*spinor.Matrix{dmss}, 3)
	if err != nil {
		return nil, nil, errDecorate(err, "rmbVHF1")
	}
	scaleSet(vx, c4)
	for i := 0; i < 3; i++ {
		vx[0][i].HermiTriu(spinor.AntiHermitian)
		vj[i].AddBlock(spinor.SS, 1, vx[0][i])
		vj[i].AddBlock(spinor.SS, 1, vx[1][i])
		vk[i].AddBlock(spinor.SS, 1, vx[2][i])
		vk[i].AddBlock(spinor.SS, 1, vx[3][i])
	}

	//mixed large/small blocks against the singly contracted family
	vx, err = mol.Contract2e(mode+"_sa10sp1", "s2kl",
		[]string{"lk->s1ij", "ji->s2kl", "jk->s1il", "li->s1kj"},
		[]*spinor.Matrix{dmll, dmss, dmsl, dmls}, 3)
	if err != nil {
		return nil, nil, errDecorate(err, "rmbVHF1")
	}
	scaleSet(vx, c2)
	for i := 0; i < 3; i++ {
		vx[1][i].HermiTriu(spinor.AntiHermitian)
		vj[i].AddBlock(spinor.SS, 1, vx[0][i])
		vj[i].AddBlock(spinor.LL, 1, vx[1][i])
		vk[i].AddBlock(spinor.SL, 1, vx[2][i])
		vk[i].AddBlock(spinor.LS, 1, vx[3][i])
	}

	for i := 0; i < 3; i++ {
		vj[i].AddDagger()
		vk[i].AddDagger()
	}
	return vj, vk, nil
}

//giaoVHF1 contracts the gauge-including two-electron derivative families
//against the four quadrants of dm.
func giaoVHF1(mol Integraler, dm *spinor.Matrix) (vj, vk []*spinor.Matrix, err error) {
	c1 := 0.5 / mol.LightSpeed()
	c2 := complex(c1*c1, 0)
	c4 := c2 * c2
	n4c := 2 * mol.NBas2c()
	dmll := dm.Block(spinor.LL)
	dmls := dm.Block(spinor.LS)
	dmsl := dm.Block(spinor.SL)
	dmss := dm.Block(spinor.SS)
	vj = zeroSet(3, n4c)
	vk = zeroSet(3, n4c)
	patterns := []string{"lk->s2ij", "jk->s1il"}

	vx, err := mol.Contract2e("g1", "a4ij", patterns, []*spinor.Matrix{dmll}, 3)
	if err != nil {
		return nil, nil, errDecorate(err, "giaoVHF1")
	}
	for i := 0; i < 3; i++ {
		vj[i].AddBlock(spinor.LL, 1, vx[0][i])
		vk[i].AddBlock(spinor.LL, 1, vx[1][i])
	}

	vx, err = mol.Contract2e("spgsp1spsp2", "a4ij", patterns, []*spinor.Matrix{dmss}, 3)
	if err != nil {
		return nil, nil, errDecorate(err, "giaoVHF1")
	}
	scaleSet(vx, c4)
	for i := 0; i < 3; i++ {
		vj[i].AddBlock(spinor.SS, 1, vx[0][i])
		vk[i].AddBlock(spinor.SS, 1, vx[1][i])
	}

	vx, err = mol.Contract2e("g1spsp2", "a4ij", patterns, []*spinor.Matrix{dmss, dmls}, 3)
	if err != nil {
		return nil, nil, errDecorate(err, "giaoVHF1")
	}
	scaleSet(vx, c2)
	for i := 0; i < 3; i++ {
		vj[i].AddBlock(spinor.LL, 1, vx[0][i])
		vk[i].AddBlock(spinor.LS, 1, vx[1][i])
	}

	vx, err = mol.Contract2e("spgsp1", "a4ij", patterns, []*spinor.Matrix{dmll, dmsl}, 3)
	if err != nil {
		return nil, nil, errDecorate(err, "giaoVHF1")
	}
	scaleSet(vx, c2)
	for i := 0; i < 3; i++ {
		vj[i].AddBlock(spinor.SS, 1, vx[0][i])
		vk[i].AddBlock(spinor.SL, 1, vx[1][i])
	}

	//vj quadrants are triangle-stored by the s2ij outputs; vk needs the
	//half-plus-dagger completion.
	for i := 0; i < 3; i++ {
		vj[i].HermiTriu(spinor.Hermitian)
		vk[i].AddDagger()
	}
	return vj, vk, nil
}

func zeroSet(n, dim int) []*spinor.Matrix {
	ret := make([]*spinor.Matrix, n)
	for i := range ret {
		ret[i] = spinor.Zeros(dim, dim)
	}
	return ret
}

func scaleSet(set [][]*spinor.Matrix, f complex128) {
	for _, ms := range set {
		for _, m := range ms {
			m.Scale(f, m)
		}
	}
}
