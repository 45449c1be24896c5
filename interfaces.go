/*
 * interfaces.go, part of gonmr.
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

package nmr

import (
	"github.com/rmera/gonmr/spinor"
)

//Integraler is the geometry/basis handle and integral oracle. It must be a
//pure function of its construction state: recentering origins are passed
//explicitly, never stored. One-electron matrices are returned over the
//two-component spinor basis (dimension NBas2c).
type Integraler interface {
	//NBas2c returns the number of two-component spinor basis functions.
	NBas2c() int

	//NAtoms returns the number of nuclei.
	NAtoms() int

	//AtomCoord returns the cartesian coordinates of atom i (0-based), in bohr.
	AtomCoord(i int) [3]float64

	//ChargeCenter returns the center of nuclear charge.
	ChargeCenter() [3]float64

	//LightSpeed returns the speed of light used to scale relativistic terms,
	//in atomic units. It may differ from the physical value in model systems.
	LightSpeed() float64

	//Int1e evaluates the named one-electron operator and returns its comp
	//components. rinv, when non-nil, recenters 1/r-type operators; gauge,
	//when non-nil, is the fixed gauge origin required by "cg_" operators.
	Int1e(op string, comp int, rinv, gauge []float64) ([]*spinor.Matrix, error)

	//Contract2e contracts the named two-electron derivative family against
	//the given density blocks. aosym names the permutation symmetry of the
	//integral set. Each pattern describes one contraction and the storage of
	//its output: outputs tagged "s2" hold only the lower triangle and must be
	//completed by the caller; "s1" outputs are full. With a single density
	//block, every pattern is applied to it; otherwise dms[i] pairs with
	//patterns[i]. The result is indexed [pattern][component].
	Contract2e(op, aosym string, patterns []string, dms []*spinor.Matrix, comp int) ([][]*spinor.Matrix, error)
}

//MeanField is the converged self-consistent-field collaborator. Everything
//here is a read-only snapshot except the direct-SCF toggle, which the solver
//treats as a critical section around each effective-potential call.
type MeanField interface {
	//MOCoeff returns the n4c x nmo molecular-orbital coefficients.
	MOCoeff() *spinor.Matrix

	//MOOcc returns the nmo occupation numbers.
	MOOcc() []float64

	//MOEnergy returns the nmo orbital energies.
	MOEnergy() []float64

	//MakeRDM1 returns the zeroth-order density matrix (n4c x n4c, Hermitian).
	MakeRDM1() *spinor.Matrix

	//Veff maps trial first-order densities to first-order effective
	//potentials, one matrix per input.
	Veff(dms []*spinor.Matrix, hermitian bool) ([]*spinor.Matrix, error)

	//DirectSCF reports whether incremental (direct-SCF) Fock updates are on.
	DirectSCF() bool

	//SetDirectSCF turns incremental Fock updates on or off.
	SetDirectSCF(on bool)
}

//Checkpointer is an optional side channel for persisting intermediate
//operators. Nothing stored through it is read back by this library.
type Checkpointer interface {
	Store(key string, mats []*spinor.Matrix) error
}

//Error is the interface for errors in this library, following the Decorate
//convention: each caller on the way up may add its name to the trail.
type Error interface {
	Error() string
	Decorate(string) []string
}
