/*
 * doc.go, part of gonmr.
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

/*
Package nmr computes nuclear magnetic shielding tensors from a converged
four-component (Dirac) self-consistent-field solution.

The caller supplies two collaborators: an integral oracle over the
geometry/basis (Integraler) and the converged mean field (MeanField). The
library builds the first-order magnetic Fock and overlap operators for the
chosen magnetic-balance scheme, solves the coupled-perturbed equations for
the orbital response, and assembles per-nucleus diamagnetic and paramagnetic
tensors in ppm:

	res, err := nmr.Shielding(mol, mf, nil)
	if err != nil {
		//a *ConvergenceError still leaves res usable
	}
	fmt.Println(res.Total[0].Iso())

With the default restricted magnetic balance and gauge-including atomic
orbitals, a helium atom in a minimal s,s,p basis comes out at an isotropic
shielding of about 64.43 ppm.

Neither the SCF solver nor the integral evaluation lives here; both are
consumed through the interfaces above.
*/
package nmr
