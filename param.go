/*
 * param.go, part of gonmr.
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

//LightSpeed is the physical speed of light in atomic units. The ppm
//conversion of shielding tensors always uses this value, even when the
//oracle carries a scaled speed of light for model systems; only the
//operator algebra follows the oracle's value.
const LightSpeed = 137.03599967994

//PPM converts shielding tensors from atomic units to parts per million.
const PPM = 1e6 / (LightSpeed * LightSpeed)

//Numerical guards.
const (
	//imagTol is the largest imaginary remainder accepted silently where a
	//real result is expected. Anything larger points at a broken symmetry
	//upstream and is logged.
	imagTol = 1e-8

	//degenThresh protects the perturbation-theory denominators. Orbital
	//pairs closer than this contribute nothing instead of dividing by a
	//vanishing gap.
	degenThresh = 1e-12
)
