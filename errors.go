/*
 * errors.go, part of gonmr.
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

import "fmt"

//Message constants for CError.
const (
	ErrGaunt       = "Gaunt-type two-electron correction is not implemented"
	ErrDimMismatch = "matrix dimensions do not match the basis"
	ErrNucIndex    = "shielding nucleus index out of range"
	ErrNilData     = "nil data given"
)

//CError is the general error type of the library. It fulfills Error.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string {
	return fmt.Sprintf("goNMR error: %s", err.msg)
}

//Decorate adds new information to the error and returns the current trail.
//An empty string only queries the trail.
func (err CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//ConvergenceError reports that the CPHF iteration exhausted its budget
//before reaching the requested tolerance. It is recoverable: the solver
//still returns the best available response, which remains usable for
//exploratory work.
type ConvergenceError struct {
	Cycles   int     //cycles actually run
	Residual float64 //last max-norm change of the response coefficients
	Tol      float64 //tolerance that was not met
	deco     []string
}

func (err *ConvergenceError) Error() string {
	return fmt.Sprintf("goNMR: response not converged after %d cycles: residual %.3g, wanted %.3g", err.Cycles, err.Residual, err.Tol)
}

//Decorate adds new information to the error and returns the current trail.
func (err *ConvergenceError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate asserts that err implements Error and adds the caller's name
//to its trail. Calling it with any other error type panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
