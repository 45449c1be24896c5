/*
 * options.go, part of gonmr.
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
	"os"

	"gopkg.in/yaml.v3"
)

//Options collects the settings of a shielding calculation.
type Options struct {
	//Balance is the magnetic-balance scheme, RMB by default.
	Balance Balance `yaml:"balance"`
	//GaugeOrigin, when set (length 3, bohr), fixes the gauge origin. Nil
	//selects gauge-including atomic orbitals.
	GaugeOrigin []float64 `yaml:"gauge_origin,omitempty"`
	//Nuclei selects the nuclei (0-based). Nil means all; an explicitly
	//empty list requests nothing.
	Nuclei []int `yaml:"nuclei,omitempty"`
	//CPHF enables the self-consistency term of the response.
	CPHF bool `yaml:"cphf"`
	//MaxCycle bounds the coupled-perturbed iteration. 1 keeps the
	//single-evaluation behavior.
	MaxCycle int `yaml:"max_cycle"`
	//Tol is the convergence tolerance on the response coefficients.
	Tol float64 `yaml:"tol"`
	//WithGaunt requests the Gaunt two-electron correction. Not implemented;
	//setting it makes the operator build fail rather than drop the term.
	WithGaunt bool `yaml:"with_gaunt"`
	//Chk, when not nil, receives intermediate operators.
	Chk Checkpointer `yaml:"-"`
}

//DefaultOptions returns the settings of a standard calculation: RMB,
//gauge-including orbitals, all nuclei, coupled response with a single
//potential evaluation.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.Balance = RMB
	ret.CPHF = true
	ret.MaxCycle = 1
	ret.Tol = 1e-9
	return ret
}

//ReadOptions reads calculation settings from a YAML file. Fields absent
//from the file keep their defaults.
func ReadOptions(filename string) (*Options, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, CError{err.Error(), []string{"ReadOptions"}}
	}
	ret := DefaultOptions()
	if err := yaml.Unmarshal(buf, ret); err != nil {
		return nil, CError{err.Error(), []string{"ReadOptions"}}
	}
	if ret.GaugeOrigin != nil && len(ret.GaugeOrigin) != 3 {
		return nil, CError{"gauge_origin needs 3 components", []string{"ReadOptions"}}
	}
	return ret, nil
}

//Write stores the settings as YAML.
func (o *Options) Write(filename string) error {
	buf, err := yaml.Marshal(o)
	if err != nil {
		return CError{err.Error(), []string{"Options.Write"}}
	}
	if err := os.WriteFile(filename, buf, 0644); err != nil {
		return CError{err.Error(), []string{"Options.Write"}}
	}
	return nil
}

//MarshalYAML writes the balance scheme by name.
func (b Balance) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

//UnmarshalYAML accepts "RMB" or "RKB".
func (b *Balance) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "RMB":
		*b = RMB
	case "RKB":
		*b = RKB
	default:
		return fmt.Errorf("goNMR: unknown balance scheme %q", s)
	}
	return nil
}
