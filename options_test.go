package nmr

import (
	"path/filepath"
	"testing"
)

func TestOptionsRoundTrip(Te *testing.T) {
	o := DefaultOptions()
	o.Balance = RKB
	o.GaugeOrigin = []float64{0, 0, 1.5}
	o.Nuclei = []int{0, 2}
	o.MaxCycle = 30
	o.Tol = 1e-8
	name := filepath.Join(Te.TempDir(), "shielding.yaml")
	if err := o.Write(name); err != nil {
		Te.Fatal(err)
	}
	got, err := ReadOptions(name)
	if err != nil {
		Te.Fatal(err)
	}
	if got.Balance != RKB || got.MaxCycle != 30 || got.Tol != 1e-8 {
		Te.Error("settings changed in the round trip")
	}
	if len(got.GaugeOrigin) != 3 || got.GaugeOrigin[2] != 1.5 {
		Te.Error("gauge origin changed in the round trip")
	}
	if len(got.Nuclei) != 2 || got.Nuclei[1] != 2 {
		Te.Error("nucleus selection changed in the round trip")
	}
}

func TestOptionsDefaults(Te *testing.T) {
	o := DefaultOptions()
	if o.Balance != RMB || !o.CPHF || o.MaxCycle != 1 {
		Te.Error("unexpected defaults")
	}
	if o.GaugeOrigin != nil {
		Te.Error("default gauge origin should select gauge-including orbitals")
	}
}
