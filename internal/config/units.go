package config

import (
	"math"

	"micromag/internal/utils"
)

// Kernel units are [Å] for lengths and [T] for magnetic fields; SLDs are
// fixed at [1e-6 Å^-2], exchange at [1e-12 J/m], DMI at [1e-3 J/m^2].
var unitToKernel = map[string]float64{
	"Ang":  1,                  // [Å]
	"nm":   10,                 // [Å]
	"T":    1,                  // [T]
	"mT":   1e-3,               // [T]
	"kA/m": 4 * math.Pi * 1e-4, // [T], mu0 * 1e3
}

type UnitClass int

const (
	Length UnitClass = iota
	Field
)

var unitsInClass = map[UnitClass][]string{
	Length: {"nm", "Ang"},
	Field:  {"mT", "kA/m", "T"},
}

var classesOfUnits = map[string]UnitClass{
	"Ang":  Length,
	"nm":   Length,
	"T":    Field,
	"mT":   Field,
	"kA/m": Field,
}

type UnitElement = struct {
	Class UnitClass
	Power int
}

func checkUnits(units []string) (extended, conflicts []string) {
	classes := map[UnitClass]struct{}{}
	for _, unit := range units {
		if _, some := classes[classesOfUnits[unit]]; some {
			conflicts = append(conflicts, unit)
		} else {
			classes[classesOfUnits[unit]] = struct{}{}
		}
	}
	extended = units
	for _, unit := range defaultUnits {
		if _, some := classes[classesOfUnits[unit]]; !some {
			extended = append(extended, unit)
		}
	}
	return
}

// Kernelize converts a value between declared input units and kernel units,
// one factor per unit class and power of the value's dimension.
func Kernelize(v float64, classes []UnitElement, units []string, direct bool) float64 {
	for i := range classes {
		uc := classes[i]
		unit := utils.Intersect(unitsInClass[uc.Class], units)
		absPower := utils.IntAbs(uc.Power)
		if (uc.Power > 0) == direct {
			for range absPower {
				v *= unitToKernel[*unit]
			}
		} else {
			for range absPower {
				v /= unitToKernel[*unit]
			}
		}
	}
	return v
}
