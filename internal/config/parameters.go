package config

import (
	"fmt"
	"os"
	"reflect"

	"github.com/BurntSushi/toml"

	"micromag/internal/kernel"
)

type Config struct {
	OutputDir       string
	Models          map[string]ModelParameters
	ModelParameters // global fallbacks for every model

	InputUnits []string
}

func LoadConfig(configFileName string) (Config, toml.MetaData) {
	var config Config
	meta, err := toml.DecodeFile(configFileName+".toml", &config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var unitsConflict []string
	config.InputUnits, unitsConflict = checkUnits(config.InputUnits)
	if len(unitsConflict) > 0 {
		fmt.Printf("found input unit conflict: %v\n", unitsConflict)
		os.Exit(0)
	}
	if len(config.Models) == 0 {
		fmt.Println("No models provided")
		os.Exit(0)
	}
	return config, meta
}

type ModelParameters struct {
	Radius     float64 // [Å]
	Thickness  float64 // [Å]
	NucCore    float64 // [1e-6 Å^-2]
	NucShell   float64 // [1e-6 Å^-2]
	NucSolvent float64 // [1e-6 Å^-2]
	MagCore    float64 // [1e-6 Å^-2]
	MagShell   float64 // [1e-6 Å^-2]
	MagSolvent float64 // [1e-6 Å^-2]
	HkCore     float64 // [T]
	HiField    float64 // [T]
	MSat       float64 // [T]
	ExchangeA  float64 // [1e-12 J/m]
	DMI        float64 // [1e-3 J/m^2]
	UpI        float64
	UpF        float64
	Alpha      float64 // [deg]
	Beta       float64 // [deg]

	QMin    float64 // [Å^-1]
	QMax    float64 // [Å^-1]
	NQ      int
	LogGrid bool

	QMap    float64 // half-width of the (qx, qy) detector map [Å^-1]; 0 disables it
	NQMap   int
	MakeDir bool

	_verbose bool
	_threads int
}

func (p *ModelParameters) Verbose() bool {
	return p._verbose
}

func (p *ModelParameters) SetVerbosity(verbose bool) {
	p._verbose = verbose
}

func (p *ModelParameters) Threads() int {
	return p._threads
}

func (p *ModelParameters) SetThreads(threads int) {
	p._threads = threads
}

var defaultValues = map[string]any{ // in kernel units
	"Radius":     50.0, //[Å]
	"Thickness":  10.0, //[Å]
	"NucSolvent": 6.35, //[1e-6 Å^-2], D2O
	"HiField":    2.0,  //[T]
	"MSat":       1.0,  //[T]
	"ExchangeA":  10.0, //[1e-12 J/m]
	"UpI":        0.5,  // unpolarised beam
	"UpF":        0.5,
	"QMin":       1e-3, //[Å^-1]
	"QMax":       0.5,  //[Å^-1]
	"NQ":         200,
	"LogGrid":    true,
	"NQMap":      64,
	"MakeDir":    false,
}

var defaultUnits = []string{"Ang", "T"}

var valueUnits = map[string][]UnitElement{
	"Radius":    {{Class: Length, Power: 1}},
	"Thickness": {{Class: Length, Power: 1}},
	"QMin":      {{Class: Length, Power: -1}},
	"QMax":      {{Class: Length, Power: -1}},
	"QMap":      {{Class: Length, Power: -1}},
	"HkCore":    {{Class: Field, Power: 1}},
	"HiField":   {{Class: Field, Power: 1}},
	"MSat":      {{Class: Field, Power: 1}},
}

func (modelConfig *ModelParameters) toKernelUnits(parameterNames, units []string) {
	modelConfigReflect := reflect.ValueOf(modelConfig).Elem()
	for name := range parameterNames {
		if modelConfigReflect.FieldByName(parameterNames[name]).CanFloat() {
			value := modelConfigReflect.FieldByName(parameterNames[name]).Float()
			value = Kernelize(value, valueUnits[parameterNames[name]], units, true)
			modelConfigReflect.FieldByName(parameterNames[name]).SetFloat(value)
		}
	}
}

/*
field value priority:
1. local
2. global
3. default
*/

// Resolve fills one model's parameter set from the [Models.<name>] table,
// the global table and the package defaults, in that order, then converts
// the dimensioned fields into kernel units.
func (modelConfig *ModelParameters) Resolve(modelName string, config *Config, meta *toml.MetaData) bool {
	var discoveredParameters []string

	modelConfigReflect := reflect.ValueOf(modelConfig).Elem()
	modelConfigType := modelConfigReflect.Type()

	globalConfigReflect := reflect.ValueOf(&config.ModelParameters).Elem()

	for i := range modelConfigReflect.NumField() {
		fieldName := modelConfigType.Field(i).Name
		if !modelConfigReflect.Field(i).CanSet() {
			continue
		}
		if meta.IsDefined("Models", modelName, fieldName) {
			discoveredParameters = append(discoveredParameters, fieldName)
		} else if meta.IsDefined(fieldName) {
			modelConfigReflect.Field(i).Set(globalConfigReflect.Field(i))
			discoveredParameters = append(discoveredParameters, fieldName)
		} else if value, some := defaultValues[fieldName]; some {
			modelConfigReflect.Field(i).Set(reflect.ValueOf(value))
		}
	}

	modelConfig.toKernelUnits(discoveredParameters, config.InputUnits)

	allGood := true
	if modelConfig.NQ < 2 {
		fmt.Printf("model %s: NQ must be at least 2\n", modelName)
		allGood = false
	}
	if modelConfig.QMax <= modelConfig.QMin {
		fmt.Printf("model %s: QMax must exceed QMin\n", modelName)
		allGood = false
	}
	if modelConfig.LogGrid && modelConfig.QMin <= 0 {
		fmt.Printf("model %s: log grid requires QMin > 0\n", modelName)
		allGood = false
	}
	if modelConfig.QMap > 0 && modelConfig.NQMap < 2 {
		fmt.Printf("model %s: NQMap must be at least 2\n", modelName)
		allGood = false
	}
	return allGood
}

// Kernel maps the resolved parameter set onto the kernel's value type.
func (p *ModelParameters) Kernel() kernel.Params {
	return kernel.Params{
		Radius:     p.Radius,
		Thickness:  p.Thickness,
		NucCore:    p.NucCore,
		NucShell:   p.NucShell,
		NucSolvent: p.NucSolvent,
		MagCore:    p.MagCore,
		MagShell:   p.MagShell,
		MagSolvent: p.MagSolvent,
		HkCore:     p.HkCore,
		HiField:    p.HiField,
		MSat:       p.MSat,
		ExchangeA:  p.ExchangeA,
		DMI:        p.DMI,
		UpI:        p.UpI,
		UpF:        p.UpF,
		Alpha:      p.Alpha,
		Beta:       p.Beta,
	}
}
