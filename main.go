package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/facette/natsort"

	"micromag/internal/config"
	"micromag/internal/evaluate"
	"micromag/internal/kernel"
	"micromag/internal/utils"
)

func main() {
	var configFileNamePointer = flag.String("input", "micromag", "model configuration in toml format")
	var threads = flag.Int("threads", runtime.NumCPU(), "evaluation workers per model")
	var verbose = flag.Bool("v", false, "print per-model details")
	flag.Parse()

	startTime := time.Now()
	fmt.Printf("Current time: %s\n", startTime.UTC().Format(time.UnixDate))

	configFileName := strings.TrimSuffix(*configFileNamePointer, ".toml")
	cfg, meta := config.LoadConfig(configFileName)

	outputPath := ""
	if cfg.OutputDir != "" && cfg.OutputDir != "." {
		os.MkdirAll(cfg.OutputDir, 0750)
		outputPath += cfg.OutputDir + "/"
	}

	modelNames := make([]string, 0, len(cfg.Models))
	for modelName := range cfg.Models {
		modelNames = append(modelNames, modelName)
	}
	natsort.Sort(modelNames)

	var summary utils.CSV
	for _, modelName := range modelNames {
		fmt.Println("\n" + modelName)
		parameters := cfg.Models[modelName]
		parameters.SetVerbosity(*verbose)
		parameters.SetThreads(*threads)
		if !parameters.Resolve(modelName, &cfg, &meta) {
			continue
		}

		p := parameters.Kernel()

		var qs []float64
		if parameters.LogGrid {
			qs = utils.LogGrid(parameters.QMin, parameters.QMax, parameters.NQ)
		} else {
			qs = utils.LinearGrid(parameters.QMin, parameters.QMax, parameters.NQ)
		}
		curve, err := evaluate.Curve(context.Background(), p, qs, parameters.Threads())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		saveCurve(parameters, outputPath, modelName, qs, curve)

		if parameters.QMap > 0 {
			grid := utils.LinearGrid(-parameters.QMap, parameters.QMap, parameters.NQMap)
			intensity, err := evaluate.Map(context.Background(), p, grid, grid, parameters.Threads())
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			saveMap(parameters, outputPath, modelName, grid, intensity)
		}

		if parameters.Verbose() {
			fmt.Printf("R_eff: %f Ang; V: %g Ang^3\n",
				kernel.EffectiveRadius(1, p.Radius, p.Thickness),
				kernel.FormVolume(p.Radius, p.Thickness))
		}
		summary = append(summary, []string{
			modelName,
			strconv.FormatFloat(kernel.EffectiveRadius(1, p.Radius, p.Thickness), 'f', -1, 64),
			strconv.FormatFloat(kernel.FormVolume(p.Radius, p.Thickness), 'g', -1, 64),
			strconv.FormatFloat(curve[0], 'g', -1, 64),
		})
	}
	if len(summary) > 0 {
		utils.WriteAsCSV(summary, outputPath, "", "summary",
			[]string{"model", "R_eff (Ang)", "V (Ang^3)", "I(q_min) (cm^-1)"})
	}
	fmt.Printf("Elapsed time: %v\n", time.Since(startTime))
}

func saveCurve(parameters config.ModelParameters, outputPath, modelName string, qs, curve []float64) {
	file, err := utils.OpenFile(parameters.MakeDir, outputPath, "Iq", modelName)
	if err != nil {
		println("unable to save I(q) for "+modelName+": ", err.Error())
		return
	}
	rows := [][]string{{"q (Ang^-1)", "I (cm^-1)"}}
	for i := range qs {
		rows = append(rows, []string{
			strconv.FormatFloat(qs[i], 'g', -1, 64),
			strconv.FormatFloat(curve[i], 'g', -1, 64),
		})
	}
	w := csv.NewWriter(file)
	w.WriteAll(rows)
	if parameters.Verbose() {
		println("I(q) saved")
	}
	if err := w.Error(); err != nil {
		log.Fatalln("error writing csv:", err)
	}
}

func saveMap(parameters config.ModelParameters, outputPath, modelName string, grid []float64, intensity [][]float64) {
	file, err := utils.OpenFile(parameters.MakeDir, outputPath, "Iqxy", modelName)
	if err != nil {
		println("unable to save I(qx,qy) for "+modelName+": ", err.Error())
		return
	}
	rows := [][]string{{"qx (Ang^-1)", "qy (Ang^-1)", "I (cm^-1)"}}
	for iy := range intensity {
		for ix := range intensity[iy] {
			rows = append(rows, []string{
				strconv.FormatFloat(grid[ix], 'g', -1, 64),
				strconv.FormatFloat(grid[iy], 'g', -1, 64),
				strconv.FormatFloat(intensity[iy][ix], 'g', -1, 64),
			})
		}
	}
	w := csv.NewWriter(file)
	w.WriteAll(rows)
	if parameters.Verbose() {
		println("I(qx,qy) saved")
	}
	if err := w.Error(); err != nil {
		log.Fatalln("error writing csv:", err)
	}
}
