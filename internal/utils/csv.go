package utils

import (
	"encoding/csv"
	"os"
	"sort"

	"github.com/facette/natsort"
)

type CSV [][]string

func (data CSV) Less(i, j int) bool {
	return natsort.Compare(data[i][0], data[j][0])
}

func (data CSV) Len() int {
	return len(data)
}
func (data CSV) Swap(i, j int) {
	data[i], data[j] = data[j], data[i]
}

// WriteAsCSV writes data ordered naturally by its first column, preceded by a
// header row.
func WriteAsCSV(data CSV, path, subpath, filename string, columns []string) {
	file, err := OpenFile(true, path, subpath, GetFilename(filename))
	if err != nil {
		println("unable to save "+filename+": ", err.Error())
		os.Exit(1)
	}
	w := csv.NewWriter(file)
	w.WriteAll([][]string{columns})
	sort.Sort(data)
	w.WriteAll(data)
	w.Flush()
}
