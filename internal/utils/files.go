package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// GetFilename strips the directory and extension from a file path.
func GetFilename(filePath string) string {
	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OpenFile creates the output file for one model, either inside a per-model
// directory or as a suffixed flat file.
func OpenFile(makeDir bool, outputPath string, fileSuffix, modelName string) (*os.File, error) {
	if makeDir && fileSuffix != "" && fileSuffix != "." {
		os.MkdirAll(outputPath+modelName, 0750)
		return os.Create(outputPath + modelName + "/" + fileSuffix + ".txt")
	}
	if fileSuffix == "" {
		return os.Create(outputPath + modelName + ".txt")
	}
	return os.Create(outputPath + modelName + "_" + fileSuffix + ".txt")
}
