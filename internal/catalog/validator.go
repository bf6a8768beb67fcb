package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
)

var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xls":  true,
}

func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return fmt.Errorf("filename %q has no extension", filename)
	}
	if !allowedExtensions[ext] {
		return fmt.Errorf("unsupported menu file type %q, expected a spreadsheet", ext)
	}
	return nil
}
