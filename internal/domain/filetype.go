package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileType identifies a supported source language, keyed by file
// extension.
type FileType string

const (
	Python     FileType = "py"
	JavaScript FileType = "js"
	React      FileType = "jsx"
)

// FileTypes lists every supported file type.
var FileTypes = []FileType{Python, JavaScript, React}

// FileTypeForPath resolves a path's extension to its FileType.
func FileTypeForPath(path string) (FileType, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".py":
		return Python, nil
	case ".js":
		return JavaScript, nil
	case ".jsx":
		return React, nil
	}
	return "", fmt.Errorf("unsupported file type %q (allowed: .py, .js, .jsx)", ext)
}

// Ext returns the file extension for the type, including the dot.
func (t FileType) Ext() string { return "." + string(t) }

// Valid reports whether t is a supported file type.
func (t FileType) Valid() bool {
	switch t {
	case Python, JavaScript, React:
		return true
	}
	return false
}
