// Package prefs persists small user preferences between runs. Packages
// themselves are never stored; only the document-header fields the form
// should come up prefilled with.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/liyas/soalgen/internal/exam"
)

const headerFile = "header.json"

func headerPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "soalgen")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, headerFile), nil
}

// SaveHeader remembers the last-used header fields.
func SaveHeader(h exam.HeaderInfo) error {
	path, err := headerPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadHeader returns the remembered header fields, or a zero value when none
// were saved yet.
func LoadHeader() (exam.HeaderInfo, error) {
	path, err := headerPath()
	if err != nil {
		return exam.HeaderInfo{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return exam.HeaderInfo{}, nil
		}
		return exam.HeaderInfo{}, err
	}
	var h exam.HeaderInfo
	if err := json.Unmarshal(data, &h); err != nil {
		return exam.HeaderInfo{}, err
	}
	return h, nil
}
