package scenario

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadDir loads every scenario in the directory at path. Files without
// a .yaml or .yml extension are skipped. The returned map is keyed by
// file name without the extension. Scenarios that do not specify a
// name are given that key as their name.
func LoadDir(path string) (map[string]*Scenario, error) {
	dir, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	scenarios := make(map[string]*Scenario, len(dir))
	for _, ent := range dir {
		if t := ent.Type().Type(); !t.IsRegular() && (t != fs.ModeSymlink) {
			continue
		}

		ext := filepath.Ext(ent.Name())
		if (ext != ".yaml") && (ext != ".yml") {
			continue
		}
		name := strings.TrimSuffix(ent.Name(), ext)
		if _, ok := scenarios[name]; ok {
			return nil, fmt.Errorf("load %q: %w", ent.Name(), ErrDuplicate)
		}

		entpath := filepath.Join(path, ent.Name())
		s, err := DecodeFile(entpath)
		if err != nil {
			return nil, fmt.Errorf("load %q: %w", entpath, err)
		}
		if s.Name == "" {
			s.Name = name
		}

		scenarios[name] = s
	}

	return scenarios, nil
}

// ErrDuplicate is returned by LoadDir when two files in a directory
// map to the same scenario name, such as a.yaml and a.yml.
var ErrDuplicate = errors.New("duplicate scenario name")
