package lab

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// labFileWrapper matches the on-disk lab file layout:
//
//	lab:
//	  name: lab6
//	  title: Custom Scenario
//	  preset:
//	    risk_free_rate: 0.02
//	    market_return: 0.09
//	    beta: 1.3
type labFileWrapper struct {
	Lab Lab `yaml:"lab"`
}

// LoadFile reads a single lab definition from a YAML file.
func LoadFile(path string) (Lab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lab{}, fmt.Errorf("read lab file: %w", err)
	}

	var wrapper labFileWrapper
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return Lab{}, fmt.Errorf("parse lab file %s: %w", filepath.Base(path), err)
	}
	if wrapper.Lab.Name == "" {
		return Lab{}, fmt.Errorf("lab file %s: missing lab name", filepath.Base(path))
	}
	return wrapper.Lab, nil
}

// LoadDir reads every *.yaml lab file in dir, sorted by filename.
// Files that fail to parse are skipped so one bad file does not hide
// the rest; callers logging skips should use the returned skip list.
func LoadDir(dir string) ([]Lab, []error) {
	pattern := filepath.Join(dir, "*.yaml")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, []error{fmt.Errorf("scan lab dir: %w", err)}
	}
	sort.Strings(files)

	var labs []Lab
	var skipped []error
	for _, file := range files {
		l, err := LoadFile(file)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		labs = append(labs, l)
	}
	return labs, skipped
}

// LoadCatalog builds the merged catalog for dir. An empty dir name
// yields the built-ins only.
func LoadCatalog(dir string) (*Catalog, []error) {
	if dir == "" {
		return NewCatalog(), nil
	}
	extra, skipped := LoadDir(dir)
	return NewCatalog(extra...), skipped
}
