package main

import (
	"github.com/BurntSushi/toml"
)

// fileSettings holds CLI defaults loadable from a TOML file via -config,
// letting flags override whatever the file sets.
type fileSettings struct {
	Workers      int    `toml:"workers"`
	JSON         bool   `toml:"json"`
	BenchHistory string `toml:"bench_history"`
}

// loadSettings reads fileSettings from a TOML file at path.
func loadSettings(path string) (fileSettings, error) {
	var s fileSettings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return fileSettings{}, err
	}

	return s, nil
}
