package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

var errBadConfig = errors.New("invalid config")

type appConfig struct {
	DataDir            string `yaml:"data_dir"`
	Backend            string `yaml:"backend"` // "file" (snapshot pair) or "bolt" (single stash file)
	StashFile          string `yaml:"stash_file"`
	EmployeeCapacity   int    `yaml:"employee_capacity"`
	DepartmentCapacity int    `yaml:"department_capacity"`
}

func defaultConfig() appConfig {
	return appConfig{
		DataDir:            "data",
		Backend:            "file",
		StashFile:          "hr.db",
		EmployeeCapacity:   500,
		DepartmentCapacity: 20,
	}
}

// loadConfig reads path, falling back to defaults when the file is absent.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", errBadConfig, err)
	}
	switch cfg.Backend {
	case "file", "bolt":
	default:
		return cfg, fmt.Errorf("%w: unknown backend %q", errBadConfig, cfg.Backend)
	}
	if cfg.EmployeeCapacity < 0 || cfg.DepartmentCapacity < 0 {
		return cfg, fmt.Errorf("%w: negative capacity", errBadConfig)
	}
	if cfg.DataDir == "" {
		return cfg, fmt.Errorf("%w: data_dir is empty", errBadConfig)
	}
	return cfg, nil
}
