// hrd is an interactive HR database: a numbered menu over the hr package,
// persisting to snapshot files or a Bolt stash depending on configuration.
package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"recdb/hr"
)

func main() {
	configPath := flag.String("config", "hrd.yaml", "path to the config file")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("cannot load config", zap.String("path", *configPath), zap.Error(err))
		os.Exit(1)
	}
	logger.Debug("config loaded",
		zap.String("data_dir", cfg.DataDir),
		zap.String("backend", cfg.Backend))

	db := hr.New(hr.Config{
		EmployeeCapacity:   cfg.EmployeeCapacity,
		DepartmentCapacity: cfg.DepartmentCapacity,
	})

	m := newMenu(db, os.Stdin, os.Stdout, cfg, logger)
	m.run()
}

func newLogger(verbose bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		zcfg := zap.NewProductionConfig()
		zcfg.OutputPaths = []string{"stderr"}
		logger, err = zcfg.Build()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
