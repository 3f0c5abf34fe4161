package main

import (
	"flag"
	"time"

	"github.com/soocke/pixel-picker-go/app"
	"github.com/soocke/pixel-picker-go/config"
	"github.com/soocke/pixel-picker-go/debug"
)

func main() {
	cfgPath := flag.String("config", "picker.json", "path to the config file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime metrics")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)

	logger := NewLogger(*debugFlag || cfg.Debug)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}
	if *debugFlag {
		cfg.Debug = true
	}

	if cfg.Debug {
		debug.StartMemLogger(2*time.Second, logger)
		debug.StartGoroutineLogger(time.Second, logger)
	}

	application := app.NewApp("Pixel Picker", 480, 720, cfg, logger, *cfgPath)
	application.Start()
}
