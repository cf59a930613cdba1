//go:build js
// +build js

package main

import (
	"flag"
	"os"

	"github.com/mattsenior/mjs/internal/bootstrap"
	"github.com/mattsenior/mjs/internal/log"
)

func main() {
	defaults := bootstrap.DefaultConfig()
	legacyClass := flag.String("legacy-class", defaults.LegacyClass, "Root element class marking a legacy browser")
	readyClass := flag.String("ready-class", defaults.ReadyClass, "Root element class added once initialized")
	initNow := flag.Bool("init", true, "Initialize as soon as the module loads")
	logLevel := flag.String("log-level", log.LevelLog.String(), "Console log level: debug, log, warn or error")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	log.SetLevel(level)

	app, err := bootstrap.New(bootstrap.Config{
		LegacyClass: *legacyClass,
		ReadyClass:  *readyClass,
	}, bootstrap.WithLogger(log.Console()))
	if err != nil {
		log.Error("Failed to configure bootstrap: ", err)
		os.Exit(2)
	}

	if !register(app) {
		log.Warn("MJS is already registered by another module instance, leaving it in place")
		return
	}

	if *initNow {
		if err := initialize(app); err != nil {
			log.Error("Failed to initialize: ", err)
		}
	}

	select {}
}
