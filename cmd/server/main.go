package main

import (
	"os"

	"github.com/mattsenior/mjs/internal/devserver"
	"github.com/mattsenior/mjs/internal/log"
)

func main() {
	cfg, err := devserver.LoadConfigFromEnv()
	if err != nil {
		log.Error("Failed to load config: ", err)
		os.Exit(2)
	}
	if err := devserver.ListenAndServe(cfg); err != nil {
		log.Error("Server stopped: ", err)
		os.Exit(1)
	}
}
