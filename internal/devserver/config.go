package devserver

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Dir  string `env:"MJS_SERVER_DIR"  envDefault:"./out"`
	Addr string `env:"MJS_SERVER_ADDR" envDefault:":8080"`
}

// LoadConfigFromEnv reads Config from the environment, applying defaults.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
