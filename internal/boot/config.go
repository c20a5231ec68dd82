package boot

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

const (
	FormatDirective = "directive"
	FormatLdflags   = "ldflags"
)

type Config struct {
	EnvFile        string `env:"ENVAR_FILE,default=.env"`
	Manifest       string `env:"ENVAR_MANIFEST,default=envar.yaml"`
	Format         string `env:"ENVAR_FORMAT,default=directive"`
	LdflagsPackage string `env:"ENVAR_LDFLAGS_PACKAGE,default=main"`
}

func Load() (Config, error) {
	config := Config{}
	if err := envconfig.Process(context.Background(), &config); err != nil {
		return Config{}, fmt.Errorf("parsing env vars: %w", err)
	}
	if config.Format != FormatDirective && config.Format != FormatLdflags {
		return Config{}, fmt.Errorf("unknown output format: %s", config.Format)
	}
	return config, nil
}
