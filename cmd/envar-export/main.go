package main

import (
	"fmt"
	"os"

	"github.com/labstack/gommon/log"
	"uk.co.dudmesh.envar/internal/boot"
	"uk.co.dudmesh.envar/internal/manifest"
	"uk.co.dudmesh.envar/pkg/envar"
)

func main() {
	config, err := boot.Load()
	if err != nil {
		log.Fatalf("boot: %+v", err)
	}

	path, err := envar.InitFrom(config.EnvFile)
	if err != nil {
		log.Fatalf("loading env file: %+v", err)
	}

	vars, err := descriptors(config)
	if err != nil {
		log.Fatalf("resolving variables: %+v", err)
	}
	if len(vars) == 0 {
		log.Fatalf("no variables to export")
	}

	loaded, err := envar.LoadAll(vars)
	if err != nil {
		log.Fatalf("loading variables: %+v", err)
	}

	switch config.Format {
	case boot.FormatLdflags:
		fmt.Println(envar.LdflagsAll(loaded, config.LdflagsPackage))
	default:
		envar.ExportAll(loaded)
		fmt.Println(envar.RerunIfChanged(path))
	}
}

// descriptors come from KEY:type arguments when given, else the manifest.
func descriptors(config boot.Config) ([]envar.Envar, error) {
	args := os.Args[1:]
	if len(args) == 0 {
		return manifest.Load(config.Manifest)
	}

	vars := make([]envar.Envar, 0, len(args))
	for _, arg := range args {
		v, err := manifest.ParseArg(arg)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return vars, nil
}
