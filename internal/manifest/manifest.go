package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"uk.co.dudmesh.envar/pkg/envar"
)

type Entry struct {
	Key  string `yaml:"key"`
	Type string `yaml:"type"`
}

type Manifest struct {
	Vars []Entry `yaml:"vars"`
}

// Load reads a YAML manifest and returns the descriptors it names, in order.
func Load(path string) ([]envar.Envar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	m := Manifest{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	return Descriptors(m.Vars)
}

func Descriptors(entries []Entry) ([]envar.Envar, error) {
	vars := make([]envar.Envar, 0, len(entries))
	for _, e := range entries {
		v, err := descriptor(e)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return vars, nil
}

// ParseArg turns a KEY:type command-line argument into a descriptor.
func ParseArg(arg string) (envar.Envar, error) {
	key, typ, ok := strings.Cut(arg, ":")
	if !ok {
		return envar.Envar{}, fmt.Errorf("invalid argument %q, want KEY:type", arg)
	}
	return descriptor(Entry{Key: key, Type: typ})
}

func descriptor(e Entry) (envar.Envar, error) {
	if e.Key == "" {
		return envar.Envar{}, fmt.Errorf("entry with empty key")
	}
	switch e.Type {
	case "string":
		return envar.String(e.Key), nil
	case "bool":
		return envar.Bool(e.Key), nil
	case "u16":
		return envar.U16(e.Key), nil
	case "u32":
		return envar.U32(e.Key), nil
	}
	return envar.Envar{}, fmt.Errorf("unknown type %q for %s", e.Type, e.Key)
}
