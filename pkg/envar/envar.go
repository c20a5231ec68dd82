package envar

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Kind is the closed set of primitive types an environment variable can be
// parsed as.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindU16
	KindU32
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

var ErrorMissingVariable = errors.New("missing environment variable")

// ParseError reports a value that was present but did not convert to the
// requested kind.
type ParseError struct {
	Key  string
	Raw  string
	Kind Kind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: cannot convert %q to %s", e.Key, e.Raw, e.Kind)
}

// Envar names an environment variable and the kind it should be parsed as.
// Construction does no validation; validation happens at Load.
type Envar struct {
	Kind Kind
	Key  string
}

func String(key string) Envar { return Envar{KindString, key} }
func Bool(key string) Envar   { return Envar{KindBool, key} }
func U16(key string) Envar    { return Envar{KindU16, key} }
func U32(key string) Envar    { return Envar{KindU32, key} }

// LoadedEnvar carries the parsed value for a descriptor. Key and Kind always
// match the descriptor it was produced from.
type LoadedEnvar struct {
	Kind Kind
	Key  string
	str  string
	b    bool
	u16  uint16
	u32  uint32
}

// Load reads the descriptor's key from the process environment and parses
// the value. A missing key yields ErrorMissingVariable; a value that does
// not convert yields a *ParseError carrying the raw text.
func (v Envar) Load() (LoadedEnvar, error) {
	raw, ok := os.LookupEnv(v.Key)
	if !ok {
		return LoadedEnvar{}, fmt.Errorf("%w: %s", ErrorMissingVariable, v.Key)
	}

	loaded := LoadedEnvar{Kind: v.Kind, Key: v.Key}
	switch v.Kind {
	case KindString:
		loaded.str = raw
	case KindBool:
		// strict grammar, strconv.ParseBool also accepts 1/t/TRUE/...
		switch raw {
		case "true":
			loaded.b = true
		case "false":
			loaded.b = false
		default:
			return LoadedEnvar{}, &ParseError{Key: v.Key, Raw: raw, Kind: v.Kind}
		}
	case KindU16:
		val, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return LoadedEnvar{}, &ParseError{Key: v.Key, Raw: raw, Kind: v.Kind}
		}
		loaded.u16 = uint16(val)
	case KindU32:
		val, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return LoadedEnvar{}, &ParseError{Key: v.Key, Raw: raw, Kind: v.Kind}
		}
		loaded.u32 = uint32(val)
	default:
		return LoadedEnvar{}, fmt.Errorf("unsupported kind: %s", v.Kind)
	}

	return loaded, nil
}

func (l LoadedEnvar) StringValue() string { return l.str }
func (l LoadedEnvar) BoolValue() bool     { return l.b }
func (l LoadedEnvar) U16Value() uint16    { return l.u16 }
func (l LoadedEnvar) U32Value() uint32    { return l.u32 }

// Text is the canonical text form of the value: the raw string, true/false,
// or base-10 digits. Parsing it with the same kind reproduces the value.
func (l LoadedEnvar) Text() string {
	switch l.Kind {
	case KindString:
		return l.str
	case KindBool:
		return strconv.FormatBool(l.b)
	case KindU16:
		return strconv.FormatUint(uint64(l.u16), 10)
	case KindU32:
		return strconv.FormatUint(uint64(l.u32), 10)
	}
	return ""
}

// LoadAll loads every descriptor in order, stopping at the first failure.
func LoadAll(vars []Envar) ([]LoadedEnvar, error) {
	loaded := make([]LoadedEnvar, 0, len(vars))
	for _, v := range vars {
		l, err := v.Load()
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, l)
	}
	return loaded, nil
}
