package envar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirective(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("ENVAR_TEST_PORT", "8080")
	t.Setenv("ENVAR_TEST_SECURE", "true")

	port, err := U16("ENVAR_TEST_PORT").Load()
	assert.Nil(err)
	assert.Equal("envar:set=ENVAR_TEST_PORT=8080", port.Directive())

	secure, err := Bool("ENVAR_TEST_SECURE").Load()
	assert.Nil(err)
	assert.Equal("envar:set=ENVAR_TEST_SECURE=true", secure.Directive())

	assert.Equal("-X 'main.ENVAR_TEST_PORT=8080'", port.Ldflags("main"))
	assert.Equal("envar:rerun-if-changed=.env", RerunIfChanged(".env"))

	assert.Equal(
		"-X 'main.ENVAR_TEST_PORT=8080' -X 'main.ENVAR_TEST_SECURE=true'",
		LdflagsAll([]LoadedEnvar{port, secure}, "main"),
	)
}

// Exported text, re-parsed with the same kind, reproduces the value.
func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		raw string
		v   Envar
	}{
		{"some value", String("ENVAR_TEST_RT")},
		{"", String("ENVAR_TEST_RT")},
		{"true", Bool("ENVAR_TEST_RT")},
		{"false", Bool("ENVAR_TEST_RT")},
		{"65535", U16("ENVAR_TEST_RT")},
		{"0", U16("ENVAR_TEST_RT")},
		{"4294967295", U32("ENVAR_TEST_RT")},
	}

	for _, c := range cases {
		t.Setenv("ENVAR_TEST_RT", c.raw)
		loaded, err := c.v.Load()
		assert.Nil(err)

		directive := loaded.Directive()
		value, ok := strings.CutPrefix(directive, "envar:set=ENVAR_TEST_RT=")
		assert.True(ok)

		t.Setenv("ENVAR_TEST_RT", value)
		reloaded, err := c.v.Load()
		assert.Nil(err)
		assert.Equal(loaded, reloaded)
	}
}
