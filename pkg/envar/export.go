package envar

import (
	"fmt"
	"strings"
)

const directivePrefix = "envar"

// Directive is the build directive republishing this variable for a later
// compilation stage: "envar:set=KEY=VALUE".
func (l LoadedEnvar) Directive() string {
	return fmt.Sprintf("%s:set=%s=%s", directivePrefix, l.Key, l.Text())
}

// Export prints the directive on standard output. Re-exporting the same key
// is harmless; for conflicting values the last write wins downstream.
func (l LoadedEnvar) Export() {
	fmt.Println(l.Directive())
}

// Ldflags renders the variable as a go build -ldflags argument setting
// pkg.KEY at link time.
func (l LoadedEnvar) Ldflags(pkg string) string {
	return fmt.Sprintf("-X '%s.%s=%s'", pkg, l.Key, l.Text())
}

// RerunIfChanged is the directive marking the build as dependent on the
// contents of path.
func RerunIfChanged(path string) string {
	return fmt.Sprintf("%s:rerun-if-changed=%s", directivePrefix, path)
}

func ExportAll(loaded []LoadedEnvar) {
	for _, l := range loaded {
		l.Export()
	}
}

func LdflagsAll(loaded []LoadedEnvar, pkg string) string {
	args := make([]string, 0, len(loaded))
	for _, l := range loaded {
		args = append(args, l.Ldflags(pkg))
	}
	return strings.Join(args, " ")
}
