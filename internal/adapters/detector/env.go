// Package detector provides environment detection for output format selection.
package detector

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
	"go.trai.ch/scaffold/internal/core/domain"
)

// Environment describes where output is going.
type Environment struct {
	// TTY is true when stdout is a terminal.
	TTY bool
	// CI is true when a CI environment variable is set.
	CI bool
}

// Interactive reports whether a full-screen terminal UI may be started.
func (e Environment) Interactive() bool {
	return e.TTY && !e.CI
}

// DetectEnvironment inspects stdout and the CI variable.
func DetectEnvironment() Environment {
	ci := os.Getenv("CI")
	return Environment{
		TTY: term.IsTerminal(int(os.Stdout.Fd())),
		CI:  ci == "true" || ci == "1",
	}
}

// IsStdout reports whether output names standard output.
func IsStdout(output string) bool {
	return output == "" || output == "-"
}

// ResolveFormat picks the concrete format for a render.
// An explicit request wins. Otherwise the output extension decides, then the
// configured default, then the environment: text for an interactive terminal,
// JSON everywhere else.
func ResolveFormat(requested, configured domain.Format, output string, env Environment) domain.Format {
	if requested != "" && requested != domain.FormatAuto {
		return requested
	}

	if !IsStdout(output) {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".svg":
			return domain.FormatSVG
		case ".json":
			return domain.FormatJSON
		case ".txt":
			return domain.FormatText
		}
	}

	if configured != "" && configured != domain.FormatAuto {
		return configured
	}

	if IsStdout(output) && env.Interactive() {
		return domain.FormatText
	}
	return domain.FormatJSON
}
