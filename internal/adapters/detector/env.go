// Package detector picks between the interactive and the linear picker.
package detector

import (
	"os"

	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents how a selection is collected.
type OutputMode int

const (
	// ModeAuto defers to environment detection.
	ModeAuto OutputMode = iota
	// ModeTUI runs the interactive column picker.
	ModeTUI
	// ModeLinear resolves the selection without prompting and prints it.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// Env is the part of the process environment that decides the mode.
type Env struct {
	StdinTTY  bool
	StdoutTTY bool
	CI        string
}

// CurrentEnv reads Env from the running process.
func CurrentEnv() Env {
	return Env{
		StdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		StdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
		CI:        os.Getenv("CI"),
	}
}

// Detect returns the recommended mode for env. The picker reads keys from
// stdin and draws on stdout, so both must be terminals.
func Detect(env Env) OutputMode {
	isCI := env.CI == "true" || env.CI == "1"
	if !env.StdinTTY || !env.StdoutTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// DetectEnvironment returns the recommended mode for the running process.
func DetectEnvironment() OutputMode {
	return Detect(CurrentEnv())
}

// ParseMode parses an --output-mode flag value. "ci" is accepted as an alias of linear.
func ParseMode(flag string) (OutputMode, error) {
	switch flag {
	case "", "auto":
		return ModeAuto, nil
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	default:
		return ModeAuto, zerr.With(domain.ErrInvalidMode, "mode", flag)
	}
}

// ResolveMode applies a user override to the detected mode.
func ResolveMode(autoDetected, override OutputMode) OutputMode {
	if override == ModeAuto {
		return autoDetected
	}
	return override
}
