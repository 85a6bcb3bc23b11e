package termstyle

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// enabled tracks whether ANSI styling is active.
// Defaults to true if stdout is a TTY and NO_COLOR is unset.
var enabled = detect()

func detect() bool {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}
	return !termenv.EnvNoColor()
}

// SetEnabled overrides the auto-detected TTY check.
func SetEnabled(on bool) {
	enabled = on
}

// Enabled returns whether styling is currently active.
func Enabled() bool {
	return enabled
}

// Configure applies a --color value: "auto" re-runs detection, "always"
// and "never" force styling on or off.
func Configure(mode string) error {
	switch mode {
	case "", "auto":
		enabled = detect()
	case "always":
		enabled = true
	case "never":
		enabled = false
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", mode)
	}
	return nil
}

func render(s string, apply func(termenv.Style) termenv.Style) string {
	if !enabled || s == "" {
		return s
	}
	return apply(termenv.String(s)).String()
}

func fg(c termenv.ANSIColor) func(termenv.Style) termenv.Style {
	return func(st termenv.Style) termenv.Style { return st.Foreground(c) }
}

// Bold renders text in bold.
func Bold(s string) string { return render(s, termenv.Style.Bold) }

// Dim renders text in dim/faint.
func Dim(s string) string { return render(s, termenv.Style.Faint) }

// Red renders text in red.
func Red(s string) string { return render(s, fg(termenv.ANSIRed)) }

// Green renders text in green.
func Green(s string) string { return render(s, fg(termenv.ANSIGreen)) }

// Yellow renders text in yellow.
func Yellow(s string) string { return render(s, fg(termenv.ANSIYellow)) }

// Cyan renders text in cyan.
func Cyan(s string) string { return render(s, fg(termenv.ANSICyan)) }

// Path renders a source path quoted and in yellow.
func Path(p string) string { return Yellow(fmt.Sprintf("%q", p)) }

// NewName renders a generated name quoted and in green.
func NewName(n string) string { return Green(fmt.Sprintf("%q", n)) }

// DryRun is the marker appended to output produced without touching files.
func DryRun() string { return Red("DRY RUN") }
