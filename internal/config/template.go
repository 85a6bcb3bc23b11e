package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

var defaultTemplate = template.Must(template.New("config.yaml").Parse(`# rng-rename configuration.
# Every key is optional; command-line flags override these values, and
# RNG_RENAME_<KEY> environment variables (e.g. RNG_RENAME_LENGTH,
# RNG_RENAME_ENGINE_MAX_FILES) override this file.

# Number of random characters in each name.
length: {{.Length}}

# letters, numbers, alpha_numeric, base16, base64 or custom.
char_set: {{.CharSet}}

# upper, lower or mixed, where the character set supports it.
# case: lower

# Symbols to use when char_set is custom.
# custom_chars: ""

# keep_all, keep_last, static or discard.
ext_mode: {{.ExtMode}}
# static_ext: ""

# prefix: ""
# suffix: ""

# none, batch or each.
confirm: {{.Confirm}}
# Files per confirmation batch; 0 confirms everything at once.
confirm_batch: {{.ConfirmBatch}}

# ignore, warn or halt.
error_handling: {{.ErrorHandling}}

# Append a JSONL record of every run to this file.
# journal: ""

# auto, always or never.
color: {{.Color}}

engine:
  # Files-to-names ratio at or above which every name is enumerated up front.
  ratio_threshold: {{.Engine.RatioThreshold}}
  # Largest number of files accepted in one run.
  max_files: {{.Engine.MaxFiles}}
  # Largest naming space that may be enumerated.
  max_permutations: {{.Engine.MaxPermutations}}
`))

// ErrExists is returned by WriteDefault when the file is already there.
var ErrExists = errors.New("config file already exists")

// DefaultYAML renders the commented default config file.
func DefaultYAML() ([]byte, error) {
	var buf bytes.Buffer
	if err := defaultTemplate.Execute(&buf, Default()); err != nil {
		return nil, fmt.Errorf("render default config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDefault writes a commented default config to path, creating its
// directory. An existing file is left alone unless force is set.
func WriteDefault(path string, force bool) error {
	data, err := DefaultYAML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
