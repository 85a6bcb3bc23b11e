// Package finalise turns generated random names into final file names by
// adding a prefix, a suffix and an extension.
package finalise

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"rngrename/internal/errmode"
	"rngrename/internal/fsname"
	"rngrename/internal/namegen"
)

// ExtMode selects the extension of the renamed file.
type ExtMode string

const (
	// KeepAll keeps everything after the first non-leading dot: "tar.xz".
	KeepAll ExtMode = "keep_all"
	// KeepLast keeps the part after the last dot: "xz".
	KeepLast ExtMode = "keep_last"
	// Static uses a fixed extension for every file.
	Static ExtMode = "static"
	// Discard drops the extension.
	Discard ExtMode = "discard"
)

func (m ExtMode) String() string { return string(m) }

// Set implements pflag.Value.
func (m *ExtMode) Set(v string) error {
	switch ExtMode(v) {
	case KeepAll, KeepLast, Static, Discard:
		*m = ExtMode(v)
		return nil
	}
	return fmt.Errorf("unknown extension mode %q (want keep_all, keep_last, static or discard)", v)
}

// Type implements pflag.Value.
func (m *ExtMode) Type() string { return "mode" }

// NotUTF8Error reports a file name that is not valid UTF-8.
type NotUTF8Error struct {
	Path string
}

func (e *NotUTF8Error) Error() string {
	return fmt.Sprintf("%q is not UTF-8", e.Path)
}

// Options controls name composition.
type Options struct {
	Prefix    string
	Suffix    string
	ExtMode   ExtMode
	StaticExt string
}

// Validate checks that the options can be applied.
func (o Options) Validate() error {
	switch o.ExtMode {
	case "", KeepAll, KeepLast, Discard:
		return nil
	case Static:
		if staticExt(o.StaticExt) == "" {
			return errors.New("--static-ext must be a non-empty, filename-safe extension when --ext-mode=static")
		}
		return nil
	}
	return fmt.Errorf("unknown extension mode %q", o.ExtMode)
}

func staticExt(s string) string {
	return fsname.Sanitize(strings.TrimPrefix(s, "."))
}

// Extension returns the extension, without its dot, that the file at path
// gets under mode. ok is false when the new name has no extension.
func Extension(path string, mode ExtMode, static string) (ext string, ok bool, err error) {
	switch mode {
	case Discard:
		return "", false, nil
	case Static:
		ext = staticExt(static)
		return ext, ext != "", nil
	}

	base := filepath.Base(path)
	if !utf8.ValidString(base) {
		return "", false, &NotUTF8Error{Path: path}
	}
	// A leading dot marks a hidden file, not an extension.
	name := strings.TrimPrefix(base, ".")

	switch mode {
	case KeepAll:
		_, ext, _ = strings.Cut(name, ".")
	case "", KeepLast:
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			ext = name[i+1:]
		}
	default:
		return "", false, fmt.Errorf("unknown extension mode %q", mode)
	}
	return ext, ext != "", nil
}

// Finalise composes prefix + random name + suffix + "." + extension for every
// pair. Prefix and suffix are sanitised first. Files whose extension cannot
// be determined are handled per h.Mode; skipped files are dropped from the
// result.
func Finalise(a namegen.Assignment, opts Options, h errmode.Handler) (namegen.Assignment, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	prefix := fsname.Sanitize(opts.Prefix)
	suffix := fsname.Sanitize(opts.Suffix)

	out := make(namegen.Assignment, 0, len(a))
	for _, p := range a {
		var ext string
		var hasExt bool
		ok, err := h.Do(fmt.Sprintf("Error getting extension of %q", p.Path), func() error {
			var err error
			ext, hasExt, err = Extension(p.Path, opts.ExtMode, opts.StaticExt)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("finalise names: %w", err)
		}
		if !ok {
			continue
		}

		name := prefix + p.Name + suffix
		if hasExt {
			name += "." + ext
		}
		out = append(out, namegen.Pair{Path: p.Path, Name: name})
	}

	if h.Log != nil {
		h.Log.Debug("finalised names", "count", len(out))
	}
	return out, nil
}
