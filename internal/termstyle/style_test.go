package termstyle

import "testing"

func TestBold_Enabled(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	got := Bold("hello")
	want := "\033[1mhello\033[0m"
	if got != want {
		t.Errorf("Bold(\"hello\") = %q, want %q", got, want)
	}
}

func TestBold_Disabled(t *testing.T) {
	SetEnabled(false)

	got := Bold("hello")
	if got != "hello" {
		t.Errorf("Bold(\"hello\") with disabled = %q, want %q", got, "hello")
	}
}

func TestDim_Enabled(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	got := Dim("info")
	want := "\033[2minfo\033[0m"
	if got != want {
		t.Errorf("Dim(\"info\") = %q, want %q", got, want)
	}
}

func TestColors_Enabled(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	tests := []struct {
		name string
		fn   func(string) string
		code string
	}{
		{"Red", Red, "\033[31m"},
		{"Green", Green, "\033[32m"},
		{"Yellow", Yellow, "\033[33m"},
		{"Cyan", Cyan, "\033[36m"},
	}
	for _, tt := range tests {
		got := tt.fn("x")
		want := tt.code + "x\033[0m"
		if got != want {
			t.Errorf("%s(\"x\") = %q, want %q", tt.name, got, want)
		}
	}
}

func TestColors_Disabled(t *testing.T) {
	SetEnabled(false)

	fns := []func(string) string{Bold, Dim, Red, Green, Yellow, Cyan, Path, NewName}
	for _, fn := range fns {
		got := fn("text")
		if got != "text" && got != `"text"` {
			t.Errorf("expected plain text when disabled, got %q", got)
		}
	}
}

func TestEmptyString(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	if got := Bold(""); got != "" {
		t.Errorf("Bold(\"\") = %q, want empty", got)
	}
}

func TestPathAndNewName(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	if got := Path("/a b"); got != "\033[33m\"/a b\"\033[0m" {
		t.Errorf("Path() = %q", got)
	}
	if got := NewName("0f3a"); got != "\033[32m\"0f3a\"\033[0m" {
		t.Errorf("NewName() = %q", got)
	}
	if got := DryRun(); got != "\033[31mDRY RUN\033[0m" {
		t.Errorf("DryRun() = %q", got)
	}
}

func TestConfigure(t *testing.T) {
	defer SetEnabled(false)

	if err := Configure("always"); err != nil {
		t.Fatalf("Configure(always): %v", err)
	}
	if !Enabled() {
		t.Error("expected styling enabled after always")
	}
	if err := Configure("never"); err != nil {
		t.Fatalf("Configure(never): %v", err)
	}
	if Enabled() {
		t.Error("expected styling disabled after never")
	}
	if err := Configure("sometimes"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
