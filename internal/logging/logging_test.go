package logging

import "testing"

func TestNewProvider_Console(t *testing.T) {
	p, err := NewProvider(Config{Level: "debug", Format: "console"})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}

	logger := p.Get("fact")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}
	logger.Debug("provider.initialised", "component", "fact")
}

func TestNewProvider_UnsupportedFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestProvider_NilFallsBackToNoOp(t *testing.T) {
	var p *Provider
	if _, ok := p.Get("fact").(noopLogger); !ok {
		t.Errorf("expected noopLogger, got %T", p.Get("fact"))
	}
}

func TestOrNoOp(t *testing.T) {
	if _, ok := OrNoOp(nil).(noopLogger); !ok {
		t.Error("expected noopLogger for nil input")
	}

	l := NoOp()
	if OrNoOp(l) != l {
		t.Error("expected logger to be returned unchanged")
	}
}

func TestNormalizeLevel(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"DEBUG":   "debug",
		"warning": "warn",
		" info ":  "info",
		"bogus":   "",
	}
	for in, want := range tests {
		got := normalizeLevel(in)
		if want == "" {
			if got != "" {
				t.Errorf("normalizeLevel(%q) = %q, want empty", in, got)
			}
			continue
		}
		if got == "" {
			t.Errorf("normalizeLevel(%q) returned empty, want a level", in)
		}
	}
}
