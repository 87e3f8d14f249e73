package detector

import (
	"testing"
)

func TestDetector_DetectISO(t *testing.T) {
	d := New()

	tests := []struct {
		name     string
		text     string
		wantLang string
		wantOK   bool
	}{
		{
			name:   "empty text",
			text:   "",
			wantOK: false,
		},
		{
			name:   "whitespace only",
			text:   "   \n\t",
			wantOK: false,
		},
		{
			name:     "english fact",
			text:     "A group of flamingos is called a flamboyance, and they can only eat with their heads upside down.",
			wantLang: "en",
			wantOK:   true,
		},
		{
			name:     "german fact",
			text:     "Eine Gruppe von Flamingos nennt man eine Extravaganz, und sie können nur mit dem Kopf nach unten fressen.",
			wantLang: "de",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, ok := d.DetectISO(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("DetectISO(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if lang != tt.wantLang {
				t.Errorf("DetectISO(%q) = %q, want %q", tt.text, lang, tt.wantLang)
			}
		})
	}
}
