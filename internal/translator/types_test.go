package translator

import (
	"context"
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
		wantErr  bool
	}{
		{name: "", wantName: "mymemory"},
		{name: "mymemory", wantName: "mymemory"},
		{name: "google", wantName: "google"},
		{name: "babelfish", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := New(tt.name, ServiceConfig{})
			if tt.wantErr {
				if err == nil {
					t.Error("expected error for unknown service")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if svc.Name() != tt.wantName {
				t.Errorf("expected %q, got %q", tt.wantName, svc.Name())
			}
		})
	}
}

func TestProviderError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ProviderError{Service: "google", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected ProviderError to unwrap to its cause")
	}
	if err.Error() != "google: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestGoogleService_InvalidTargetLanguage(t *testing.T) {
	svc := NewGoogleService(ServiceConfig{})

	_, err := svc.Translate(context.Background(), TranslateRequest{Text: "Katze", SourceLang: "de", TargetLang: "not a tag!"})
	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
}

func TestGoogleService_Metadata(t *testing.T) {
	svc := NewGoogleService(ServiceConfig{})

	if svc.Name() != "google" {
		t.Errorf("expected 'google', got %q", svc.Name())
	}
	if err := svc.IsAvailable(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	langs, err := svc.SupportedLanguages(context.Background())
	if err != nil || langs != nil {
		t.Errorf("expected nil list and nil error, got %v, %v", langs, err)
	}
}
