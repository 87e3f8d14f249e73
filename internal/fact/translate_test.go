package fact

import (
	"context"
	"errors"
	"testing"

	"github.com/valpere/randomly/internal/translator"
)

type stubService struct {
	name      string
	translate func(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error)
	requests  []translator.TranslateRequest
}

func (s *stubService) Name() string { return s.name }

func (s *stubService) Translate(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error) {
	s.requests = append(s.requests, req)
	if s.translate != nil {
		return s.translate(ctx, req)
	}
	return &translator.ServiceResult{ServiceName: s.name, TranslatedText: req.Text}, nil
}

func (s *stubService) IsAvailable(ctx context.Context) error { return nil }

func (s *stubService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"en", "de"}, nil
}

type stubDetector struct {
	lang string
	ok   bool
}

func (d stubDetector) DetectISO(string) (string, bool) { return d.lang, d.ok }

func dictionaryService() *stubService {
	return &stubService{
		name: "stub",
		translate: func(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error) {
			if req.SourceLang == "de" && req.TargetLang == "en" && req.Text == "Katze" {
				return &translator.ServiceResult{ServiceName: "stub", TranslatedText: "cat"}, nil
			}
			return nil, &translator.ProviderError{Service: "stub", Err: errors.New("unsupported pair")}
		},
	}
}

func TestTranslator_Translate(t *testing.T) {
	tr := NewTranslator(dictionaryService(), nil, nil)

	got, err := tr.Translate(context.Background(), Payload{Text: "Katze", Language: "de"}, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `"cat"` {
		t.Errorf("got %s, want %q", got, `"cat"`)
	}
}

func TestTranslator_Translate_FromFetchedJSON(t *testing.T) {
	p, err := ParsePayload(`{"text": "Katze", "language": "de"}`)
	if err != nil {
		t.Fatalf("ParsePayload failed: %v", err)
	}

	tr := NewTranslator(dictionaryService(), nil, nil)

	got, err := tr.Translate(context.Background(), *p, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `"cat"` {
		t.Errorf("got %s", got)
	}
}

func TestTranslator_Translate_NormalizesText(t *testing.T) {
	svc := &stubService{name: "stub"}
	tr := NewTranslator(svc, nil, nil)

	// "e" followed by a combining acute accent composes to U+00E9.
	if _, err := tr.Translate(context.Background(), Payload{Text: "  Cafe\u0301 \n", Language: "DE"}, "en"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(svc.requests) != 1 {
		t.Fatalf("expected one request, got %d", len(svc.requests))
	}
	req := svc.requests[0]
	if req.Text != "Caf\u00e9" {
		t.Errorf("expected NFC-normalized trimmed text, got %q", req.Text)
	}
	if req.SourceLang != "de" {
		t.Errorf("expected lower-cased source language, got %q", req.SourceLang)
	}
}

func TestTranslator_Translate_MissingLanguage(t *testing.T) {
	svc := &stubService{name: "stub"}
	tr := NewTranslator(svc, nil, nil)

	_, err := tr.Translate(context.Background(), Payload{Text: "Katze"}, "en")
	if !IsInvalidArgument(err) {
		t.Errorf("expected invalid argument, got %v", err)
	}
	if !errors.Is(err, ErrMissingLanguage) {
		t.Errorf("expected ErrMissingLanguage, got %v", err)
	}
	if len(svc.requests) != 0 {
		t.Errorf("expected no provider call, got %d", len(svc.requests))
	}
}

func TestTranslator_Translate_DetectsMissingLanguage(t *testing.T) {
	svc := &stubService{name: "stub"}
	tr := NewTranslator(svc, stubDetector{lang: "en", ok: true}, nil)

	if _, err := tr.Translate(context.Background(), Payload{Text: "Cats sleep a lot."}, "de"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.requests[0].SourceLang != "en" {
		t.Errorf("expected detected source 'en', got %q", svc.requests[0].SourceLang)
	}
}

func TestTranslator_Translate_DetectionFails(t *testing.T) {
	svc := &stubService{name: "stub"}
	tr := NewTranslator(svc, stubDetector{}, nil)

	_, err := tr.Translate(context.Background(), Payload{Text: "???"}, "de")
	if !errors.Is(err, ErrMissingLanguage) {
		t.Errorf("expected ErrMissingLanguage, got %v", err)
	}
}

func TestTranslator_Translate_TargetNotValidatedLocally(t *testing.T) {
	svc := &stubService{name: "stub"}
	tr := NewTranslator(svc, nil, nil)

	if _, err := tr.Translate(context.Background(), Payload{Text: "Katze", Language: "de"}, "tlh"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.requests[0].TargetLang != "tlh" {
		t.Errorf("expected target passed through, got %q", svc.requests[0].TargetLang)
	}
}

func TestTranslator_TranslateText_EmptyArguments(t *testing.T) {
	svc := &stubService{name: "stub"}
	tr := NewTranslator(svc, nil, nil)

	tests := []struct {
		text, source, target string
	}{
		{"", "de", "en"},
		{"   ", "de", "en"},
		{"Katze", "", "en"},
		{"Katze", "de", ""},
	}
	for _, tt := range tests {
		if _, err := tr.TranslateText(context.Background(), tt.text, tt.source, tt.target); !IsInvalidArgument(err) {
			t.Errorf("TranslateText(%q, %q, %q) error = %v, want invalid argument", tt.text, tt.source, tt.target, err)
		}
	}
	if len(svc.requests) != 0 {
		t.Errorf("expected no provider call, got %d", len(svc.requests))
	}
}

func TestTranslator_Translate_ProviderError(t *testing.T) {
	tr := NewTranslator(dictionaryService(), nil, nil)

	_, err := tr.Translate(context.Background(), Payload{Text: "Hund", Language: "de"}, "en")

	var perr *translator.ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if perr.Service != "stub" {
		t.Errorf("expected service 'stub', got %q", perr.Service)
	}
}

func TestTranslator_Translate_WrapsPlainErrors(t *testing.T) {
	cause := errors.New("connection reset")
	svc := &stubService{
		name: "stub",
		translate: func(ctx context.Context, req translator.TranslateRequest) (*translator.ServiceResult, error) {
			return nil, cause
		},
	}
	tr := NewTranslator(svc, nil, nil)

	_, err := tr.Translate(context.Background(), Payload{Text: "Katze", Language: "de"}, "en")

	var perr *translator.ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("expected ProviderError to wrap the cause")
	}
}
