package fact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/valpere/randomly/internal/logging"
	"github.com/valpere/randomly/internal/translator"
)

// LanguageDetector guesses the ISO 639-1 code of a text.
type LanguageDetector interface {
	DetectISO(text string) (string, bool)
}

// Translator translates fact text through a single translation backend.
type Translator struct {
	service  translator.TranslationService
	detector LanguageDetector
	log      logging.Logger
}

// NewTranslator wraps service. detector may be nil, in which case payloads
// without a language are rejected.
func NewTranslator(service translator.TranslationService, detector LanguageDetector, log logging.Logger) *Translator {
	return &Translator{
		service:  service,
		detector: detector,
		log:      logging.OrNoOp(log),
	}
}

// Translate translates the payload's text from the payload's language into
// targetLang and returns the translation as a canonical JSON string.
func (t *Translator) Translate(ctx context.Context, payload Payload, targetLang string) (string, error) {
	sourceLang := strings.ToLower(strings.TrimSpace(payload.Language))
	if sourceLang == "" {
		detected, ok := t.detect(payload.Text)
		if !ok {
			return "", invalidArgument(ErrMissingLanguage)
		}
		sourceLang = detected
	}
	return t.TranslateText(ctx, payload.Text, sourceLang, targetLang)
}

// TranslateText translates text from sourceLang into targetLang. The target
// language is passed to the backend as is.
func (t *Translator) TranslateText(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	text = norm.NFC.String(strings.TrimSpace(text))
	if text == "" {
		return "", invalidArgument(errors.New("text is empty"))
	}
	if strings.TrimSpace(sourceLang) == "" {
		return "", invalidArgument(ErrMissingLanguage)
	}
	if strings.TrimSpace(targetLang) == "" {
		return "", invalidArgument(errors.New("target language is empty"))
	}

	reqID := uuid.New().String()
	t.log.Debug("translate request", "request_id", reqID, "service", t.service.Name(),
		"source", sourceLang, "target", targetLang, "chars", len(text))

	res, err := t.service.Translate(ctx, translator.TranslateRequest{
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})
	if err != nil {
		t.log.Warn("translate failed", "request_id", reqID, "error", err)
		var perr *translator.ProviderError
		if errors.As(err, &perr) {
			return "", err
		}
		return "", &translator.ProviderError{Service: t.service.Name(), Err: err}
	}
	if res == nil {
		return "", &translator.ProviderError{Service: t.service.Name(), Err: fmt.Errorf("empty result")}
	}

	t.log.Debug("translate response", "request_id", reqID, "latency", res.Latency, "confidence", res.Confidence)
	return EncodeText(res.TranslatedText), nil
}

func (t *Translator) detect(text string) (string, bool) {
	if t.detector == nil {
		return "", false
	}
	lang, ok := t.detector.DetectISO(text)
	if ok {
		t.log.Debug("detected source language", "language", lang)
	}
	return lang, ok
}
