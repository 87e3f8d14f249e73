package translator

import (
	"context"
	"fmt"
	"time"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

type GoogleService struct {
	credentials string
	timeout     time.Duration
}

func NewGoogleService(cfg ServiceConfig) *GoogleService {
	return &GoogleService{credentials: cfg.Credentials, timeout: cfg.Timeout}
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	targetTag, err := language.Parse(req.TargetLang)
	if err != nil {
		return nil, s.fail(fmt.Errorf("invalid target language: %w", err))
	}

	var opts *translate.Options
	if req.SourceLang != "" {
		sourceTag, err := language.Parse(req.SourceLang)
		if err != nil {
			return nil, s.fail(fmt.Errorf("invalid source language: %w", err))
		}
		opts = &translate.Options{Source: sourceTag, Format: translate.Text}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var clientOpts []option.ClientOption
	if s.credentials != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(s.credentials))
	}

	client, err := translate.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, s.fail(fmt.Errorf("failed to create client: %w", err))
	}
	defer client.Close()

	translations, err := client.Translate(ctx, []string{req.Text}, targetTag, opts)
	if err != nil {
		return nil, s.fail(fmt.Errorf("translation failed: %w", err))
	}

	if len(translations) == 0 {
		return nil, s.fail(fmt.Errorf("no translation returned"))
	}

	result.TranslatedText = translations[0].Text
	result.Confidence = 1.0
	if translations[0].Source != language.Und {
		result.Metadata = map[string]string{"detected_source": translations[0].Source.String()}
	}

	return result, nil
}

func (s *GoogleService) fail(err error) error {
	return &ProviderError{Service: s.Name(), Err: err}
}

func (s *GoogleService) IsAvailable(ctx context.Context) error {
	return nil
}

// SupportedLanguages returns nil; the Cloud API decides per request.
func (s *GoogleService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return nil, nil
}
