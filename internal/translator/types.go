package translator

import (
	"context"
	"fmt"
	"time"
)

// ServiceConfig holds the per-provider settings loaded from configuration.
type ServiceConfig struct {
	Credentials string        `mapstructure:"credentials" json:"credentials"`
	Email       string        `mapstructure:"email" json:"email"`
	BaseURL     string        `mapstructure:"base_url" json:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout" json:"timeout"`
}

type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type ServiceResult struct {
	ServiceName    string            `json:"service_name"`
	TranslatedText string            `json:"translated_text"`
	Confidence     float64           `json:"confidence"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	Latency        time.Duration     `json:"latency"`
}

// TranslationService is a single translation backend.
type TranslationService interface {
	Name() string
	Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error)
	IsAvailable(ctx context.Context) error
	SupportedLanguages(ctx context.Context) ([]string, error)
}

// ProviderError is returned for every failure surfaced by a backend,
// including network errors reaching it.
type ProviderError struct {
	Service string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Names lists the available backends in preference order.
var Names = []string{"mymemory", "google"}

// New builds the backend registered under name.
func New(name string, cfg ServiceConfig) (TranslationService, error) {
	switch name {
	case "", "mymemory":
		return NewMyMemoryService(cfg), nil
	case "google":
		return NewGoogleService(cfg), nil
	default:
		return nil, fmt.Errorf("unknown translation service: %s", name)
	}
}
