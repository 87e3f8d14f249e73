// Package render turns canonical fact output into text for a terminal.
package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/valpere/randomly/internal/fact"
)

//go:embed locales/active.*.toml
var localeFS embed.FS

var localeFiles = []string{"locales/active.en.toml", "locales/active.de.toml"}

// Renderer formats facts with headings localized to the fact's language.
type Renderer struct {
	bundle *i18n.Bundle
}

func New() (*Renderer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return &Renderer{bundle: bundle}, nil
}

// Fact renders the canonical output of fact.Fetcher.Fetch as plain text.
func (r *Renderer) Fact(format fact.Format, lang fact.Language, output string) (string, error) {
	loc := i18n.NewLocalizer(r.bundle, string(lang))

	var body, source string
	switch format {
	case fact.FormatJSON:
		p, err := fact.ParsePayload(output)
		if err != nil {
			return "", err
		}
		body = p.Text
		source = p.SourceURL
		if source == "" {
			source = p.Source
		}
	default:
		var raw string
		if err := json.Unmarshal([]byte(output), &raw); err != nil {
			return "", fmt.Errorf("failed to decode fact text: %w", err)
		}
		body = plainText(format, raw)
	}

	var sb strings.Builder
	sb.WriteString(r.localize(loc, "FactHeading", nil))
	sb.WriteString("\n")
	sb.WriteString(strings.TrimSpace(body))
	sb.WriteString("\n")
	if source != "" {
		sb.WriteString(r.localize(loc, "SourceLine", map[string]string{"Source": source}))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// Translation renders the canonical output of fact.Translator.Translate.
// The heading uses uiLang, the language the fact was fetched in.
func (r *Renderer) Translation(uiLang fact.Language, target, output string) (string, error) {
	var text string
	if err := json.Unmarshal([]byte(output), &text); err != nil {
		return "", fmt.Errorf("failed to decode translation: %w", err)
	}

	loc := i18n.NewLocalizer(r.bundle, string(uiLang))
	heading := r.localize(loc, "TranslationHeading", map[string]string{"Target": target})
	return heading + "\n" + strings.TrimSpace(text) + "\n", nil
}

func (r *Renderer) localize(loc *i18n.Localizer, id string, data map[string]string) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return msg
}

func plainText(format fact.Format, raw string) string {
	switch format {
	case fact.FormatMD:
		return markdownToPlainText([]byte(raw))
	case fact.FormatHTML:
		return stripHTMLTags(raw)
	default:
		return raw
	}
}
