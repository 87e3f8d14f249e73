// Package fact fetches random useless facts and translates their text.
package fact

import (
	"encoding/json"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Format is the representation requested from the fact service.
type Format string

const (
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatTXT  Format = "txt"
	FormatMD   Format = "md"
)

// Language is a language the fact service can answer in.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageGerman  Language = "de"
)

var (
	Formats   = []Format{FormatHTML, FormatJSON, FormatTXT, FormatMD}
	Languages = []Language{LanguageEnglish, LanguageGerman}
)

// Request describes a single call to the fact service.
type Request struct {
	Format   Format   `json:"format"`
	Language Language `json:"language"`
}

// Validate checks that both fields belong to their enumerated sets.
func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Format, validation.Required, validation.In(FormatHTML, FormatJSON, FormatTXT, FormatMD).
			Error(fmt.Sprintf("%q is not supported", r.Format))),
		validation.Field(&r.Language, validation.Required, validation.In(LanguageEnglish, LanguageGerman).
			Error(fmt.Sprintf("%q is not supported", r.Language))),
	)
}

// Payload is the json representation of a fact.
type Payload struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Source    string `json:"source,omitempty"`
	SourceURL string `json:"source_url,omitempty"`
	Language  string `json:"language"`
	Permalink string `json:"permalink,omitempty"`
}

// UnmarshalJSON accepts a numeric id as well as a string one.
func (p *Payload) UnmarshalJSON(data []byte) error {
	type plain Payload
	aux := struct {
		*plain
		ID json.RawMessage `json:"id"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	p.ID = ""
	if len(aux.ID) == 0 || string(aux.ID) == "null" {
		return nil
	}
	if err := json.Unmarshal(aux.ID, &p.ID); err != nil {
		p.ID = string(aux.ID)
	}
	return nil
}

// ParsePayload decodes the json-format output of Fetch into a Payload.
func ParsePayload(s string) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return &p, nil
}
