package settings

import (
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Tone 是生成内容的语气。
type Tone string

const (
	ToneFormal         Tone = "formal"
	ToneInformal       Tone = "informal"
	ToneConversational Tone = "conversational"
	ToneProfessional   Tone = "professional"
)

// Tones lists the selectable tones.
var Tones = []Tone{ToneFormal, ToneInformal, ToneConversational, ToneProfessional}

// Language is the default content language code.
type Language string

// Languages offered on the settings page.
var Languages = []Language{"en", "es", "fr", "de", "pt-br", "pt-pt"}

// Record is the whole persisted configuration. It is always written in full.
type Record struct {
	Credential            string   `json:"apiKey"`
	Language              Language `json:"language"`
	Tone                  Tone     `json:"tone"`
	WordCount             int      `json:"wordCount"`
	H1TitlePrompt         string   `json:"h1TitlePrompt"`
	H2Count               int      `json:"h2Count"`
	H3Count               int      `json:"h3Count"`
	IncludeFAQ            bool     `json:"includeFAQ"`
	CustomPrompt          string   `json:"customPrompt"`
	MetaDescriptionPrompt string   `json:"metaDescriptionPrompt"`
	SlugPrompt            string   `json:"slugPrompt"`
	FocusKeywordPrompt    string   `json:"focusKeywordPrompt"`
	InternalLinkCount     int      `json:"internalLinkCount"`
	ExternalLinkCount     int      `json:"externalLinkCount"`
	ImageAltTextPrompt    string   `json:"imageAltTextPrompt"`
}

// Defaults returns the record used when nothing has been saved yet.
func Defaults() Record {
	return Record{
		Language:          "en",
		Tone:              ToneFormal,
		WordCount:         500,
		H2Count:           3,
		H3Count:           2,
		InternalLinkCount: 2,
		ExternalLinkCount: 1,
	}
}

// Validate checks enumerations and counts.
func (r Record) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Language, validation.Required, validation.In(anyOf(Languages)...)),
		validation.Field(&r.Tone, validation.Required, validation.In(anyOf(Tones)...)),
		validation.Field(&r.WordCount, validation.Required, validation.Min(1)),
		validation.Field(&r.H2Count, validation.Min(0)),
		validation.Field(&r.H3Count, validation.Min(0)),
		validation.Field(&r.InternalLinkCount, validation.Min(0)),
		validation.Field(&r.ExternalLinkCount, validation.Min(0)),
	)
}

// HasCredential reports whether a provider key is configured.
func (r Record) HasCredential() bool {
	return strings.TrimSpace(r.Credential) != ""
}

// Redacted masks the credential so the record can be shown or logged.
func (r Record) Redacted() Record {
	r.Credential = MaskCredential(r.Credential)
	return r
}

// MaskCredential keeps the last four characters of long keys.
func MaskCredential(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return ""
	case len(s) <= 8:
		return strings.Repeat("*", len(s))
	default:
		return strings.Repeat("*", 8) + s[len(s)-4:]
	}
}

// Decode parses a stored record. Missing fields keep their default, present
// fields keep their stored value, unknown fields are ignored. Invalid field
// values fall back to the default for that field.
func Decode(data []byte) (Record, error) {
	rec := Defaults()
	if err := json.Unmarshal(data, &rec); err != nil {
		return Defaults(), err
	}
	return normalize(rec), nil
}

// Encode serializes the full record.
func Encode(r Record) ([]byte, error) {
	return json.Marshal(r)
}

func normalize(r Record) Record {
	d := Defaults()
	if !contains(Languages, r.Language) {
		r.Language = d.Language
	}
	if !contains(Tones, r.Tone) {
		r.Tone = d.Tone
	}
	if r.WordCount <= 0 {
		r.WordCount = d.WordCount
	}
	if r.H2Count < 0 {
		r.H2Count = d.H2Count
	}
	if r.H3Count < 0 {
		r.H3Count = d.H3Count
	}
	if r.InternalLinkCount < 0 {
		r.InternalLinkCount = d.InternalLinkCount
	}
	if r.ExternalLinkCount < 0 {
		r.ExternalLinkCount = d.ExternalLinkCount
	}
	return r
}

func contains[T comparable](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func anyOf[T any](list []T) []interface{} {
	out := make([]interface{}, len(list))
	for i, v := range list {
		out[i] = v
	}
	return out
}
