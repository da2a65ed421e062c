package pages

import "net/http"

// ConfigurationError means required settings are missing; the user fixes it on
// the settings page.
type ConfigurationError string

func (err ConfigurationError) Error() string {
	return string(err)
}

func (err ConfigurationError) ErrCode() string {
	return "CONFIGURATION_ERROR"
}

func (err ConfigurationError) StatusCode() int {
	return http.StatusUnprocessableEntity
}

// PreconditionError means an upstream draft or required input is absent.
type PreconditionError string

func (err PreconditionError) Error() string {
	return string(err)
}

func (err PreconditionError) ErrCode() string {
	return "PRECONDITION_ERROR"
}

func (err PreconditionError) StatusCode() int {
	return http.StatusConflict
}

// ValidationError wraps field validation failures.
type ValidationError string

func (err ValidationError) Error() string {
	return string(err)
}

func (err ValidationError) ErrCode() string {
	return "VALIDATION_ERROR"
}

func (err ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// ProviderError carries the content provider's failure message verbatim.
type ProviderError string

func (err ProviderError) Error() string {
	return string(err)
}

func (err ProviderError) ErrCode() string {
	return "PROVIDER_ERROR"
}

func (err ProviderError) StatusCode() int {
	return http.StatusBadGateway
}

const (
	ErrMissingCredential  ConfigurationError = "Please set your API key in the Settings page."
	ErrNoGeneratedOutline PreconditionError  = `No generated outline found. Please generate an outline first or uncheck the "Use Generated Outline" option.`
	ErrNoOutline          PreconditionError  = "Please enter an outline or use the generated outline."
	ErrNoTopic            PreconditionError  = "Please enter a topic."
	ErrNoArticle          PreconditionError  = "Please enter an article to translate."
	ErrNoArticleGenerated PreconditionError  = "Generate an article before transferring it."
	ErrNoTargetLanguages  PreconditionError  = "Please select at least one target language."
)
