package generator

import "ai_content_generator/settings"

// Task tells a provider what kind of text is wanted.
type Task string

const (
	TaskOutline     Task = "outline"
	TaskArticle     Task = "article"
	TaskTranslation Task = "translation"
)

// Request 是发给内容提供方的一次调用。
type Request struct {
	Task            Task          `json:"task"`
	Credential      string        `json:"credential"`
	Prompt          string        `json:"prompt"`
	Tone            settings.Tone `json:"tone"`
	WordCount       int           `json:"wordCount"`
	IncludeFAQ      bool          `json:"includeFAQ"`
	TargetLanguages []string      `json:"targetLanguages"`
}

// Response carries either Text or Error, never both.
type Response struct {
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

func (r Response) Failed() bool { return r.Error != "" }

// Draft is a generated article (Markdown) with the title and digest pulled out.
type Draft struct {
	Title    string `json:"title"`
	Digest   string `json:"digest"`
	Markdown string `json:"markdown"`
}

// NewRequest copies the generation parameters out of a settings snapshot.
func NewRequest(task Task, rec settings.Record, prompt string, langs []string) Request {
	return Request{
		Task:            task,
		Credential:      rec.Credential,
		Prompt:          prompt,
		Tone:            rec.Tone,
		WordCount:       rec.WordCount,
		IncludeFAQ:      rec.IncludeFAQ,
		TargetLanguages: langs,
	}
}
