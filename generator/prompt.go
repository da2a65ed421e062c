package generator

import (
	"fmt"
	"strings"

	"ai_content_generator/settings"
)

// BuildOutlinePrompt 生成大纲提示词。
func BuildOutlinePrompt(rec settings.Record, topic string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Create a Markdown outline for an article about: %s\n", strings.TrimSpace(topic)))
	sb.WriteString(fmt.Sprintf("- Use %d H2 headings with %d H3 subheadings each.\n", rec.H2Count, rec.H3Count))
	sb.WriteString(fmt.Sprintf("- Language: %s\n", rec.Language))
	sb.WriteString(fmt.Sprintf("- Tone: %s\n", rec.Tone))
	if rec.IncludeFAQ {
		sb.WriteString("- End with an FAQ heading.\n")
	}
	if p := strings.TrimSpace(rec.H1TitlePrompt); p != "" {
		sb.WriteString(fmt.Sprintf("- H1 title: %s\n", p))
	}
	return sb.String()
}

// BuildArticlePrompt joins the custom prompt, the outline and the generation
// parameters. keywords holds one internal-link keyword per line.
func BuildArticlePrompt(rec settings.Record, outline, keywords string) string {
	includeFAQ := "No"
	if rec.IncludeFAQ {
		includeFAQ = "Yes"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n\nOutline:\n%s\n\n", rec.CustomPrompt, outline))
	sb.WriteString("Generate an article in Markdown/MDX format based on this outline with the following parameters:\n")
	sb.WriteString(fmt.Sprintf("Tone: %s\nWord Count: %d\nInclude FAQ: %s\n", rec.Tone, rec.WordCount, includeFAQ))
	sb.WriteString(fmt.Sprintf("Language: %s\n", rec.Language))
	sb.WriteString(fmt.Sprintf("Structure: %d H2 sections, %d H3 subsections per H2\n", rec.H2Count, rec.H3Count))
	sb.WriteString(fmt.Sprintf("Links: %d internal, %d external\n", rec.InternalLinkCount, rec.ExternalLinkCount))

	seo := []struct{ label, prompt string }{
		{"H1 title", rec.H1TitlePrompt},
		{"Meta description", rec.MetaDescriptionPrompt},
		{"Slug", rec.SlugPrompt},
		{"Focus keyword", rec.FocusKeywordPrompt},
		{"Image alt text", rec.ImageAltTextPrompt},
	}
	for _, s := range seo {
		if p := strings.TrimSpace(s.prompt); p != "" {
			sb.WriteString(fmt.Sprintf("%s: %s\n", s.label, p))
		}
	}

	sb.WriteString("\nKeywords for internal links (insert these naturally throughout the article):\n")
	sb.WriteString(strings.Join(SplitKeywords(keywords), "\n"))
	return sb.String()
}

// BuildTranslationPrompt asks for one section per target language, each
// headed by a "=== <code> ===" line.
func BuildTranslationPrompt(article string, langs []string) string {
	var sb strings.Builder
	sb.WriteString("Translate the article below into each of these languages, keeping the Markdown structure:\n")
	for _, code := range langs {
		sb.WriteString(fmt.Sprintf("- %s (%s)\n", code, LanguageName(code)))
	}
	sb.WriteString("Start each translation with a line of the form \"=== <code> ===\".\n\n")
	sb.WriteString("Article:\n")
	sb.WriteString(article)
	return sb.String()
}

// SplitKeywords returns the non-blank lines of s, trimmed.
func SplitKeywords(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if k := strings.TrimSpace(line); k != "" {
			out = append(out, k)
		}
	}
	return out
}
