package publisher

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Formats accepted by Render.
const (
	FormatMarkdown = "md"
	FormatHTML     = "html"
)

// Document is a downloadable file.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ArticleName is the download name of a generated article, or of its
// translation when lang is set.
func ArticleName(lang string) string {
	if lang == "" {
		return "generated-article"
	}
	return "translated-article-" + lang
}

// Render builds a Markdown or HTML document named base.<ext>.
func Render(base, markdown, format string) (Document, error) {
	if strings.TrimSpace(markdown) == "" {
		return Document{}, errors.New("nothing to download")
	}
	switch format {
	case FormatMarkdown, "":
		return Document{
			Filename:    base + ".md",
			ContentType: "text/markdown; charset=utf-8",
			Body:        []byte(markdown),
		}, nil
	case FormatHTML:
		body, err := mdToHTML(markdown)
		if err != nil {
			return Document{}, err
		}
		return Document{
			Filename:    base + ".html",
			ContentType: "text/html; charset=utf-8",
			Body:        []byte(wrapPage(titleOf(markdown), body)),
		}, nil
	default:
		return Document{}, fmt.Errorf("download format %s not supported", format)
	}
}

func mdToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var h1Re = regexp.MustCompile(`(?m)^#\s+(.+)$`)

func titleOf(markdown string) string {
	if m := h1Re.FindStringSubmatch(markdown); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	return "Article"
}

func wrapPage(title, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(title)))
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
