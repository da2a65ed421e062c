package generator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	titleRe   = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	sectionRe = regexp.MustCompile(`(?m)^===\s*([A-Za-z]{2}(?:-[A-Za-z]{2})?)\s*===\s*$`)
)

// PostProcess 校验并补全 Draft 基础字段。
func PostProcess(raw string) (Draft, error) {
	md := strings.TrimSpace(raw)
	if md == "" {
		return Draft{}, errors.New("provider returned empty markdown")
	}

	digest := extractDigest(md)
	if digest == "" {
		digest = defaultDigest(md, 120)
	}
	return Draft{
		Title:    extractTitle(md),
		Digest:   digest,
		Markdown: md,
	}, nil
}

func extractTitle(md string) string {
	m := titleRe.FindStringSubmatch(md)
	if len(m) >= 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// 摘要取首段（去掉标题行）。
func extractDigest(md string) string {
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}

func defaultDigest(md string, limit int) string {
	joined := strings.Join(strings.Fields(md), " ")
	if len(joined) <= limit {
		return joined
	}
	return joined[:limit]
}

// SplitTranslations cuts a provider answer into one text per language using the
// "=== <code> ===" headers. A single requested language may come back without
// a header. Every requested language must be present.
func SplitTranslations(text string, langs []string) (map[string]string, error) {
	out := make(map[string]string, len(langs))
	locs := sectionRe.FindAllStringSubmatchIndex(text, -1)

	if len(locs) == 0 && len(langs) == 1 {
		if t := strings.TrimSpace(text); t != "" {
			out[langs[0]] = t
			return out, nil
		}
	}

	for i, loc := range locs {
		code := strings.ToLower(text[loc[2]:loc[3]])
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		out[code] = strings.TrimSpace(text[loc[1]:end])
	}

	var missing []string
	for _, code := range langs {
		if strings.TrimSpace(out[code]) == "" {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("provider returned no translation for %s", strings.Join(missing, ", "))
	}
	for code := range out {
		if !containsCode(langs, code) {
			delete(out, code)
		}
	}
	return out, nil
}

func containsCode(langs []string, code string) bool {
	for _, l := range langs {
		if l == code {
			return true
		}
	}
	return false
}
