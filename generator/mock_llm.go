package generator

import (
	"context"
	"fmt"
	"strings"
)

// MockProvider 一个简单的占位实现，便于本地调试，不调用外部模型。
type MockProvider struct{}

func (m MockProvider) Generate(_ context.Context, req Request) (string, error) {
	switch req.Task {
	case TaskOutline:
		return mockOutline, nil
	case TaskTranslation:
		var sb strings.Builder
		for _, lang := range req.TargetLanguages {
			sb.WriteString(fmt.Sprintf("=== %s ===\nTranslated article in %s will appear here.\n\n", lang, lang))
		}
		return sb.String(), nil
	default:
		var sb strings.Builder
		sb.WriteString(mockArticle)
		if req.IncludeFAQ {
			sb.WriteString(mockFAQ)
		}
		return sb.String(), nil
	}
}

const mockOutline = `## Introduction
## Main Section 1
### Subsection 1.1
### Subsection 1.2
## Main Section 2
## Conclusion
`

const mockArticle = `# Generated Article Title

## Introduction

This is a placeholder introduction for the generated article.

## Main Section 1

### Subsection 1.1

Content for subsection 1.1 goes here. [Keyword 1](#) is inserted here as an example of an internal link.

### Subsection 1.2

Content for subsection 1.2 goes here. We can also mention [Keyword 2](#) as another internal link example.

## Main Section 2

Content for main section 2 goes here. [Keyword 3](#) is our final example of an internal link.

## Conclusion

This is a placeholder conclusion for the generated article.
`

const mockFAQ = `
## FAQ

1. **Question 1?**
   Answer 1 goes here.

2. **Question 2?**
   Answer 2 goes here.
`
