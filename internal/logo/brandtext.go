package logo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxPromptChars bounds the cleaned page text sent to the model.
const maxPromptChars = 8000

var wsRe = regexp.MustCompile(`\s+`)

var disclaimerKeywords = []string{
	"disclaimer",
	"not investment advice",
	"not constitute",
	"no guarantee",
	"for informational purposes only",
	"no representation",
}

// TextCompleter is the chat surface used for brand text extraction.
type TextCompleter interface {
	Configured() bool
	Complete(ctx context.Context, prompt string) (string, float64, error)
}

// BrandText holds the extracted about and disclaimer paragraphs.
type BrandText struct {
	About      *string
	Disclaimer *string
	CostUSD    float64
}

// ExtractBrandText pulls a company description and any legal disclaimer
// from the page. It asks the chat model first and falls back to meta
// description and footer keyword heuristics when the model is unavailable
// or fails.
func ExtractBrandText(ctx context.Context, completer TextCompleter, doc *goquery.Document) BrandText {
	if doc == nil {
		return BrandText{}
	}

	if completer != nil && completer.Configured() {
		text := cleanPageText(doc)
		if len(text) >= 100 {
			if bt, err := extractWithModel(ctx, completer, text); err == nil {
				return bt
			} else {
				log.Printf("logo.ExtractBrandText: model extraction failed, using heuristics: %v", err)
			}
		}
	}

	return heuristicBrandText(doc)
}

func extractWithModel(ctx context.Context, completer TextCompleter, text string) (BrandText, error) {
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars]
	}

	prompt := fmt.Sprintf(`You are analyzing website content. Extract:

1. "about": a concise 2-3 sentence summary of what the company does.
2. "disclaimer": any legal disclaimer, investment warning, or regulatory notice.

Website text:
%s

Return ONLY a JSON object: {"about": "... or null", "disclaimer": "... or null"}.
Use null when the information is absent. Keep each field under 300 characters.`, text)

	raw, cost, err := completer.Complete(ctx, prompt)
	if err != nil {
		return BrandText{}, err
	}

	var parsed struct {
		About      *string `json:"about"`
		Disclaimer *string `json:"disclaimer"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		// The model occasionally wraps the object in prose.
		start, end := strings.Index(raw, "{"), strings.LastIndex(raw, "}")
		if start < 0 || end <= start {
			return BrandText{}, fmt.Errorf("no JSON object in response")
		}
		if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
			return BrandText{}, fmt.Errorf("parsing brand text response: %w", err)
		}
	}
	return BrandText{About: parsed.About, Disclaimer: parsed.Disclaimer, CostUSD: cost}, nil
}

// cleanPageText strips non-content elements and collapses whitespace.
func cleanPageText(doc *goquery.Document) string {
	clone := doc.Clone()
	clone.Find("script, style, nav, header, footer, meta, link").Remove()
	return strings.TrimSpace(wsRe.ReplaceAllString(clone.Text(), " "))
}

func heuristicBrandText(doc *goquery.Document) BrandText {
	var bt BrandText

	for _, sel := range []string{`meta[name="description"]`, `meta[property="og:description"]`} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			desc := strings.TrimSpace(content)
			if len(desc) >= 60 && len(desc) <= 400 {
				bt.About = &desc
				break
			}
		}
	}

	doc.Find("footer").Find("p, div, small").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(wsRe.ReplaceAllString(s.Text(), " "))
		lower := strings.ToLower(text)
		for _, kw := range disclaimerKeywords {
			if strings.Contains(lower, kw) && len(text) >= 60 && len(text) <= 1500 {
				if len(text) > 1000 {
					text = text[:1000]
				}
				bt.Disclaimer = &text
				return false
			}
		}
		return true
	})

	return bt
}
