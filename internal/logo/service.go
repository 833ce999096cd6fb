package logo

import (
	"context"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"bizworth/internal/domain"
)

// Service runs logo and brand extraction against rendered pages.
type Service struct {
	browser   Browser
	completer TextCompleter
}

// NewService wires the service. completer may be nil; brand text then uses
// heuristics only.
func NewService(browser Browser, completer TextCompleter) *Service {
	return &Service{browser: browser, completer: completer}
}

// Ready reports whether the backing browser can render pages.
func (s *Service) Ready() bool { return s.browser.Ready() }

// ValidateURL accepts absolute http and https URLs only.
func ValidateURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.ErrInvalidURL
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, domain.ErrInvalidURL
	}
	return u, nil
}

// ExtractLogo renders the page once and runs every strategy over it. All
// candidates are reported; the best is the highest-confidence success.
func (s *Service) ExtractLogo(ctx context.Context, rawURL string) (*domain.LogoExtractionResult, error) {
	base, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	page, err := s.browser.Render(ctx, base.String())
	if err != nil {
		return nil, err
	}
	defer page.Close()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, err
	}

	result := &domain.LogoExtractionResult{URL: base.String()}
	for _, f := range finders() {
		attemptStart := time.Now()
		cand := domain.LogoCandidate{
			URL:      base.String(),
			Strategy: f.strategy,
		}
		if logoURL, ok := f.find(doc, base); ok {
			u := logoURL
			cand.LogoURL = &u
			cand.Confidence = f.confidence
			cand.Quality = qualityFor(logoURL)
		} else {
			cand.Error = "no candidate found"
		}
		cand.ExtractionTimeMs = time.Since(attemptStart).Milliseconds()
		result.AllResults = append(result.AllResults, cand)
	}

	successes := 0
	var confidenceSum float64
	for i := range result.AllResults {
		c := &result.AllResults[i]
		if c.LogoURL == nil {
			continue
		}
		successes++
		confidenceSum += c.Confidence
		if result.Best == nil || c.Confidence > result.Best.Confidence {
			result.Best = c
		}
	}
	for i := range result.AllResults {
		c := &result.AllResults[i]
		if c.LogoURL != nil && c != result.Best {
			result.AlternativeLogos = append(result.AlternativeLogos, *c.LogoURL)
		}
	}

	result.Stats = domain.LogoStats{
		TotalTimeMs: time.Since(start).Milliseconds(),
		Attempted:   len(result.AllResults),
	}
	if successes > 0 {
		result.Stats.AvgConfidence = confidenceSum / float64(successes)
		result.Stats.SuccessRate = float64(successes) / float64(len(result.AllResults))
	}

	log.Printf("logo.Service: %s yielded %d/%d candidates in %dms",
		base.String(), successes, len(result.AllResults), result.Stats.TotalTimeMs)
	return result, nil
}

// ExtractBrand renders the page once and extracts logo, colors, and brand
// text from it.
func (s *Service) ExtractBrand(ctx context.Context, rawURL string) (*domain.BrandExtraction, error) {
	base, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	page, err := s.browser.Render(ctx, base.String())
	if err != nil {
		return nil, err
	}
	defer page.Close()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, err
	}

	out := &domain.BrandExtraction{}
	for _, f := range finders() {
		if logoURL, ok := f.find(doc, base); ok {
			u := logoURL
			out.Logo = &u
			out.LogoRaw = &u
			break
		}
	}

	out.Colors = ExtractColors(page.Screenshot, doc)

	text := ExtractBrandText(ctx, s.completer, doc)
	out.About = text.About
	out.Disclaimer = text.Disclaimer

	return out, nil
}
