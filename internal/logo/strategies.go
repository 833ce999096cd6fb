package logo

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"bizworth/internal/domain"
)

// Strategy confidences are fixed per source. Structured data wins over
// meta tags, meta tags over DOM scanning, and a favicon is a last resort.
const (
	confJSONLD  = 90.0
	confMetaTag = 80.0
	confDOMScan = 65.0
	confFavicon = 40.0
)

// finder locates one logo URL in a parsed document.
type finder struct {
	strategy   domain.LogoStrategy
	confidence float64
	find       func(doc *goquery.Document, base *url.URL) (string, bool)
}

func finders() []finder {
	return []finder{
		{domain.StrategyJSONLD, confJSONLD, findJSONLD},
		{domain.StrategyMetaTag, confMetaTag, findMetaTag},
		{domain.StrategyDOMScan, confDOMScan, findDOMScan},
		{domain.StrategyFavicon, confFavicon, findFavicon},
	}
}

// findJSONLD looks for an Organization logo in ld+json script blocks. The
// logo may be a bare string or an ImageObject with a url key.
func findJSONLD(doc *goquery.Document, base *url.URL) (string, bool) {
	var found string
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var payload interface{}
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return true
		}
		if u := logoFromJSONLD(payload); u != "" {
			found = u
			return false
		}
		return true
	})
	if found == "" {
		return "", false
	}
	return resolveURL(base, found)
}

func logoFromJSONLD(node interface{}) string {
	switch v := node.(type) {
	case map[string]interface{}:
		if logo, ok := v["logo"]; ok {
			switch lv := logo.(type) {
			case string:
				return lv
			case map[string]interface{}:
				if u, ok := lv["url"].(string); ok {
					return u
				}
			}
		}
		// Nested structures like @graph arrays.
		for _, child := range v {
			if u := logoFromJSONLD(child); u != "" {
				return u
			}
		}
	case []interface{}:
		for _, child := range v {
			if u := logoFromJSONLD(child); u != "" {
				return u
			}
		}
	}
	return ""
}

func findMetaTag(doc *goquery.Document, base *url.URL) (string, bool) {
	selectors := []string{
		`meta[property="og:image"]`,
		`meta[property="og:logo"]`,
		`meta[name="twitter:image"]`,
	}
	for _, sel := range selectors {
		if content, ok := doc.Find(sel).First().Attr("content"); ok && content != "" {
			return resolveURL(base, content)
		}
	}
	return "", false
}

// findDOMScan checks header and nav images first, then any image whose
// attributes mention a logo.
func findDOMScan(doc *goquery.Document, base *url.URL) (string, bool) {
	var found string
	pick := func(_ int, s *goquery.Selection) bool {
		src, ok := s.Attr("src")
		if !ok || src == "" {
			return true
		}
		if logoish(s) {
			found = src
			return false
		}
		return true
	}

	doc.Find("header img, nav img").EachWithBreak(pick)
	if found == "" {
		doc.Find("img").EachWithBreak(pick)
	}
	if found == "" {
		// First header image even without logo-ish attributes.
		if src, ok := doc.Find("header img").First().Attr("src"); ok && src != "" {
			found = src
		}
	}
	if found == "" {
		return "", false
	}
	return resolveURL(base, found)
}

func logoish(s *goquery.Selection) bool {
	for _, attr := range []string{"class", "id", "src", "alt"} {
		if v, ok := s.Attr(attr); ok && strings.Contains(strings.ToLower(v), "logo") {
			return true
		}
	}
	return false
}

func findFavicon(doc *goquery.Document, base *url.URL) (string, bool) {
	selectors := []string{
		`link[rel="apple-touch-icon"]`,
		`link[rel="icon"]`,
		`link[rel="shortcut icon"]`,
	}
	for _, sel := range selectors {
		if href, ok := doc.Find(sel).First().Attr("href"); ok && href != "" {
			return resolveURL(base, href)
		}
	}
	if base == nil {
		return "", false
	}
	return base.Scheme + "://" + base.Host + "/favicon.ico", true
}

func resolveURL(base *url.URL, raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if strings.HasPrefix(raw, "data:") {
		return raw, true
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if base != nil {
		ref = base.ResolveReference(ref)
	}
	if ref.Scheme != "http" && ref.Scheme != "https" {
		return "", false
	}
	return ref.String(), true
}

// qualityFor infers format and transparency hints from the URL extension.
func qualityFor(logoURL string) *domain.LogoQuality {
	u, err := url.Parse(logoURL)
	if err != nil {
		return nil
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(u.Path), "."))
	switch ext {
	case "svg":
		return &domain.LogoQuality{Format: "svg", Transparent: true}
	case "png":
		return &domain.LogoQuality{Format: "png", Transparent: true}
	case "ico":
		return &domain.LogoQuality{Format: "ico", Transparent: true}
	case "jpg", "jpeg":
		return &domain.LogoQuality{Format: "jpeg", Transparent: false}
	case "webp":
		return &domain.LogoQuality{Format: "webp", Transparent: true}
	default:
		return nil
	}
}
