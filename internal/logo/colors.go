package logo

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/EdlinOrg/prominentcolor"
	"github.com/PuerkitoBio/goquery"

	"bizworth/internal/domain"
)

const paletteSize = 8

var hexColorRe = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)

// ExtractColors derives brand colors from a screenshot plus hex literals
// found in the page's CSS. Near-white, near-black, and gray colors are
// dropped; when fewer than two colors survive the palette falls back to
// black and white.
func ExtractColors(screenshot []byte, doc *goquery.Document) domain.BrandColors {
	colors := screenshotColors(screenshot)
	if doc != nil {
		colors = append(colors, cssColors(doc)...)
	}

	colors = filterColors(dedupeColors(colors))
	if len(colors) < 2 {
		return domain.BrandColors{
			Primary:   "#000000",
			Secondary: "#FFFFFF",
			Palette:   []string{"#000000", "#FFFFFF"},
		}
	}

	primary, secondary := selectPrimarySecondary(colors)
	if len(colors) > paletteSize {
		colors = colors[:paletteSize]
	}
	return domain.BrandColors{Primary: primary, Secondary: secondary, Palette: colors}
}

func screenshotColors(screenshot []byte) []string {
	if len(screenshot) == 0 {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(screenshot))
	if err != nil {
		log.Printf("logo.ExtractColors: decoding screenshot: %v", err)
		return nil
	}

	items, err := prominentcolor.KmeansWithAll(paletteSize, img,
		prominentcolor.ArgumentNoCropping, prominentcolor.DefaultSize,
		prominentcolor.GetDefaultMasks())
	if err != nil {
		log.Printf("logo.ExtractColors: kmeans: %v", err)
		return nil
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, fmt.Sprintf("#%02X%02X%02X", it.Color.R, it.Color.G, it.Color.B))
	}
	return out
}

func cssColors(doc *goquery.Document) []string {
	var out []string
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		out = append(out, normalizeHexMatches(s.Text())...)
	})
	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		if style, ok := s.Attr("style"); ok {
			out = append(out, normalizeHexMatches(style)...)
		}
	})
	return out
}

func normalizeHexMatches(text string) []string {
	var out []string
	for _, m := range hexColorRe.FindAllString(text, -1) {
		if len(m) == 4 {
			m = "#" + strings.Repeat(string(m[1]), 2) +
				strings.Repeat(string(m[2]), 2) +
				strings.Repeat(string(m[3]), 2)
		}
		out = append(out, strings.ToUpper(m))
	}
	return out
}

func dedupeColors(colors []string) []string {
	var seen []string
	for _, c := range colors {
		dup := false
		for _, s := range seen {
			if colorDistance(c, s) < 20 {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, c)
		}
	}
	return seen
}

func filterColors(colors []string) []string {
	var out []string
	for _, c := range colors {
		r, g, b, ok := hexToRGB(c)
		if !ok {
			continue
		}
		brightness := float64(r+g+b) / 3
		if brightness > 240 || brightness < 20 {
			continue
		}
		if saturation(r, g, b) < 0.1 {
			continue
		}
		out = append(out, c)
	}
	return out
}

// selectPrimarySecondary prefers saturated colors of medium brightness.
func selectPrimarySecondary(colors []string) (string, string) {
	type scored struct {
		color string
		score float64
	}
	var ranked []scored
	for _, c := range colors {
		r, g, b, ok := hexToRGB(c)
		if !ok {
			continue
		}
		brightness := float64(r+g+b) / 3
		score := saturation(r, g, b) * (1 - math.Abs(brightness-128)/128)
		ranked = append(ranked, scored{c, score})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) == 0 {
		return "#000000", "#FFFFFF"
	}
	if len(ranked) == 1 {
		return ranked[0].color, ranked[0].color
	}
	return ranked[0].color, ranked[1].color
}

func colorDistance(a, b string) float64 {
	ar, ag, ab, ok1 := hexToRGB(a)
	br, bg, bb, ok2 := hexToRGB(b)
	if !ok1 || !ok2 {
		return math.MaxFloat64
	}
	dr, dg, db := float64(ar-br), float64(ag-bg), float64(ab-bb)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func hexToRGB(hex string) (int, int, int, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16), int(v >> 8 & 0xFF), int(v & 0xFF), true
}

func saturation(r, g, b int) float64 {
	maxVal := math.Max(float64(r), math.Max(float64(g), float64(b)))
	minVal := math.Min(float64(r), math.Min(float64(g), float64(b)))
	if maxVal == 0 {
		return 0
	}
	return (maxVal - minVal) / maxVal
}
