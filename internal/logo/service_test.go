package logo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizworth/internal/domain"
)

type fakeBrowser struct {
	html       string
	screenshot []byte
	err        error
	closed     int
	renders    int
}

func (f *fakeBrowser) Render(_ context.Context, url string) (*Page, error) {
	f.renders++
	if f.err != nil {
		return nil, f.err
	}
	return &Page{
		URL:        url,
		HTML:       f.html,
		Screenshot: f.screenshot,
		closeFn:    func() { f.closed++ },
	}, nil
}

func (f *fakeBrowser) Ready() bool { return f.err == nil }
func (f *fakeBrowser) Shutdown()   {}

const samplePage = `<html><head>
	<meta property="og:image" content="https://acme.example/og.png">
	<link rel="icon" href="/fav.ico">
</head><body>
	<header><img src="/assets/logo.png" alt="Acme logo"></header>
</body></html>`

func TestExtractLogoAggregatesStrategies(t *testing.T) {
	fb := &fakeBrowser{html: samplePage}
	svc := NewService(fb, nil)

	res, err := svc.ExtractLogo(context.Background(), "https://acme.example")

	require.NoError(t, err)
	assert.Len(t, res.AllResults, 4)
	require.NotNil(t, res.Best)
	assert.Equal(t, domain.StrategyMetaTag, res.Best.Strategy)
	assert.Equal(t, "https://acme.example/og.png", *res.Best.LogoURL)
	assert.Equal(t, 4, res.Stats.Attempted)
	assert.Equal(t, 0.75, res.Stats.SuccessRate) // json-ld is absent
	assert.Len(t, res.AlternativeLogos, 2)
	assert.Equal(t, 1, fb.closed)
}

func TestExtractLogoClosesPageExactlyOnce(t *testing.T) {
	fb := &fakeBrowser{html: samplePage}
	svc := NewService(fb, nil)

	_, err := svc.ExtractLogo(context.Background(), "https://acme.example")

	require.NoError(t, err)
	assert.Equal(t, 1, fb.closed)
}

func TestExtractLogoRejectsInvalidURL(t *testing.T) {
	fb := &fakeBrowser{html: samplePage}
	svc := NewService(fb, nil)

	for _, raw := range []string{"", "ftp://acme.example", "not a url", "/relative"} {
		_, err := svc.ExtractLogo(context.Background(), raw)
		assert.ErrorIs(t, err, domain.ErrInvalidURL, raw)
	}
	assert.Equal(t, 0, fb.renders)
}

func TestExtractLogoPropagatesRenderError(t *testing.T) {
	fb := &fakeBrowser{err: errors.New("navigation timeout")}
	svc := NewService(fb, nil)

	_, err := svc.ExtractLogo(context.Background(), "https://acme.example")

	assert.Error(t, err)
	assert.Equal(t, 0, fb.closed)
}

func TestExtractLogoNoCandidates(t *testing.T) {
	fb := &fakeBrowser{html: `<html></html>`}
	svc := NewService(fb, nil)

	res, err := svc.ExtractLogo(context.Background(), "https://acme.example")

	require.NoError(t, err)
	// Favicon always yields the default /favicon.ico candidate.
	require.NotNil(t, res.Best)
	assert.Equal(t, domain.StrategyFavicon, res.Best.Strategy)
	assert.Equal(t, "https://acme.example/favicon.ico", *res.Best.LogoURL)
}

func TestExtractBrandCombinesSignals(t *testing.T) {
	fb := &fakeBrowser{html: `<html><head>
		<meta name="description" content="Acme builds industrial-grade rocket skates for discerning coyotes worldwide.">
		<style>.btn { background: #E4572E; } .hdr { color: #17BEBB; }</style>
	</head><body>
		<header><img src="/logo.png" alt="logo"></header>
		<footer><p>Disclaimer: this material is for informational purposes only and does not constitute investment advice of any kind.</p></footer>
	</body></html>`}
	svc := NewService(fb, nil)

	res, err := svc.ExtractBrand(context.Background(), "https://acme.example")

	require.NoError(t, err)
	require.NotNil(t, res.Logo)
	assert.Equal(t, "https://acme.example/logo.png", *res.Logo)
	assert.Contains(t, res.Colors.Palette, "#E4572E")
	require.NotNil(t, res.About)
	assert.Contains(t, *res.About, "rocket skates")
	require.NotNil(t, res.Disclaimer)
	assert.Contains(t, *res.Disclaimer, "informational purposes")
	assert.Equal(t, 1, fb.closed)
}
