package logo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	response   string
	cost       float64
	err        error
	configured bool
	prompts    []string
}

func (f *fakeCompleter) Configured() bool { return f.configured }

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, float64, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.cost, f.err
}

const brandPage = `<html><head>
	<meta name="description" content="Acme builds industrial-grade rocket skates for discerning coyotes worldwide.">
</head><body>
	<main>` + "Acme Corporation designs and manufactures rocket skates. Founded in 1949, Acme serves customers in forty countries with same-day delivery of anvils and assorted hardware." + `</main>
	<footer><p>This material is for informational purposes only and does not constitute investment advice; past performance is no guarantee of future results.</p></footer>
</body></html>`

func TestExtractBrandTextUsesModelWhenConfigured(t *testing.T) {
	fc := &fakeCompleter{
		configured: true,
		response:   `{"about": "Acme makes rocket skates.", "disclaimer": null}`,
		cost:       0.0002,
	}

	bt := ExtractBrandText(context.Background(), fc, parseDoc(t, brandPage))

	require.NotNil(t, bt.About)
	assert.Equal(t, "Acme makes rocket skates.", *bt.About)
	assert.Nil(t, bt.Disclaimer)
	assert.Equal(t, 0.0002, bt.CostUSD)
	require.Len(t, fc.prompts, 1)
	assert.Contains(t, fc.prompts[0], "rocket skates")
	// Script/nav/footer content is stripped before prompting.
	assert.NotContains(t, fc.prompts[0], "informational purposes")
}

func TestExtractBrandTextRecoversProseWrappedJSON(t *testing.T) {
	fc := &fakeCompleter{
		configured: true,
		response:   "Here is the result:\n" + `{"about": "Acme makes rocket skates.", "disclaimer": null}`,
	}

	bt := ExtractBrandText(context.Background(), fc, parseDoc(t, brandPage))

	require.NotNil(t, bt.About)
	assert.Equal(t, "Acme makes rocket skates.", *bt.About)
}

func TestExtractBrandTextFallsBackOnModelError(t *testing.T) {
	fc := &fakeCompleter{configured: true, err: errors.New("api unreachable")}

	bt := ExtractBrandText(context.Background(), fc, parseDoc(t, brandPage))

	require.NotNil(t, bt.About)
	assert.Contains(t, *bt.About, "rocket skates")
	require.NotNil(t, bt.Disclaimer)
	assert.Contains(t, *bt.Disclaimer, "informational purposes")
	assert.Equal(t, 0.0, bt.CostUSD)
}

func TestExtractBrandTextHeuristicsWithoutCompleter(t *testing.T) {
	bt := ExtractBrandText(context.Background(), nil, parseDoc(t, brandPage))

	require.NotNil(t, bt.About)
	require.NotNil(t, bt.Disclaimer)
}

func TestHeuristicIgnoresShortMetaDescription(t *testing.T) {
	bt := heuristicBrandText(parseDoc(t, `<html><head>
		<meta name="description" content="Too short.">
	</head></html>`))

	assert.Nil(t, bt.About)
	assert.Nil(t, bt.Disclaimer)
}

func TestCleanPageTextStripsChrome(t *testing.T) {
	text := cleanPageText(parseDoc(t, brandPage))

	assert.Contains(t, text, "Acme Corporation designs")
	assert.False(t, strings.Contains(text, "informational purposes"))
}
