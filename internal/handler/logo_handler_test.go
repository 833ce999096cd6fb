package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizworth/internal/domain"
	"bizworth/internal/logo"
)

type staticBrowser struct {
	html string
}

func (b *staticBrowser) Render(_ context.Context, url string) (*logo.Page, error) {
	return &logo.Page{URL: url, HTML: b.html}, nil
}

func (b *staticBrowser) Ready() bool { return true }
func (b *staticBrowser) Shutdown()   {}

const logoPage = `<html><head>
	<meta property="og:image" content="https://acme.example/og.png">
</head><body><header><img src="/logo.svg" alt="Acme logo"></header></body></html>`

func logoRouter(h *LogoHandler) *gin.Engine {
	r := gin.New()
	r.POST("/extract/logo", h.Extract)
	r.GET("/extract/logo", h.ExtractQuick)
	r.POST("/extract/brand", h.ExtractBrand)
	return r
}

func newLogoHandler() *LogoHandler {
	return NewLogoHandler(logo.NewService(&staticBrowser{html: logoPage}, nil))
}

func TestExtractLogoPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/extract/logo",
		strings.NewReader(`{"url": "https://acme.example"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	logoRouter(newLogoHandler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                         `json:"success"`
		Data    *domain.LogoExtractionResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data.Best)
	assert.Equal(t, "https://acme.example/og.png", *resp.Data.Best.LogoURL)
	assert.Equal(t, 4, resp.Data.Stats.Attempted)
}

func TestExtractLogoGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/extract/logo?url=https%3A%2F%2Facme.example", nil)
	rec := httptest.NewRecorder()
	logoRouter(newLogoHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExtractLogoRejectsBadURL(t *testing.T) {
	for _, body := range []string{`{}`, `{"url": "ftp://x"}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/extract/logo", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		logoRouter(newLogoHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)

		var resp APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_URL", resp.Error.Code)
	}
}

func TestExtractBrand(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/extract/brand",
		strings.NewReader(`{"url": "https://acme.example"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	logoRouter(newLogoHandler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                    `json:"success"`
		Data    *domain.BrandExtraction `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data.Logo)
	assert.Equal(t, "https://acme.example/og.png", *resp.Data.Logo)
}

func TestBrowserUnavailable(t *testing.T) {
	h := NewLogoHandler(logo.NewService(logo.DisabledBrowser{}, nil))

	req := httptest.NewRequest(http.MethodPost, "/extract/logo",
		strings.NewReader(`{"url": "https://acme.example"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	logoRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BROWSER_UNAVAILABLE", resp.Error.Code)
}

func TestReadiness(t *testing.T) {
	h := NewHealthHandler(func() bool { return true }, func() bool { return false })
	r := gin.New()
	r.GET("/readyz", h.Readiness)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, true, body["modelsLoaded"])
	assert.Equal(t, false, body["browserReady"])
}

func TestReadinessDegraded(t *testing.T) {
	h := NewHealthHandler(func() bool { return false }, func() bool { return false })
	r := gin.New()
	r.GET("/readyz", h.Readiness)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
