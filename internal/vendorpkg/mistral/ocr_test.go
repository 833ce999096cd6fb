package mistral

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizworth/internal/domain"
	"bizworth/internal/vendorpkg"
)

func ocrServer(t *testing.T, markdown string, pages int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "mistral-ocr-latest", req["model"])
		doc, ok := req["document"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "document_url", doc["type"])
		assert.True(t, strings.HasPrefix(doc["document_url"].(string), "data:application/pdf;base64,"))

		resp := map[string]interface{}{
			"pages": []map[string]interface{}{
				{"index": 0, "markdown": markdown},
			},
			"usage_info": map[string]int{"pages_processed": pages},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestOCRAdapterExtractsFromPDF(t *testing.T) {
	ocr := ocrServer(t, "| Revenue | 1,000,000 |\n| COGS | 400,000 |", 3)
	defer ocr.Close()
	chat := chatServer(t, canonicalReply, 2000, 300)
	defer chat.Close()

	a := NewOCRAdapterWithEndpoints(testMistralConfig(), chat.URL, ocr.URL)
	res, err := a.Extract(context.Background(), vendor.Input{
		FileBytes:   []byte("%PDF-1.4 fake"),
		ContentType: "application/pdf",
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, domain.MethodMistralOCR, res.Method)
	assert.Equal(t, "Acme", res.Data.CompanyName)
	// 3 pages at $0.001 plus 2000 prompt tokens at $0.10/MTok and 300
	// completion at $0.30/MTok.
	assert.InDelta(t, 0.00329, res.CostUSD, 1e-9)
}

func TestOCRAdapterImagePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		doc := req["document"].(map[string]interface{})
		assert.Equal(t, "image_url", doc["type"])
		assert.True(t, strings.HasPrefix(doc["image_url"].(string), "data:image/png;base64,"))

		resp := map[string]interface{}{
			"pages": []map[string]interface{}{{"index": 0, "markdown": "Revenue 500"}},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()
	chat := chatServer(t, canonicalReply, 100, 50)
	defer chat.Close()

	a := NewOCRAdapterWithEndpoints(testMistralConfig(), chat.URL, srv.URL)
	res, err := a.Extract(context.Background(), vendor.Input{
		FileBytes:   []byte("fake png"),
		ContentType: "image/png",
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestOCRAdapterOCRCostSurvivesChatFailure(t *testing.T) {
	ocr := ocrServer(t, "Revenue 500", 2)
	defer ocr.Close()
	chat := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer chat.Close()

	a := NewOCRAdapterWithEndpoints(testMistralConfig(), chat.URL, ocr.URL)
	res, err := a.Extract(context.Background(), vendor.Input{
		FileBytes:   []byte("%PDF-1.4 fake"),
		ContentType: "application/pdf",
	})

	require.Error(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Success)
	// The two OCR'd pages were billed even though structuring failed.
	assert.InDelta(t, 0.002, res.CostUSD, 1e-9)
}

func TestOCRAdapterEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"pages": []}`))
	}))
	defer srv.Close()

	a := NewOCRAdapterWithEndpoints(testMistralConfig(), chatURL, srv.URL)
	_, err := a.Extract(context.Background(), vendor.Input{FileBytes: []byte("x")})

	var invalid *vendor.InvalidResponseError
	assert.ErrorAs(t, err, &invalid)
}

func TestOCRAdapterRequiresFileBytes(t *testing.T) {
	a := NewOCRAdapter(testMistralConfig())
	_, err := a.Extract(context.Background(), vendor.Input{Text: "just text"})
	assert.Error(t, err)
}
