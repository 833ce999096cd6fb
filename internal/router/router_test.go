package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bizworth/internal/handler"
	"bizworth/internal/logo"
	"bizworth/internal/pipeline"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testEngine() *gin.Engine {
	docH := handler.NewDocumentHandler(pipeline.NewController(nil, 70), nil, 1<<20)
	logoH := handler.NewLogoHandler(logo.NewService(logo.DisabledBrowser{}, nil))
	healthH := handler.NewHealthHandler(
		func() bool { return false },
		func() bool { return false },
	)
	return Setup(docH, logoH, healthH, nil)
}

func TestSetupRegistersRoutes(t *testing.T) {
	r := testEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSwaggerSpecServed(t *testing.T) {
	r := testEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/extract/document")
	assert.Contains(t, w.Body.String(), "/extract/brand")
	assert.Contains(t, w.Body.String(), "bizworth API")
}
