package handler

import (
	"github.com/gin-gonic/gin"

	"bizworth/internal/domain"
	"bizworth/internal/logo"
)

// LogoHandler serves logo and brand extraction.
type LogoHandler struct {
	svc *logo.Service
}

// NewLogoHandler wires the handler.
func NewLogoHandler(svc *logo.Service) *LogoHandler {
	return &LogoHandler{svc: svc}
}

type urlRequest struct {
	URL string `json:"url"`
}

// Extract handles POST /api/v1/extract/logo
// @Summary      Extract logo candidates from a website
// @Description  Renders the page and runs all detection strategies, returning the best candidate plus per-strategy stats
// @Tags         extract
// @Accept       json
// @Produce      json
// @Param        request body urlRequest true "Target website URL"
// @Success      200 {object} APIResponse{data=domain.LogoExtractionResult}
// @Failure      400 {object} APIResponse
// @Failure      503 {object} APIResponse
// @Router       /extract/logo [post]
func (h *LogoHandler) Extract(c *gin.Context) {
	var req urlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, domain.ErrInvalidURL)
		return
	}
	h.respondLogo(c, req.URL)
}

// ExtractQuick handles GET /api/v1/extract/logo?url=
// @Summary      Extract logo candidates (query form)
// @Tags         extract
// @Produce      json
// @Param        url query string true "Target website URL"
// @Success      200 {object} APIResponse{data=domain.LogoExtractionResult}
// @Failure      400 {object} APIResponse
// @Failure      503 {object} APIResponse
// @Router       /extract/logo [get]
func (h *LogoHandler) ExtractQuick(c *gin.Context) {
	h.respondLogo(c, c.Query("url"))
}

func (h *LogoHandler) respondLogo(c *gin.Context, rawURL string) {
	res, err := h.svc.ExtractLogo(c.Request.Context(), rawURL)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, res)
}

// ExtractBrand handles POST /api/v1/extract/brand
// @Summary      Extract a full brand profile from a website
// @Description  Logo, prominent colors, and about/disclaimer text from a single page render
// @Tags         extract
// @Accept       json
// @Produce      json
// @Param        request body urlRequest true "Target website URL"
// @Success      200 {object} APIResponse{data=domain.BrandExtraction}
// @Failure      400 {object} APIResponse
// @Failure      503 {object} APIResponse
// @Router       /extract/brand [post]
func (h *LogoHandler) ExtractBrand(c *gin.Context) {
	var req urlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, domain.ErrInvalidURL)
		return
	}

	res, err := h.svc.ExtractBrand(c.Request.Context(), req.URL)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, res)
}
