package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Tamil182006/AI-Stylist-manoj/internal/types"
)

// defaultOutfitLimit is the per-request default for the outfit-builder
// search route when the client sends no limit.
const defaultOutfitLimit = 10

// ProductSearcher is the slice of the aggregator the handlers depend on.
type ProductSearcher interface {
	SearchByStyle(ctx context.Context, styleCategory string, colors []string, occasion string, opts types.StyleOptions) ([]types.ProductListing, error)
	SearchByText(ctx context.Context, query string, opts types.OutfitOptions) ([]types.ProductListing, error)
}

// Handler holds dependencies for the HTTP handlers.
type Handler struct {
	searcher ProductSearcher
	logger   types.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(searcher ProductSearcher, logger types.Logger) *Handler {
	return &Handler{
		searcher: searcher,
		logger:   logger,
	}
}

// Health returns the health status of the API.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ai-stylist-backend",
	})
}

// styleSearchRequest is the JSON body of the style-driven search route.
type styleSearchRequest struct {
	StyleCategory string   `json:"styleCategory" binding:"required"`
	Colors        []string `json:"colors"`
	Occasion      string   `json:"occasion"`
	Limit         int      `json:"limit"`
	Gender        string   `json:"gender"`
	Sources       []string `json:"sources"`
}

// SearchProducts handles POST /api/products/search for the photo-analysis flow.
func (h *Handler) SearchProducts(c *gin.Context) {
	var req styleSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "styleCategory is required",
		})
		return
	}

	products, err := h.searcher.SearchByStyle(c.Request.Context(), req.StyleCategory, req.Colors, req.Occasion, types.StyleOptions{
		Limit:   req.Limit,
		Gender:  req.Gender,
		Sources: req.Sources,
	})
	if err != nil {
		h.logger.Errorf("Style search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to search products. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
		"count":    len(products),
	})
}

// SearchOutfits handles GET /api/outfits/search for the outfit-builder flow.
// Query params: query (required), category (optional outfit slot), limit.
func (h *Handler) SearchOutfits(c *gin.Context) {
	query := c.Query("query")

	var category types.Category
	if raw := c.Query("category"); raw != "" {
		parsed, err := types.ParseCategory(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "category must be one of top, bottom, shoes, accessories",
			})
			return
		}
		category = parsed
	}

	limit := defaultOutfitLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	products, err := h.searcher.SearchByText(c.Request.Context(), query, types.OutfitOptions{
		Limit:    limit,
		Category: category,
	})
	if err != nil {
		if errors.Is(err, types.ErrInvalidQuery) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Search query is required",
			})
			return
		}
		h.logger.Errorf("Outfit search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to search products. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
		"count":    len(products),
	})
}
