package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain"
	"github.com/storefront/backend/internal/infrastructure/cartstore"
	"github.com/storefront/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	storefront *usecase.StorefrontService
	catalog    *usecase.CatalogService
	carts      *cartstore.Registry
	logger     *zap.Logger
}

// NewHandler creates a new HTTP handler with dependencies
func NewHandler(
	storefront *usecase.StorefrontService,
	catalog *usecase.CatalogService,
	carts *cartstore.Registry,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		storefront: storefront,
		catalog:    catalog,
		carts:      carts,
		logger:     logger,
	}
}

// toggleRequest is the body of a tag click
type toggleRequest struct {
	SearchTerm string `json:"searchTerm"`
	Tag        string `json:"tag" binding:"required"`
}

// cartResponse is the cart with its totals
type cartResponse struct {
	Items         []domain.CartItem `json:"items"`
	TotalQuantity int               `json:"totalQuantity"`
	Subtotal      int64             `json:"subtotal"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "storefront",
		"version": "1.0.0",
	})
}

// ListProducts returns the filtered listing for the q search text
func (h *Handler) ListProducts(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	listing, err := h.storefront.Listing(c.Request.Context(), c.Query("q"), h.cart(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// ToggleTag applies a tag click to the posted search text
func (h *Handler) ToggleTag(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: tag is required"})
		return
	}

	c.JSON(http.StatusOK, h.storefront.Toggle(req.SearchTerm, req.Tag))
}

// ListTags returns the canned tag rows
func (h *Handler) ListTags(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"tagGroups": h.storefront.TagGroups()})
}

// ResetSearch returns an empty search state
func (h *Handler) ResetSearch(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	c.JSON(http.StatusOK, h.storefront.Reset())
}

// GetCart returns the session's cart
func (h *Handler) GetCart(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	items := h.cart(c).Items()
	qty, subtotal := usecase.CartTotals(items)
	c.JSON(http.StatusOK, cartResponse{Items: items, TotalQuantity: qty, Subtotal: subtotal})
}

// ClearCart empties the session's cart
func (h *Handler) ClearCart(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	if err := h.storefront.Clear(h.cart(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// IncrementItem adds one unit of the product to the session's cart
func (h *Handler) IncrementItem(c *gin.Context) {
	h.mutateCart(c, h.storefront.Increment)
}

// DecrementItem removes one unit of the product from the session's cart
func (h *Handler) DecrementItem(c *gin.Context) {
	h.mutateCart(c, h.storefront.Decrement)
}

// RefreshCatalog drops the cached catalog
func (h *Handler) RefreshCatalog(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	if err := h.catalog.Refresh(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type cartAction func(ctx context.Context, cart domain.CartStore, productID string) (int, error)

func (h *Handler) mutateCart(c *gin.Context, action cartAction) {
	if !h.ready(c) {
		return
	}

	productID := c.Param("id")
	qty, err := action(c.Request.Context(), h.cart(c), productID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": productID, "quantity": qty})
}

// ready rejects the request when the handler was built without services
func (h *Handler) ready(c *gin.Context) bool {
	if h.storefront == nil || h.catalog == nil || h.carts == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storefront service not configured"})
		return false
	}
	return true
}

func (h *Handler) cart(c *gin.Context) *cartstore.Cart {
	return h.carts.Cart(SessionID(c))
}

// respondError maps domain errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	// Catalog errors wrap the source error, so they are matched first
	switch {
	case errors.Is(err, domain.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Product catalog is rate limited, retry shortly"})
	case errors.Is(err, domain.ErrCatalogUnavailable):
		h.logger.Warn("catalog unavailable", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Product catalog temporarily unavailable"})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	default:
		h.logger.Error("unhandled request error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
