package handlers

import (
	"net/http"

	portssvc "github.com/FurkanErogluu/shopping-cart/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// productHandler exposes the read-only product catalog.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// registerProductRoutes registers the catalog routes.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/by-name", h.getProductByName)
		products.GET("/:id", h.getProduct)
	}
}

func (h *productHandler) listProducts(c *gin.Context) {
	responses, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, responses)
}

func (h *productHandler) getProductByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Status:  http.StatusBadRequest,
			Error:   &APIError{Code: "VALIDATION_ERROR", Message: "Query parameter 'name' is required"},
		})
		return
	}

	resp, err := h.productService.GetProductByName(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, resp)
}

func (h *productHandler) getProduct(c *gin.Context) {
	resp, err := h.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, resp)
}
