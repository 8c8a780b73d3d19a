package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/redlabs/storefront/internal/models"
)

// ProductHandler serves the fake product catalog endpoints.
type ProductHandler struct {
	catalog ProductCatalog
	log     *logrus.Logger
}

// NewProductHandler creates a ProductHandler with the given catalog and logger.
func NewProductHandler(catalog ProductCatalog, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, log: log}
}

// List handles GET /api/v1/products.
func (h *ProductHandler) List(c *gin.Context) {
	page := parseInt(c.DefaultQuery("page", "1"), 1, 0)
	limit := parseInt(c.DefaultQuery("limit", "20"), 20, maxPageLimit)
	category := c.Query("category")

	result, err := h.catalog.ListProducts(c.Request.Context(), page, limit, category)
	if err != nil {
		respondServiceError(c, h.log, err)

		return
	}

	c.JSON(http.StatusOK, result)
}

// Create handles POST /api/v1/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.log, err)

		return
	}

	c.JSON(http.StatusCreated, product)
}

// Get handles GET /api/v1/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "invalid product id")
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)

		return
	}

	c.JSON(http.StatusOK, product)
}

// Update handles PUT /api/v1/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "invalid product id")
	if !ok {
		return
	}

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	product, err := h.catalog.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, h.log, err)

		return
	}

	c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/v1/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "invalid product id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Product " + id.String() + " deleted",
	})
}

// Process handles POST /api/v1/products/:id/process.
func (h *ProductHandler) Process(c *gin.Context) {
	id, ok := pathUUID(c, "invalid product id")
	if !ok {
		return
	}

	result, err := h.catalog.ProcessProduct(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)

		return
	}

	c.JSON(http.StatusOK, result)
}
