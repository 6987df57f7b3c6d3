package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/intwaza/online-marketplace/internal/service"
)

type ProductHandler struct {
	svc *service.ProductSvc
}

func NewProductHandler(svc *service.ProductSvc) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// POST /api/products (seller)
func (h *ProductHandler) Create(c *gin.Context) {
	var in service.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.Create(c.Request.Context(), Actor(c), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GET /api/products?page=1&limit=10&search=...&categoryId=...
func (h *ProductHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	products, total, err := h.svc.List(c.Request.Context(), page, limit,
		c.Query("search"), c.Query("categoryId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "total": total})
}

// GET /api/products/featured
func (h *ProductHandler) Featured(c *gin.Context) {
	products, err := h.svc.Featured(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/stores/:id/products
func (h *ProductHandler) ByStore(c *gin.Context) {
	products, err := h.svc.ByStore(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// PUT /api/products/:id (owner or admin)
func (h *ProductHandler) Update(c *gin.Context) {
	var in service.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.Update(c.Request.Context(), Actor(c), c.Param("id"), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/products/:id/feature (admin)
func (h *ProductHandler) Feature(c *gin.Context) {
	p, err := h.svc.Feature(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// PUT /api/products/:id/stock (owner or admin)
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	var in struct {
		StockQuantity int `json:"stockQuantity" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.UpdateStock(c.Request.Context(), Actor(c), c.Param("id"), in.StockQuantity)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/products/:id (owner or admin)
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), Actor(c), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
