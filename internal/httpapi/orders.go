package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intwaza/online-marketplace/internal/domain"
	"github.com/intwaza/online-marketplace/internal/service"
)

type OrderHandler struct {
	svc *service.OrderSvc
}

func NewOrderHandler(svc *service.OrderSvc) *OrderHandler { return &OrderHandler{svc: svc} }

// POST /api/orders (shopper)
func (h *OrderHandler) Create(c *gin.Context) {
	var in struct {
		Items []service.OrderLine `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.svc.Place(c.Request.Context(), Actor(c), in.Items)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GET /api/orders/all (admin)
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/orders
func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.svc.ListMine(c.Request.Context(), Actor(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/orders/store (seller)
func (h *OrderHandler) ListStore(c *gin.Context) {
	orders, err := h.svc.ListStore(c.Request.Context(), Actor(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.svc.Get(c.Request.Context(), Actor(c), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// PUT /api/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var in struct {
		Status domain.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.svc.UpdateStatus(c.Request.Context(), Actor(c), c.Param("id"), in.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DELETE /api/orders/:id (owner or admin, pending only)
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), Actor(c), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
