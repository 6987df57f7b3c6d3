package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intwaza/online-marketplace/internal/service"
)

type PaymentHandler struct {
	svc *service.PaymentSvc
}

func NewPaymentHandler(svc *service.PaymentSvc) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// POST /api/payments/process
func (h *PaymentHandler) Process(c *gin.Context) {
	var in service.ProcessPaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.Process(c.Request.Context(), Actor(c), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GET /api/payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/payments/order/:orderId
func (h *PaymentHandler) ByOrder(c *gin.Context) {
	payments, err := h.svc.ByOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// PUT /api/payments/:id/refund (admin)
func (h *PaymentHandler) Refund(c *gin.Context) {
	p, err := h.svc.Refund(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
