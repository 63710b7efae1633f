package handlers

import (
	"log"
	"net/http"

	"shikkhabazar/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type IPNHandler struct {
	payments *usecase.PaymentUseCase
}

func NewIPNHandler(payments *usecase.PaymentUseCase) *IPNHandler {
	return &IPNHandler{payments: payments}
}

// Handle принимает IPN от SSLCommerz (form-urlencoded POST).
// Шлюзу всегда отвечаем 200 "OK": любой другой код он считает
// сбоем доставки и повторяет коллбек.
func (h *IPNHandler) Handle(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		log.Printf("ipn: parse form: %v", err)
		c.String(http.StatusOK, "OK")
		return
	}

	if err := h.payments.HandleIPN(c, c.Request.PostForm); err != nil {
		log.Printf("ipn: tran_id=%s status=%s: %v",
			c.Request.PostForm.Get("tran_id"), c.Request.PostForm.Get("status"), err)
	}

	c.String(http.StatusOK, "OK")
}
