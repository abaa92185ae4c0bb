package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/restaurant-orders/internal/domain"
	"github.com/Gunvolt24/restaurant-orders/internal/ports"
	"github.com/Gunvolt24/restaurant-orders/internal/usecase"
	"github.com/Gunvolt24/restaurant-orders/pkg/validate"
)

// Handler — HTTP-хендлеры поверх портов оркестрации.
// Знает только абстракции; конкретные варианты собираются в app.Bootstrap.
type Handler struct {
	orders      ports.OrderService
	payments    ports.PaymentService
	newStrategy ports.PaymentFactory
	log         ports.Logger
	timeout     time.Duration
}

// NewHandler — DI-конструктор. timeout <= 0 отключает пер-хендлерный дедлайн.
func NewHandler(
	orders ports.OrderService,
	payments ports.PaymentService,
	newStrategy ports.PaymentFactory,
	log ports.Logger,
	timeout time.Duration,
) *Handler {
	return &Handler{
		orders:      orders,
		payments:    payments,
		newStrategy: newStrategy,
		log:         log,
		timeout:     timeout,
	}
}

// handlerCtx — контекст запроса с опциональным дедлайном.
func (h *Handler) handlerCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := c.Request.Context()
	if h.timeout > 0 {
		return context.WithTimeout(ctx, h.timeout)
	}
	return ctx, func() {}
}

func (h *Handler) getConfiguration(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"configuration": h.orders.Configuration()})
}

type reconfigureRequest struct {
	Database     string `json:"database"`
	Notification string `json:"notification"`
}

func (h *Handler) reconfigure(c *gin.Context) {
	var req reconfigureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if err := h.orders.Initialize(req.Database, req.Notification); err != nil {
		if errors.Is(err, ports.ErrInvalidConfiguration) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf(c.Request.Context(), "Initialize failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"configuration": h.orders.Configuration()})
}

func (h *Handler) processOrder(c *gin.Context) {
	var order domain.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	ctx, cancel := h.handlerCtx(c)
	defer cancel()

	if err := h.orders.ProcessOrder(ctx, order); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotInitialized):
			c.JSON(http.StatusConflict, gin.H{"error": usecase.ErrNotInitialized.Error()})
		case errors.Is(err, validate.ErrInvalidOrder):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Errorf(ctx, "ProcessOrder failed id=%d err=%v", order.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed", "order_id": order.ID})
}

func (h *Handler) getOrderByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	ctx, cancel := h.handlerCtx(c)
	defer cancel()

	order, err := h.orders.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotInitialized) {
			c.JSON(http.StatusConflict, gin.H{"error": usecase.ErrNotInitialized.Error()})
			return
		}
		h.log.Errorf(ctx, "GetOrder failed id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *Handler) processPayment(c *gin.Context) {
	var order domain.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	ctx, cancel := h.handlerCtx(c)
	defer cancel()

	paid, err := h.payments.ProcessOrderPayment(ctx, order)
	if err != nil {
		h.log.Errorf(ctx, "ProcessOrderPayment failed id=%d err=%v", order.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"paid":     paid,
		"strategy": h.payments.CurrentStrategy(),
	})
}

type strategyRequest struct {
	Strategy string `json:"strategy"`
}

func (h *Handler) setPaymentStrategy(c *gin.Context) {
	var req strategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	strategy, err := h.newStrategy(req.Strategy)
	if err != nil {
		if errors.Is(err, ports.ErrInvalidConfiguration) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf(c.Request.Context(), "payment factory failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.payments.SetStrategy(strategy)
	c.JSON(http.StatusOK, gin.H{"strategy": h.payments.CurrentStrategy()})
}

func (h *Handler) getPaymentStrategy(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"strategy": h.payments.CurrentStrategy()})
}
