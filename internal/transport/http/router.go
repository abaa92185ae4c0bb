package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/restaurant-orders/pkg/httpx"
)

// NewRouter — собирает gin-роутер поверх хендлера.
// otelServiceName != "" включает otelgin-трейсинг запросов.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/config", h.getConfiguration)
	r.PUT("/config", h.reconfigure)

	r.POST("/orders", h.processOrder)
	r.GET("/orders/:id", h.getOrderByID)

	r.POST("/payments", h.processPayment)
	r.PUT("/payments/strategy", h.setPaymentStrategy)
	r.GET("/payments/strategy", h.getPaymentStrategy)

	return r
}
