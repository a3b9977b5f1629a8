package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventory-tracker/internal/application/ports"
	"github.com/jhoicas/inventory-tracker/internal/domain/inventory"
)

// Metrics métricas Prometheus de la API sobre un registry propio.
type Metrics struct {
	registry       *prometheus.Registry
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	movements      *prometheus.CounterVec
}

// NewMetrics registra los colectores HTTP, el contador de movimientos por resultado
// y gauges que leen el store en cada scrape.
func NewMetrics(store ports.SnapshotReader) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_http_requests_total",
				Help: "Total de peticiones HTTP por método, ruta y status",
			},
			[]string{"method", "route", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "inventory_http_request_duration_seconds",
				Help:    "Duración de las peticiones HTTP en segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		movements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inventory_movements_total",
				Help: "Movimientos procesados por resultado (accepted o código de rechazo)",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		m.requestCounter,
		m.requestLatency,
		m.movements,
		collectors.NewGoCollector(),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "inventory_products",
			Help: "Productos en el catálogo",
		}, func() float64 { return float64(len(store.Snapshot().Products)) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "inventory_locations",
			Help: "Ubicaciones registradas",
		}, func() float64 { return float64(len(store.Snapshot().Locations)) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "inventory_stock_total",
			Help: "Stock total (saldo por producto acotado en cero)",
		}, func() float64 {
			return float64(inventory.TotalStock(inventory.AggregateByProduct(store.Snapshot().Movements)))
		}),
	)
	return m
}

// Middleware mide cada petición con la ruta registrada (no la URL) como etiqueta.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		route := c.Route().Path
		m.requestCounter.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.requestLatency.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// ObserveMovement cuenta un movimiento aceptado (err == nil) o rechazado por código.
func (m *Metrics) ObserveMovement(err error) {
	if m == nil {
		return
	}
	result := "accepted"
	if err != nil {
		_, result = errorStatus(err)
	}
	m.movements.WithLabelValues(result).Inc()
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
