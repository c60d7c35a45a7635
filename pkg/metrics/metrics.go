package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration  *prometheus.HistogramVec
	DBOpenConns      *prometheus.GaugeVec
	DBInUseConns     *prometheus.GaugeVec
	DBWaitCountTotal *prometheus.GaugeVec

	GridBuildsTotal         *prometheus.CounterVec
	GridCellsTotal          *prometheus.CounterVec
	AvailabilityChecksTotal *prometheus.CounterVec
	GridCacheTotal          *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		DBOpenConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBInUseConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBWaitCountTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),
		GridBuildsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_grid_builds_total",
			Help:        "Number of calendar grids built",
			ConstLabels: constLabels,
		}, []string{"mode"}),
		GridCellsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_grid_cells_total",
			Help:        "Number of calendar cells produced",
			ConstLabels: constLabels,
		}, []string{"mode"}),
		AvailabilityChecksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_checks_total",
			Help:        "Number of service availability checks",
			ConstLabels: constLabels,
		}, []string{"result"}),
		GridCacheTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_grid_cache_total",
			Help:        "Calendar grid cache lookups",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConns,
		m.DBInUseConns,
		m.DBWaitCountTotal,
		m.GridBuildsTotal,
		m.GridCellsTotal,
		m.AvailabilityChecksTotal,
		m.GridCacheTotal,
	)

	return m
}

// Handler HTTP обработчик для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry возвращает реестр (для тестов)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// ObserveGridBuild фиксирует построение сетки календаря
func (m *Metrics) ObserveGridBuild(mode string, cells int) {
	m.GridBuildsTotal.WithLabelValues(mode).Inc()
	m.GridCellsTotal.WithLabelValues(mode).Add(float64(cells))
}

// ObserveAvailabilityCheck фиксирует результат проверки доступности услуги
func (m *Metrics) ObserveAvailabilityCheck(addable bool) {
	result := "available"
	if !addable {
		result = "unavailable"
	}
	m.AvailabilityChecksTotal.WithLabelValues(result).Inc()
}

// ObserveGridCache фиксирует попадание/промах кэша сетки
func (m *Metrics) ObserveGridCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.GridCacheTotal.WithLabelValues(result).Inc()
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(db string, stats sql.DBStats) {
	m.DBOpenConns.WithLabelValues(db).Set(float64(stats.OpenConnections))
	m.DBInUseConns.WithLabelValues(db).Set(float64(stats.InUse))
	m.DBWaitCountTotal.WithLabelValues(db).Set(float64(stats.WaitCount))
}
