package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/driftlab/snowflaked/internal/generator"
)

type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	idsIssued       prometheus.Counter
	clockBackwards  prometheus.Counter
	logger          *zap.Logger
}

func NewMetrics(logger *zap.Logger) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "snowflaked_requests_total",
				Help: "Total number of RPC requests",
			},
			[]string{"method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "snowflaked_request_duration_seconds",
				Help:    "RPC request duration in seconds",
				Buckets: []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025},
			},
			[]string{"method"},
		),
		idsIssued: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "snowflaked_ids_issued_total",
				Help: "Total number of IDs issued",
			},
		),
		clockBackwards: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "snowflaked_clock_backwards_total",
				Help: "Total number of generate calls refused because the clock moved backwards",
			},
		),
		logger: logger,
	}

	prometheus.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.idsIssued,
		m.clockBackwards,
	)

	return m
}

// ObserveGenerator exports the generator's sequence-exhaustion wait count as
// a counter.
func (m *Metrics) ObserveGenerator(gen *generator.Generator) {
	prometheus.MustRegister(prometheus.NewCounterFunc(
		prometheus.CounterOpts{
			Name: "snowflaked_sequence_waits_total",
			Help: "Times generation blocked waiting for the next millisecond",
		},
		func() float64 { return float64(gen.SequenceWaits()) },
	))
}

func (m *Metrics) RecordIDIssued() {
	m.idsIssued.Inc()
}

func (m *Metrics) RecordClockBackwards() {
	m.clockBackwards.Inc()
}

func (m *Metrics) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		duration := time.Since(start).Seconds()
		statusCode := "success"
		if err != nil {
			statusCode = status.Convert(err).Code().String()
		}

		m.requestsTotal.WithLabelValues(info.FullMethod, statusCode).Inc()
		m.requestDuration.WithLabelValues(info.FullMethod).Observe(duration)

		return resp, err
	}
}

func (m *Metrics) Start(ctx context.Context, port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	m.logger.Info("metrics server starting", zap.Int("port", port))

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
