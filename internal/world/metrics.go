package world

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Метрики мира регистрируются один раз в глобальном регистре Prometheus
// и отдаются через /metrics вместе с HTTP-метриками.
var (
	worldsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sandbox",
		Subsystem: "world",
		Name:      "generated_total",
		Help:      "Количество сгенерированных миров.",
	})
	generationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sandbox",
		Subsystem: "world",
		Name:      "generation_duration_seconds",
		Help:      "Длительность генерации мира.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})
	tileOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sandbox",
		Subsystem: "world",
		Name:      "tile_operations_total",
		Help:      "Операции с тайлами после генерации по типу и результату.",
	}, []string{"op", "result"})
)

func init() {
	prometheus.MustRegister(worldsGenerated, generationSeconds, tileOperations)
}

func observeTileOp(op EventType, ok bool) {
	result := "ok"
	if !ok {
		result = "rejected"
	}
	tileOperations.WithLabelValues(op.String(), result).Inc()
}
