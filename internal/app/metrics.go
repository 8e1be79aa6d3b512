package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SpinTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "spinwheel_spin_seconds",
		Help:    "Wall-clock duration of finished spins",
		Buckets: prometheus.LinearBuckets(1, 1, 10),
	}, []string{"wheel"})

	SpinWinners = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spinwheel_winners_total",
		Help: "Finished spins by winning label",
	}, []string{"wheel", "winner"})

	SpinsDeclined = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spinwheel_spins_declined_total",
		Help: "Spins that did not start, either too few items or already spinning",
	}, []string{"wheel"})

	SpinMismatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spinwheel_winner_mismatch_total",
		Help: "Spins where the winner under the pointer differs from the sampled one",
	}, []string{"wheel"})

	DrawErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spinwheel_draw_errors_total",
		Help: "Draws that failed to run or to persist",
	})
)

func metricsHandler() http.Handler {
	return promhttp.Handler()
}
