// Package observability holds the Prometheus collectors for the API.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	socialCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitshare",
		Subsystem: "social",
		Name:      "interactions_total",
		Help:      "Social interactions applied, by kind (share, like, unlike, comment).",
	}, []string{"kind"})

	duplicateLikeCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fitshare",
		Subsystem: "social",
		Name:      "duplicate_likes_total",
		Help:      "Likes rejected because the user already liked the shared workout.",
	})

	reconcileCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitshare",
		Subsystem: "social",
		Name:      "counter_repairs_total",
		Help:      "Reconciliations that changed a stored counter, by counter.",
	}, []string{"counter"})

	httpRequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitshare",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by route pattern and status code.",
	}, []string{"route", "status"})
)

func init() {
	prometheus.MustRegister(socialCounter, duplicateLikeCounter, reconcileCounter, httpRequestCounter)
}

const (
	KindShare   = "share"
	KindLike    = "like"
	KindUnlike  = "unlike"
	KindComment = "comment"
)

// RecordInteraction counts one applied social write.
func RecordInteraction(kind string) {
	socialCounter.WithLabelValues(kind).Inc()
}

// RecordDuplicateLike counts a like rejected by the uniqueness constraint.
func RecordDuplicateLike() {
	duplicateLikeCounter.Inc()
}

// RecordRepair counts a reconciliation that moved counter by a non-zero amount.
func RecordRepair(counter string, before, after int) {
	if before == after {
		return
	}
	reconcileCounter.WithLabelValues(counter).Inc()
}

// RecordRequest counts a served request.
func RecordRequest(route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestCounter.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
