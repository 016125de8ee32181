package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UpstreamRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tutorgo", Name: "upstream_requests_total", Help: "Requests sent to the TutorGo REST backend",
	})
	UpstreamFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tutorgo", Name: "upstream_failures_total", Help: "Upstream requests that failed or were rejected",
	})
	ChatGenerations = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tutorgo", Name: "chat_generations_total", Help: "Assistant generation calls",
	})
	ChatNavigations = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tutorgo", Name: "chat_navigations_total", Help: "Assistant replies resolved into navigation commands",
	})
)

func init() {
	prometheus.MustRegister(UpstreamRequests, UpstreamFailures, ChatGenerations, ChatNavigations)
}

func Handler() http.Handler { return promhttp.Handler() }
