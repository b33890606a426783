package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry *prometheus.Registry

	wagersAccepted  prometheus.Counter
	wagersRejected  prometheus.Counter
	ticketsSettled  *prometheus.CounterVec
	payoutTotal     prometheus.Counter
	chancePlays     *prometheus.CounterVec
	exposureRefused prometheus.Counter
}

func New() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		wagersAccepted: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "betmart_wagers_accepted_total",
			Help: "Wager batches accepted and committed",
		}),
		wagersRejected: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "betmart_wagers_rejected_total",
			Help: "Wager batches rejected before commit",
		}),
		ticketsSettled: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "betmart_tickets_settled_total",
			Help: "Tickets finalized by settlement",
		}, []string{"status"}),
		payoutTotal: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "betmart_payout_mmk_total",
			Help: "Total MMK credited to winners",
		}),
		chancePlays: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "betmart_chance_plays_total",
			Help: "High/low plays by outcome",
		}, []string{"outcome"}),
		exposureRefused: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "betmart_exposure_refusals_total",
			Help: "Wager batches refused by the per-number exposure cap",
		}),
	}
}

func (c *Collector) WagerAccepted()   { c.wagersAccepted.Inc() }
func (c *Collector) WagerRejected()   { c.wagersRejected.Inc() }
func (c *Collector) ExposureRefused() { c.exposureRefused.Inc() }

func (c *Collector) TicketsSettled(status string, count int) {
	c.ticketsSettled.WithLabelValues(status).Add(float64(count))
}
func (c *Collector) PayoutPaid(amount int64) {
	c.payoutTotal.Add(float64(amount))
}
func (c *Collector) ChancePlayed(outcome string) {
	c.chancePlays.WithLabelValues(outcome).Inc()
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
