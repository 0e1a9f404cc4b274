package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all business-level Prometheus metrics. HTTP metrics live
// in the router middleware.
type Metrics struct {
	// Account metrics
	OwnersRegistered prometheus.Counter
	LoginAttempts    *prometheus.CounterVec
	PortalLogins     *prometheus.CounterVec

	// Customer metrics
	CustomersCreated prometheus.Counter
	CustomersDeleted prometheus.Counter

	// Ledger metrics
	TransactionsRecorded *prometheus.CounterVec
	TransactionAmount    *prometheus.HistogramVec
	CashbookEntries      *prometheus.CounterVec

	// Dashboard metrics
	DashboardCacheHits   prometheus.Counter
	DashboardCacheMisses prometheus.Counter

	// Messaging metrics
	MessagesSent *prometheus.CounterVec

	// Activity metrics
	ActivitiesRecorded *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		OwnersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "smarthisab_owners_registered_total",
			Help: "Total number of owner accounts registered",
		}),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smarthisab_login_attempts_total",
				Help: "Total login attempts by outcome",
			},
			[]string{"outcome"},
		),
		PortalLogins: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smarthisab_portal_logins_total",
				Help: "Total customer portal logins by outcome",
			},
			[]string{"outcome"},
		),

		CustomersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "smarthisab_customers_created_total",
			Help: "Total number of customers created",
		}),
		CustomersDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "smarthisab_customers_deleted_total",
			Help: "Total number of customers deleted with their transactions",
		}),

		TransactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smarthisab_transactions_recorded_total",
				Help: "Total customer transactions recorded by kind",
			},
			[]string{"kind"},
		),
		TransactionAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "smarthisab_transaction_amount",
				Help:    "Recorded transaction amounts",
				Buckets: []float64{10, 100, 500, 1000, 5000, 10000, 100000},
			},
			[]string{"kind"},
		),
		CashbookEntries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smarthisab_cashbook_entries_total",
				Help: "Total cashbook entries recorded by kind",
			},
			[]string{"kind"},
		),

		DashboardCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "smarthisab_dashboard_cache_hits_total",
			Help: "Dashboard reads served from cache",
		}),
		DashboardCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "smarthisab_dashboard_cache_misses_total",
			Help: "Dashboard reads recomputed from the database",
		}),

		MessagesSent: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smarthisab_messages_sent_total",
				Help: "Total messages sent by sender role",
			},
			[]string{"sender"},
		),

		ActivitiesRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smarthisab_activities_recorded_total",
				Help: "Total activity trail lines recorded by action",
			},
			[]string{"action"},
		),
	}
}
