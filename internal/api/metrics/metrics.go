// Package metrics defines and registers all custom Prometheus metrics for the
// inventory API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ContainersCreatedTotal counts newly registered containers.
var ContainersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "containers_created_total",
		Help:      "Total number of containers created.",
	},
)

// ProductsCreatedTotal counts newly registered products.
// Label:
//   - mode: "single" or "bulk"
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created, by creation mode.",
	},
	[]string{"mode"},
)

// UsersCreatedTotal counts newly registered user accounts.
// Label:
//   - role: "admin" or "staff"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// ConflictsTotal counts uniqueness and referential-state rejections.
// Label:
//   - reason: "container_code", "sku", "email", "container_has_products", "duplicate_import"
var ConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conflicts_total",
		Help:      "Total number of conflict rejections, by reason.",
	},
	[]string{"reason"},
)

// BulkBatchSize observes the number of rows per bulk import request.
var BulkBatchSize = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "bulk_batch_size",
		Help:      "Number of product rows per bulk create request.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
	},
)

// AuditQueueDepth tracks the current number of audit entries waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
