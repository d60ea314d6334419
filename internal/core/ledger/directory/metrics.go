package directory

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the directory metrics.
var Registry = prometheus.NewRegistry()

var (
	insertsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "directory",
		Name:      "inserts_total",
		Help:      "Entries added to directories.",
	})
	removesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "directory",
		Name:      "removes_total",
		Help:      "Entries removed from directories.",
	})
	pagesCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "directory",
		Name:      "pages_created_total",
		Help:      "Directory pages created, roots included.",
	})
	pagesErasedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "directory",
		Name:      "pages_erased_total",
		Help:      "Directory pages erased, roots included.",
	})
)

func init() {
	Registry.MustRegister(insertsTotal, removesTotal, pagesCreatedTotal, pagesErasedTotal)
}
