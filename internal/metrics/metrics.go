package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScansTotal counts scan requests by outcome (started, finished, completed, locked, noop).
	ScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "line_scans_total",
		Help: "Scan requests handled, by outcome",
	}, []string{"outcome"})

	UndoTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "line_scan_undo_total",
		Help: "Undo requests handled, by outcome",
	}, []string{"outcome"})

	ExternalResultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "line_external_results_total",
		Help: "External test results applied, by source and status",
	}, []string{"source", "status"})

	// StationVisitDuration is observed when a visit closes.
	StationVisitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "line_station_visit_duration_seconds",
		Help:    "Time a unit spent at a station",
		Buckets: []float64{60, 300, 600, 900, 1200, 1800, 2700, 3600, 5400, 7200},
	}, []string{"station_id"})

	FinishedGoodsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "line_finished_goods_total",
		Help: "Units that completed their route",
	}, []string{"model"})

	OrdersLaunchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "line_orders_launched_total",
		Help: "Work orders created by production launches",
	}, []string{"model"})

	ReservationsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "line_reservations_rejected_total",
		Help: "Launches rejected for insufficient component stock",
	})

	ReorderNoticesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "line_reorder_notices_total",
		Help: "Reorder notices by delivery status",
	}, []string{"status"})

	RouteFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "line_route_fallbacks_total",
		Help: "Routes resolved to the mandatory-only fallback",
	})
)
