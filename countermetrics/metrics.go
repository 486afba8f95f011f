// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package countermetrics wires the counter package's operations into
// Prometheus. The counter package itself stays pure and side-effect free;
// this package is the ambient instrumentation layer a replica wraps it in.
package countermetrics

import (
	"errors"
	"net"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/countercontext/counter"
	"github.com/luxfi/log"
)

// Metrics holds the Prometheus collectors for counter-context operations.
type Metrics struct {
	log log.Logger

	updates    prometheus.Counter
	diffs      *prometheus.CounterVec
	merges     prometheus.Counter
	coreErrors *prometheus.CounterVec
}

// NewMetrics registers the counter-context collectors against reg.
func NewMetrics(reg prometheus.Registerer, logger log.Logger) (*Metrics, error) {
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	m := &Metrics{
		log: logger,
		updates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "counter_context_updates_total",
			Help: "Number of counter-context local updates performed.",
		}),
		diffs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "counter_context_diffs_total",
			Help: "Number of counter-context diffs performed, by relation.",
		}, []string{"relation"}),
		merges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "counter_context_merges_total",
			Help: "Number of counter-context merges performed.",
		}),
		coreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "counter_context_errors_total",
			Help: "Number of core errors returned, by reason.",
		}, []string{"reason"}),
	}
	for _, c := range []prometheus.Collector{m.updates, m.diffs, m.merges, m.coreErrors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Update wraps counter.Update with metrics and diagnostic logging.
func (m *Metrics) Update(ctx counter.Context, node net.IP, delta int64) (counter.Context, error) {
	out, err := counter.Update(ctx, node, delta)
	if err != nil {
		m.recordError(err)
		return nil, err
	}
	m.updates.Inc()
	return out, nil
}

// Diff wraps counter.Diff with metrics and logs a DISJOINT result, which
// tells a coordinator the two replicas are concurrently divergent and must
// be merged.
func (m *Metrics) Diff(left, right counter.Context) (counter.Relationship, error) {
	rel, err := counter.Diff(left, right)
	if err != nil {
		m.recordError(err)
		return 0, err
	}
	m.diffs.WithLabelValues(rel.String()).Inc()
	if rel == counter.Disjoint {
		m.log.Debug("counter contexts diverged, merge required")
	}
	return rel, nil
}

// Merge wraps counter.Merge with metrics.
func (m *Metrics) Merge(left, right counter.Context) (counter.Context, error) {
	out, err := counter.Merge(left, right)
	if err != nil {
		m.recordError(err)
		return nil, err
	}
	m.merges.Inc()
	return out, nil
}

func (m *Metrics) recordError(err error) {
	reason := "unknown"
	var ce *counter.CoreError
	if errors.As(err, &ce) {
		reason = ce.Reason.String()
	}
	m.coreErrors.WithLabelValues(reason).Inc()
	m.log.Warn("counter context operation failed", "reason", reason, "error", err)
}
