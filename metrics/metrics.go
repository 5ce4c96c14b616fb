// Package metrics wires the Migration Selection Engine and the Pending-
// Transaction Submission Store into Prometheus, the way the teacher stack
// instruments its own VMs: one collector type per subsystem, registered
// once at construction and updated by the facade as it drives selection
// and submission primitives. No collector here ever changes control flow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collectors bundles every metric the walletcore facade observes.
type Collectors struct {
	selectionOutcomes       *prometheus.CounterVec
	selectionFeeExcess      prometheus.Histogram
	selectionOutputsCreated prometheus.Counter

	submissionPrimitives  *prometheus.CounterVec
	submissionPruned      *prometheus.CounterVec
	submissionResurrected *prometheus.CounterVec
}

// errs collects registration failures the way the teacher's
// utils/wrappers.Errs does: keep adding errors, report only the first.
type errs struct {
	err error
}

func (e *errs) add(err error) {
	if e.err == nil {
		e.err = err
	}
}

// New registers every collector against reg and returns the bundle, or the
// first registration error encountered.
func New(namespace string, reg prometheus.Registerer) (*Collectors, error) {
	var e errs

	c := &Collectors{
		selectionOutcomes: newCounterVec(namespace, "selection_outcomes_total",
			"Count of selection attempts by outcome.", []string{"outcome"}, reg, &e),
		selectionFeeExcess: newHistogram(namespace, "selection_fee_excess_atoms",
			"Distribution of the ada left as unassigned fee excess after a successful selection.",
			prometheus.ExponentialBuckets(1, 4, 12), reg, &e),
		selectionOutputsCreated: newCounter(namespace, "selection_outputs_created_total",
			"Count of outputs created across all successful selections.", reg, &e),

		submissionPrimitives: newCounterVec(namespace, "submission_primitives_total",
			"Count of submission-store primitives applied, by kind.", []string{"primitive"}, reg, &e),
		submissionPruned: newCounterVec(namespace, "submission_pruned_total",
			"Count of submission-store entries pruned, by reason.", []string{"reason"}, reg, &e),
		submissionResurrected: newCounterVec(namespace, "submission_resurrected_total",
			"Count of rollback/unexpiry resurrection events, by prior state.", []string{"from"}, reg, &e),
	}
	return c, e.err
}

func newCounter(namespace, name, help string, reg prometheus.Registerer, e *errs) prometheus.Counter {
	c := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help})
	e.add(reg.Register(c))
	return c
}

func newCounterVec(namespace, name, help string, labels []string, reg prometheus.Registerer, e *errs) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help}, labels)
	e.add(reg.Register(c))
	return c
}

func newHistogram(namespace, name, help string, buckets []float64, reg prometheus.Registerer, e *errs) prometheus.Histogram {
	h := prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: namespace, Name: name, Help: help, Buckets: buckets})
	e.add(reg.Register(h))
	return h
}

// Selection outcome labels, matching spec.md §4.1's three outcomes.
const (
	OutcomeOK             = "ok"
	OutcomeAdaInsufficient = "ada_insufficient"
	OutcomeFull           = "full"
)

func (c *Collectors) ObserveSelectionOutcome(outcome string) {
	if c == nil {
		return
	}
	c.selectionOutcomes.WithLabelValues(outcome).Inc()
}

func (c *Collectors) ObserveFeeExcess(atoms uint64) {
	if c == nil {
		return
	}
	c.selectionFeeExcess.Observe(float64(atoms))
}

func (c *Collectors) ObserveOutputsCreated(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.selectionOutputsCreated.Add(float64(n))
}

// Submission primitive labels, one per submission.Primitive case.
const (
	PrimitiveAdd          = "add"
	PrimitiveMoveToLedger = "move_to_ledger"
	PrimitiveMoveTip      = "move_tip"
	PrimitiveMoveFinality = "move_finality"
	PrimitiveForget       = "forget"
)

func (c *Collectors) ObservePrimitive(primitive string) {
	if c == nil {
		return
	}
	c.submissionPrimitives.WithLabelValues(primitive).Inc()
}

// Pruning reasons.
const (
	PruneReasonFinality = "finality"
	PruneReasonForget   = "forget"
)

func (c *Collectors) ObservePruned(reason string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.submissionPruned.WithLabelValues(reason).Add(float64(n))
}

// Resurrection sources: a transaction moving back to InSubmission either
// from InLedger (rollback past its acceptance slot) or from Expired
// (rollback past its expiring slot).
const (
	ResurrectedFromLedger  = "ledger"
	ResurrectedFromExpired = "expired"
)

func (c *Collectors) ObserveResurrected(from string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.submissionResurrected.WithLabelValues(from).Add(float64(n))
}
