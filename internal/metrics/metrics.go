// Package metrics exposes the Prometheus instrumentation for the conversion
// and diagnostic engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autoflow_conversions_total",
		Help: "Blueprint conversions by direction and outcome.",
	}, []string{"source", "target", "success"})

	FallbackSubstitutionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "autoflow_fallback_substitutions_total",
		Help: "Action identifiers substituted with the generic HTTP fallback during conversion.",
	})

	FindingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autoflow_findings_total",
		Help: "Diagnostic findings produced by blueprint analysis, by severity.",
	}, []string{"severity"})

	DialogueStepsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "autoflow_dialogue_steps_total",
		Help: "Messages processed by the diagnostic dialogue controller.",
	})

	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autoflow_generations_total",
		Help: "Automation generations by platform and source (template, model, fallback).",
	}, []string{"platform", "source"})
)
