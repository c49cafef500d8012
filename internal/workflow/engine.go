// Package workflow orchestrates the complete analysis pipeline: concurrent
// domain estimation, synthesis, optional refinement, and final evaluation.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/verdantlabs/verdant/internal/estimator"
	"github.com/verdantlabs/verdant/internal/evaluate"
	"github.com/verdantlabs/verdant/internal/location"
	"github.com/verdantlabs/verdant/internal/model"
	"github.com/verdantlabs/verdant/internal/refine"
	"github.com/verdantlabs/verdant/internal/service"
	"github.com/verdantlabs/verdant/internal/synthesis"
)

// Refinement triggers when the synthesized plan scores below these bars.
const (
	refineEcoScoreThreshold   = 60
	refineConfidenceThreshold = 0.7
)

// Engine wires the pipeline stages together. One Engine serves many
// requests; all per-request state lives on the stack.
type Engine struct {
	resolver    *location.Resolver
	estimators  []service.Estimator
	synthesizer *synthesis.Synthesizer
	refiner     *refine.Refiner
	evaluator   *evaluate.Evaluator
}

// NewEngine creates a workflow engine over the given estimators.
func NewEngine(resolver *location.Resolver, estimators []service.Estimator) *Engine {
	return &Engine{
		resolver:    resolver,
		estimators:  estimators,
		synthesizer: synthesis.NewSynthesizer(),
		refiner:     refine.NewRefiner(),
		evaluator:   evaluate.NewEvaluator(),
	}
}

// RunCompleteAnalysis executes the full pipeline for one lifestyle
// description. It never returns an error for pipeline failures; a panic in
// a sequential stage degrades to a fixed conservative result instead.
func (e *Engine) RunCompleteAnalysis(ctx context.Context, description string) (result *model.AnalysisResult) {
	sessionID := fmt.Sprintf("session_%s", time.Now().Format("20060102_150405"))

	defer func() {
		if r := recover(); r != nil {
			slog.Error("analysis pipeline failed, returning degraded result", "session_id", sessionID, "panic", r)
			result = degradedResult(sessionID, fmt.Sprintf("workflow failed: %v", r))
		}
	}()

	loc := e.resolver.Resolve(description)
	profile := analyzeLifestyle(description)

	analyses := e.runEstimators(ctx, description, loc)
	synth := e.synthesizer.Synthesize(analyses)

	var history []model.RefinementRecord
	if shouldRefine(synth) {
		record := e.refiner.Refine(synth, history)
		history = append(history, *record)
		synth = &record.RefinedPlan
		slog.Debug("plan refined",
			"session_id", sessionID,
			"quality_score", record.QualityScore,
			"improvement", record.Validation.OverallImprovement)
	}

	report := e.evaluator.Evaluate(synth, history, description)

	return &model.AnalysisResult{
		Timestamp:            time.Now(),
		SessionID:            sessionID,
		EcoScore:             report.FinalEcoScore,
		TotalCarbonFootprint: synth.TotalFootprint,
		PotentialReduction:   report.Evaluation.CarbonImpact.PotentialReduction,
		DomainBreakdown:      synth.DomainBreakdown,
		PrioritizedActions:   report.Plan.FinalActions,
		Timeline:             report.Plan.Timeline,
		Synergies:            synth.Synergies,
		Impact:               synth.Impact,
		Profile:              profile,
		Summary:              report.Summary,
		RefinementIterations: len(history),
		Refined:              len(history) > 0,
	}
}

// runEstimators fans out the four domain estimators concurrently and
// substitutes the documented fallback analysis for any that fail.
func (e *Engine) runEstimators(ctx context.Context, description string, loc model.LocationContext) map[model.Domain]*model.DomainAnalysis {
	type outcome struct {
		domain   model.Domain
		analysis *model.DomainAnalysis
		err      error
	}

	results := make([]outcome, len(e.estimators))

	var wg sync.WaitGroup
	for i, est := range e.estimators {
		wg.Add(1)
		go func(i int, est service.Estimator) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = outcome{domain: est.Domain(), err: fmt.Errorf("estimator panic: %v", r)}
				}
			}()
			analysis, err := est.Analyze(ctx, description, loc)
			results[i] = outcome{domain: est.Domain(), analysis: analysis, err: err}
		}(i, est)
	}
	wg.Wait()

	analyses := make(map[model.Domain]*model.DomainAnalysis, len(results))
	for _, r := range results {
		if r.err != nil {
			slog.Warn("domain analysis failed, substituting fallback", "domain", r.domain, "error", r.err)
			analyses[r.domain] = estimator.FallbackAnalysis(r.domain)
			continue
		}
		analyses[r.domain] = r.analysis
	}
	return analyses
}

func shouldRefine(synth *model.SynthesisResult) bool {
	return synth.EcoScore < refineEcoScoreThreshold || synth.Confidence < refineConfidenceThreshold
}

// degradedResult is the fixed conservative envelope returned when the
// pipeline fails entirely.
func degradedResult(sessionID, reason string) *model.AnalysisResult {
	actions := []model.Intervention{
		{
			Domain:       model.DomainHome,
			Action:       "Switch to LED lighting throughout home",
			CO2Reduction: "0.5 tons/year",
			Feasibility:  model.FeasibilityHigh,
			CostImpact:   "Low cost, immediate savings",
		},
		{
			Domain:       model.DomainTransport,
			Action:       "Use public transportation for daily commute",
			CO2Reduction: "2.0 tons/year",
			Feasibility:  model.FeasibilityHigh,
			CostImpact:   "Cost savings immediately",
		},
		{
			Domain:       model.DomainDiet,
			Action:       "Reduce meat consumption by 50%",
			CO2Reduction: "1.0 tons/year",
			Feasibility:  model.FeasibilityMedium,
			CostImpact:   "Cost savings on groceries",
		},
	}

	return &model.AnalysisResult{
		Timestamp:            time.Now(),
		SessionID:            sessionID,
		FailureReason:        reason,
		EcoScore:             25,
		TotalCarbonFootprint: 12.5,
		PotentialReduction:   6.0,
		DomainBreakdown: map[model.Domain]model.DomainSummary{
			model.DomainHome:      {CarbonFootprint: 3.0, EfficiencyScore: 0.4},
			model.DomainTransport: {CarbonFootprint: 5.5, EfficiencyScore: 0.2},
			model.DomainDiet:      {CarbonFootprint: 2.5, EfficiencyScore: 0.3},
			model.DomainShopping:  {CarbonFootprint: 1.5, EfficiencyScore: 0.4},
		},
		PrioritizedActions: actions,
		Timeline: model.ImplementationTimeline{
			Immediate: []string{"Switch to LED lighting"},
			ShortTerm: []string{"Use public transportation", "Reduce meat consumption"},
		},
		Degraded: true,
	}
}
