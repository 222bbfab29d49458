package analysis

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kjanat/poo-tracker/internal/platform/logger"
	"github.com/kjanat/poo-tracker/internal/types"
)

// AnalyzeInput is the raw material for one analysis run.
type AnalyzeInput struct {
	UserID   string
	Records  []types.HealthRecord
	Meals    []types.MealRecord
	Symptoms []types.SymptomRecord
}

// Options toggles the optional report sections.
type Options struct {
	IncludeHealthScore     bool
	IncludeRecommendations bool
	WeightOverrides        *ScoreWeights
}

// Service runs the full analysis pipeline over validated input.
type Service struct {
	log   *logger.Logger
	cfg   Config
	idgen IDGenerator
}

func NewService(log *logger.Logger, cfg Config, idgen IDGenerator) *Service {
	return &Service{
		log:   log.With("service", "analysis"),
		cfg:   cfg,
		idgen: idgen,
	}
}

// Analyze validates and normalizes the input, fans the independent analyzers
// out across goroutines, then assembles the dependent sections (regularity,
// score, rules) sequentially. Validation failures surface as typed errors;
// thin data never does, it degrades to the documented neutral defaults.
func (s *Service) Analyze(ctx context.Context, in AnalyzeInput, opts Options) (*types.AnalysisReport, error) {
	started := time.Now()

	n, err := Normalize(in.Records, in.Meals, in.Symptoms)
	if err != nil {
		return nil, err
	}

	s.log.Debug("analysis started",
		"user_id", in.UserID,
		"records", len(n.Records),
		"meals", len(n.Meals),
		"symptoms", len(n.Symptoms),
	)

	var (
		bristol           types.BristolAnalysis
		frequency         types.FrequencyStats
		timing            types.TimingPattern
		consistencyTrends types.ConsistencyTrends
		mealCorr          *types.MealCorrelations
		symptomCorr       map[string]types.SymptomCorrelation
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		bristol = AnalyzeDistribution(n.Records, s.cfg)
		return nil
	})
	g.Go(func() error {
		frequency = AnalyzeFrequency(n.Records, s.cfg)
		return nil
	})
	g.Go(func() error {
		timing = AnalyzeTiming(n.Records, s.cfg)
		return nil
	})
	g.Go(func() error {
		consistencyTrends = AnalyzeConsistencyTrends(n.Records)
		return nil
	})
	g.Go(func() error {
		mealCorr = CorrelateMeals(n.Records, n.Meals, s.cfg)
		return nil
	})
	g.Go(func() error {
		symptomCorr = CorrelateSymptoms(n.Records, n.Symptoms, s.cfg)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	regularity := RegularityIndex(n.Records, s.cfg)

	report := &types.AnalysisReport{
		Patterns: types.Patterns{
			Timing:            timing,
			Frequency:         frequency,
			ConsistencyTrends: consistencyTrends,
		},
		BristolAnalysis: bristol,
		Correlations: types.Correlations{
			Meals:    mealCorr,
			Symptoms: symptomCorr,
		},
		Regularity:      &regularity,
		Recommendations: []types.Recommendation{},
		RiskFactors:     []types.RiskFactor{},
	}

	if opts.IncludeHealthScore {
		score := CalculateHealthScore(n.Records, s.cfg, opts.WeightOverrides)
		report.HealthScore = &score
	}

	if opts.IncludeRecommendations {
		inputs := RuleInputs{
			Bristol:   bristol,
			Frequency: frequency,
			Timing:    timing,
			Meals:     mealCorr,
			Pain:      SummarizePain(n.Records),
		}
		report.Recommendations = Recommend(inputs, s.idgen, s.cfg)
		report.RiskFactors = IdentifyRisks(inputs)
	}

	report.Metadata = BuildMetadata(s.idgen, in.UserID, n, time.Since(started))

	s.log.Info("analysis completed",
		"user_id", in.UserID,
		"analysis_id", report.Metadata.AnalysisID,
		"records", len(n.Records),
		"recommendations", len(report.Recommendations),
		"risk_factors", len(report.RiskFactors),
		"elapsed_ms", time.Since(started).Milliseconds(),
	)

	return report, nil
}
