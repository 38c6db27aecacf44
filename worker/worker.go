package worker

import (
	"vitalscope.com/vra/assessment"
	"vitalscope.com/vra/logger"
	"vitalscope.com/vra/scoring"
	"vitalscope.com/vra/types"
	"vitalscope.com/vra/utils"
	"context"
	"fmt"
	"github.com/rs/zerolog"
)

// assessmentAPI is what the worker needs from the transport layer; the
// concrete implementation is *apiclient.Client.
type assessmentAPI interface {
	FetchAllPatients(ctx context.Context) ([]types.RawPatient, error)
	SubmitAssessment(ctx context.Context, result assessment.Result) (types.SubmissionReceipt, error)
}

type Worker struct {
	api       assessmentAPI
	rules     scoring.Rules
	vraLogger *zerolog.Logger
}

func New(api assessmentAPI, rules scoring.Rules) *Worker {
	vraLogger := logger.NewLogger("Worker")
	return &Worker{
		api:       api,
		rules:     rules,
		vraLogger: &vraLogger,
	}
}

// Run performs one full assessment: fetch every page, score the
// collection, submit the three sets. Any terminal error aborts the run;
// partial results are never submitted.
func (worker *Worker) Run(ctx context.Context) (err error) {
	defer utils.RecoverWithError(&err)

	worker.vraLogger.Info().Msg("Starting patient retrieval")
	patients, err := worker.api.FetchAllPatients(ctx)
	if err != nil {
		worker.vraLogger.Err(err).Msg("Patient retrieval failed, nothing will be submitted")
		return fmt.Errorf("failed to fetch patients: %w", err)
	}

	result := assessment.Assess(patients, worker.rules)
	worker.vraLogger.Info().
		Int("patients", len(patients)).
		Int("high_risk", len(result.HighRisk)).
		Int("fever", len(result.Fever)).
		Int("data_quality_issues", len(result.DataQualityIssues)).
		Uint64("fingerprint", result.Fingerprint()).
		Msg("Finished scoring patient collection")

	receipt, err := worker.api.SubmitAssessment(ctx, result)
	if err != nil {
		worker.vraLogger.Err(err).Msg("Failed to submit assessment")
		return fmt.Errorf("failed to submit assessment: %w", err)
	}
	worker.vraLogger.Info().
		Bool("success", receipt.Success).
		Str("message", receipt.Message).
		Msg("Submitted assessment")
	return nil
}
