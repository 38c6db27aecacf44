package worker

import (
	"vitalscope.com/vra/assessment"
	"vitalscope.com/vra/types"
	"context"
	"errors"
)

type apiMockConfig struct {
	patients    []types.RawPatient
	receipt     types.SubmissionReceipt
	fetchFails  bool
	submitFails bool
}

type apiMockCalls struct {
	fetchAllPatients bool
	submitAssessment bool
}

type apiMock struct {
	config    apiMockConfig
	calls     apiMockCalls
	submitted assessment.Result
}

func (mock *apiMock) FetchAllPatients(_ context.Context) ([]types.RawPatient, error) {
	mock.calls.fetchAllPatients = true
	if mock.config.fetchFails {
		return nil, errors.New("retrieval failed")
	}
	return mock.config.patients, nil
}

func (mock *apiMock) SubmitAssessment(_ context.Context, result assessment.Result) (types.SubmissionReceipt, error) {
	mock.calls.submitAssessment = true
	mock.submitted = result
	if mock.config.submitFails {
		return types.SubmissionReceipt{}, errors.New("submission failed")
	}
	return mock.config.receipt, nil
}
