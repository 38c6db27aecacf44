package apiclient

import (
	"vitalscope.com/vra/assessment"
	"vitalscope.com/vra/types"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// SubmitAssessment posts the three identifier sets through the same
// retrying transport as the list endpoint. The receipt is handed back
// unmodified; how many submissions the service accepts is its own
// concern.
func (client *Client) SubmitAssessment(ctx context.Context, result assessment.Result) (types.SubmissionReceipt, error) {
	var receipt types.SubmissionReceipt
	body, err := client.request(ctx, http.MethodPost, "/submit-assessment", result)
	if err != nil {
		return receipt, fmt.Errorf("failed to submit assessment: %w", err)
	}
	if err := json.Unmarshal(body, &receipt); err != nil {
		return receipt, fmt.Errorf("failed to decode submission response: %w", err)
	}
	return receipt, nil
}
