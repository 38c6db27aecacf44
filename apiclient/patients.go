package apiclient

import (
	"vitalscope.com/vra/types"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// listEnvelope keeps data and pagination opaque: the service is allowed
// to omit either or return them ill-typed, and neither case is a
// failure at this layer.
type listEnvelope struct {
	Data       json.RawMessage `json:"data"`
	Pagination json.RawMessage `json:"pagination"`
}

// page is the decoded, defensive view of one list response.
type page struct {
	records       []types.RawPatient
	totalPages    int
	hasTotalPages bool
}

// retrievalState is the fold state of a page walk. totalPages starts at
// an optimistic 1 and is only ever overwritten by a page that asserts
// it, which keeps termination auditable: a server that never reports a
// total page count ends the walk after page 1 instead of spinning.
type retrievalState struct {
	page       int
	totalPages int
	records    []types.RawPatient
}

func (state retrievalState) done() bool {
	return state.page > state.totalPages
}

func (state retrievalState) next(current page) retrievalState {
	next := retrievalState{
		page:       state.page + 1,
		totalPages: state.totalPages,
		records:    append(state.records, current.records...),
	}
	if current.hasTotalPages {
		next.totalPages = current.totalPages
	}
	return next
}

func decodePage(body []byte) page {
	var result page
	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return result
	}
	if len(envelope.Data) > 0 {
		var records []types.RawPatient
		if err := json.Unmarshal(envelope.Data, &records); err == nil {
			result.records = records
		}
	}
	if len(envelope.Pagination) > 0 {
		var meta map[string]interface{}
		if err := json.Unmarshal(envelope.Pagination, &meta); err == nil {
			if totalPages, ok := meta["totalPages"].(float64); ok {
				result.totalPages = int(totalPages)
				result.hasTotalPages = true
			}
		}
	}
	return result
}

// FetchAllPatients walks the list endpoint page by page and accumulates
// every record. Each call starts a fresh walk. A terminal request
// failure on any page aborts the whole retrieval.
func (client *Client) FetchAllPatients(ctx context.Context) ([]types.RawPatient, error) {
	state := retrievalState{page: 1, totalPages: 1}
	for !state.done() {
		endpoint := fmt.Sprintf("/patients?page=%d&limit=%d", state.page, client.config.PageLimit)
		body, err := client.request(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch patients page %d: %w", state.page, err)
		}
		state = state.next(decodePage(body))
	}
	clientLogger.Info().
		Int("patients", len(state.records)).
		Int("pages", state.page-1).
		Msg("Finished patient retrieval")
	return state.records, nil
}
