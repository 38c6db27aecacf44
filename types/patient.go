package types

// RawPatient is one record from a page of the remote list endpoint.
// Only the identifier is reliably typed; the vital fields arrive as
// numbers, strings, nulls or garbage and are kept opaque until the
// scoring normalizers look at them.
type RawPatient struct {
	ID            string      `json:"patient_id"`
	Name          string      `json:"name"`
	Age           interface{} `json:"age"`
	Temperature   interface{} `json:"temperature"`
	BloodPressure interface{} `json:"blood_pressure"`
}

// SubmissionReceipt is the submit endpoint's response, passed through
// to the caller unmodified.
type SubmissionReceipt struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
