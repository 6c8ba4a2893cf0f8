package api

// PredictRequest is the body of a prediction request. Review is not marked
// required: a missing or empty review is handled by the validator, which
// answers with its own message rather than a binding error.
type PredictRequest struct {
	Review string `json:"review"`
}
