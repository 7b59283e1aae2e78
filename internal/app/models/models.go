// Package models contains all the models used for json (de)serialization in handlers.
package models

// ShortenRequest model is the model of input JSON used in ShortenHandler.
// ProposedCode is optional and lets the client pre-generate a code for
// optimistic UI rendering.
type ShortenRequest struct {
	LongURL      string `json:"longUrl"`
	ProposedCode string `json:"proposedCode,omitempty"`
}

// ShortenResponse model is the model of output JSON used in ShortenHandler.
// LongURL carries the normalized form of the submitted URL.
type ShortenResponse struct {
	ShortURL string `json:"shortUrl"`
	LongURL  string `json:"longUrl"`
}

// AnalyticsEvent is the model of a single redirect event, emitted by the
// redirect handler and accepted on the analytics ingest endpoint.
// Timestamp is unix milliseconds.
type AnalyticsEvent struct {
	Code           string `json:"code"`
	LongURL        string `json:"longUrl"`
	Timestamp      int64  `json:"timestamp"`
	RedirectTimeMs int64  `json:"redirectTimeMs"`
	Region         string `json:"region,omitempty"`
	Version        string `json:"version,omitempty"`
}

// DeployMetadataRequest is the model of input JSON used in DeployMetadataHandler.
type DeployMetadataRequest struct {
	Version         string `json:"version"`
	DeployTimestamp string `json:"deploy_timestamp"`
	CommitSummary   string `json:"commit_summary"`
}

// SpeedometerResponse is the model of output JSON used in SpeedometerHandler.
type SpeedometerResponse struct {
	Version           string  `json:"version"`
	DeployTimestamp   string  `json:"deploy_timestamp"`
	CommitSummary     string  `json:"commit_summary"`
	TotalRedirects    int64   `json:"total_redirects"`
	AverageRedirectMs float64 `json:"average_redirect_ms"`
}

// URLCountResponse is the model of output JSON used in URLCountHandler.
type URLCountResponse struct {
	Count int `json:"count"`
}

// SuccessResponse is the generic acknowledgement body of the internal endpoints.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the generic JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
