// Package handlers stores all the structures that implement handlers.
// Each handler must be initialized by creating a structure with its constructor-method.
// All constructor methods accept the required dependencies, which are used later in the handler function.
// Handler functions ServeHTTP must be implemented to comply the IHandler interface
// and should be registered in web application.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/TonySyv/yshstob/internal/app/analytics"
	"github.com/TonySyv/yshstob/internal/app/config"
	"github.com/TonySyv/yshstob/internal/app/logger"
	"github.com/TonySyv/yshstob/internal/app/models"
	"github.com/TonySyv/yshstob/internal/app/service"
	"github.com/TonySyv/yshstob/internal/app/utils"
)

// maxPayloadSize - is the maximum size of payload that the server can process in the request.
const maxPayloadSize = 1024 * 1024

// IHandler is the interface for all handler-structures
type IHandler interface {
	ServeHTTP(http.ResponseWriter, *http.Request)
}

// EventEmitter is the fire-and-forget sink the redirect handler submits
// analytics events to.
type EventEmitter interface {
	Emit(event models.AnalyticsEvent)
}

func writeJSON(writer http.ResponseWriter, statusCode int, body any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)
	enc := json.NewEncoder(writer)
	if err := enc.Encode(body); err != nil {
		logger.Log.Debugf("Error encoding response: %s", err)
	}
}

func writeJSONError(writer http.ResponseWriter, statusCode int, message string) {
	writeJSON(writer, statusCode, models.ErrorResponse{Error: message})
}

// ShortenHandler is a structure to store dependencies and
// implement ServeHTTP Handler function to create the short URL from the passed URL.
type ShortenHandler struct {
	service service.ShortenerServiceInterface
}

// NewShortenHandler is a constructor function that returns a pointer
// to the freshly created ShortenHandler structure.
func NewShortenHandler(service service.ShortenerServiceInterface) *ShortenHandler {
	return &ShortenHandler{service: service}
}

// ServeHTTP Serves as handler function.
// Accepts a JSON document specified in models.ShortenRequest, allocates a
// code for the submitted URL and responds with models.ShortenResponse.
// The proposed code, when present and free, is honored.
func (shorten ShortenHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	if contentType := request.Header.Get("Content-Type"); !strings.Contains(contentType, "application/json") {
		writeJSONError(writer, http.StatusBadRequest, "Only application/json content type is allowed")
		return
	}
	defer request.Body.Close()

	var requestData models.ShortenRequest
	dec := json.NewDecoder(http.MaxBytesReader(writer, request.Body, maxPayloadSize))
	if err := dec.Decode(&requestData); err != nil {
		logger.Log.Debugf("Couldn't decode the request body: %s", err)
		writeJSONError(writer, http.StatusBadRequest, "Missing or invalid longUrl")
		return
	}
	if requestData.LongURL == "" {
		writeJSONError(writer, http.StatusBadRequest, "Missing or invalid longUrl")
		return
	}
	code, normalizedURL, err := shorten.service.Shorten(request.Context(), requestData.LongURL, requestData.ProposedCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidURL):
			writeJSONError(writer, http.StatusBadRequest, "Invalid URL format")
		case errors.Is(err, service.ErrCodeSpaceExhausted):
			writeJSONError(writer, http.StatusInternalServerError, "Failed to generate unique code")
		default:
			logger.Log.Warnf("Failed to create short URL: %v", err)
			writeJSONError(writer, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	writeJSON(writer, http.StatusOK, models.ShortenResponse{
		ShortURL: config.Settings.HostedOn + code,
		LongURL:  normalizedURL,
	})
}

// RedirectHandler is a structure to store dependencies and
// implement ServeHTTP Handler function to redirect the user to the destination
// URL resolved from the passed short code.
type RedirectHandler struct {
	service service.ShortenerServiceInterface
	emitter EventEmitter
}

// NewRedirectHandler is a constructor function that returns a pointer
// to the freshly created RedirectHandler structure.
func NewRedirectHandler(service service.ShortenerServiceInterface, emitter EventEmitter) *RedirectHandler {
	return &RedirectHandler{service: service, emitter: emitter}
}

// ServeHTTP Serves as handler function. Resolves the code to the destination
// URL, responds with a temporary redirect right away and schedules the
// analytics event without waiting for it. The measured duration covers the
// registry lookup only.
func (redirect RedirectHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	code := request.PathValue("code")
	if !utils.IsResolvableCode(code) {
		writeJSONError(writer, http.StatusNotFound, "Not found")
		return
	}
	start := time.Now()
	destinationURL, err := redirect.service.Resolve(request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrCodeNotFound) {
			writeJSONError(writer, http.StatusNotFound, "Short URL not found")
			return
		}
		logger.Log.Warnf("Failed to resolve code %s: %v", code, err)
		writeJSONError(writer, http.StatusInternalServerError, "Internal server error")
		return
	}
	redirectTime := time.Since(start).Milliseconds()

	redirect.emitter.Emit(models.AnalyticsEvent{
		Code:           code,
		LongURL:        destinationURL,
		Timestamp:      time.Now().UnixMilli(),
		RedirectTimeMs: redirectTime,
		Region:         config.Settings.Region,
		Version:        config.Settings.ServiceVersion,
	})

	http.Redirect(writer, request, destinationURL, http.StatusFound)
}

// AnalyticsEventHandler is a structure to store dependencies and
// implement ServeHTTP Handler function to ingest redirect events emitted by
// out-of-process dispatchers.
type AnalyticsEventHandler struct {
	aggregator *analytics.Aggregator
}

// NewAnalyticsEventHandler is a constructor function that returns a pointer
// to the freshly created AnalyticsEventHandler structure.
func NewAnalyticsEventHandler(aggregator *analytics.Aggregator) *AnalyticsEventHandler {
	return &AnalyticsEventHandler{aggregator: aggregator}
}

// ServeHTTP Serves as handler function.
// Accepts a models.AnalyticsEvent and folds it into the counters. Events are
// counted regardless of whether the code still resolves in the registry.
func (ingest AnalyticsEventHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	defer request.Body.Close()

	var event models.AnalyticsEvent
	dec := json.NewDecoder(http.MaxBytesReader(writer, request.Body, maxPayloadSize))
	if err := dec.Decode(&event); err != nil {
		logger.Log.Debugf("Couldn't decode the request body: %s", err)
		writeJSONError(writer, http.StatusBadRequest, "Invalid event data")
		return
	}
	if event.Code == "" || event.LongURL == "" || event.Timestamp == 0 {
		writeJSONError(writer, http.StatusBadRequest, "Invalid event data")
		return
	}
	if err := ingest.aggregator.RecordRedirect(request.Context(), event.RedirectTimeMs); err != nil {
		logger.Log.Warnf("Failed to record redirect event: %v", err)
		writeJSONError(writer, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(writer, http.StatusOK, models.SuccessResponse{Success: true})
}

// SpeedometerHandler is a structure to store dependencies and
// implement ServeHTTP Handler function to serve the read-only metrics snapshot.
type SpeedometerHandler struct {
	aggregator *analytics.Aggregator
}

// NewSpeedometerHandler is a constructor function that returns a pointer
// to the freshly created SpeedometerHandler structure.
func NewSpeedometerHandler(aggregator *analytics.Aggregator) *SpeedometerHandler {
	return &SpeedometerHandler{aggregator: aggregator}
}

// ServeHTTP Serves as handler function.
// Responds with a models.SpeedometerResponse snapshot.
func (speedometer SpeedometerHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	snapshot, err := speedometer.aggregator.Snapshot(request.Context())
	if err != nil {
		logger.Log.Warnf("Failed to read counters: %v", err)
		writeJSONError(writer, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(writer, http.StatusOK, snapshot)
}

// DeployMetadataHandler is a structure to store dependencies and
// implement ServeHTTP Handler function to overwrite the deploy metadata.
type DeployMetadataHandler struct {
	aggregator *analytics.Aggregator
}

// NewDeployMetadataHandler is a constructor function that returns a pointer
// to the freshly created DeployMetadataHandler structure.
func NewDeployMetadataHandler(aggregator *analytics.Aggregator) *DeployMetadataHandler {
	return &DeployMetadataHandler{aggregator: aggregator}
}

// ServeHTTP Serves as handler function.
// Accepts a models.DeployMetadataRequest and overwrites the metadata keys,
// leaving the redirect counters untouched.
func (deploy DeployMetadataHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	defer request.Body.Close()

	var metadata models.DeployMetadataRequest
	dec := json.NewDecoder(http.MaxBytesReader(writer, request.Body, maxPayloadSize))
	if err := dec.Decode(&metadata); err != nil {
		logger.Log.Debugf("Couldn't decode the request body: %s", err)
		writeJSONError(writer, http.StatusBadRequest, "Missing required fields: version, deploy_timestamp")
		return
	}
	if metadata.Version == "" || metadata.DeployTimestamp == "" {
		writeJSONError(writer, http.StatusBadRequest, "Missing required fields: version, deploy_timestamp")
		return
	}
	err := deploy.aggregator.SetDeployMetadata(request.Context(), metadata.Version, metadata.DeployTimestamp, metadata.CommitSummary)
	if err != nil {
		logger.Log.Warnf("Failed to store deploy metadata: %v", err)
		writeJSONError(writer, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(writer, http.StatusOK, models.SuccessResponse{Success: true})
}

// URLCountHandler is a structure to store dependencies and
// implement ServeHTTP Handler function to count the stored mappings.
type URLCountHandler struct {
	service service.ShortenerServiceInterface
}

// NewURLCountHandler is a constructor function that returns a pointer
// to the freshly created URLCountHandler structure.
func NewURLCountHandler(service service.ShortenerServiceInterface) *URLCountHandler {
	return &URLCountHandler{service: service}
}

// ServeHTTP Serves as handler function.
// Responds with a models.URLCountResponse holding the number of mappings.
func (count URLCountHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	total, err := count.service.URLCount(request.Context())
	if err != nil {
		logger.Log.Warnf("Failed to count URLs: %v", err)
		writeJSONError(writer, http.StatusInternalServerError, "Failed to count URLs")
		return
	}
	writeJSON(writer, http.StatusOK, models.URLCountResponse{Count: total})
}

// PingHandler is a structure to store dependencies and
// implement ServeHTTP Handler function to ping the dependencies of a service.
type PingHandler struct {
	service service.ShortenerServiceInterface
}

// NewPingHandler is a constructor function that returns a pointer
// to the freshly created PingHandler structure.
func NewPingHandler(service service.ShortenerServiceInterface) *PingHandler {
	return &PingHandler{service: service}
}

// ServeHTTP Serves as handler function.
// Responds with an error if the key-value store is not working as expected.
func (ping PingHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	err := ping.service.Ping(request.Context())
	if err != nil {
		writeJSONError(writer, http.StatusInternalServerError, "Storage is not available")
	}
}
