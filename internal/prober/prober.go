// Package prober sends single GraphQL queries over HTTP, measures wall-clock
// latency and classifies the outcome. It is the only place where transport
// and malformed-response failures are trapped: both become advisory messages
// on the result, never an abort.
package prober

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/httpclient"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/logger"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/payloads"
)

// Request is the JSON body of a GraphQL POST. OperationName marshals to null
// when unset, which is what attack probes send.
type Request struct {
	Query         string  `json:"query"`
	OperationName *string `json:"operationName"`
}

// Result is the outcome of a single probe. Exactly one of Body/Err carries
// signal: a transport or parse failure leaves Body nil and sets Err.
type Result struct {
	Body    map[string]interface{} // parsed response, nil on failure
	Raw     json.RawMessage        // raw response bytes for typed decoding
	Elapsed time.Duration          // wall-clock time around the HTTP call; zero on transport failure
	Err     string                 // advisory failure message, empty on success
}

// Protected reports whether the response suggests some protection is in
// place: either the probe failed outright or the body carries a non-empty
// errors array. Advisory only; probing always continues regardless.
func (r Result) Protected() bool {
	if r.Err != "" {
		return true
	}
	if errs, ok := r.Body["errors"].([]interface{}); ok && len(errs) > 0 {
		return true
	}
	return false
}

// Prober sends GraphQL queries to an endpoint with the fixed header set.
type Prober struct {
	client *httpclient.Client
	log    *logger.Logger
}

// New creates a Prober on top of the shared HTTP client.
func New(client *httpclient.Client, log *logger.Logger) *Prober {
	return &Prober{client: client, log: log}
}

// Send POSTs a query to the endpoint and returns the parsed body, the elapsed
// wall-clock time and any failure message. operationName is sent as JSON null
// when empty. The apollo compatibility headers are set on every request, not
// only introspection, to satisfy preflight checks on endpoints that require
// them.
func (p *Prober) Send(endpoint, query, operationName string) Result {
	payload := Request{Query: query}
	if operationName != "" {
		payload.OperationName = &operationName
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Err: "Request error: " + err.Error()}
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{Err: "Request error: " + err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-apollo-operation-name", payloads.IntrospectionOperationName)
	req.Header.Set("apollo-require-preflight", "true")

	// Timing covers the HTTP exchange including the body read, and excludes
	// JSON parsing.
	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return Result{Err: "Request error: " + err.Error()}
	}
	raw, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	resp.Body.Close()
	if err != nil {
		return Result{Err: "Request error: " + err.Error()}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Result{Elapsed: elapsed, Err: "Invalid JSON response: " + string(raw)}
	}

	p.log.Trace("Probe to %s completed in %.2fs", endpoint, elapsed.Seconds())
	return Result{Body: parsed, Raw: raw, Elapsed: elapsed}
}
