// Package dos probes a GraphQL endpoint for query-complexity DoS exposure.
// The run is strictly sequential: introspect once, derive the testable
// fields, then issue the three attack classes against each field in
// discovery order while timing the responses. A single probe failure never
// aborts the rest of the sequence.
package dos

import (
	"encoding/json"

	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/attack"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/logger"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/payloads"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/prober"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/schema"

	"github.com/agext/levenshtein"
)

// ProbeRecord captures the outcome of one attack query against one field.
type ProbeRecord struct {
	TypeName     string  `json:"type_name"`
	FieldName    string  `json:"field_name"`
	Attack       string  `json:"attack"`
	ResponseTime float64 `json:"response_time_seconds"`
	Protected    bool    `json:"protected"`
	Error        string  `json:"error,omitempty"`
}

// RunResult aggregates everything a run produced, for reporting.
type RunResult struct {
	IntrospectionEnabled bool                   `json:"introspection_enabled"`
	TestableFields       []schema.TestableField `json:"testable_fields"`
	Probes               []ProbeRecord          `json:"probes"`
}

// Scanner sequences the introspection, analysis and probing phases.
type Scanner struct {
	prober *prober.Prober
	log    *logger.Logger
}

// NewScanner creates a new DoS exposure scanner.
func NewScanner(p *prober.Prober, log *logger.Logger) *Scanner {
	return &Scanner{prober: p, log: log}
}

// Run executes the full probe sequence against the endpoint. iterations is
// the repetition count handed to each attack query. When introspection is
// disabled the result carries no fields and no probes; that is a normal
// termination, not a failure.
func (s *Scanner) Run(endpoint string, iterations int) *RunResult {
	result := &RunResult{}

	res := s.prober.Send(endpoint, payloads.IntrospectionQuery, payloads.IntrospectionOperationName)
	if res.Err != "" {
		s.log.Error("Error testing introspection: %s", res.Err)
		s.log.Warn("Introspection appears to be DISABLED")
		return result
	}

	var env schema.Envelope
	// Absent or unexpected keys are not an error: they default to empty,
	// which reads as "introspection disabled".
	_ = json.Unmarshal(res.Raw, &env)
	if env.Data == nil || env.Data.Schema == nil {
		s.log.Warn("Introspection appears to be DISABLED")
		return result
	}

	result.IntrospectionEnabled = true
	s.log.Success("Introspection is ENABLED!")

	result.TestableFields = schema.Analyze(env.Data.Schema.Types)
	s.log.Info("Testable fields found: %d", len(result.TestableFields))
	for _, f := range result.TestableFields {
		s.log.Info("Type: %s, Field: %s", f.TypeName, f.FieldName)
	}

	for _, f := range result.TestableFields {
		s.log.Info("Testing field: %s.%s", f.TypeName, f.FieldName)
		result.Probes = append(result.Probes, s.testField(endpoint, f, iterations)...)
	}

	return result
}

// testField runs the three attack kinds, in fixed order, against one field.
func (s *Scanner) testField(endpoint string, f schema.TestableField, iterations int) []ProbeRecord {
	records := make([]ProbeRecord, 0, len(attack.Kinds))
	bodies := make([]string, 0, len(attack.Kinds))

	for _, kind := range attack.Kinds {
		s.log.Info("Testing %s...", kind)
		query := attack.Build(kind, f.FieldName, iterations)

		res := s.prober.Send(endpoint, query, "")
		rec := ProbeRecord{
			TypeName:     f.TypeName,
			FieldName:    f.FieldName,
			Attack:       kind.String(),
			ResponseTime: res.Elapsed.Seconds(),
			Protected:    res.Protected(),
			Error:        res.Err,
		}
		records = append(records, rec)
		bodies = append(bodies, string(res.Raw))

		s.log.Info("Response time: %.2fs", rec.ResponseTime)
		if rec.Protected {
			s.log.Warn("Errors detected - possible protection in place")
		}
	}

	// Advisory only: widely diverging bodies across attack kinds usually
	// mean some but not all attack classes are being rejected.
	for i := 1; i < len(bodies); i++ {
		if isDifferentEnough(bodies[0], bodies[i]) {
			s.log.Debug("Attack responses for %s.%s diverge between %s and %s",
				f.TypeName, f.FieldName, attack.Kinds[0], attack.Kinds[i])
			break
		}
	}

	return records
}

// isDifferentEnough reports whether two response bodies differ by more than
// 30%, measured by Levenshtein distance relative to the longer body.
func isDifferentEnough(a, b string) bool {
	distance := levenshtein.Distance(a, b, nil)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return false
	}
	return float64(distance)/float64(maxLen) > 0.3
}
