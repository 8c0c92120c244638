package reporter

import (
	"time"

	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/scanner/dos"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/schema"
)

// Report is the structured result of one probe run, written as JSON when an
// output file is requested.
type Report struct {
	ScanSummary    ScanSummary            `json:"scan_summary"`
	TestableFields []schema.TestableField `json:"testable_fields"`
	Probes         []dos.ProbeRecord      `json:"probes"`
}

// ScanSummary contains metadata and a summary of the run.
type ScanSummary struct {
	TargetURL            string `json:"target_url"`
	ScanStartTime        string `json:"scan_start_time"`
	ScanEndTime          string `json:"scan_end_time"`
	TotalDuration        string `json:"total_duration"`
	IntrospectionEnabled bool   `json:"introspection_enabled"`
	Iterations           int    `json:"iterations_per_attack"`
	TotalTestableFields  int    `json:"total_testable_fields"`
	TotalProbesSent      int    `json:"total_probes_sent"`
}

// NewReport creates a report with the target and start time filled in.
// Slices are initialized so empty runs serialize as [] rather than null.
func NewReport(target string, startTime time.Time) *Report {
	return &Report{
		ScanSummary: ScanSummary{
			TargetURL:     target,
			ScanStartTime: startTime.Format(time.RFC3339),
		},
		TestableFields: make([]schema.TestableField, 0),
		Probes:         make([]dos.ProbeRecord, 0),
	}
}

// Finalize completes the report with the run's results and timing.
func (r *Report) Finalize(endTime, startTime time.Time, iterations int, result *dos.RunResult) {
	r.ScanSummary.ScanEndTime = endTime.Format(time.RFC3339)
	r.ScanSummary.TotalDuration = endTime.Sub(startTime).Round(time.Second).String()
	r.ScanSummary.IntrospectionEnabled = result.IntrospectionEnabled
	r.ScanSummary.Iterations = iterations
	r.ScanSummary.TotalTestableFields = len(result.TestableFields)
	r.ScanSummary.TotalProbesSent = len(result.Probes)
	r.TestableFields = append(r.TestableFields, result.TestableFields...)
	r.Probes = append(r.Probes, result.Probes...)
}
