package reporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/scanner/dos"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Finalize(t *testing.T) {
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	end := start.Add(42 * time.Second)

	result := &dos.RunResult{
		IntrospectionEnabled: true,
		TestableFields: []schema.TestableField{
			{TypeName: "Query", FieldName: "users"},
		},
		Probes: []dos.ProbeRecord{
			{TypeName: "Query", FieldName: "users", Attack: "Alias Overloading", ResponseTime: 0.42},
			{TypeName: "Query", FieldName: "users", Attack: "Directive Overloading", ResponseTime: 0.13},
			{TypeName: "Query", FieldName: "users", Attack: "Field Duplication", ResponseTime: 0.07, Protected: true},
		},
	}

	report := NewReport("http://example.com/graphql", start)
	report.Finalize(end, start, 100, result)

	assert.Equal(t, "http://example.com/graphql", report.ScanSummary.TargetURL)
	assert.Equal(t, "42s", report.ScanSummary.TotalDuration)
	assert.True(t, report.ScanSummary.IntrospectionEnabled)
	assert.Equal(t, 100, report.ScanSummary.Iterations)
	assert.Equal(t, 1, report.ScanSummary.TotalTestableFields)
	assert.Equal(t, 3, report.ScanSummary.TotalProbesSent)
	assert.Len(t, report.Probes, 3)
}

func TestWriteJSONReport(t *testing.T) {
	start := time.Now()
	report := NewReport("http://example.com/graphql", start)
	report.Finalize(start, start, 100, &dos.RunResult{})

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSONReport(report, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "http://example.com/graphql", decoded.ScanSummary.TargetURL)
	// Empty runs serialize as [] rather than null.
	assert.NotNil(t, decoded.TestableFields)
	assert.NotNil(t, decoded.Probes)
}
