package prober

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/httpclient"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProber(t *testing.T) *Prober {
	t.Helper()
	log := logger.NewLogger(logger.ERROR)
	client := httpclient.NewClient(log, httpclient.ClientOptions{Timeout: 5 * time.Second})
	return New(client, log)
}

func TestSend_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"users":[]}}`))
	}))
	defer server.Close()

	res := newTestProber(t).Send(server.URL, "query { users { id name } }", "")

	assert.Empty(t, res.Err)
	require.NotNil(t, res.Body)
	assert.Contains(t, res.Body, "data")
	assert.Greater(t, res.Elapsed, time.Duration(0))
	assert.False(t, res.Protected())
}

func TestSend_RequestHeadersAndBody(t *testing.T) {
	var gotHeaders http.Header
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	p := newTestProber(t)

	// Attack probe: operationName must serialize as JSON null.
	p.Send(server.URL, "query { users { id name } }", "")
	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, "IntrospectionQuery", gotHeaders.Get("x-apollo-operation-name"))
	assert.Equal(t, "true", gotHeaders.Get("apollo-require-preflight"))
	name, present := gotBody["operationName"]
	assert.True(t, present)
	assert.Nil(t, name)

	// Introspection request carries the operation name.
	p.Send(server.URL, "query IntrospectionQuery { __schema { types { name } } }", "IntrospectionQuery")
	assert.Equal(t, "IntrospectionQuery", gotBody["operationName"])
}

func TestSend_InvalidJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not graphql</html>"))
	}))
	defer server.Close()

	res := newTestProber(t).Send(server.URL, "{__typename}", "")

	assert.Nil(t, res.Body)
	assert.Contains(t, res.Err, "Invalid JSON response: <html>not graphql</html>")
	// Elapsed survives a parse failure: the HTTP exchange did happen.
	assert.Greater(t, res.Elapsed, time.Duration(0))
	assert.True(t, res.Protected())
}

func TestSend_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	res := newTestProber(t).Send(server.URL, "{__typename}", "")

	assert.Nil(t, res.Body)
	assert.Contains(t, res.Err, "Request error:")
	assert.Equal(t, time.Duration(0), res.Elapsed)
	assert.True(t, res.Protected())
}

func TestResult_Protected(t *testing.T) {
	tests := []struct {
		name      string
		result    Result
		protected bool
	}{
		{
			name:      "clean response",
			result:    Result{Body: map[string]interface{}{"data": map[string]interface{}{}}},
			protected: false,
		},
		{
			name: "non-empty errors array",
			result: Result{Body: map[string]interface{}{
				"errors": []interface{}{map[string]interface{}{"message": "query too complex"}},
			}},
			protected: true,
		},
		{
			name:      "empty errors array",
			result:    Result{Body: map[string]interface{}{"errors": []interface{}{}}},
			protected: false,
		},
		{
			name:      "transport failure",
			result:    Result{Err: "Request error: connection refused"},
			protected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.protected, tt.result.Protected())
		})
	}
}
