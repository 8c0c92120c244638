package discovery

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/httpclient"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/logger"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/prober"
	"github.com/stretchr/testify/assert"
)

func newTestFinder(t *testing.T) *GraphQLFinder {
	t.Helper()
	log := logger.NewLogger(logger.ERROR)
	client := httpclient.NewClient(log, httpclient.ClientOptions{Timeout: 5 * time.Second})
	return NewGraphQLFinder(prober.New(client, log), log)
}

func TestFindEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantPath string
	}{
		{
			name: "endpoint at /graphql",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/graphql" {
					w.Write([]byte(`{"data":{"__typename":"Query"}}`))
					return
				}
				http.NotFound(w, r)
			},
			wantPath: "/graphql",
		},
		{
			name: "endpoint at /api/graphql answering with errors",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/api/graphql" {
					w.Write([]byte(`{"errors":[{"message":"Must provide query string"}]}`))
					return
				}
				http.NotFound(w, r)
			},
			wantPath: "/api/graphql",
		},
		{
			name: "no endpoint anywhere",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>not here</html>"))
			},
			wantPath: "",
		},
		{
			name: "json without data or errors is not graphql",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"ok"}`))
			},
			wantPath: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			got := newTestFinder(t).FindEndpoint(server.URL)
			if tt.wantPath == "" {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, server.URL+tt.wantPath, got)
			}
		})
	}
}
