package discovery

import (
	"strings"

	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/logger"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/payloads"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/prober"
)

// GraphQLFinder discovers and confirms GraphQL endpoints under a base URL.
type GraphQLFinder struct {
	prober *prober.Prober
	log    *logger.Logger
}

// NewGraphQLFinder creates a new instance of GraphQLFinder.
func NewGraphQLFinder(p *prober.Prober, log *logger.Logger) *GraphQLFinder {
	return &GraphQLFinder{prober: p, log: log}
}

// FindEndpoint probes the common GraphQL paths under baseURL and returns the
// first one that answers like a GraphQL service, or an empty string when none
// does. A response counts as GraphQL when it parses as JSON and carries a
// top-level data or errors member.
func (f *GraphQLFinder) FindEndpoint(baseURL string) string {
	f.log.Info("Starting GraphQL endpoint discovery for %s...", baseURL)
	base := strings.TrimSuffix(baseURL, "/")

	for _, path := range payloads.CommonGraphQLPaths {
		testURL := base + path
		f.log.Debug("GraphQL Finder: Probing path: %s", testURL)

		res := f.prober.Send(testURL, payloads.TypeNameQuery, "")
		if res.Err != "" {
			continue
		}

		_, hasData := res.Body["data"]
		_, hasErrors := res.Body["errors"]
		if hasData || hasErrors {
			f.log.Success("GraphQL endpoint confirmed at: %s", testURL)
			return testURL
		}
	}

	f.log.Info("No GraphQL endpoint found for %s.", baseURL)
	return ""
}
