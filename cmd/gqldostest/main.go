package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/config"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/discovery"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/httpclient"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/logger"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/prober"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/reporter"
	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/scanner/dos"
)

// main is the entry point of the gqldostest tool.
func main() {
	log := logger.NewLogger(logger.INFO)
	startTime := time.Now()

	// config.yaml is optional; defaults apply when it is absent.
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Error("Failed to load config.yaml: %v", err)
		os.Exit(1)
	}

	var jsonOutputFile string
	var timeoutSec, maxRetries, delay int
	var insecure, discover, verbose, trace bool

	flag.StringVar(&jsonOutputFile, "output-json", cfg.Output.OutputFile, "Path to save the report file in JSON format")
	flag.IntVar(&timeoutSec, "timeout", cfg.Timeout, "HTTP timeout in seconds")
	flag.IntVar(&maxRetries, "r", cfg.MaxRetries, "Maximum number of retries for failed requests")
	flag.IntVar(&delay, "delay", cfg.Delay, "Delay before each retry in milliseconds (ms)")
	flag.BoolVar(&insecure, "k", cfg.Insecure, "Skip TLS certificate verification")
	flag.BoolVar(&discover, "discover", cfg.Discover, "Treat the URL as a base URL and discover the GraphQL endpoint")
	flag.BoolVar(&verbose, "v", cfg.Output.Verbose, "Enable verbose output (DEBUG level)")
	flag.BoolVar(&trace, "vv", false, "Enable trace-level output (highly verbose)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gqldostest probes a GraphQL endpoint for denial-of-service exposure arising from\nunauthenticated query-complexity abuse: alias overloading, directive overloading\nand field duplication, timed per testable field.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <graphql-endpoint-url> [num_iterations]\n\n", os.Args[0])

		fmt.Fprintf(os.Stderr, "ARGUMENTS:\n")
		fmt.Fprintf(os.Stderr, "  <graphql-endpoint-url>\n    \tTarget GraphQL endpoint (e.g., \"http://example.com/graphql\")\n")
		fmt.Fprintf(os.Stderr, "  [num_iterations]\n    \tRepetition count per attack query (default: 100)\n")

		fmt.Fprintf(os.Stderr, "\nHTTP:\n")
		fmt.Fprintf(os.Stderr, "  -timeout int\n    \tHTTP timeout in seconds (default: %d)\n", cfg.Timeout)
		fmt.Fprintf(os.Stderr, "  -r int\n    \tMaximum number of retries for failed requests (default: %d)\n", cfg.MaxRetries)
		fmt.Fprintf(os.Stderr, "  -delay int\n    \tDelay before each retry in milliseconds (default: %d)\n", cfg.Delay)
		fmt.Fprintf(os.Stderr, "  -k\n    \tSkip TLS certificate verification\n")

		fmt.Fprintf(os.Stderr, "\nDISCOVERY:\n")
		fmt.Fprintf(os.Stderr, "  -discover\n    \tTreat the URL as a base URL and probe common GraphQL paths first\n")

		fmt.Fprintf(os.Stderr, "\nOUTPUT & REPORTING:\n")
		fmt.Fprintf(os.Stderr, "  -output-json string\n    \tPath to save the report file in JSON format (e.g., report.json)\n")
		fmt.Fprintf(os.Stderr, "  -v\n    \tEnable verbose output (DEBUG level)\n")
		fmt.Fprintf(os.Stderr, "  -vv\n    \tEnable trace-level output (highly verbose)\n")

		fmt.Fprintf(os.Stderr, "\nCONFIGURATION:\n")
		fmt.Fprintf(os.Stderr, "  gqldostest automatically loads 'config.yaml' from the current directory.\n")
		fmt.Fprintf(os.Stderr, "  Command-line flags and arguments override settings from the configuration file.\n")

		fmt.Fprintf(os.Stderr, "\nEXAMPLES:\n")
		fmt.Fprintf(os.Stderr, "  # Probe an endpoint with the default 100 repetitions per attack\n")
		fmt.Fprintf(os.Stderr, "  gqldostest http://example.com/graphql\n\n")
		fmt.Fprintf(os.Stderr, "  # Heavier probing, endpoint discovery, JSON report\n")
		fmt.Fprintf(os.Stderr, "  gqldostest -discover -output-json report.json http://example.com 500\n\n")
	}

	flag.Parse()

	if trace {
		log.SetMinLevel(logger.TRACE)
		log.Info("Trace logging enabled (-vv).")
	} else if verbose {
		log.SetMinLevel(logger.DEBUG)
		log.Info("Debug logging enabled (-v).")
	}

	args := flag.Args()
	targetURLStr := cfg.Target
	if len(args) > 0 {
		targetURLStr = args[0]
	}
	if targetURLStr == "" {
		flag.Usage()
		os.Exit(1)
	}

	// num_iterations must be a positive integer; anything else is a startup error.
	iterations := cfg.Iterations
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			log.Error("Invalid num_iterations %q: %v", args[1], err)
			os.Exit(1)
		}
		if n <= 0 {
			log.Error("num_iterations must be a positive integer, got %d", n)
			os.Exit(1)
		}
		iterations = n
	}

	parsedURL, err := url.Parse(targetURLStr)
	if err != nil || !parsedURL.IsAbs() {
		log.Error("Invalid target URL format: %s", targetURLStr)
		os.Exit(1)
	}

	httpClient := httpclient.NewClient(log, httpclient.ClientOptions{
		Timeout:            time.Duration(timeoutSec) * time.Second,
		InsecureSkipVerify: insecure,
		UserAgent:          cfg.UserAgent,
		MaxRetries:         maxRetries,
		RequestDelay:       time.Duration(delay) * time.Millisecond,
	})
	p := prober.New(httpClient, log)

	endpoint := targetURLStr
	if discover && !strings.Contains(parsedURL.Path, "graphql") {
		finder := discovery.NewGraphQLFinder(p, log)
		targetBaseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
		endpoint = finder.FindEndpoint(targetBaseURL)
		if endpoint == "" {
			log.Warn("Cannot proceed with testing - no GraphQL endpoint discovered.")
			os.Exit(0)
		}
	}

	log.Info("Testing GraphQL endpoint: %s", endpoint)
	log.Info("Iterations per attack: %d", iterations)

	scanner := dos.NewScanner(p, log)
	result := scanner.Run(endpoint, iterations)
	if !result.IntrospectionEnabled {
		log.Info("Cannot proceed with testing - introspection is disabled.")
	}

	if jsonOutputFile != "" {
		log.Info("Generating JSON report to %s...", jsonOutputFile)
		reportData := reporter.NewReport(endpoint, startTime)
		reportData.Finalize(time.Now(), startTime, iterations, result)
		if err := reporter.WriteJSONReport(reportData, jsonOutputFile); err != nil {
			log.Error("Failed to write JSON report: %v", err)
		} else {
			log.Success("JSON report successfully saved to %s", jsonOutputFile)
		}
	}

	log.Info("Scan completed in %s.", time.Since(startTime).Round(time.Millisecond))
}
