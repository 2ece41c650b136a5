package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const (
	baseURLEnvVar  = "API_BASE_URL"
	defaultBaseURL = "http://localhost:8080"
)

type endpointCheck struct {
	Name           string
	Method         string
	Path           string
	RequestBody    interface{}
	ExpectedStatus int
}

type checkResult struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	StatusCode int    `json:"statusCode"`
	Passed     bool   `json:"passed"`
	Error      string `json:"error,omitempty"`
}

func coreEndpoints() []endpointCheck {
	return []endpointCheck{
		{Name: "Health Check", Method: http.MethodGet, Path: "/health", ExpectedStatus: http.StatusOK},
		{Name: "Liveness Check", Method: http.MethodGet, Path: "/health/liveness", ExpectedStatus: http.StatusOK},
		{Name: "Readiness Check", Method: http.MethodGet, Path: "/health/readiness", ExpectedStatus: http.StatusOK},
		{Name: "Trips", Method: http.MethodGet, Path: "/v1/trips", ExpectedStatus: http.StatusOK},
		{Name: "Timeline", Method: http.MethodGet, Path: "/v1/timeline", ExpectedStatus: http.StatusOK},
		{Name: "Stats", Method: http.MethodGet, Path: "/v1/stats", ExpectedStatus: http.StatusOK},
		{Name: "Insights", Method: http.MethodGet, Path: "/v1/insights", ExpectedStatus: http.StatusOK},
		{Name: "Preferences", Method: http.MethodGet, Path: "/v1/preferences", ExpectedStatus: http.StatusOK},
		{Name: "Unknown Trip", Method: http.MethodGet, Path: "/v1/trips/does-not-exist", ExpectedStatus: http.StatusNotFound},
		{
			Name:           "Compare Toggle",
			Method:         http.MethodPost,
			Path:           "/v1/compare/toggle",
			RequestBody:    map[string]interface{}{"selection": []string{}, "tripId": "1"},
			ExpectedStatus: http.StatusOK,
		},
	}
}

func newVerifyCmd(opts *rootOptions) *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Smoke-test the core API endpoints of a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: timeout}
			base := strings.TrimRight(baseURL, "/")

			results := make([]checkResult, 0, len(coreEndpoints()))
			failed := 0
			for _, check := range coreEndpoints() {
				result := runCheck(client, base, check)
				if !result.Passed {
					failed++
				}
				results = append(results, result)
			}

			out := cmd.OutOrStdout()
			if opts.output == outputJSON {
				if err := writeJSON(out, results); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "Target API: %s\n", base)
				for _, r := range results {
					status := "ok"
					if !r.Passed {
						status = "FAILED"
					}
					fmt.Fprintf(out, "%-16s %-28s %3d %s\n", r.Name, r.Path, r.StatusCode, status)
				}
				fmt.Fprintf(out, "Passed: %d/%d\n", len(results)-failed, len(results))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d endpoint checks failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", envOr(baseURLEnvVar, defaultBaseURL), "server base URL (env "+baseURLEnvVar+")")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")
	return cmd
}

func runCheck(client *http.Client, baseURL string, check endpointCheck) checkResult {
	result := checkResult{Name: check.Name, Path: check.Path}

	var body io.Reader
	if check.RequestBody != nil {
		payload, err := json.Marshal(check.RequestBody)
		if err != nil {
			result.Error = err.Error()
			return result
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(check.Method, baseURL+check.Path, body)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	result.StatusCode = resp.StatusCode
	result.Passed = resp.StatusCode == check.ExpectedStatus
	return result
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
