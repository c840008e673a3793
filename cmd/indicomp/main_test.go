package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeWorldBank serves a three-country catalog and GDP per capita values.
func fakeWorldBank(t *testing.T) *httptest.Server {
	t.Helper()

	values := map[string]float64{"us": 80000, "de": 52000, "jp": 34000}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

		switch {
		case len(parts) == 1 && parts[0] == "country":
			fmt.Fprint(w, `[{"page":1},[
				{"name":"Germany","capitalCity":"Berlin","incomeLevel":{"id":"HIC"},"region":{"id":"ECS"}},
				{"name":"Japan","capitalCity":"Tokyo","incomeLevel":{"id":"HIC"},"region":{"id":"EAS"}},
				{"name":"World","capitalCity":"","incomeLevel":{"id":"NA"},"region":{"id":"NA"}}
			]]`)
		case len(parts) == 4 && parts[0] == "country" && parts[3] == "NY.GDP.PCAP.CD":
			v, ok := values[parts[1]]
			if !ok {
				http.NotFound(w, r)

				return
			}

			fmt.Fprintf(w, `[{"page":1},[{"date":"2024","value":%v}]]`, v)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	return srv
}

// harness runs the CLI against the fake API from a temp directory.
type harness struct {
	t      *testing.T
	dir    string
	config string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	return newHarnessWith(t, "")
}

// newHarnessWith appends extra YAML to the generated config.
func newHarnessWith(t *testing.T, extra string) *harness {
	t.Helper()

	srv := fakeWorldBank(t)
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")

	body := fmt.Sprintf("remote:\n  base_url: %s\nlogging:\n  level: error\n", srv.URL) + extra
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	t.Setenv("MISTRAL_API_KEY", "")

	return &harness{t: t, dir: dir, config: cfg}
}

func (h *harness) run(args ...string) (int, string, string) {
	h.t.Helper()

	var stdout, stderr bytes.Buffer

	full := append([]string{"--config", h.config, "--env-file", filepath.Join(h.dir, "missing.env")}, args...)
	code := execute(context.Background(), full, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestCompare(t *testing.T) {
	h := newHarness(t)

	code, out, errOut := h.run("compare", "-e", "USA", "-e", "Germany", "-e", "Germeny", "-i", "ny.gdp.pcap.cd")
	if code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}

	for _, want := range []string{"United States", "80.0K", "Top Performer: United States", "Excellent data quality"} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}

	if !strings.Contains(errOut, "Skipped: Germeny") || !strings.Contains(errOut, "did you mean Germany?") {
		t.Errorf("stderr = %s", errOut)
	}
}

func TestCompare_UsageErrors(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "no entities",
			args: []string{"compare", "-p", "1"},
			want: "Please select at least one of the countries",
		},
		{
			name: "no indicators",
			args: []string{"compare", "-e", "Germany"},
			want: "Please select at least one indicator",
		},
		{
			name: "unknown indicator",
			args: []string{"compare", "-e", "Germany", "-i", "Happiness"},
			want: "Unknown indicator",
		},
		{
			name: "unknown preset",
			args: []string{"compare", "-e", "Germany", "-p", "9"},
			want: "Unknown preset",
		},
		{
			name: "unknown chart",
			args: []string{"compare", "-e", "Germany", "-p", "1", "--chart", "pie"},
			want: "Unknown chart kind",
		},
		{
			name: "unknown parent",
			args: []string{"compare", "--region-of", "Atlantis", "-e", "North", "-p", "1"},
			want: "No state or province list",
		},
		{
			name: "radar png",
			args: []string{"compare", "-e", "Germany", "-i", "NY.GDP.PCAP.CD", "--chart", "radar", "--png", "out.png"},
			want: "cannot be rendered as PNG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := h.run(tt.args...)
			if code != exitUsage {
				t.Errorf("exit = %d, want %d", code, exitUsage)
			}

			if !strings.Contains(errOut, tt.want) {
				t.Errorf("stderr = %q, want %q", errOut, tt.want)
			}
		})
	}
}

func TestCompare_NoDataIsFailure(t *testing.T) {
	h := newHarness(t)

	code, _, errOut := h.run("compare", "-e", "Atlantis", "-i", "NY.GDP.PCAP.CD")
	if code != exitFailure {
		t.Errorf("exit = %d, want %d", code, exitFailure)
	}

	if !strings.Contains(errOut, "No data could be retrieved") {
		t.Errorf("stderr = %s", errOut)
	}
}

func TestCompare_PNG(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(h.dir, "gdp.png")

	code, _, errOut := h.run("compare", "-e", "Germany", "-e", "Japan", "-i", "NY.GDP.PCAP.CD", "--png", path, "--width", "400", "--height", "300")
	if code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read chart: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("chart is not a PNG")
	}
}

func TestCompare_Regions(t *testing.T) {
	h := newHarness(t)

	code, out, errOut := h.run("compare", "--region-of", "USA", "-e", "Texas", "-e", "New York", "-i", "NY.GDP.PCAP.CD")
	if code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}

	if !strings.Contains(out, "State") || !strings.Contains(out, "Texas") {
		t.Errorf("stdout = %s", out)
	}

	if !strings.Contains(errOut, "Note:") {
		t.Errorf("regional comparison should print the estimate disclaimer, stderr = %s", errOut)
	}
}

func TestExport_JSONToStdout(t *testing.T) {
	h := newHarness(t)

	code, out, errOut := h.run("export", "-e", "Germany", "-e", "Japan", "-i", "NY.GDP.PCAP.CD", "-i", "SP.POP.TOTL", "-f", "json", "-o", "-")
	if code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}

	var records []map[string]any
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	if len(records) != 2 || records[0]["Country"] != "Germany" {
		t.Fatalf("records = %v", records)
	}

	if v, present := records[1]["Population, total"]; !present || v != nil {
		t.Errorf("missing value should be null, got %v (present %v)", v, present)
	}
}

func TestExport_CSVFile(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(h.dir, "out.csv")

	code, _, errOut := h.run("export", "-e", "Japan", "-i", "NY.GDP.PCAP.CD", "-o", path)
	if code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}

	want := "Country,GDP per capita (current US$)\nJapan,34000\n"
	if string(data) != want {
		t.Errorf("csv = %q, want %q", data, want)
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	h := newHarness(t)

	if code, _, _ := h.run("export", "-e", "Japan", "-p", "1", "-f", "pdf"); code != exitUsage {
		t.Errorf("exit = %d, want %d", code, exitUsage)
	}
}

func TestCountries(t *testing.T) {
	h := newHarness(t)

	code, out, _ := h.run("countries")
	if code != exitOK {
		t.Fatalf("exit = %d", code)
	}

	if out != "Germany\nJapan\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestRegions(t *testing.T) {
	h := newHarness(t)

	code, out, _ := h.run("regions", "India")
	if code != exitOK || !strings.Contains(out, "Kerala\n") {
		t.Errorf("exit = %d, stdout = %s", code, out)
	}

	code, out, _ = h.run("regions")
	if code != exitOK || !strings.Contains(out, "Canada\n") {
		t.Errorf("exit = %d, stdout = %s", code, out)
	}

	code, _, errOut := h.run("regions", "Indai")
	if code != exitUsage || !strings.Contains(errOut, "Did you mean India?") {
		t.Errorf("exit = %d, stderr = %s", code, errOut)
	}
}

func TestIndicators(t *testing.T) {
	h := newHarness(t)

	code, out, _ := h.run("indicators", "-v")
	if code != exitOK {
		t.Fatalf("exit = %d", code)
	}

	for _, want := range []string{"Economic Indicators", "NY.GDP.PCAP.CD", "Presets", "1. Economic Focus"} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q", want)
		}
	}
}

func TestInsights_WithoutKey(t *testing.T) {
	h := newHarness(t)

	code, out, errOut := h.run("insights", "-e", "Germany", "-p", "1")
	if code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}

	if out != "" || !strings.Contains(errOut, "MISTRAL_API_KEY") {
		t.Errorf("stdout = %q, stderr = %q", out, errOut)
	}
}

// fakeChat answers every completion request and keeps the last prompt.
func fakeChat(t *testing.T, reply string) (*httptest.Server, *string) {
	t.Helper()

	var prompt string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil && len(req.Messages) > 0 {
			prompt = req.Messages[0].Content
		}

		body, _ := json.Marshal(map[string]any{
			"id":      "cmpl-1",
			"object":  "chat.completion",
			"created": 0,
			"model":   "mistral-medium",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": reply},
			}},
		})

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)

	return srv, &prompt
}

func TestInsights_AliasUsesResolvedName(t *testing.T) {
	chat, prompt := fakeChat(t, "The United States leads.")
	h := newHarnessWith(t, fmt.Sprintf("narrator:\n  base_url: %s/v1/\n", chat.URL))
	t.Setenv("MISTRAL_API_KEY", "test-key")

	code, out, errOut := h.run("insights", "-e", "USA", "-i", "NY.GDP.PCAP.CD")
	if code != exitOK {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}

	if !strings.Contains(out, "The United States leads.") {
		t.Errorf("stdout = %q", out)
	}

	for _, want := range []string{
		"Entities analyzed: United States\n",
		"United States:\n  - GDP per capita (current US$): 80000\n",
	} {
		if !strings.Contains(*prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, *prompt)
		}
	}
}
