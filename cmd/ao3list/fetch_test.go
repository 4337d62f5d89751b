package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestConfig writes a .ao3list config file pointing at the given
// base URL and returns its path.
func writeTestConfig(t *testing.T, baseURL string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".ao3list")
	content := fmt.Sprintf("baseURL: %s\n", baseURL)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// indexPage builds a minimal category index page.
func indexPage(items ...string) string {
	return `<html><body><ol class="tags index group">` + strings.Join(items, "") + `</ol></body></html>`
}

// TestNewFetchCmd tests the fetch command flag surface.
func TestNewFetchCmd(t *testing.T) {
	t.Parallel()

	cmd := NewFetchCmd()

	tests := []struct {
		flag      string
		shorthand string
		defValue  string
	}{
		{"output", "o", "text"},
		{"category", "c", "[]"},
		{"verbose", "v", "false"},
		{"quiet", "q", "false"},
		{"min-works", "m", "0"},
		{"file", "f", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.flag, func(t *testing.T) {
			t.Parallel()

			flag := cmd.Flags().Lookup(tt.flag)
			if flag == nil {
				t.Fatalf("expected %s flag", tt.flag)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("expected shorthand %q, got %q", tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("expected default %q, got %q", tt.defValue, flag.DefValue)
			}
		})
	}
}

// TestFetchCmdValidation tests that bad flag values fail before fetching.
func TestFetchCmdValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "unknown output format",
			args: []string{"fetch", "-o", "xml"},
			want: "unknown output format",
		},
		{
			name: "unknown category",
			args: []string{"fetch", "-c", "podcasts"},
			want: "unknown category",
		},
		{
			name: "negative min-works",
			args: []string{"fetch", "-m", "-1"},
			want: "minimum work count",
		},
		{
			name: "missing explicit config file",
			args: []string{"fetch", "--config", "/nonexistent/.ao3list"},
			want: "configuration file not found",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// The archive must never be contacted for invalid input, so a
			// non-routable base URL would also fail loudly if it were.
			root := NewRootCmd()
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})
			root.SetArgs(tt.args)

			err := root.Execute()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err.Error(), tt.want)
			}
		})
	}
}

// TestFetchCmdEndToEnd tests the full pipeline against a local server.
func TestFetchCmdEndToEnd(t *testing.T) {
	t.Parallel()

	t.Run("two categories are merged, filtered, and sorted", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case strings.Contains(r.URL.Path, "Anime"):
				fmt.Fprint(w, indexPage(
					`<li><a href="/media/TV/X">X</a> (10)</li>`,
					`<li><a href="/media/TV/Y">Y</a> (5)</li>`,
				))
			case strings.Contains(r.URL.Path, "TV"):
				fmt.Fprint(w, indexPage(
					`<li><a href="/media/TV/Y">Y</a> (5)</li>`,
					`<li><a href="/media/TV/Z">Z</a> (1)</li>`,
				))
			default:
				http.NotFound(w, r)
			}
		}))
		defer server.Close()

		var out bytes.Buffer
		root := NewRootCmd()
		root.SetOut(&out)
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{
			"fetch",
			"--config", writeTestConfig(t, server.URL),
			"-c", "anime", "-c", "tv",
			"-m", "2",
			"-o", "json-compact",
			"-q",
		})

		if err := root.Execute(); err != nil {
			t.Fatalf("fetch failed: %v", err)
		}

		var records []struct {
			Count int    `json:"count"`
			Name  string `json:"name"`
			URL   string `json:"url"`
		}
		if err := json.Unmarshal(out.Bytes(), &records); err != nil {
			t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
		}

		// Z is filtered out, the duplicate Y is dropped.
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d: %+v", len(records), records)
		}
		if records[0].Name != "X" || records[0].Count != 10 {
			t.Errorf("unexpected first record %+v", records[0])
		}
		if records[1].Name != "Y" || records[1].Count != 5 {
			t.Errorf("unexpected second record %+v", records[1])
		}
		if records[1].URL != server.URL+"/media/TV/Y" {
			t.Errorf("unexpected URL %q", records[1].URL)
		}
	})

	t.Run("results are written to the output file", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, indexPage(`<li><a href="/media/Movies/Solo">Solo</a> (7)</li>`))
		}))
		defer server.Close()

		outFile := filepath.Join(t.TempDir(), "fandoms.txt")
		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{
			"fetch",
			"--config", writeTestConfig(t, server.URL),
			"-c", "movies",
			"-f", outFile,
			"-q",
		})

		if err := root.Execute(); err != nil {
			t.Fatalf("fetch failed: %v", err)
		}

		data, err := os.ReadFile(outFile)
		if err != nil {
			t.Fatalf("failed to read output file: %v", err)
		}
		want := "Solo 7 - " + server.URL + "/media/Movies/Solo\n"
		if string(data) != want {
			t.Errorf("got %q, want %q", string(data), want)
		}
	})

	t.Run("failed fetch is an error with the URL", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{
			"fetch",
			"--config", writeTestConfig(t, server.URL),
			"-c", "movies",
			"-q",
		})

		err := root.Execute()
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), server.URL) {
			t.Errorf("error %q should name the failing URL", err.Error())
		}
	})

	t.Run("verbose progress goes to stderr not stdout", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, indexPage(`<li><a href="/media/Movies/Solo">Solo</a> (7)</li>`))
		}))
		defer server.Close()

		var out, errOut bytes.Buffer
		root := NewRootCmd()
		root.SetOut(&out)
		root.SetErr(&errOut)
		root.SetArgs([]string{
			"fetch",
			"--config", writeTestConfig(t, server.URL),
			"-c", "movies",
			"-v",
		})

		if err := root.Execute(); err != nil {
			t.Fatalf("fetch failed: %v", err)
		}

		if !strings.Contains(errOut.String(), "fetching fandoms") {
			t.Errorf("expected progress on stderr, got %q", errOut.String())
		}
		if !strings.Contains(errOut.String(), "fetched fandoms count=1") {
			t.Errorf("expected tier-2 statistics on stderr, got %q", errOut.String())
		}
		if strings.Contains(out.String(), "fetching") {
			t.Errorf("progress leaked into stdout: %q", out.String())
		}
	})
}
