package scraper

import (
	"errors"
	"strings"
	"testing"
)

// TestParserParse tests fandom extraction from index page markup.
func TestParserParse(t *testing.T) {
	t.Parallel()

	t.Run("extracts name, count, and absolute URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<ol class="tags index group">
				<li><a href="/media/Anime/Foo">Foo Fandom</a> (42)</li>
			</ol>
		</body></html>`

		parser := NewParser("https://archiveofourown.org")
		fandoms, err := parser.Parse(strings.NewReader(html))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}

		if len(fandoms) != 1 {
			t.Fatalf("expected 1 fandom, got %d", len(fandoms))
		}
		f := fandoms[0]
		if f.Name != "Foo Fandom" {
			t.Errorf("expected name 'Foo Fandom', got %q", f.Name)
		}
		if f.Count != 42 {
			t.Errorf("expected count 42, got %d", f.Count)
		}
		if f.URL != "https://archiveofourown.org/media/Anime/Foo" {
			t.Errorf("unexpected URL %q", f.URL)
		}
	})

	t.Run("skips text nodes and comments between items", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<ol class="tags index group">
				<!-- alphabetical section -->
				stray text
				<li><a href="/media/TV/First">First</a> (10)</li>
				<li><a href="/media/TV/Second">Second</a> (5)</li>
			</ol>
		</body></html>`

		parser := NewParser("https://archiveofourown.org")
		fandoms, err := parser.Parse(strings.NewReader(html))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}

		if len(fandoms) != 2 {
			t.Fatalf("expected 2 fandoms, got %d", len(fandoms))
		}
	})

	t.Run("preserves document order across groups", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<ol class="tags index group">
				<li><a href="/media/TV/A">Alpha</a> (1)</li>
				<li><a href="/media/TV/B">Beta</a> (2)</li>
			</ol>
			<div>unrelated</div>
			<ol class="tags index group">
				<li><a href="/media/TV/C">Gamma</a> (3)</li>
			</ol>
		</body></html>`

		parser := NewParser("https://archiveofourown.org")
		fandoms, err := parser.Parse(strings.NewReader(html))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}

		wantNames := []string{"Alpha", "Beta", "Gamma"}
		if len(fandoms) != len(wantNames) {
			t.Fatalf("expected %d fandoms, got %d", len(wantNames), len(fandoms))
		}
		for i, name := range wantNames {
			if fandoms[i].Name != name {
				t.Errorf("position %d: got %q, want %q", i, fandoms[i].Name, name)
			}
		}
	})

	t.Run("ignores markup outside index groups", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<ul class="navigation">
				<li><a href="/other">Not a fandom</a></li>
			</ul>
		</body></html>`

		parser := NewParser("https://archiveofourown.org")
		fandoms, err := parser.Parse(strings.NewReader(html))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}
		if len(fandoms) != 0 {
			t.Errorf("expected no fandoms, got %d", len(fandoms))
		}
	})

	t.Run("names with internal whitespace keep everything before the count", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<ol class="tags index group">
				<li><a href="/media/Books/Long">A Very Long Fandom Name</a> (1234)</li>
			</ol>
		</body></html>`

		parser := NewParser("https://archiveofourown.org")
		fandoms, err := parser.Parse(strings.NewReader(html))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}
		if fandoms[0].Name != "A Very Long Fandom Name" {
			t.Errorf("unexpected name %q", fandoms[0].Name)
		}
		if fandoms[0].Count != 1234 {
			t.Errorf("unexpected count %d", fandoms[0].Count)
		}
	})

	t.Run("item without a link is a ParseError", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<ol class="tags index group">
				<li>Orphaned Fandom (3)</li>
			</ol>
		</body></html>`

		parser := NewParser("https://archiveofourown.org")
		_, err := parser.Parse(strings.NewReader(html))

		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected ParseError, got %v", err)
		}
		if !strings.Contains(parseErr.ItemText, "Orphaned Fandom") {
			t.Errorf("error should carry the item text, got %q", parseErr.ItemText)
		}
	})

	t.Run("malformed count suffix is a ParseError", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			item string
		}{
			{"no suffix at all", `<li><a href="/media/TV/X">NoCount</a></li>`},
			{"non-numeric suffix", `<li><a href="/media/TV/X">Broken</a> (many)</li>`},
			{"suffix too short", `<li><a href="/media/TV/X">Short</a> ()</li>`},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				html := `<html><body><ol class="tags index group">` + tt.item + `</ol></body></html>`
				parser := NewParser("https://archiveofourown.org")
				_, err := parser.Parse(strings.NewReader(html))

				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected ParseError, got %v", err)
				}
			})
		}
	})

	t.Run("empty document yields empty list", func(t *testing.T) {
		t.Parallel()

		parser := NewParser("https://archiveofourown.org")
		fandoms, err := parser.Parse(strings.NewReader("<html><body></body></html>"))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}
		if len(fandoms) != 0 {
			t.Errorf("expected no fandoms, got %d", len(fandoms))
		}
	})
}
