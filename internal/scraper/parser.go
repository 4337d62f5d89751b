package scraper

import (
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/fandomtools/ao3list/internal/model"
)

// indexGroupSelector matches the fandom-listing containers on a category
// index page. The archive marks each listing block with the combined
// "tags index group" classes.
const indexGroupSelector = ".tags.index.group"

// Parser extracts fandom entries from a category index page.
//
// Design decision: We use goquery rather than walking x/net/html nodes by
// hand because:
//  1. The index structure is identified by a class combination, which is
//     exactly what CSS selectors express
//  2. goquery's child iteration already skips text nodes, whitespace, and
//     comments between list items
//  3. It correctly handles the malformed HTML common on the web
type Parser struct {
	// baseURL is the archive origin, prefixed onto the site-relative
	// paths found in index anchors.
	baseURL string
}

// NewParser creates a parser that resolves relative fandom links against
// the given archive origin.
func NewParser(baseURL string) *Parser {
	return &Parser{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Parse extracts every fandom entry from an index page, in document
// order: groups as encountered, source order within each group.
// A malformed entry aborts the parse with a ParseError naming the
// offending item text.
func (p *Parser) Parse(content io.Reader) ([]model.Fandom, error) {
	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return nil, err
	}

	fandoms := make([]model.Fandom, 0)
	var parseErr error
	doc.Find(indexGroupSelector).EachWithBreak(func(_ int, group *goquery.Selection) bool {
		items, err := p.parseGroup(group)
		if err != nil {
			parseErr = err
			return false
		}
		fandoms = append(fandoms, items...)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return fandoms, nil
}

// parseGroup extracts the fandom entries from one listing container.
// Only direct li children are considered; anything else between them is
// ignored.
func (p *Parser) parseGroup(group *goquery.Selection) ([]model.Fandom, error) {
	items := make([]model.Fandom, 0)
	var parseErr error
	group.ChildrenFiltered("li").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		fandom, err := p.parseItem(item)
		if err != nil {
			parseErr = err
			return false
		}
		items = append(items, fandom)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return items, nil
}

// parseItem converts one list item into a fandom entry.
// The item's first anchor provides the site-relative path; the visible
// text is split at its last whitespace boundary into the name and a
// parenthesized work count, e.g. "Foo Fandom (42)".
func (p *Parser) parseItem(item *goquery.Selection) (model.Fandom, error) {
	text := strings.TrimSpace(item.Text())

	href, ok := item.Find("a").First().Attr("href")
	if !ok {
		return model.Fandom{}, &ParseError{ItemText: text, Reason: "no link element found"}
	}

	name, count, err := splitNameCount(text)
	if err != nil {
		return model.Fandom{}, err
	}

	return model.Fandom{
		Name:  name,
		Count: count,
		URL:   p.baseURL + href,
	}, nil
}

// splitNameCount splits an index entry's text at the last whitespace run.
// Everything before the split is the fandom name; the final token must be
// a parenthesized integer.
func splitNameCount(text string) (string, int, error) {
	i := strings.LastIndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return "", 0, &ParseError{ItemText: text, Reason: "no work count suffix"}
	}
	_, size := utf8.DecodeRuneInString(text[i:])

	name := strings.TrimSpace(text[:i])
	suffix := text[i+size:]

	// The suffix is expected to look like "(1234)": strip the surrounding
	// characters and parse the rest.
	if utf8.RuneCountInString(suffix) < 3 {
		return "", 0, &ParseError{ItemText: text, Reason: "malformed work count suffix"}
	}
	_, first := utf8.DecodeRuneInString(suffix)
	_, last := utf8.DecodeLastRuneInString(suffix)
	count, err := strconv.Atoi(suffix[first : len(suffix)-last])
	if err != nil {
		return "", 0, &ParseError{ItemText: text, Reason: "malformed work count suffix"}
	}

	return name, count, nil
}
