package fetch

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"DocAuditor/internal/domain"
)

// Selector lists tried in order when locating the article.
var (
	titleSelectors   = []string{"h1.article-title", ".article-header h1", "h1", "title"}
	contentSelectors = []string{".article-body", ".article-content", "[data-article-body]", ".content-body", "main", ".content"}
	blockedMarkers   = []string{"access denied", "forbidden", "blocked"}
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Extractor converts raw article HTML into a structured Document. goquery
// drives selector-based extraction; go-readability recovers the main content
// when none of the known selectors match; bluemonday strips residual markup
// from extracted fragments.
type Extractor struct {
	strip *bluemonday.Policy
}

func NewExtractor() *Extractor {
	return &Extractor{strip: bluemonday.StrictPolicy()}
}

// Extract parses the page and returns the structured document. It fails on
// blocked pages and on pages without locatable content.
func (e *Extractor) Extract(raw, url string) (domain.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return domain.Document{}, fmt.Errorf("parse html: %w", err)
	}

	if isBlocked(doc) {
		return domain.Document{}, fmt.Errorf("%w: blocked page detected", domain.ErrFetchFailed)
	}

	title := e.extractTitle(doc)

	content := findMainContent(doc)
	if content == nil {
		recovered, rErr := recoverMainContent(raw)
		if rErr != nil {
			return domain.Document{}, fmt.Errorf("no main content found: %w", rErr)
		}
		content = recovered
	}

	content.Find("script, style, nav, header, footer").Remove()

	body := e.extractBody(content)
	result := domain.Document{
		URL:        url,
		Title:      title,
		Body:       body,
		Headings:   e.extractHeadings(content),
		Paragraphs: e.extractParagraphs(content),
		Lists:      e.extractLists(content),
		WordCount:  len(strings.Fields(body)),
		FetchedAt:  time.Now().UTC(),
		Live:       true,
	}

	return result, nil
}

func isBlocked(doc *goquery.Document) bool {
	text := strings.ToLower(doc.Text())
	for _, marker := range blockedMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func (e *Extractor) extractTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		if text := e.cleanText(doc.Find(selector).First()); text != "" {
			return text
		}
	}
	return "Documentation Article"
}

func findMainContent(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return nil
}

// recoverMainContent runs go-readability over the raw page and re-parses its
// cleaned HTML, used when none of the known selectors match the page layout.
func recoverMainContent(raw string) (*goquery.Selection, error) {
	article, err := readability.FromReader(strings.NewReader(raw), nil)
	if err != nil {
		return nil, fmt.Errorf("readability: %w", err)
	}

	var buf strings.Builder
	if err := article.RenderHTML(&buf); err != nil {
		return nil, fmt.Errorf("render recovered content: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	if err != nil {
		return nil, fmt.Errorf("reparse recovered content: %w", err)
	}
	return doc.Find("body").First(), nil
}

// extractBody renders the content as normalized plain text, one block per
// line, so text-only structural inference still sees line boundaries.
func (e *Extractor) extractBody(content *goquery.Selection) string {
	var blocks []string
	content.Find("h1, h2, h3, h4, h5, h6, p, li").Each(func(_ int, s *goquery.Selection) {
		if text := e.cleanText(s); text != "" {
			blocks = append(blocks, text)
		}
	})
	if len(blocks) == 0 {
		if text := e.cleanText(content); text != "" {
			blocks = append(blocks, text)
		}
	}
	return strings.Join(blocks, "\n")
}

func (e *Extractor) extractHeadings(content *goquery.Selection) []domain.Heading {
	var headings []domain.Heading
	for level := 1; level <= 6; level++ {
		content.Find("h" + strconv.Itoa(level)).Each(func(_ int, s *goquery.Selection) {
			if text := e.cleanText(s); text != "" {
				headings = append(headings, domain.Heading{Level: level, Text: text})
			}
		})
	}
	return headings
}

func (e *Extractor) extractParagraphs(content *goquery.Selection) []string {
	var paragraphs []string
	content.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := e.cleanText(s); len(text) > 20 {
			paragraphs = append(paragraphs, text)
		}
	})
	return paragraphs
}

func (e *Extractor) extractLists(content *goquery.Selection) []domain.List {
	var lists []domain.List
	content.Find("ul, ol").Each(func(_ int, s *goquery.Selection) {
		kind := domain.ListUnordered
		if goquery.NodeName(s) == "ol" {
			kind = domain.ListOrdered
		}

		var items []string
		s.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
			if text := e.cleanText(li); text != "" {
				items = append(items, text)
			}
		})

		if len(items) > 0 {
			lists = append(lists, domain.List{Kind: kind, Items: items})
		}
	})
	return lists
}

// cleanText strips any markup left inside the selection and collapses
// whitespace runs.
func (e *Extractor) cleanText(s *goquery.Selection) string {
	if s == nil || s.Length() == 0 {
		return ""
	}
	inner, err := s.Html()
	if err != nil {
		inner = s.Text()
	}
	text := html.UnescapeString(e.strip.Sanitize(inner))
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
