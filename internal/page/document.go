// Package page fetches and parses webpages and probes auxiliary resources.
package page

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a read-only view over a fetched, parsed webpage. Missing
// elements are valid states, never errors: every accessor returns a zero
// value when the queried element is absent.
type Document struct {
	url     *url.URL
	doc     *goquery.Document
	headers http.Header

	// ElapsedMillis is the measured page load latency.
	ElapsedMillis int64
}

// NewDocument wraps an already-parsed goquery document. The fetcher is the
// normal producer; tests construct documents from HTML fixtures.
func NewDocument(u *url.URL, doc *goquery.Document, headers http.Header, elapsedMillis int64) *Document {
	return &Document{url: u, doc: doc, headers: headers, ElapsedMillis: elapsedMillis}
}

// URL returns the final URL the document was fetched from.
func (d *Document) URL() *url.URL {
	return d.url
}

// IsHTTPS reports whether the document was served over TLS.
func (d *Document) IsHTTPS() bool {
	return d.url != nil && strings.EqualFold(d.url.Scheme, "https")
}

// Header returns a response header value.
func (d *Document) Header(key string) string {
	if d.headers == nil {
		return ""
	}
	return d.headers.Get(key)
}

// Select runs a CSS selector against the document.
func (d *Document) Select(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Count returns the number of elements matching a selector.
func (d *Document) Count(selector string) int {
	return d.doc.Find(selector).Length()
}

// Title returns the trimmed text of the title element.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// Lang returns the lang attribute of the html element.
func (d *Document) Lang() string {
	return strings.TrimSpace(d.doc.Find("html").First().AttrOr("lang", ""))
}

// MetaContent returns the content attribute of a named meta tag.
func (d *Document) MetaContent(name string) string {
	var content string
	d.doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.EqualFold(s.AttrOr("name", ""), name) {
			content = strings.TrimSpace(s.AttrOr("content", ""))
			return false
		}
		return true
	})
	return content
}

// MetaProperty returns the content attribute of a meta tag matched by its
// property attribute (Open Graph style).
func (d *Document) MetaProperty(property string) string {
	var content string
	d.doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.EqualFold(s.AttrOr("property", ""), property) {
			content = strings.TrimSpace(s.AttrOr("content", ""))
			return false
		}
		return true
	})
	return content
}

// HasViewport reports whether a viewport meta directive is present.
func (d *Document) HasViewport() bool {
	return d.MetaContent("viewport") != ""
}

// ElementCount returns the total number of element nodes in the document.
func (d *Document) ElementCount() int {
	return d.doc.Find("*").Length()
}
