package domain

import "time"

// ListKind distinguishes ordered (numbered) from unordered (bulleted) lists.
type ListKind string

const (
	ListOrdered   ListKind = "ordered"
	ListUnordered ListKind = "unordered"
)

// Heading is one entry of the extracted heading outline.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// List is an extracted ul/ol block with its direct items.
type List struct {
	Kind  ListKind `json:"kind"`
	Items []string `json:"items"`
}

// Document is an extracted article. It is constructed once by a content
// source and never mutated afterwards; every scorer reads from the same
// immutable value.
type Document struct {
	URL        string
	Title      string
	Body       string
	Headings   []Heading
	Paragraphs []string
	Lists      []List
	WordCount  int
	FetchedAt  time.Time
	// Live is false when the content source substituted the static seed
	// document after all fetch strategies failed. Downstream consumers must
	// never treat fallback content as authoritative.
	Live bool
}
