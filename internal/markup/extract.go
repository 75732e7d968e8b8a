// Package markup feeds parsed documents to the tag helper binder. It owns no
// HTML parsing of its own: golang.org/x/net/html produces the tree, this
// package walks it tracking parentage and asks the binder about every
// element.
package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/tagbind/tagbind/internal/binder"
	"github.com/tagbind/tagbind/internal/content"
)

// Candidate is one element occurrence as handed to the binder: tag name,
// attributes in document order, and the immediate parent's tag name (empty at
// the fragment root).
type Candidate struct {
	TagName    string             `json:"tag_name"`
	Attributes []binder.Attribute `json:"attributes,omitempty"`
	ParentTag  string             `json:"parent_tag,omitempty"`
}

// ExtractCandidates parses an HTML document or fragment and lists every
// element as a binder candidate, depth-first in document order.
func ExtractCandidates(r io.Reader) ([]Candidate, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	var out []Candidate
	var walk func(n *html.Node, parent string)
	walk = func(n *html.Node, parent string) {
		name := parent
		if n.Type == html.ElementNode {
			out = append(out, Candidate{
				TagName:    n.Data,
				Attributes: attributes(n),
				ParentTag:  parent,
			})
			name = n.Data
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, name)
		}
	}
	for c := contentRoot(doc).FirstChild; c != nil; c = c.NextSibling {
		walk(c, "")
	}
	return out, nil
}

// RuleRef identifies one matched rule of a helper.
type RuleRef struct {
	Tag    string `json:"tag"`
	Parent string `json:"parent,omitempty"`
}

// HelperMatch is one bound helper with the subset of its rules that matched.
type HelperMatch struct {
	Name  string    `json:"name"`
	Rules []RuleRef `json:"rules"`
}

// BoundTag is the report for one element the binder matched.
type BoundTag struct {
	TagName        string             `json:"tag_name"`
	Path           string             `json:"path"`
	ParentTag      string             `json:"parent_tag,omitempty"`
	Attributes     []binder.Attribute `json:"attributes,omitempty"`
	Helpers        []HelperMatch      `json:"helpers"`
	AttributesOnly bool               `json:"attributes_only"`
	Text           string             `json:"text,omitempty"`
}

// BindDocument parses a document and binds every element, threading "was the
// parent itself tag-helper-bound" through the walk. Only matched elements are
// reported; an element that matches nothing is not an error.
func BindDocument(b *binder.Binder, r io.Reader) ([]BoundTag, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	var out []BoundTag
	var walk func(n *html.Node, parent string, parentIsHelper bool, path []string)
	walk = func(n *html.Node, parent string, parentIsHelper bool, path []string) {
		name, isHelper := parent, parentIsHelper
		if n.Type == html.ElementNode {
			attrs := attributes(n)
			binding := b.Bind(n.Data, attrs, parent, parentIsHelper)
			name, isHelper = n.Data, binding != nil
			path = append(path, n.Data)
			if binding != nil {
				out = append(out, summarize(binding, path, textContent(n)))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, name, isHelper, path)
		}
	}
	for c := contentRoot(doc).FirstChild; c != nil; c = c.NextSibling {
		walk(c, "", false, nil)
	}
	return out, nil
}

func summarize(bd *binder.Binding, path []string, text string) BoundTag {
	helpers := make([]HelperMatch, 0, bd.Descriptors.Len())
	for d := range bd.Descriptors.All() {
		rules := bd.RulesFor(d)
		refs := make([]RuleRef, 0, len(rules))
		for _, r := range rules {
			refs = append(refs, RuleRef{Tag: r.TagName, Parent: r.ParentTag})
		}
		helpers = append(helpers, HelperMatch{Name: d.Name, Rules: refs})
	}
	return BoundTag{
		TagName:        bd.TagName,
		Path:           content.JoinStrings(" > ", path).String(),
		ParentTag:      bd.ParentTag,
		Attributes:     bd.Attributes,
		Helpers:        helpers,
		AttributesOnly: bd.AttributesOnly(),
		Text:           text,
	}
}

func attributes(n *html.Node) []binder.Attribute {
	if len(n.Attr) == 0 {
		return nil
	}
	attrs := make([]binder.Attribute, 0, len(n.Attr))
	for _, a := range n.Attr {
		attrs = append(attrs, binder.Attribute{Name: a.Key, Value: a.Val})
	}
	return attrs
}

// textContent assembles the element's flattened text from its text node
// fragments. The builder shares the node strings until the final flatten.
func textContent(n *html.Node) string {
	b := content.NewBuilder(4, true)
	defer b.Close()
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.AddString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(b.Content().String())
}

// contentRoot finds the <body> node html.Parse wraps fragments in, so wrapper
// elements are not reported as candidates.
func contentRoot(doc *html.Node) *html.Node {
	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "body" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if b := find(c); b != nil {
				return b
			}
		}
		return nil
	}
	if b := find(doc); b != nil {
		return b
	}
	return doc
}
