// Package binder decides which tag helper descriptors apply to one candidate
// element occurrence.
package binder

import (
	"strings"

	"github.com/tagbind/tagbind/internal/descriptor"
)

// Attribute is one name/value pair observed on a candidate element, in
// document order.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Binder matches candidate elements against a descriptor catalog. It holds no
// mutable state and may be shared across concurrent Bind calls.
type Binder struct {
	prefix  string
	catalog *descriptor.Collection
}

// New returns a binder for the given tag name prefix (may be empty) and
// catalog.
func New(prefix string, catalog *descriptor.Collection) *Binder {
	if catalog == nil {
		catalog = descriptor.Empty
	}
	return &Binder{prefix: prefix, catalog: catalog}
}

// Prefix returns the configured tag name prefix.
func (b *Binder) Prefix() string { return b.prefix }

// Binding is the result of matching one candidate element. It is immutable.
type Binding struct {
	// TagName is the candidate's original, possibly prefixed name.
	TagName string
	// Descriptors are the bound helpers in catalog order.
	Descriptors *descriptor.Collection
	// ParentTag is the parent name the decision was made against, as given.
	ParentTag string
	// Attributes is the candidate's attribute list, as given.
	Attributes []Attribute
	// Prefix is the binder's configured prefix.
	Prefix string

	rules          map[*descriptor.TagHelper][]*descriptor.Rule
	attributesOnly bool
}

// RulesFor returns the subset of d's rules that matched, never d's full rule
// list. Nil for a descriptor that is not part of the binding.
func (b *Binding) RulesFor(d *descriptor.TagHelper) []*descriptor.Rule { return b.rules[d] }

// AttributesOnly reports whether every bound helper classifies the element by
// attributes alone, without requiring structural rewriting.
func (b *Binding) AttributesOnly() bool { return b.attributesOnly }

// Bind evaluates the catalog against one candidate element and returns the
// binding, or nil when no helper matches. It never fails: malformed or
// unmatched input is simply not a binding.
//
// With a configured prefix the candidate must carry it (ordinal comparison);
// the prefix is stripped before rule evaluation. A tag equal to the bare
// prefix has an empty matchable name and is eligible for catch-all rules
// only. When the parent element was itself tag-helper-bound, its name is
// prefix-stripped the same way before parent rule checks.
func (b *Binder) Bind(tagName string, attrs []Attribute, parentTag string, parentIsTagHelper bool) *Binding {
	matchable := tagName
	parent := parentTag
	if b.prefix != "" {
		if !strings.HasPrefix(tagName, b.prefix) {
			return nil
		}
		matchable = tagName[len(b.prefix):]
		if parentIsTagHelper && strings.HasPrefix(parentTag, b.prefix) {
			parent = parentTag[len(b.prefix):]
		}
	}

	db := descriptor.NewBuilder()
	defer db.Close()
	var rules map[*descriptor.TagHelper][]*descriptor.Rule
	attributesOnly := true
	for d := range b.catalog.All() {
		var matched []*descriptor.Rule
		for _, r := range d.Rules {
			if ruleMatches(r, d, matchable, parent, attrs) {
				matched = append(matched, r)
			}
		}
		if matched == nil {
			continue
		}
		db.Add(d)
		if rules == nil {
			rules = make(map[*descriptor.TagHelper][]*descriptor.Rule)
		}
		rules[d] = matched
		if !d.ClassifyAttributesOnly {
			attributesOnly = false
		}
	}
	if rules == nil {
		return nil
	}
	return &Binding{
		TagName:        tagName,
		Descriptors:    db.Collection(),
		ParentTag:      parentTag,
		Attributes:     attrs,
		Prefix:         b.prefix,
		rules:          rules,
		attributesOnly: attributesOnly,
	}
}

// ruleMatches evaluates one rule independently: tag name (or catch-all),
// required parent, and every required attribute satisfied by at least one
// provided attribute.
func ruleMatches(r *descriptor.Rule, d *descriptor.TagHelper, tag, parent string, attrs []Attribute) bool {
	if r.TagName != descriptor.Wildcard {
		if tag == "" || !descriptor.EqualTag(r.TagName, tag, d.CaseSensitive) {
			return false
		}
	}
	if r.ParentTag != "" && !descriptor.EqualTag(r.ParentTag, parent, d.CaseSensitive) {
		return false
	}
	for _, req := range r.Attributes {
		satisfied := false
		for _, a := range attrs {
			if req.Matches(a.Name, a.Value) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
