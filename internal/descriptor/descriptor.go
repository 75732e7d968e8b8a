// Package descriptor holds the tag helper descriptor model and an immutable,
// order-preserving, duplicate-free collection of descriptors.
//
// Descriptors are compared by identity (pointer), never by deep equality: the
// same helper contributed by several catalog sources is the same *TagHelper.
package descriptor

import (
	"strings"
	"sync/atomic"
)

// Wildcard is the rule tag name that matches any element.
const Wildcard = "*"

// NameMatch selects how a required attribute's name is compared.
type NameMatch int

const (
	// NameFull requires the attribute name to match exactly.
	NameFull NameMatch = iota
	// NamePrefix requires the attribute name to start with the required
	// name; the suffix (including an empty one) is unconstrained.
	NamePrefix
)

// ValueMatch selects the shape constraint on a required attribute's value.
type ValueMatch int

const (
	// ValueAny places no constraint on the value.
	ValueAny ValueMatch = iota
	ValueExact
	ValuePrefix
	ValueSuffix
)

// RequiredAttribute is one attribute predicate on a matching rule.
type RequiredAttribute struct {
	Name          string
	NameMatch     NameMatch
	Value         string
	ValueMatch    ValueMatch
	CaseSensitive bool
}

// Matches reports whether a provided attribute satisfies the predicate.
// Name comparison honors CaseSensitive; value comparison is always ordinal,
// as attribute values are case-significant in markup.
func (a *RequiredAttribute) Matches(name, value string) bool {
	switch a.NameMatch {
	case NamePrefix:
		if !hasPrefix(name, a.Name, a.CaseSensitive) {
			return false
		}
	default:
		if !equalTag(name, a.Name, a.CaseSensitive) {
			return false
		}
	}
	switch a.ValueMatch {
	case ValueExact:
		return value == a.Value
	case ValuePrefix:
		return strings.HasPrefix(value, a.Value)
	case ValueSuffix:
		return strings.HasSuffix(value, a.Value)
	}
	return true
}

// Rule is one (tag, optional parent, required attributes) predicate set of a
// tag helper. A helper may own several.
type Rule struct {
	// TagName is the required element name, or Wildcard for a catch-all.
	TagName string
	// ParentTag, when non-empty, requires the element's parent to match.
	ParentTag string
	// Attributes must all be satisfied by at least one provided attribute.
	Attributes []*RequiredAttribute
}

// TagHelper describes a component that can bind to markup elements.
type TagHelper struct {
	id uint64

	// Name is the helper's display name, unique within a catalog.
	Name string
	// CaseSensitive controls tag and parent name comparison for all rules.
	CaseSensitive bool
	// ClassifyAttributesOnly marks helpers that classify an element by its
	// attributes without requiring structural rewriting.
	ClassifyAttributesOnly bool
	// Rules are evaluated independently; the helper binds when any matches.
	Rules []*Rule
}

var lastID atomic.Uint64

// NewTagHelper builds a descriptor with a process-unique identity used for
// collection hashing.
func NewTagHelper(name string, caseSensitive, classifyAttributesOnly bool, rules ...*Rule) *TagHelper {
	return &TagHelper{
		id:                     lastID.Add(1),
		Name:                   name,
		CaseSensitive:          caseSensitive,
		ClassifyAttributesOnly: classifyAttributesOnly,
		Rules:                  rules,
	}
}

// equalTag compares element or attribute names under the descriptor's case
// sensitivity.
func equalTag(a, b string, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

func hasPrefix(s, prefix string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.HasPrefix(s, prefix)
	}
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// EqualTag reports whether two element names are equal under the given case
// sensitivity. The binder shares this comparison with rule evaluation.
func EqualTag(a, b string, caseSensitive bool) bool { return equalTag(a, b, caseSensitive) }
