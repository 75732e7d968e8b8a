// Package catalog loads tag helper descriptor catalogs from YAML files.
//
// A deployment usually assembles its catalog from several sources (project
// helpers, library helpers); LoadDir loads each file and combines them with
// the collection merge, so shared helpers keep one identity and the combined
// catalog does not copy per-file collections.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v2"

	"github.com/tagbind/tagbind/internal/descriptor"
)

// Catalog is a loaded, immutable set of tag helpers plus the tag name prefix
// they are addressed with.
type Catalog struct {
	Prefix      string
	Descriptors *descriptor.Collection
}

type catalogFile struct {
	Prefix     string       `yaml:"prefix"`
	TagHelpers []helperSpec `yaml:"tag_helpers"`
}

type helperSpec struct {
	Name                   string     `yaml:"name"`
	CaseSensitive          bool       `yaml:"case_sensitive"`
	ClassifyAttributesOnly bool       `yaml:"classify_attributes_only"`
	Rules                  []ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	Tag        string     `yaml:"tag"`
	Parent     string     `yaml:"parent"`
	Attributes []attrSpec `yaml:"attributes"`
}

type attrSpec struct {
	Name       string `yaml:"name"`
	NameMatch  string `yaml:"name_match"` // "full" (default) or "prefix"
	Value      string `yaml:"value"`
	ValueMatch string `yaml:"value_match"` // "any" (default), "exact", "prefix", "suffix"
}

// Load reads a single catalog file.
func Load(path string) (*Catalog, error) {
	prefix, col, err := loadFile(path, map[string]*descriptor.TagHelper{})
	if err != nil {
		return nil, err
	}
	return &Catalog{Prefix: prefix, Descriptors: col}, nil
}

// LoadDir reads every *.yml / *.yaml file in dir in lexical order and merges
// them into one catalog. A helper name seen in an earlier file keeps its
// identity: later files referring to the same name contribute the existing
// descriptor, and the merge deduplicates it. Prefixes must agree across
// files; the first non-empty prefix wins and a conflicting one is an error.
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yml", ".yaml":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files (*.yml, *.yaml) in %s", dir)
	}

	byName := map[string]*descriptor.TagHelper{}
	prefix := ""
	cols := make([]*descriptor.Collection, 0, len(paths))
	for _, p := range paths {
		filePrefix, col, err := loadFile(p, byName)
		if err != nil {
			return nil, err
		}
		if filePrefix != "" {
			if prefix == "" {
				prefix = filePrefix
			} else if prefix != filePrefix {
				return nil, fmt.Errorf("catalog %s: prefix %q conflicts with %q", p, filePrefix, prefix)
			}
		}
		cols = append(cols, col)
	}
	return &Catalog{Prefix: prefix, Descriptors: descriptor.MergeAll(cols...)}, nil
}

func loadFile(path string, byName map[string]*descriptor.TagHelper) (string, *descriptor.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read catalog: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return "", nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	b := descriptor.NewBuilder()
	defer b.Close()
	for i, h := range f.TagHelpers {
		if h.Name == "" {
			return "", nil, fmt.Errorf("catalog %s: tag_helpers[%d]: name is required", path, i)
		}
		if existing, ok := byName[h.Name]; ok {
			b.Add(existing)
			continue
		}
		d, err := buildHelper(h)
		if err != nil {
			return "", nil, fmt.Errorf("catalog %s: tag_helpers[%d] (%s): %w", path, i, h.Name, err)
		}
		byName[h.Name] = d
		b.Add(d)
	}
	return f.Prefix, b.Collection(), nil
}

func buildHelper(h helperSpec) (*descriptor.TagHelper, error) {
	if len(h.Rules) == 0 {
		return nil, fmt.Errorf("at least one rule is required")
	}
	rules := make([]*descriptor.Rule, 0, len(h.Rules))
	for i, r := range h.Rules {
		if r.Tag == "" {
			return nil, fmt.Errorf("rules[%d]: tag is required (use %q for catch-all)", i, descriptor.Wildcard)
		}
		attrs := make([]*descriptor.RequiredAttribute, 0, len(r.Attributes))
		for j, a := range r.Attributes {
			req, err := buildAttribute(a, h.CaseSensitive)
			if err != nil {
				return nil, fmt.Errorf("rules[%d].attributes[%d]: %w", i, j, err)
			}
			attrs = append(attrs, req)
		}
		rules = append(rules, &descriptor.Rule{
			TagName:    r.Tag,
			ParentTag:  r.Parent,
			Attributes: attrs,
		})
	}
	return descriptor.NewTagHelper(h.Name, h.CaseSensitive, h.ClassifyAttributesOnly, rules...), nil
}

func buildAttribute(a attrSpec, caseSensitive bool) (*descriptor.RequiredAttribute, error) {
	if a.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	req := &descriptor.RequiredAttribute{
		Name:          a.Name,
		Value:         a.Value,
		CaseSensitive: caseSensitive,
	}
	switch a.NameMatch {
	case "", "full":
		req.NameMatch = descriptor.NameFull
	case "prefix":
		req.NameMatch = descriptor.NamePrefix
	default:
		return nil, fmt.Errorf("unknown name_match %q", a.NameMatch)
	}
	switch a.ValueMatch {
	case "":
		// A bare value means an exact requirement; no value means any.
		if a.Value != "" {
			req.ValueMatch = descriptor.ValueExact
		} else {
			req.ValueMatch = descriptor.ValueAny
		}
	case "any":
		req.ValueMatch = descriptor.ValueAny
	case "exact":
		req.ValueMatch = descriptor.ValueExact
	case "prefix":
		req.ValueMatch = descriptor.ValuePrefix
	case "suffix":
		req.ValueMatch = descriptor.ValueSuffix
	default:
		return nil, fmt.Errorf("unknown value_match %q", a.ValueMatch)
	}
	return req, nil
}
