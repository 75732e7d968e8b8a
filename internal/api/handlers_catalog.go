package api

import (
	"encoding/json"
	"net/http"
)

type ruleSummary struct {
	Tag            string `json:"tag"`
	Parent         string `json:"parent,omitempty"`
	AttributeCount int    `json:"attribute_count,omitempty"`
}

type helperSummary struct {
	Name                   string        `json:"name"`
	CaseSensitive          bool          `json:"case_sensitive"`
	ClassifyAttributesOnly bool          `json:"classify_attributes_only"`
	Rules                  []ruleSummary `json:"rules"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	helpers := make([]helperSummary, 0, s.catalog.Descriptors.Len())
	for d := range s.catalog.Descriptors.All() {
		rules := make([]ruleSummary, 0, len(d.Rules))
		for _, rule := range d.Rules {
			rules = append(rules, ruleSummary{
				Tag:            rule.TagName,
				Parent:         rule.ParentTag,
				AttributeCount: len(rule.Attributes),
			})
		}
		helpers = append(helpers, helperSummary{
			Name:                   d.Name,
			CaseSensitive:          d.CaseSensitive,
			ClassifyAttributesOnly: d.ClassifyAttributesOnly,
			Rules:                  rules,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"prefix":      s.catalog.Prefix,
		"tag_helpers": helpers,
	})
}
