package markup

import (
	"strings"
	"testing"

	"github.com/tagbind/tagbind/internal/binder"
	"github.com/tagbind/tagbind/internal/descriptor"
)

func TestExtractCandidates_ParentTracking(t *testing.T) {
	src := `<div class="outer"><p>hi <strong>there</strong></p></div><span></span>`
	got, err := ExtractCandidates(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ExtractCandidates: %v", err)
	}
	want := []struct {
		tag, parent string
	}{
		{"div", ""},
		{"p", "div"},
		{"strong", "p"},
		{"span", ""},
	}
	if len(got) != len(want) {
		t.Fatalf("candidate count = %d, want %d (%+v)", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].TagName != w.tag || got[i].ParentTag != w.parent {
			t.Errorf("candidate %d = %s (parent %q), want %s (parent %q)",
				i, got[i].TagName, got[i].ParentTag, w.tag, w.parent)
		}
	}
	if len(got[0].Attributes) != 1 || got[0].Attributes[0].Name != "class" {
		t.Errorf("div attributes = %+v", got[0].Attributes)
	}
}

func TestBindDocument_ThreadsParentIsTagHelper(t *testing.T) {
	grid := descriptor.NewTagHelper("Grid", false, false, &descriptor.Rule{TagName: "grid"})
	cell := descriptor.NewTagHelper("Cell", false, false, &descriptor.Rule{TagName: "cell", ParentTag: "grid"})
	b := binder.New("th:", descriptor.New(grid, cell))

	src := `<th:grid><th:cell>a</th:cell></th:grid><th:cell>orphan</th:cell>`
	got, err := BindDocument(b, strings.NewReader(src))
	if err != nil {
		t.Fatalf("BindDocument: %v", err)
	}
	// th:grid binds; th:cell under it binds because the bound parent's name
	// is prefix-stripped; the orphan th:cell has no grid parent and stays
	// unbound.
	if len(got) != 2 {
		t.Fatalf("bound tags = %+v, want 2", got)
	}
	if got[0].TagName != "th:grid" || got[1].TagName != "th:cell" {
		t.Errorf("bound order = %s, %s", got[0].TagName, got[1].TagName)
	}
	if got[1].Path != "th:grid > th:cell" {
		t.Errorf("path = %q", got[1].Path)
	}
	if got[1].Text != "a" {
		t.Errorf("text = %q", got[1].Text)
	}
}

func TestBindDocument_HelperSummaries(t *testing.T) {
	classify := descriptor.NewTagHelper("Track", false, true, &descriptor.Rule{
		TagName: descriptor.Wildcard,
		Attributes: []*descriptor.RequiredAttribute{
			{Name: "data-track", NameMatch: descriptor.NameFull},
		},
	})
	b := binder.New("", descriptor.New(classify))

	src := `<span data-track="1">x <em>y</em></span>`
	got, err := BindDocument(b, strings.NewReader(src))
	if err != nil {
		t.Fatalf("BindDocument: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("bound tags = %+v, want 1", got)
	}
	tag := got[0]
	if !tag.AttributesOnly {
		t.Errorf("a classification-only binding should report AttributesOnly")
	}
	if len(tag.Helpers) != 1 || tag.Helpers[0].Name != "Track" {
		t.Fatalf("helpers = %+v", tag.Helpers)
	}
	if len(tag.Helpers[0].Rules) != 1 || tag.Helpers[0].Rules[0].Tag != descriptor.Wildcard {
		t.Errorf("rules = %+v", tag.Helpers[0].Rules)
	}
	if tag.Text != "x y" {
		t.Errorf("text assembled from fragments = %q", tag.Text)
	}
}

func TestRenderMarkdown_KeepsRawHTML(t *testing.T) {
	out, err := RenderMarkdown([]byte("# Title\n\n<span data-track=\"1\">hi</span>\n"))
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if !strings.Contains(string(out), `<span data-track="1">`) {
		t.Errorf("raw helper-bindable markup should survive rendering, got %q", out)
	}
	if !strings.Contains(string(out), "<h1>") {
		t.Errorf("markdown structure should render, got %q", out)
	}
}
