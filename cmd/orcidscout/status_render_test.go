package main

import (
	"strings"
	"testing"

	"orcidscout/internal/lookup"
)

func TestRenderStatusLine(t *testing.T) {
	line := renderStatusLine("Yes", statusOK, "2 authors", false)
	if line != "  Yes:                 [OK] 2 authors" {
		t.Fatalf("unexpected line %q", line)
	}
	colored := renderStatusLine("Error", statusError, "", true)
	if !strings.HasPrefix(colored, ansiRed) || !strings.HasSuffix(colored, ansiReset) {
		t.Fatalf("expected red line, got %q", colored)
	}
}

func TestRenderSummarySkipsEmptyStatuses(t *testing.T) {
	lines := renderSummary([]lookup.ResultRow{
		{Affiliation: lookup.StatusYes},
		{Affiliation: lookup.StatusYes},
		{Affiliation: lookup.StatusError},
	}, false)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", lines)
	}
	if !strings.Contains(lines[0], "Yes:") || !strings.Contains(lines[0], "2 authors") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "[ERROR] 1 author") {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}

func TestRenderResultsTable(t *testing.T) {
	out := renderResultsTable([]lookup.ResultRow{
		{AuthorID: "123", Name: "Jane Doe", RegistryID: "https://orcid.org/0000-0001-2345-6789", Affiliation: lookup.StatusYes},
		{AuthorID: "124", Name: "Error 429"},
	}, false)
	for _, want := range []string{"AUTHOR ID", "AFFILIATED", "Jane Doe", "Not found", "Not checked"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}
