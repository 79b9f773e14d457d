package notation_test

import (
	"strings"
	"testing"

	"github.com/reoring/notation"
	"github.com/reoring/notation/i18n"
)

func TestDiagnostics_RenderOrderAndExamples(t *testing.T) {
	d := &notation.Diagnostics{}
	d.Candidate("A String or CharSequence path").Example("'src/main/java'").Example("'/usr/include'")
	d.Candidate("Instances of PublishArtifact")

	want := "  - A String or CharSequence path, for example 'src/main/java' or '/usr/include'.\n" +
		"  - Instances of PublishArtifact."
	if got := d.Render(); got != want {
		t.Fatalf("unexpected render:\n%s", got)
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 candidates, got %d", d.Len())
	}
}

func TestDiagnostics_CandidatesIsACopy(t *testing.T) {
	d := &notation.Diagnostics{}
	d.Candidate("Maps").Example("[a: 1]")
	cs := d.Candidates()
	cs[0].Label = "changed"
	cs[0].Examples[0] = "changed"
	if !strings.HasPrefix(d.Render(), "  - Maps, for example [a: 1]") {
		t.Fatalf("diagnostics mutated through copy: %q", d.Render())
	}
}

func TestDiagnostics_Localized(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	d := &notation.Diagnostics{}
	d.Candidate("Maps").Example("[a: 1]")
	if strings.Contains(d.Render(), "for example") {
		t.Fatalf("expected localized rendering, got %q", d.Render())
	}
}
