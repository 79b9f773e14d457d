package notation

import (
	"strings"

	"github.com/reoring/notation/i18n"
)

// Candidate describes one accepted input shape.
type Candidate struct {
	Label    string
	Examples []string
}

// String renders the candidate as "<label>, for example <a> or <b>.".
func (c Candidate) String() string {
	b := &strings.Builder{}
	b.WriteString(c.Label)
	if len(c.Examples) > 0 {
		b.WriteString(", ")
		b.WriteString(i18n.T("for_example", nil))
		b.WriteByte(' ')
		b.WriteString(strings.Join(c.Examples, " "+i18n.T("or", nil)+" "))
	}
	b.WriteByte('.')
	return b.String()
}

// Diagnostics accumulates the input shapes converters accept, in visit order.
// A Diagnostics value belongs to a single call and is not safe for concurrent
// mutation.
type Diagnostics struct {
	candidates []Candidate
}

// Describer is implemented by anything able to list the input shapes it accepts.
type Describer interface {
	Describe(d *Diagnostics)
}

// CandidateStep allows examples to be attached to the candidate just added.
type CandidateStep struct {
	d   *Diagnostics
	idx int
}

// Candidate records a new accepted shape.
func (d *Diagnostics) Candidate(label string) CandidateStep {
	d.candidates = append(d.candidates, Candidate{Label: label})
	return CandidateStep{d: d, idx: len(d.candidates) - 1}
}

// Example attaches a usage example to the candidate.
func (s CandidateStep) Example(example string) CandidateStep {
	c := &s.d.candidates[s.idx]
	c.Examples = append(c.Examples, example)
	return s
}

// Len returns the number of recorded candidates.
func (d *Diagnostics) Len() int { return len(d.candidates) }

// Candidates returns a copy of the recorded candidates.
func (d *Diagnostics) Candidates() []Candidate {
	out := make([]Candidate, len(d.candidates))
	for i, c := range d.candidates {
		out[i] = Candidate{Label: c.Label, Examples: append([]string(nil), c.Examples...)}
	}
	return out
}

// Render returns one "  - " prefixed line per candidate.
func (d *Diagnostics) Render() string {
	return renderCandidates(d.candidates)
}

func renderCandidates(cs []Candidate) string {
	lines := make([]string, len(cs))
	for i, c := range cs {
		lines[i] = "  - " + c.String()
	}
	return strings.Join(lines, "\n")
}

// Describe collects the description of every describer into a new Diagnostics.
func Describe(ds ...Describer) *Diagnostics {
	d := &Diagnostics{}
	for _, x := range ds {
		x.Describe(d)
	}
	return d
}
