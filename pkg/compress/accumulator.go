package compress

// Context prefixes marking the compression level of an injected prior
// output. The platform's prompt conventions use the CJK markers.
const (
	briefPrefix   = "[摘要] " // L1 bulleted brief
	outlinePrefix = "[概要] " // L0 one-liner
)

// Accumulator collects stage compression levels in completion order
// and renders the sliding-window prior context for the next stage.
// Not safe for concurrent use; each task run owns one accumulator.
type Accumulator struct {
	entries []StageLevels
	byName  map[string]int
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{byName: make(map[string]int)}
}

// Append records a completed stage's levels. A stage re-completing
// (gate retry, graph re-entry) replaces its previous entry in place,
// keeping the original position in the window.
func (a *Accumulator) Append(stage string, lv Levels) {
	if i, ok := a.byName[stage]; ok {
		a.entries[i] = StageLevels{Stage: stage, Levels: lv}
		return
	}
	a.byName[stage] = len(a.entries)
	a.entries = append(a.entries, StageLevels{Stage: stage, Levels: lv})
}

// Len returns the number of accumulated stages.
func (a *Accumulator) Len() int { return len(a.entries) }

// Entry is one rendered prior-context element.
type Entry struct {
	Stage string
	Text  string
}

// PriorContext renders the context window for the stage at index i:
// one entry per completed stage j < i, with the compression level
// picked by distance (0 → full L2, 1 → L1 brief, ≥2 → L0 one-liner).
// Stages named in fullContext always pass their full L2 text.
func (a *Accumulator) PriorContext(i int, fullContext []string) []Entry {
	if i > len(a.entries) {
		i = len(a.entries)
	}
	full := make(map[string]bool, len(fullContext))
	for _, name := range fullContext {
		full[name] = true
	}

	out := make([]Entry, 0, i)
	for j := 0; j < i; j++ {
		e := a.entries[j]
		distance := i - j - 1
		var text string
		switch {
		case full[e.Stage] || distance == 0:
			text = e.Levels.L2
		case distance == 1:
			text = briefPrefix + e.Levels.L1
		default:
			text = outlinePrefix + e.Levels.L0
		}
		out = append(out, Entry{Stage: e.Stage, Text: text})
	}
	return out
}
