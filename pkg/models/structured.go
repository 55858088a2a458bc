package models

// StageKind drives contract extraction and prompt framing per stage.
type StageKind string

const (
	KindParse   StageKind = "parse"
	KindSpec    StageKind = "spec"
	KindCode    StageKind = "code"
	KindTest    StageKind = "test"
	KindReview  StageKind = "review"
	KindSmoke   StageKind = "smoke"
	KindDoc     StageKind = "doc"
	KindSignoff StageKind = "signoff"
	KindApprove StageKind = "approve"
)

// Structured output status values.
const (
	ContractStatusPass    = "pass"
	ContractStatusFail    = "fail"
	ContractStatusPartial = "partial"
)

// StructuredOutput is the typed summary extracted from a stage's raw
// output. The base fields are always present; kind-specific reports
// are populated when extraction recognized them.
type StructuredOutput struct {
	Summary    string         `json:"summary"`
	Status     string         `json:"status"`     // pass, fail or partial
	Confidence float64        `json:"confidence"` // 0..1 self-assessment
	Artifacts  []string       `json:"artifacts,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`

	Test   *TestReport   `json:"test,omitempty"`
	Code   *CodeReport   `json:"code,omitempty"`
	Review *ReviewReport `json:"review,omitempty"`
}

// Field resolves a named field for condition evaluation: base fields
// first, then metadata keys.
func (s *StructuredOutput) Field(name string) (any, bool) {
	switch name {
	case "status":
		return s.Status, true
	case "confidence":
		return s.Confidence, true
	case "summary":
		return s.Summary, true
	}
	if s.Test != nil {
		switch name {
		case "tests_passed":
			return s.Test.TestsPassed, true
		case "tests_failed":
			return s.Test.TestsFailed, true
		case "coverage":
			return s.Test.Coverage, true
		}
	}
	if s.Metadata != nil {
		if v, ok := s.Metadata[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// TestReport carries test-stage specifics.
type TestReport struct {
	TestsPassed int     `json:"tests_passed"`
	TestsFailed int     `json:"tests_failed"`
	Coverage    float64 `json:"coverage,omitempty"`
	Framework   string  `json:"framework,omitempty"`
}

// CodeReport carries code-stage specifics.
type CodeReport struct {
	FilesChanged int `json:"files_changed"`
	LinesAdded   int `json:"lines_added,omitempty"`
	LinesRemoved int `json:"lines_removed,omitempty"`
}

// ReviewReport carries review-stage specifics.
type ReviewReport struct {
	Issues   int  `json:"issues"`
	Blocking bool `json:"blocking"`
}
