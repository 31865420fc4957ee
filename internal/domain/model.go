package domain

import "time"

// Requirement is a single thing a unit of competency demands evidence for:
// one performance criterion or one knowledge statement. Identity is the
// code; the text is immutable once fetched from the registry.
type Requirement struct {
	Code string `json:"code,omitempty"`
	Text string `json:"text"`
}

// CoverageResult is the outcome of scoring one requirement list against a
// body of assessment text.
//
// Invariants: 0 <= Assessed <= Total; len(Missing) == Total - Assessed;
// Percentage == round(Assessed*100/Total) when Total > 0, else 0. Missing
// labels keep the relative order of the input requirement list.
type CoverageResult struct {
	Total      int      `json:"total"`
	Assessed   int      `json:"assessed"`
	Percentage int      `json:"percentage"`
	Missing    []string `json:"missing"`
}

// Status values for rule-of-evidence and principle-of-assessment entries.
const (
	StatusPass    = "pass"
	StatusWarning = "warning"
	StatusFail    = "fail"
)

// RuleStatus is one named entry in a rules-of-evidence or
// principles-of-assessment block.
type RuleStatus struct {
	Status string `json:"status"`
	Score  int    `json:"score"`
}

// Rules-of-evidence entry names.
const (
	RuleValidity     = "validity"
	RuleSufficiency  = "sufficiency"
	RuleAuthenticity = "authenticity"
	RuleCurrency     = "currency"
)

// Principles-of-assessment entry names. Validity appears in both blocks
// and mirrors the same score.
const (
	PrincipleFairness    = "fairness"
	PrincipleFlexibility = "flexibility"
	PrincipleValidity    = "validity"
	PrincipleReliability = "reliability"
)

// Gap types and priorities.
const (
	GapCritical    = "critical"
	GapImprovement = "improvement"

	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

// Gap is a flagged requirement judged insufficiently evidenced, with a
// remediation suggestion. Gaps only ever originate from evaluator missing
// lists and live for one report generation.
type Gap struct {
	Type           string `json:"type"`
	Element        string `json:"element"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	Priority       string `json:"priority"`
}

// UnitRef identifies a unit of competency.
type UnitRef struct {
	Code  string `json:"code" yaml:"code"`
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
}

// UnitCoverage holds the two evaluator runs for one unit.
type UnitCoverage struct {
	PerformanceCriteria CoverageResult `json:"performance_criteria"`
	Knowledge           CoverageResult `json:"knowledge"`
}

// UnitReport is the full sufficiency judgment for one unit. Built fresh per
// validation run and never mutated after construction.
type UnitReport struct {
	Unit                   UnitRef               `json:"unit"`
	Coverage               UnitCoverage          `json:"coverage"`
	RulesOfEvidence        map[string]RuleStatus `json:"rules_of_evidence"`
	PrinciplesOfAssessment map[string]RuleStatus `json:"principles_of_assessment"`
	Gaps                   []Gap                 `json:"gaps"`
}

// ReportCollection is the ordered set of unit reports for one validation
// run, one per detected code in detection order, plus the active selection
// index (always valid while Reports is non-empty).
type ReportCollection struct {
	Reports  []UnitReport `json:"reports"`
	Selected int          `json:"selected"`
}

// MinSufficiency returns the lowest sufficiency score across all reports,
// or 0 for an empty collection. Used for CI gating.
func (c *ReportCollection) MinSufficiency() int {
	if c == nil || len(c.Reports) == 0 {
		return 0
	}
	minScore := 100
	for _, r := range c.Reports {
		if s := r.RulesOfEvidence[RuleSufficiency].Score; s < minScore {
			minScore = s
		}
	}
	return minScore
}

// PCItem is one row of a unit's elements-and-performance-criteria table.
type PCItem struct {
	PCCode      string `json:"pcCode" yaml:"pc_code"`
	Description string `json:"description" yaml:"description"`
}

// Definition source tags. Passed through untouched; nothing in scoring
// branches on them.
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// UnitDefinition is the payload a unit-definition provider returns for a
// resolved code. Two upstream shapes are tolerated: the nested Unit ref or
// the flat Code/Title fields; report building normalizes them.
type UnitDefinition struct {
	Unit              UnitRef  `json:"unit" yaml:"unit,omitempty"`
	Code              string   `json:"code,omitempty" yaml:"code,omitempty"`
	Title             string   `json:"title,omitempty" yaml:"title,omitempty"`
	URL               string   `json:"url,omitempty" yaml:"url,omitempty"`
	ElementsAndPC     []PCItem `json:"elementsAndPC" yaml:"elements_and_pc"`
	KnowledgeEvidence []string `json:"knowledgeEvidence" yaml:"knowledge_evidence"`
	Source            string   `json:"source" yaml:"-"`
	NotFound          bool     `json:"notFound,omitempty" yaml:"-"`
}

// ValidationResult is one full validation run over a document.
type ValidationResult struct {
	Document      string            `json:"document,omitempty"`
	DetectedCodes []string          `json:"detected_codes"`
	Collection    *ReportCollection `json:"collection"`
	Timestamp     time.Time         `json:"timestamp"`
	CommitHash    string            `json:"commit_hash,omitempty"`
}

// Display thresholds for the per-unit verdict line. These are rendering
// thresholds only; scoring never consults them.
const (
	DisplaySufficiencyGood = 90
	DisplayValidityGood    = 85
)

// VerdictFor summarizes a report for display.
func VerdictFor(report UnitReport) string {
	validity := report.RulesOfEvidence[RuleValidity].Score
	sufficiency := report.RulesOfEvidence[RuleSufficiency].Score
	switch {
	case sufficiency >= DisplaySufficiencyGood && validity >= DisplayValidityGood:
		return "Meets evidence requirements"
	case sufficiency >= 75 || validity >= 70:
		return "Partial coverage, needs strengthening"
	default:
		return "Significant gaps"
	}
}
