package coverage

import (
	"fmt"
	"math"

	"github.com/unitcheck/unitcheck/internal/domain"
)

// Rules-of-evidence status thresholds.
const (
	validityPass    = 85
	validityWarn    = 70
	sufficiencyPass = 90
	sufficiencyWarn = 75
)

// Sufficiency blends the two coverage runs: performance-criteria coverage
// dominates, knowledge coverage supplements.
const (
	pcWeight = 0.6
	keWeight = 0.4
)

// Placeholder scores for signals the engine cannot compute from text alone.
// These are constants, not measurements: authenticity and currency would
// need learner identity and unit-release data, the principle scores would
// need assessor-side evidence. A future input layer would replace them.
const (
	placeholderAuthenticity = 100
	placeholderCurrency     = 100
	placeholderFairness     = 95
	placeholderFlexibility  = 90
	placeholderReliability  = 92
)

// Fixed gap copy. PC gaps are critical because an unevidenced performance
// criterion invalidates the assessment; knowledge gaps are improvements.
const (
	pcGapDescription    = "Performance criterion not clearly evidenced in assessment text."
	pcGapRecommendation = "Add an assessment task, scenario or observation checklist item that explicitly addresses this performance criterion."
	keGapDescription    = "Knowledge evidence coverage could be strengthened."
	keGapRecommendation = "Include knowledge questions or written tasks that draw out this evidence requirement."
)

// BuildReport scores one resolved unit definition against assessment text:
// a coverage run over the performance criteria, a second over the knowledge
// evidence, then the weighted sufficiency score, rule and principle status
// blocks, and a capped gap list.
func BuildReport(p *Params, def *domain.UnitDefinition, assessmentText string) domain.UnitReport {
	pcCov := Evaluate(p, assessmentText, pcRequirements(def.ElementsAndPC))
	keCov := Evaluate(p, assessmentText, knowledgeRequirements(def.KnowledgeEvidence))

	validity := pcCov.Percentage
	sufficiency := int(math.Round(math.Min(100,
		float64(pcCov.Percentage)*pcWeight+float64(keCov.Percentage)*keWeight)))

	report := domain.UnitReport{
		Unit: normalizeUnitRef(def),
		Coverage: domain.UnitCoverage{
			PerformanceCriteria: pcCov,
			Knowledge:           keCov,
		},
		RulesOfEvidence: map[string]domain.RuleStatus{
			domain.RuleValidity:     {Status: statusFor(validity, validityPass, validityWarn), Score: validity},
			domain.RuleSufficiency:  {Status: statusFor(sufficiency, sufficiencyPass, sufficiencyWarn), Score: sufficiency},
			domain.RuleAuthenticity: {Status: domain.StatusPass, Score: placeholderAuthenticity},
			domain.RuleCurrency:     {Status: domain.StatusPass, Score: placeholderCurrency},
		},
		PrinciplesOfAssessment: map[string]domain.RuleStatus{
			domain.PrincipleFairness:    {Status: domain.StatusPass, Score: placeholderFairness},
			domain.PrincipleFlexibility: {Status: domain.StatusPass, Score: placeholderFlexibility},
			domain.PrincipleValidity:    {Status: statusFor(validity, validityPass, validityWarn), Score: validity},
			domain.PrincipleReliability: {Status: domain.StatusPass, Score: placeholderReliability},
		},
	}

	// PC gaps first, then knowledge gaps, each capped independently.
	report.Gaps = appendGaps(nil, pcCov.Missing, p.maxGaps(), domain.Gap{
		Type:           domain.GapCritical,
		Priority:       domain.PriorityHigh,
		Description:    pcGapDescription,
		Recommendation: pcGapRecommendation,
	})
	report.Gaps = appendGaps(report.Gaps, keCov.Missing, p.maxGaps(), domain.Gap{
		Type:           domain.GapImprovement,
		Priority:       domain.PriorityMedium,
		Description:    keGapDescription,
		Recommendation: keGapRecommendation,
	})

	return report
}

func statusFor(score, pass, warn int) string {
	switch {
	case score >= pass:
		return domain.StatusPass
	case score >= warn:
		return domain.StatusWarning
	default:
		return domain.StatusFail
	}
}

// normalizeUnitRef tolerates the two payload shapes the registry layer may
// hand over: a nested unit ref or flat code/title fields. Shape ambiguity
// stops here; scoring only ever sees the canonical ref.
func normalizeUnitRef(def *domain.UnitDefinition) domain.UnitRef {
	ref := def.Unit
	if ref.Code == "" {
		ref.Code = def.Code
	}
	if ref.Title == "" {
		ref.Title = def.Title
	}
	if ref.URL == "" {
		ref.URL = def.URL
	}
	return ref
}

// pcRequirements maps elements-and-PC rows to requirements. Rows missing
// either field are data-quality noise, not errors; they are dropped before
// scoring so they never consume a label.
func pcRequirements(items []domain.PCItem) []domain.Requirement {
	reqs := make([]domain.Requirement, 0, len(items))
	for _, item := range items {
		if item.PCCode == "" || item.Description == "" {
			continue
		}
		reqs = append(reqs, domain.Requirement{
			Code: "PC " + item.PCCode,
			Text: item.Description,
		})
	}
	return reqs
}

// knowledgeRequirements labels knowledge evidence K1..Kn by 1-based input
// position.
func knowledgeRequirements(evidence []string) []domain.Requirement {
	reqs := make([]domain.Requirement, 0, len(evidence))
	for i, text := range evidence {
		reqs = append(reqs, domain.Requirement{
			Code: fmt.Sprintf("K%d", i+1),
			Text: text,
		})
	}
	return reqs
}

func appendGaps(gaps []domain.Gap, missing []string, maxGaps int, template domain.Gap) []domain.Gap {
	for i, label := range missing {
		if i >= maxGaps {
			break
		}
		gap := template
		gap.Element = label
		gaps = append(gaps, gap)
	}
	return gaps
}
