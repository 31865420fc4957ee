package coverage

import (
	"sync"

	"github.com/unitcheck/unitcheck/internal/domain"
)

// Sentinel identity for a run where the document referenced no unit codes.
const (
	NoDetectionCode  = "N/A"
	noDetectionTitle = "No units of competency detected"
)

// FailureTitle is the title of the standardized report substituted for a
// unit whose definition could not be resolved.
const FailureTitle = "No TGA details available"

// BuildAll builds one report per detected code. Codes are resolved
// concurrently through the injected resolver, but the report order always
// matches detectedCodes order; a slow or failing resolution never blocks or
// aborts the other units. Failed resolutions (resolver error, nil payload,
// or a payload flagged not-found) become standardized failure reports. The
// selection index is reset to 0.
func BuildAll(p *Params, assessmentText string, detectedCodes []string, resolver domain.UnitResolver) *domain.ReportCollection {
	if len(detectedCodes) == 0 {
		return &domain.ReportCollection{
			Reports: []domain.UnitReport{noDetectionReport()},
		}
	}

	reports := make([]domain.UnitReport, len(detectedCodes))
	var wg sync.WaitGroup
	for i, code := range detectedCodes {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			def, err := resolver.Resolve(code)
			if err != nil || def == nil || def.NotFound {
				reports[i] = failureReport(code)
				return
			}
			reports[i] = BuildReport(p, def, assessmentText)
		}(i, code)
	}
	wg.Wait()

	return &domain.ReportCollection{Reports: reports, Selected: 0}
}

// failureReport is the standardized substitute for an unresolvable unit:
// zero coverage, failed validity and sufficiency, every uncomputable signal
// downgraded to a warning, and exactly one critical gap naming the code.
func failureReport(code string) domain.UnitReport {
	return domain.UnitReport{
		Unit: domain.UnitRef{Code: code, Title: FailureTitle},
		RulesOfEvidence: map[string]domain.RuleStatus{
			domain.RuleValidity:     {Status: domain.StatusFail, Score: 0},
			domain.RuleSufficiency:  {Status: domain.StatusFail, Score: 0},
			domain.RuleAuthenticity: {Status: domain.StatusWarning, Score: 50},
			domain.RuleCurrency:     {Status: domain.StatusWarning, Score: 50},
		},
		PrinciplesOfAssessment: map[string]domain.RuleStatus{
			domain.PrincipleFairness:    {Status: domain.StatusWarning, Score: 50},
			domain.PrincipleFlexibility: {Status: domain.StatusWarning, Score: 50},
			domain.PrincipleValidity:    {Status: domain.StatusFail, Score: 0},
			domain.PrincipleReliability: {Status: domain.StatusWarning, Score: 50},
		},
		Gaps: []domain.Gap{{
			Type:           domain.GapCritical,
			Element:        code,
			Description:    "Unit details could not be retrieved from training.gov.au or the built-in fallback table.",
			Recommendation: "Check the unit code for typos and retry with registry access available.",
			Priority:       domain.PriorityHigh,
		}},
	}
}

// noDetectionReport is the single report produced when a document mentions
// no unit codes at all. Same fail/warning template as a resolution failure,
// under a sentinel unit identity.
func noDetectionReport() domain.UnitReport {
	report := failureReport(NoDetectionCode)
	report.Unit.Title = noDetectionTitle
	report.Gaps = []domain.Gap{{
		Type:           domain.GapCritical,
		Element:        NoDetectionCode,
		Description:    "No unit of competency codes were detected in the document.",
		Recommendation: "Reference at least one unit code (for example MARN008) in the assessment document.",
		Priority:       domain.PriorityHigh,
	}}
	return report
}
