package coverage_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitcheck/unitcheck/internal/domain"
	"github.com/unitcheck/unitcheck/internal/domain/coverage"
)

func marn008() *domain.UnitDefinition {
	return &domain.UnitDefinition{
		Unit: domain.UnitRef{Code: "MARN008", Title: "Apply seamanship skills aboard a vessel up to 12 metres"},
		ElementsAndPC: []domain.PCItem{
			{PCCode: "1.1", Description: "Maintain safe deck practices and housekeeping."},
			{PCCode: "1.2", Description: "Perform mooring and anchoring operations."},
		},
		KnowledgeEvidence: []string{
			"Mooring and anchoring equipment and procedures",
			"Deck safety hazards and controls",
		},
		Source: domain.SourceLive,
	}
}

const fullCoverageText = "Maintain safe deck practices and housekeeping. " +
	"Perform mooring and anchoring operations using correct equipment and procedures. " +
	"Identify deck safety hazards and apply controls."

func TestBuildReport_FullCoverage(t *testing.T) {
	report := coverage.BuildReport(nil, marn008(), fullCoverageText)

	assert.Equal(t, "MARN008", report.Unit.Code)
	assert.Equal(t, 100, report.Coverage.PerformanceCriteria.Percentage)
	assert.Equal(t, 100, report.Coverage.Knowledge.Percentage)

	assert.Equal(t, domain.RuleStatus{Status: domain.StatusPass, Score: 100}, report.RulesOfEvidence[domain.RuleValidity])
	assert.Equal(t, domain.RuleStatus{Status: domain.StatusPass, Score: 100}, report.RulesOfEvidence[domain.RuleSufficiency])
	assert.Empty(t, report.Gaps)
}

func TestBuildReport_PlaceholderSignals(t *testing.T) {
	report := coverage.BuildReport(nil, marn008(), fullCoverageText)

	assert.Equal(t, domain.RuleStatus{Status: domain.StatusPass, Score: 100}, report.RulesOfEvidence[domain.RuleAuthenticity])
	assert.Equal(t, domain.RuleStatus{Status: domain.StatusPass, Score: 100}, report.RulesOfEvidence[domain.RuleCurrency])
	assert.Equal(t, domain.RuleStatus{Status: domain.StatusPass, Score: 95}, report.PrinciplesOfAssessment[domain.PrincipleFairness])
	assert.Equal(t, domain.RuleStatus{Status: domain.StatusPass, Score: 90}, report.PrinciplesOfAssessment[domain.PrincipleFlexibility])
	assert.Equal(t, domain.RuleStatus{Status: domain.StatusPass, Score: 92}, report.PrinciplesOfAssessment[domain.PrincipleReliability])
}

func TestBuildReport_PrincipleValidityMirrorsRule(t *testing.T) {
	report := coverage.BuildReport(nil, marn008(), "unrelated content only")

	assert.Equal(t, report.RulesOfEvidence[domain.RuleValidity], report.PrinciplesOfAssessment[domain.PrincipleValidity])
}

func TestBuildReport_SufficiencyWeighting(t *testing.T) {
	def := &domain.UnitDefinition{
		Unit: domain.UnitRef{Code: "TESTU01", Title: "Test unit"},
		ElementsAndPC: []domain.PCItem{
			{PCCode: "1.1", Description: "mooring operations"},
		},
		KnowledgeEvidence: []string{
			"mooring equipment",
			"celestial navigation almanac corrections",
		},
	}

	// PC covered (100%), one of two knowledge items covered (50%):
	// sufficiency = round(100*0.6 + 50*0.4) = 80 => warning band.
	report := coverage.BuildReport(nil, def, "perform mooring operations with approved equipment")

	suff := report.RulesOfEvidence[domain.RuleSufficiency]
	assert.Equal(t, 80, suff.Score)
	assert.Equal(t, domain.StatusWarning, suff.Status)

	validity := report.RulesOfEvidence[domain.RuleValidity]
	assert.Equal(t, 100, validity.Score)
	assert.Equal(t, domain.StatusPass, validity.Status)
}

func TestBuildReport_FlatPayloadShape(t *testing.T) {
	def := &domain.UnitDefinition{
		Code:  "MARN004",
		Title: "Observe regulations",
		URL:   "https://training.gov.au/Training/Details/MARN004",
		ElementsAndPC: []domain.PCItem{
			{PCCode: "1.1", Description: "Observe collision regulations"},
		},
	}

	report := coverage.BuildReport(nil, def, "observe collision regulations at all times")

	assert.Equal(t, "MARN004", report.Unit.Code)
	assert.Equal(t, "Observe regulations", report.Unit.Title)
	assert.Equal(t, "https://training.gov.au/Training/Details/MARN004", report.Unit.URL)
}

func TestBuildReport_NestedShapeWins(t *testing.T) {
	def := marn008()
	def.Code = "IGNORED"
	def.Title = "ignored flat title"

	report := coverage.BuildReport(nil, def, fullCoverageText)
	assert.Equal(t, "MARN008", report.Unit.Code)
}

func TestBuildReport_MalformedPCItemsDropped(t *testing.T) {
	def := &domain.UnitDefinition{
		Unit: domain.UnitRef{Code: "TESTU02"},
		ElementsAndPC: []domain.PCItem{
			{PCCode: "", Description: "no code"},
			{PCCode: "1.2", Description: ""},
			{PCCode: "1.3", Description: "mooring operations"},
		},
	}

	report := coverage.BuildReport(nil, def, "mooring operations")
	assert.Equal(t, 1, report.Coverage.PerformanceCriteria.Total)
}

func TestBuildReport_KnowledgeLabels(t *testing.T) {
	def := &domain.UnitDefinition{
		Unit: domain.UnitRef{Code: "TESTU03"},
		KnowledgeEvidence: []string{
			"mooring equipment",
			"zzqx nonexistent topic",
		},
	}

	report := coverage.BuildReport(nil, def, "mooring equipment inspection")

	require.Len(t, report.Coverage.Knowledge.Missing, 1)
	assert.Equal(t, "K2", report.Coverage.Knowledge.Missing[0])
}

func TestBuildReport_GapCapAndOrder(t *testing.T) {
	def := &domain.UnitDefinition{Unit: domain.UnitRef{Code: "TESTU04"}}
	for i := 1; i <= 8; i++ {
		def.ElementsAndPC = append(def.ElementsAndPC, domain.PCItem{
			PCCode:      fmt.Sprintf("1.%d", i),
			Description: fmt.Sprintf("unmatchable criterion zq%dxy", i),
		})
	}
	def.KnowledgeEvidence = []string{"unmatchable knowledge zqkxy"}

	report := coverage.BuildReport(nil, def, "completely unrelated assessment text")

	require.Len(t, report.Coverage.PerformanceCriteria.Missing, 8)

	var critical, improvement []domain.Gap
	for _, gap := range report.Gaps {
		switch gap.Type {
		case domain.GapCritical:
			critical = append(critical, gap)
		case domain.GapImprovement:
			improvement = append(improvement, gap)
		}
	}
	assert.Len(t, critical, 5, "critical PC gaps capped at 5")
	assert.Len(t, improvement, 1)

	// All PC gaps precede all knowledge gaps.
	assert.Equal(t, domain.GapCritical, report.Gaps[0].Type)
	assert.Equal(t, domain.GapImprovement, report.Gaps[len(report.Gaps)-1].Type)
	assert.Equal(t, "PC 1.1", report.Gaps[0].Element)
	assert.Equal(t, domain.PriorityHigh, report.Gaps[0].Priority)
	assert.Equal(t, domain.PriorityMedium, report.Gaps[len(report.Gaps)-1].Priority)
}

func TestBuildReport_EmptyDefinition(t *testing.T) {
	def := &domain.UnitDefinition{Unit: domain.UnitRef{Code: "TESTU05"}}

	report := coverage.BuildReport(nil, def, "some assessment text")

	assert.Equal(t, 0, report.Coverage.PerformanceCriteria.Total)
	assert.Equal(t, 0, report.Coverage.PerformanceCriteria.Percentage)
	assert.Equal(t, 0, report.RulesOfEvidence[domain.RuleSufficiency].Score)
	assert.Equal(t, domain.StatusFail, report.RulesOfEvidence[domain.RuleSufficiency].Status)
}
