package coverage_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unitcheck/unitcheck/internal/domain"
	"github.com/unitcheck/unitcheck/internal/domain/coverage"
)

// twentyWords is a needle of 20 distinct non-stop-word tokens, used to probe
// the threshold boundary precisely.
var twentyWords = []string{
	"alpha", "bravo", "charlie", "delta", "echo",
	"foxtrot", "golf", "hotel", "india", "juliett",
	"kilo", "lima", "mike", "november", "oscar",
	"papa", "quebec", "romeo", "sierra", "tango",
}

func TestEvaluate_ConcreteScenario(t *testing.T) {
	text := "Maintain safe deck practices. Perform mooring operations."
	reqs := []domain.Requirement{
		{Code: "PC 1.1", Text: "Maintain safe deck practices and housekeeping."},
		{Code: "PC 1.2", Text: "Perform mooring and anchoring operations."},
	}

	result := coverage.Evaluate(nil, text, reqs)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Assessed)
	assert.Equal(t, 100, result.Percentage)
	assert.Empty(t, result.Missing)
}

func TestEvaluate_ThresholdBoundary(t *testing.T) {
	req := []domain.Requirement{{Code: "PC 1.1", Text: strings.Join(twentyWords, " ")}}

	// 7 of 20 tokens present: ratio 0.35, exactly on the threshold => covered.
	covered := coverage.Evaluate(nil, strings.Join(twentyWords[:7], " "), req)
	assert.Equal(t, 1, covered.Assessed)
	assert.Empty(t, covered.Missing)

	// 6 of 20 tokens present: ratio 0.30 => missing.
	missed := coverage.Evaluate(nil, strings.Join(twentyWords[:6], " "), req)
	assert.Equal(t, 0, missed.Assessed)
	assert.Equal(t, []string{"PC 1.1"}, missed.Missing)
}

func TestEvaluate_NeedleDuplicatesCountEachTime(t *testing.T) {
	// "safety safety safety procedures" is a 4-token needle. With only
	// "procedures" in the text the ratio is 1/4, below threshold; if the
	// needle were deduplicated it would be 1/2 and covered.
	reqs := []domain.Requirement{{Code: "PC 2.1", Text: "safety safety safety procedures"}}

	result := coverage.Evaluate(nil, "workplace procedures manual", reqs)
	assert.Equal(t, 0, result.Assessed)

	result = coverage.Evaluate(nil, "safety briefing", reqs)
	assert.Equal(t, 1, result.Assessed, "3 of 4 tokens present should cover")
}

func TestEvaluate_EmptyRequirementSkipped(t *testing.T) {
	reqs := []domain.Requirement{
		{Code: "PC 1.1", Text: ""},
		{Code: "PC 1.2", Text: "the and of"}, // all stop words
		{Code: "PC 1.3", Text: "mooring operations"},
	}

	result := coverage.Evaluate(nil, "perform mooring operations", reqs)

	assert.Equal(t, 1, result.Total, "empty-token requirements count toward neither total nor missing")
	assert.Equal(t, 1, result.Assessed)
	assert.Empty(t, result.Missing)
}

func TestEvaluate_MissingLabelFallsBackToText(t *testing.T) {
	long := strings.Repeat("x", 59) + "yz-tail-beyond-sixty-characters"
	reqs := []domain.Requirement{
		{Text: "mooring operations"},
		{Text: long},
	}

	result := coverage.Evaluate(nil, "totally unrelated content", reqs)

	require.Len(t, result.Missing, 2)
	assert.Equal(t, "mooring operations", result.Missing[0])
	assert.Equal(t, long[:60], result.Missing[1])
	assert.Len(t, result.Missing[1], 60)
}

func TestEvaluate_PercentageRounding(t *testing.T) {
	reqs := []domain.Requirement{
		{Code: "1", Text: "mooring"},
		{Code: "2", Text: "anchoring"},
		{Code: "3", Text: "navigation"},
	}

	// 1 of 3 => round(33.33) = 33
	result := coverage.Evaluate(nil, "mooring", reqs)
	assert.Equal(t, 33, result.Percentage)

	// 2 of 3 => round(66.67) = 67
	result = coverage.Evaluate(nil, "mooring anchoring", reqs)
	assert.Equal(t, 67, result.Percentage)
}

func TestEvaluate_EmptyInputs(t *testing.T) {
	result := coverage.Evaluate(nil, "", nil)
	assert.Equal(t, domain.CoverageResult{}, result)

	result = coverage.Evaluate(nil, "", []domain.Requirement{{Code: "1", Text: "mooring"}})
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 0, result.Assessed)
	assert.Equal(t, 0, result.Percentage)
}

func TestEvaluate_Invariants(t *testing.T) {
	texts := []string{"", "mooring", "mooring anchoring navigation deck safety"}
	reqs := []domain.Requirement{
		{Code: "1", Text: "mooring operations"},
		{Code: "2", Text: "deck safety procedures"},
		{Code: "3", Text: ""},
		{Code: "4", Text: "emergency response drill"},
	}

	for _, text := range texts {
		result := coverage.Evaluate(nil, text, reqs)
		assert.GreaterOrEqual(t, result.Assessed, 0)
		assert.LessOrEqual(t, result.Assessed, result.Total)
		assert.Len(t, result.Missing, result.Total-result.Assessed)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	text := "Maintain safe deck practices during mooring."
	reqs := []domain.Requirement{
		{Code: "PC 1.1", Text: "Maintain safe deck practices."},
		{Code: "PC 1.2", Text: "Perform anchoring operations."},
	}

	first := coverage.Evaluate(nil, text, reqs)
	second := coverage.Evaluate(nil, text, reqs)
	assert.Equal(t, first, second)
}

func TestEvaluate_CustomThreshold(t *testing.T) {
	req := []domain.Requirement{{Code: "PC 1.1", Text: strings.Join(twentyWords, " ")}}
	text := strings.Join(twentyWords[:10], " ") // ratio 0.50

	strict := &coverage.Params{Threshold: 0.75}
	assert.Equal(t, 0, coverage.Evaluate(strict, text, req).Assessed)

	lax := &coverage.Params{Threshold: 0.5}
	assert.Equal(t, 1, coverage.Evaluate(lax, text, req).Assessed)
}

func TestEvaluate_ExtraStopWords(t *testing.T) {
	params := &coverage.Params{ExtraStopWords: []string{"vessel"}}
	reqs := []domain.Requirement{{Code: "PC 1.1", Text: "vessel vessel vessel"}}

	// With "vessel" stopped the needle is empty and the requirement is
	// excluded entirely.
	result := coverage.Evaluate(params, "anything", reqs)
	assert.Equal(t, 0, result.Total)
}
