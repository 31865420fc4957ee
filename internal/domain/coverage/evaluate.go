package coverage

import (
	"math"
	"strings"

	"github.com/unitcheck/unitcheck/internal/domain"
)

// DefaultThreshold is the minimum fraction of a requirement's tokens that
// must appear in the assessment text for the requirement to count as
// covered. Override via Params.Threshold.
const DefaultThreshold = 0.35

// DefaultMaxGaps caps how many gaps a unit report lists per category.
const DefaultMaxGaps = 5

// missingLabelLen truncates the text used as a missing label when a
// requirement has no code.
const missingLabelLen = 60

// Params tunes the coverage engine. A nil *Params (or the zero value)
// means defaults throughout.
type Params struct {
	Threshold          float64
	MaxGapsPerCategory int
	ExtraStopWords     []string
}

// ParamsFromConfig maps user configuration onto engine parameters.
func ParamsFromConfig(cfg domain.Config) *Params {
	return &Params{
		Threshold:          cfg.CoverageThreshold,
		MaxGapsPerCategory: cfg.MaxGapsPerCategory,
		ExtraStopWords:     cfg.ExtraStopWords,
	}
}

func (p *Params) threshold() float64 {
	if p == nil || p.Threshold <= 0 {
		return DefaultThreshold
	}
	return p.Threshold
}

func (p *Params) maxGaps() int {
	if p == nil || p.MaxGapsPerCategory <= 0 {
		return DefaultMaxGaps
	}
	return p.MaxGapsPerCategory
}

func (p *Params) extraStops() map[string]struct{} {
	if p == nil || len(p.ExtraStopWords) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(p.ExtraStopWords))
	for _, w := range p.ExtraStopWords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// Evaluate scores one requirement list (performance criteria or knowledge
// evidence) against a body of assessment text.
//
// A requirement counts as covered when at least Threshold of its tokens
// appear anywhere in the text's token set; duplicate tokens in the
// requirement count once each occurrence. Requirements whose tokenized form
// is empty (blank or all stop words) are excluded from Total and Missing
// alike. Pure function: identical inputs always yield identical results,
// and degenerate input degrades to a zero-value result rather than an
// error.
func Evaluate(p *Params, assessmentText string, reqs []domain.Requirement) domain.CoverageResult {
	haystack := Tokenize(assessmentText)
	extra := p.extraStops()
	threshold := p.threshold()

	var result domain.CoverageResult
	for _, req := range reqs {
		needle := dropExtraStops(TokenList(req.Text), extra)
		if len(needle) == 0 {
			continue
		}
		result.Total++

		present := 0
		for _, tok := range needle {
			if _, ok := haystack[tok]; ok {
				present++
			}
		}
		if float64(present)/float64(len(needle)) >= threshold {
			result.Assessed++
			continue
		}
		result.Missing = append(result.Missing, missingLabel(req))
	}

	if result.Total > 0 {
		result.Percentage = int(math.Round(float64(result.Assessed) * 100 / float64(result.Total)))
	}
	return result
}

// missingLabel prefers the requirement code; otherwise the leading slice of
// its text.
func missingLabel(req domain.Requirement) string {
	if req.Code != "" {
		return req.Code
	}
	if len(req.Text) > missingLabelLen {
		return req.Text[:missingLabelLen]
	}
	return req.Text
}

func dropExtraStops(tokens []string, extra map[string]struct{}) []string {
	if len(extra) == 0 {
		return tokens
	}
	filtered := tokens[:0]
	for _, tok := range tokens {
		if _, stop := extra[tok]; !stop {
			filtered = append(filtered, tok)
		}
	}
	return filtered
}
