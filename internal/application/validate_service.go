package application

import (
	"fmt"
	"time"

	"github.com/unitcheck/unitcheck/internal/domain"
	"github.com/unitcheck/unitcheck/internal/domain/coverage"
)

// ValidateService orchestrates the validation pipeline:
// extract text → detect unit codes → resolve definitions → build reports.
type ValidateService struct {
	extractor domain.TextExtractor
	detector  domain.CodeDetector
	resolver  domain.UnitResolver
	params    *coverage.Params
}

func NewValidateService(
	extractor domain.TextExtractor,
	detector domain.CodeDetector,
	resolver domain.UnitResolver,
	cfg domain.Config,
) *ValidateService {
	return &ValidateService{
		extractor: extractor,
		detector:  detector,
		resolver:  resolver,
		params:    coverage.ParamsFromConfig(cfg),
	}
}

// ValidateFile validates the assessment document at path.
func (s *ValidateService) ValidateFile(path string) (*domain.ValidationResult, error) {
	text, err := s.extractor.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("extracting document text: %w", err)
	}

	result := s.ValidateText(text)
	result.Document = path
	return result, nil
}

// ValidateText validates already-extracted assessment text. It never fails:
// unresolvable units become standardized failure reports and a document
// without codes yields the no-detection sentinel report.
func (s *ValidateService) ValidateText(text string) *domain.ValidationResult {
	codes := s.detector.Detect(text)
	collection := coverage.BuildAll(s.params, text, codes, s.resolver)

	return &domain.ValidationResult{
		DetectedCodes: codes,
		Collection:    collection,
		Timestamp:     time.Now(),
	}
}
