package detector

import "regexp"

// unitCodePattern matches national-training-register unit codes: a 3-8
// letter training-package prefix, 2-5 digits, and an optional revision
// letter (e.g. MARN008, CPCCWHS1001, HLTAID011, TLILIC0003A).
var unitCodePattern = regexp.MustCompile(`\b[A-Z]{3,8}[0-9]{2,5}[A-Z]?\b`)

// CodeDetector implements domain.CodeDetector with a pattern scan over raw
// document text. It only produces candidates; resolution decides whether a
// match is a real unit.
type CodeDetector struct{}

func New() *CodeDetector {
	return &CodeDetector{}
}

// Detect returns candidate unit codes deduplicated in first-seen order.
func (d *CodeDetector) Detect(text string) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, match := range unitCodePattern.FindAllString(text, -1) {
		if seen[match] {
			continue
		}
		seen[match] = true
		codes = append(codes, match)
	}
	return codes
}
