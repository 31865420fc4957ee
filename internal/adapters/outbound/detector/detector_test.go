package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/unitcheck/unitcheck/internal/adapters/outbound/detector"
)

func TestDetect_SingleCode(t *testing.T) {
	codes := detector.New().Detect("This assessment covers MARN008 seamanship skills.")
	assert.Equal(t, []string{"MARN008"}, codes)
}

func TestDetect_FirstSeenOrderDeduplicated(t *testing.T) {
	text := "Covers BSBWHS211 and MARN008. MARN008 is assessed first, then BSBWHS211 again."
	codes := detector.New().Detect(text)
	assert.Equal(t, []string{"BSBWHS211", "MARN008"}, codes)
}

func TestDetect_VariousCodeShapes(t *testing.T) {
	text := "Units: MARN008, CPCCWHS1001, HLTAID011 and TLILIC0003A."
	codes := detector.New().Detect(text)
	assert.Equal(t, []string{"MARN008", "CPCCWHS1001", "HLTAID011", "TLILIC0003A"}, codes)
}

func TestDetect_NoCodes(t *testing.T) {
	assert.Empty(t, detector.New().Detect("An assessment document without any unit references."))
	assert.Empty(t, detector.New().Detect(""))
}

func TestDetect_IgnoresLowercaseAndShortTokens(t *testing.T) {
	codes := detector.New().Detect("see marn008 and AB12 for details")
	assert.Empty(t, codes)
}
