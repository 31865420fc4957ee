package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mcpadapter "github.com/unitcheck/unitcheck/internal/adapters/inbound/mcp"
)

func TestNewUnitcheckMCPServer(t *testing.T) {
	s := mcpadapter.NewUnitcheckMCPServer(true)
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewUnitcheckMCPServer(true)
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"unitcheck_validate_text",
		"unitcheck_lookup_unit",
		"unitcheck_evaluate_coverage",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
