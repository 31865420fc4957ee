package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/unitcheck/unitcheck/internal/adapters/outbound/cache"
	"github.com/unitcheck/unitcheck/internal/adapters/outbound/detector"
	"github.com/unitcheck/unitcheck/internal/adapters/outbound/extractor"
	"github.com/unitcheck/unitcheck/internal/adapters/outbound/registry"
	"github.com/unitcheck/unitcheck/internal/application"
	"github.com/unitcheck/unitcheck/internal/domain"
	"github.com/unitcheck/unitcheck/internal/domain/coverage"
)

// registerTools registers all unitcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, offline bool) {
	// 1. unitcheck_validate_text
	s.AddTool(
		mcplib.NewTool("unitcheck_validate_text",
			mcplib.WithDescription("Validate assessment text against every unit of competency it references; returns the full report collection as JSON"),
			mcplib.WithString("text",
				mcplib.Required(),
				mcplib.Description("Plain assessment text to validate"),
			),
		),
		handleValidateText(offline),
	)

	// 2. unitcheck_lookup_unit
	s.AddTool(
		mcplib.NewTool("unitcheck_lookup_unit",
			mcplib.WithDescription("Resolve a unit code to its title, performance criteria and knowledge evidence"),
			mcplib.WithString("code",
				mcplib.Required(),
				mcplib.Description("Unit of competency code, e.g. MARN008"),
			),
		),
		handleLookupUnit(offline),
	)

	// 3. unitcheck_evaluate_coverage
	s.AddTool(
		mcplib.NewTool("unitcheck_evaluate_coverage",
			mcplib.WithDescription("Score arbitrary requirements against assessment text; returns a coverage result as JSON"),
			mcplib.WithString("text",
				mcplib.Required(),
				mcplib.Description("Plain assessment text"),
			),
			mcplib.WithString("requirements",
				mcplib.Required(),
				mcplib.Description(`JSON array of requirements, e.g. [{"code":"PC 1.1","text":"Maintain safe deck practices"}]`),
			),
		),
		handleEvaluateCoverage(),
	)
}

// newService wires the default adapter chain used by the MCP tools.
func newService(offline bool) (*application.ValidateService, domain.UnitResolver, error) {
	cfg := domain.DefaultConfig()
	cfg.Registry.Offline = offline

	fallback, err := registry.NewFallbackTable()
	if err != nil {
		return nil, nil, fmt.Errorf("loading fallback unit table: %w", err)
	}
	client := registry.NewClient(cfg.Registry.BaseURL, time.Duration(cfg.Registry.TimeoutSeconds)*time.Second)
	resolver := registry.NewChainResolver(cache.New(), client, fallback, cfg.Registry.Offline)

	return application.NewValidateService(extractor.New(), detector.New(), resolver, cfg), resolver, nil
}

func handleValidateText(offline bool) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc, _, err := newService(offline)
		if err != nil {
			return errorResult(fmt.Sprintf("validation setup failed: %v", err)), nil
		}
		return jsonResult(svc.ValidateText(text))
	}
}

func handleLookupUnit(offline bool) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		code, err := request.RequireString("code")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		_, resolver, err := newService(offline)
		if err != nil {
			return errorResult(fmt.Sprintf("lookup setup failed: %v", err)), nil
		}

		def, err := resolver.Resolve(code)
		if err != nil {
			return errorResult(fmt.Sprintf("resolving %s: %v", code, err)), nil
		}
		return jsonResult(def)
	}
}

func handleEvaluateCoverage() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		rawReqs, err := request.RequireString("requirements")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var reqs []domain.Requirement
		if err := json.Unmarshal([]byte(rawReqs), &reqs); err != nil {
			return errorResult(fmt.Sprintf("parsing requirements: %v", err)), nil
		}

		return jsonResult(coverage.Evaluate(nil, text, reqs))
	}
}

// jsonResult marshals v as an indented JSON text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
