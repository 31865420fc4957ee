package tui

import (
	"fmt"
	"strings"

	"github.com/unitcheck/unitcheck/internal/domain"
)

// RenderDefinition renders a resolved unit definition for the `unit`
// command.
func RenderDefinition(def *domain.UnitDefinition) string {
	var b strings.Builder

	code := def.Unit.Code
	if code == "" {
		code = def.Code
	}
	title := def.Unit.Title
	if title == "" {
		title = def.Title
	}

	header := headerStyle.Render(code) + "\n" + dimStyle.Render(title)
	if def.Source != "" {
		header += "\n" + faintStyle.Render("source: "+def.Source)
	}
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n\n")

	if len(def.ElementsAndPC) > 0 {
		b.WriteString("  " + titleStyle.Render("Performance Criteria") + "\n")
		for _, item := range def.ElementsAndPC {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				passStyle.Render(item.PCCode), item.Description))
		}
		b.WriteString("\n")
	}

	if len(def.KnowledgeEvidence) > 0 {
		b.WriteString("  " + titleStyle.Render("Knowledge Evidence") + "\n")
		for i, text := range def.KnowledgeEvidence {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				warnStyle.Render(fmt.Sprintf("K%d", i+1)), text))
		}
	}

	url := def.URL
	if url == "" {
		url = def.Unit.URL
	}
	if url != "" {
		b.WriteString("\n  " + hintStyle.Render(url) + "\n")
	}

	return b.String()
}
