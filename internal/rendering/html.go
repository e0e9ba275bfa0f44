// Package rendering maps a validated CvData into a print-quality HTML layout.
// The template is data-to-view only; all content decisions happen upstream.
package rendering

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/cv-optimizer/internal/types"
)

//go:embed resume.html.tmpl
var resumeTemplate string

var tmpl = template.Must(template.New("resume").Funcs(template.FuncMap{
	"joinSkills": func(skills []string) string {
		return strings.Join(skills, " · ")
	},
}).Parse(resumeTemplate))

// RenderHTML renders the structured resume as a standalone HTML document.
func RenderHTML(cv *types.CvData) (string, error) {
	if cv == nil {
		return "", fmt.Errorf("cv data is nil")
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, cv); err != nil {
		return "", fmt.Errorf("failed to render resume template: %w", err)
	}
	return sb.String(), nil
}
