package domain

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var testClassTemplate = template.Must(template.ParseFS(templateFS, "templates/test_class.tmpl"))

// PromptData holds the values injected into the test class prompt.
type PromptData struct {
	Content string
}

// RenderPrompt renders the fixed test class prompt around a source file's content.
func RenderPrompt(data PromptData) (string, error) {
	var buf bytes.Buffer
	if err := testClassTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing test class template: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
