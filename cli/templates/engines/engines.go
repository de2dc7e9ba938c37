// Package engines provides template engine interface and implementations.
package engines

import "github.com/butler-team/genproject/cli/templates/substitution"

// TemplateEngine is an interface to support to use for project template instantiation.
type TemplateEngine interface {
	// RenderFile applies data to the template from srcPath.
	// Instantiated template is saved as dstPath.
	RenderFile(srcPath string, dstPath string, data interface{}) error

	// RenderText applies data to the template text. Returns instantiated text.
	RenderText(in string, data interface{}) (string, error)
}

// NewDefaultEngine creates and returns default template engine.
func NewDefaultEngine() TemplateEngine {
	return goTextEngine{}
}

// NewLiteralEngine creates an engine replacing placeholder tokens of the list.
func NewLiteralEngine(list *substitution.List) TemplateEngine {
	return literalEngine{list: list}
}
