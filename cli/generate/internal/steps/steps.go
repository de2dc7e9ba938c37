// Package steps provides a set of handlers for generate command chain of responsibility.
package steps

import (
	"io"
	"os"

	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
)

// Step is an interface for single step in generate chain.
type Step interface {
	Run(ctx *generate_ctx.GenerateCtx, templateCtx *app_template.TemplateCtx) error
}

func stdout(ctx *generate_ctx.GenerateCtx) io.Writer {
	if ctx.Stdout != nil {
		return ctx.Stdout
	}
	return os.Stdout
}

func stdin(ctx *generate_ctx.GenerateCtx) io.Reader {
	if ctx.Stdin != nil {
		return ctx.Stdin
	}
	return os.Stdin
}
