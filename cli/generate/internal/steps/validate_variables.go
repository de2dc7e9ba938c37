package steps

import (
	"errors"
	"regexp"

	"github.com/apex/log"
	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
	"github.com/butler-team/genproject/cli/templates/substitution"
	"github.com/butler-team/genproject/cli/util"
)

var projectNameRe = regexp.MustCompile(app_template.ProjectNameRe)

// ValidateVariables represents variables validation step.
type ValidateVariables struct{}

// Run checks every placeholder has a value and builds the substitution list.
// Nothing is written before this step succeeds.
func (ValidateVariables) Run(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	pairs := make([]substitution.Pair, 0, len(templateCtx.Manifest.Vars))
	for _, varInfo := range templateCtx.Manifest.Vars {
		value := templateCtx.Vars[varInfo.Key]
		if value == "" {
			return util.NewValidationError(varInfo.Key, "value is not set")
		}
		if varInfo.Key == app_template.ProjectNameKey && !projectNameRe.MatchString(value) {
			return util.NewValidationError(varInfo.Key,
				"%q must contain only lowercase letters, digits, '-' and '_'", value)
		}
		pairs = append(pairs, substitution.Pair{
			Key:   varInfo.Key,
			Token: varInfo.Token,
			Value: value,
		})
	}

	list, err := substitution.NewList(pairs)
	if err != nil {
		var conflictErr *substitution.ConflictError
		if errors.As(err, &conflictErr) {
			return util.NewValidationError(conflictErr.Second.Key, "%s", err)
		}
		return err
	}
	for _, pair := range list.Pairs() {
		log.Debugf("Replacing %q with %q", pair.Token, pair.Value)
	}
	templateCtx.Substitutions = list
	return nil
}
