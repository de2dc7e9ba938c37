package steps

import (
	"strings"

	"github.com/apex/log"
	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
)

// teamSuffix is appended to an author name which does not name a team.
const teamSuffix = " Team"

// DeriveVariables represents a step computing derived variables.
type DeriveVariables struct{}

// Run fills derived placeholders from their defaults. The author name gets the
// team suffix if it has none.
func (DeriveVariables) Run(generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	if author, found := templateCtx.Vars[app_template.AuthorNameKey]; found &&
		author != "" && !strings.Contains(author, "Team") {
		templateCtx.Vars[app_template.AuthorNameKey] = author + teamSuffix
	}

	for _, varInfo := range templateCtx.Manifest.Vars {
		if !varInfo.IsDerived() {
			continue
		}
		if _, found := templateCtx.Vars[varInfo.Key]; found {
			continue
		}
		value, err := defaultValue(generateCtx, templateCtx, varInfo)
		if err != nil {
			return err
		}
		log.Debugf("Derived var: %s = %s", varInfo.Key, value)
		templateCtx.Vars[varInfo.Key] = value
	}
	return nil
}
