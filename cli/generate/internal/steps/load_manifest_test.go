package steps

import (
	"testing"

	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	var generateCtx generate_ctx.GenerateCtx

	templateCtx := app_template.NewTemplateContext()
	templateCtx.TemplatePath = "testdata/custom_template"
	require.NoError(t, LoadManifest{}.Run(&generateCtx, &templateCtx))
	assert.True(t, templateCtx.IsManifestPresent)
	require.Len(t, templateCtx.Manifest.Vars, 2)
	assert.Equal(t, "Sample Owner", templateCtx.Manifest.Vars[1].Token)
	assert.Equal(t, []string{"*.log"}, templateCtx.Manifest.Exclude)

	templateCtx = app_template.NewTemplateContext()
	templateCtx.TemplatePath = "testdata/template"
	require.NoError(t, LoadManifest{}.Run(&generateCtx, &templateCtx))
	assert.False(t, templateCtx.IsManifestPresent)
	assert.Equal(t, app_template.NewDefaultManifest(), templateCtx.Manifest)
}
