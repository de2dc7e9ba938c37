package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/butler-team/genproject/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableTemplates(t *testing.T) {
	templatesDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(templatesDir, "worker"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(templatesDir, "excess.txt"), nil, 0o644))

	oldOpts := cliOpts
	cliOpts = &config.CliOpts{Templates: []config.TemplateOpts{
		{Path: templatesDir},
		{Path: filepath.Join(templatesDir, "missing")},
	}}
	t.Cleanup(func() { cliOpts = oldOpts })

	assert.Equal(t, []string{"backend", "worker"}, availableTemplates())
}

func TestNewGenerateCtx(t *testing.T) {
	NewGenerateCmd().ParseFlags([]string{
		"-n", "weather-api",
		"-t", "./tpl/",
		"-s",
		"--var", "author_name=Acme",
		"--var", "github_repo=acme/weather-api",
	})
	oldOpts := cliOpts
	cliOpts = &config.CliOpts{}
	t.Cleanup(func() { cliOpts = oldOpts })

	generateCtx, err := newGenerateCtx([]string{"out"})
	require.NoError(t, err)
	assert.Equal(t, "weather-api", generateCtx.ProjectName)
	assert.Equal(t, "./tpl/", generateCtx.TemplateName)
	assert.True(t, generateCtx.SilentMode)
	assert.Equal(t, []string{"author_name=Acme", "github_repo=acme/weather-api"},
		generateCtx.VarsFromCli)
	assert.Equal(t, "out", generateCtx.DestinationDir)
	assert.NotEmpty(t, generateCtx.WorkDir)
}
