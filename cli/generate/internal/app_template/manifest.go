package app_template

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/butler-team/genproject/cli/util"
	"github.com/mitchellh/mapstructure"
)

// ManifestNames are template manifest file names in lookup order.
var ManifestNames = [...]string{
	"template_config.yaml",
	"template_config.yml",
	"template_config.json",
}

// Placeholder describes a template variable: a token to replace in the template
// and the way its value is obtained.
type Placeholder struct {
	// Key is a variable name to store a value to.
	Key string `mapstructure:"key" yaml:"key"`
	// Token is a literal string in the template files and paths, replaced with
	// the variable value.
	Token string `mapstructure:"token" yaml:"token"`
	// Prompt is an input prompt for the variable. Placeholders without a prompt
	// are derived from Default and never asked.
	Prompt string `mapstructure:"prompt" yaml:"prompt,omitempty"`
	// Default is a default value. It is a text template rendered over the
	// variables collected before this one.
	Default string `mapstructure:"default" yaml:"default,omitempty"`
	// Re is a regular expression for the value validation.
	Re string `mapstructure:"re" yaml:"re,omitempty"`
}

// IsDerived returns true if the placeholder value is computed, not asked.
func (placeholder Placeholder) IsDerived() bool {
	return placeholder.Prompt == ""
}

// TemplateManifest is a manifest for project template.
type TemplateManifest struct {
	// Description is a template description.
	Description string `mapstructure:"description" yaml:"description"`
	// Vars is an ordered set of template placeholders.
	Vars []Placeholder `mapstructure:"vars" yaml:"vars"`
	// Exclude is a list of file name patterns to skip while copying the template.
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`
	// FollowUpMessage is a text to print after successful generation.
	FollowUpMessage string `mapstructure:"follow-up" yaml:"follow-up"`
}

func validateManifest(manifest *TemplateManifest) error {
	keys := make(map[string]bool, len(manifest.Vars))
	for i, varInfo := range manifest.Vars {
		if varInfo.Key == "" {
			return fmt.Errorf("missing variable key in entry #%d", i+1)
		}
		if varInfo.Token == "" {
			return fmt.Errorf("missing token of %q variable", varInfo.Key)
		}
		if keys[varInfo.Key] {
			return fmt.Errorf("variable %q is declared more than once", varInfo.Key)
		}
		keys[varInfo.Key] = true
		if varInfo.IsDerived() && varInfo.Default == "" {
			return fmt.Errorf("variable %q has neither prompt nor default", varInfo.Key)
		}
	}
	// The project name names the default target directory.
	if !keys[ProjectNameKey] {
		return fmt.Errorf("variable %q is not declared", ProjectNameKey)
	}
	for _, pattern := range manifest.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("bad exclude pattern %q: %s", pattern, err)
		}
	}
	return nil
}

// LoadManifest loads template manifest from manifestPath.
func LoadManifest(manifestPath string) (TemplateManifest, error) {
	var templateManifest TemplateManifest
	if _, err := os.Stat(manifestPath); err != nil {
		return templateManifest, fmt.Errorf("failed to get access to manifest file: %s", err)
	}

	rawConfigOpts, err := util.ParseYAML(manifestPath)
	if err != nil {
		return templateManifest, err
	}

	if err := mapstructure.Decode(rawConfigOpts, &templateManifest); err != nil {
		return templateManifest, fmt.Errorf("failed to decode template manifest: %s", err)
	}

	if err := validateManifest(&templateManifest); err != nil {
		return TemplateManifest{}, fmt.Errorf("invalid manifest format: %s", err)
	}

	return templateManifest, nil
}

// FindManifest returns the manifest path in the template directory, or an empty
// string if the template has no manifest.
func FindManifest(templateDir string) string {
	for _, name := range ManifestNames {
		manifestPath := filepath.Join(templateDir, name)
		if util.IsRegularFile(manifestPath) {
			return manifestPath
		}
	}
	return ""
}
