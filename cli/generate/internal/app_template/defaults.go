package app_template

// ProjectNameKey is the key of the lowercase project name variable.
const ProjectNameKey = "project_name"

// AuthorNameKey is the key of the author name variable.
const AuthorNameKey = "author_name"

// TargetDirKey is the key the target directory is exposed under in follow-up
// messages.
const TargetDirKey = "target_dir"

// ProjectNameRe is the format of the lowercase project name: it is used as a
// package name fragment and a path segment.
const ProjectNameRe = `^[a-z0-9][a-z0-9_-]*$`

// DefaultExclude is a list of name patterns never copied from a template.
var DefaultExclude = []string{
	".git",
	"__pycache__",
	".pytest_cache",
	".venv",
	".mypy_cache",
	"htmlcov",
	".coverage",
	"*.pyc",
	"generate_project.py",
	"template_config.*",
}

// DefaultFollowUpMessage is printed when the manifest has no follow-up text.
const DefaultFollowUpMessage = `Next steps:
   cd {{ .target_dir }}
   make install-dev
   make dev`

// NewDefaultManifest returns the placeholder set of the built-in backend template.
func NewDefaultManifest() TemplateManifest {
	return TemplateManifest{
		Description: "Python backend service",
		Vars: []Placeholder{
			{
				Key:    ProjectNameKey,
				Token:  "butler",
				Prompt: "Project name (lowercase, no spaces)",
				Re:     ProjectNameRe,
			},
			{
				Key:     "project_name_title",
				Token:   "Butler",
				Prompt:  "Project title",
				Default: "{{ title .project_name }}",
			},
			{
				Key:     "project_description",
				Token:   "AI-powered backend service",
				Prompt:  "Project description",
				Default: "A Python backend service",
			},
			{
				Key:     AuthorNameKey,
				Token:   "Butler Team",
				Prompt:  "Author name",
				Default: "Your Team",
			},
			{
				Key:     "author_email",
				Token:   "team@butler.dev",
				Prompt:  "Author email",
				Default: "team@example.com",
				Re:      `^[^@\s]+@[^@\s]+$`,
			},
			{
				Key:     "github_repo",
				Token:   "butler-team/butler",
				Prompt:  "GitHub repo",
				Default: "{{ slug .author_name }}/{{ .project_name }}",
				Re:      `^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`,
			},
			{
				Key:     "database_name",
				Token:   "butler",
				Default: "{{ .project_name }}",
			},
			{
				Key:     "database_user",
				Token:   "butler",
				Default: "{{ .project_name }}",
			},
			{
				Key:     "service_description",
				Token:   "Butler - AI-powered backend service",
				Default: "{{ .project_name_title }} - {{ .project_description }}",
			},
			{
				Key:     "cli_description",
				Token:   "Butler - AI-powered backend service",
				Default: "{{ .project_name_title }} - {{ .project_description }}",
			},
		},
		Exclude:         DefaultExclude,
		FollowUpMessage: DefaultFollowUpMessage,
	}
}
