package steps

import (
	"fmt"
	"os"
	"testing"

	"github.com/otiai10/copy"
	"github.com/stretchr/testify/require"
)

type mockReader struct {
	lines []string
}

func (reader *mockReader) readLine() (string, error) {
	linesLeft := len(reader.lines)
	if linesLeft <= 0 {
		return "", fmt.Errorf("user input is empty")
	}

	line := reader.lines[0]
	reader.lines = reader.lines[1:]
	return line, nil
}

// copyTestTemplate copies a testdata template into a temporary directory.
func copyTestTemplate(t *testing.T, name string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, copy.Copy("testdata/"+name, dir))
	return dir
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// validVars returns a complete variable set of the built-in template.
func validVars() map[string]string {
	return map[string]string{
		"project_name":        "weather-api",
		"project_name_title":  "Weather API",
		"project_description": "Weather forecasts",
		"author_name":         "Weather API Team",
		"author_email":        "dev@acme.io",
		"github_repo":         "acme/weather-api",
		"database_name":       "weather-api",
		"database_user":       "weather-api",
		"service_description": "Weather API - Weather forecasts",
		"cli_description":     "Weather API - Weather forecasts",
	}
}
