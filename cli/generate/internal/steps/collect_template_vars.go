package steps

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	generate_ctx "github.com/butler-team/genproject/cli/generate/context"
	"github.com/butler-team/genproject/cli/generate/internal/app_template"
	"github.com/butler-team/genproject/cli/util"
)

// Reader interface is used from reading user input.
type Reader interface {
	readLine() (string, error)
}

// consoleReader implements reading from console.
type consoleReader struct {
	stdinReader *bufio.Reader
}

// readLine reads line from console. New-line symbol is trimmed.
func (consoleReader consoleReader) readLine() (string, error) {
	input, err := consoleReader.stdinReader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", fmt.Errorf("error getting user input: %s", err)
	}
	return strings.TrimRight(input, "\r\n"), nil
}

// NewConsoleReader create new console reader.
func NewConsoleReader(reader io.Reader) consoleReader {
	return consoleReader{bufio.NewReader(reader)}
}

// CollectTemplateVarsFromUser represents interactive variables collecting step.
type CollectTemplateVarsFromUser struct {
	// Reader is used to get user input. Generate context stdin is read if nil.
	Reader Reader
}

// defaultValue returns rendered default value of the placeholder. Defaults from
// genproject config take precedence over the template ones.
func defaultValue(generateCtx *generate_ctx.GenerateCtx, templateCtx *app_template.TemplateCtx,
	varInfo app_template.Placeholder,
) (string, error) {
	defaultTemplate := varInfo.Default
	if generateCtx.CliOpts != nil {
		if configured, found := generateCtx.CliOpts.Defaults[varInfo.Key]; found {
			defaultTemplate = configured
		}
	}
	if defaultTemplate == "" {
		return "", nil
	}
	value, err := templateCtx.Engine.RenderText(defaultTemplate, templateCtx.Vars)
	if err != nil {
		return "", fmt.Errorf("failed to render default value of %q: %s", varInfo.Key, err)
	}
	return strings.TrimSpace(value), nil
}

// matchFormat checks value against the placeholder regular expression.
func matchFormat(varInfo app_template.Placeholder, value string) (bool, error) {
	if varInfo.Re == "" {
		return true, nil
	}
	matched, err := regexp.MatchString(varInfo.Re, value)
	if err != nil {
		return false, fmt.Errorf("failed to validate %q: %s", varInfo.Key, err)
	}
	return matched, nil
}

// Run collects template variables from user in interactive mode. In silent mode
// default values are used.
func (collectTemplateVarsFromUser CollectTemplateVarsFromUser) Run(
	generateCtx *generate_ctx.GenerateCtx,
	templateCtx *app_template.TemplateCtx,
) error {
	reader := collectTemplateVarsFromUser.Reader
	if reader == nil {
		reader = NewConsoleReader(stdin(generateCtx))
	}
	out := stdout(generateCtx)

	for _, varInfo := range templateCtx.Manifest.Vars {
		if varInfo.IsDerived() {
			continue
		}

		// Check if var is present, and validate it.
		if existingValue, found := templateCtx.Vars[varInfo.Key]; found {
			matched, err := matchFormat(varInfo, existingValue)
			if err != nil {
				return err
			}
			if matched {
				continue
			}
			if generateCtx.SilentMode {
				return util.NewValidationError(varInfo.Key,
					"%q does not match %s", existingValue, varInfo.Re)
			}
			fmt.Fprintf(out, "Invalid format of %s variable.\n", varInfo.Key)
		}

		defaultVal, err := defaultValue(generateCtx, templateCtx, varInfo)
		if err != nil {
			return err
		}

		var input string
		for {
			if generateCtx.SilentMode {
				if defaultVal == "" {
					return util.NewValidationError(varInfo.Key, "value is not set")
				}
				input = defaultVal
			} else {
				if defaultVal == "" {
					fmt.Fprintf(out, "%s: ", varInfo.Prompt)
				} else {
					fmt.Fprintf(out, "%s (default: %s): ", varInfo.Prompt, defaultVal)
				}
				if input, err = reader.readLine(); err != nil {
					return fmt.Errorf("error reading user input: %s", err)
				}
				input = strings.TrimSpace(input)
				if input == "" {
					input = defaultVal
				}
				if input == "" {
					fmt.Fprintln(out, "Please enter a value.")
					continue
				}
			}

			matched, err := matchFormat(varInfo, input)
			if err != nil {
				return err
			}
			if matched {
				break
			}
			if generateCtx.SilentMode {
				return util.NewValidationError(varInfo.Key,
					"%q does not match %s", input, varInfo.Re)
			}
			fmt.Fprintln(out, "Invalid format. Try again.")
		}
		templateCtx.Vars[varInfo.Key] = input
	}

	return nil
}
