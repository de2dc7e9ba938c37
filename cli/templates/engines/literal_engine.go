package engines

import (
	"os"

	"github.com/butler-team/genproject/cli/templates/substitution"
	"github.com/butler-team/genproject/cli/util"
)

// literalEngine replaces placeholder tokens with their values. Template data is
// ignored, the substitution list is fixed at creation.
type literalEngine struct {
	list *substitution.List
}

// RenderFile writes srcPath content with all tokens replaced to dstPath. Files which
// do not look like text are copied as is. Source file mode is kept.
func (engine literalEngine) RenderFile(srcPath string, dstPath string, _ interface{}) error {
	stat, err := os.Stat(srcPath)
	if err != nil {
		return util.NewIOError("stat", srcPath, err)
	}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return util.NewIOError("read", srcPath, err)
	}
	if util.IsTextContent(data) {
		data = engine.list.ApplyBytes(data)
	}

	if err = os.WriteFile(dstPath, data, stat.Mode().Perm()); err != nil {
		return util.NewIOError("write", dstPath, err)
	}
	// WriteFile does not change permissions of an existing file.
	if err = os.Chmod(dstPath, stat.Mode().Perm()); err != nil {
		return util.NewIOError("chmod", dstPath, err)
	}
	return nil
}

// RenderText replaces all tokens in the text.
func (engine literalEngine) RenderText(in string, _ interface{}) (string, error) {
	return engine.list.Apply(in), nil
}
