package cli

import (
	"bytes"

	"github.com/spf13/cobra"
)

// ExecuteCommand runs a command with the given args and returns its
// combined output. Used by CLI tests.
func ExecuteCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err = root.Execute()

	return buf.String(), err
}
