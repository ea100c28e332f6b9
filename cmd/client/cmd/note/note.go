package note

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for note operations.
var Cmd = &cobra.Command{
	Use:   "note",
	Short: "Create and read ephemeral notes",
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(readCmd)
}
