package note

import (
	"fmt"

	"vanishnote/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var readPassword string

var readCmd = &cobra.Command{
	Use:   "read <note-id>",
	Short: "Read a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("client not initialized")
		}

		resp, err := app.ReadNote(cmd.Context(), args[0], readPassword)
		if err != nil {
			return err
		}

		switch {
		case resp.Success:
			fmt.Println(resp.Note)
			if resp.Type != "" && resp.Type != "text" {
				fmt.Printf("(%s content, data URI)\n", resp.Type)
			}
		case resp.IsPasswordRequired:
			color.Yellow("%s", resp.Message)
			color.Yellow("Retry with --password.")
		default:
			color.Red("%s", resp.Message)
		}
		return nil
	},
}

func init() {
	readCmd.Flags().StringVarP(&readPassword, "password", "p", "", "password for gated notes")
}
