package note

import (
	"fmt"

	"vanishnote/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	text           string
	contentType    string
	expiryMode     string
	password       string
	decoyPassword  string
	decoyMessage   string
	allowedCountry string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new note",
	Long: `Create a new ephemeral note.

By default the note burns after its first read. Use --expiry to keep it
readable for a fixed window instead (1hour or 24hours).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("client not initialized")
		}

		resp, err := app.CreateNote(cmd.Context(), client.CreateParams{
			Text:           text,
			Type:           contentType,
			ExpiryMode:     expiryMode,
			Password:       password,
			DecoyPassword:  decoyPassword,
			DecoyMessage:   decoyMessage,
			AllowedCountry: allowedCountry,
		})
		if err != nil {
			return err
		}
		if !resp.Success {
			return fmt.Errorf("creation failed: %s", resp.Message)
		}

		color.Green("Note created")
		fmt.Printf("  note id:     %s\n", color.CyanString(resp.NoteID))
		fmt.Printf("  tracking id: %s\n", color.CyanString(resp.TrackingID))
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&text, "text", "t", "", "note content (data URI for image/audio)")
	createCmd.Flags().StringVar(&contentType, "type", "", "content kind: text, image or audio")
	createCmd.Flags().StringVar(&expiryMode, "expiry", "burn", "expiry mode: burn, 1hour or 24hours")
	createCmd.Flags().StringVar(&password, "password", "", "password gating the note")
	createCmd.Flags().StringVar(&decoyPassword, "decoy-password", "", "decoy password revealing the decoy message")
	createCmd.Flags().StringVar(&decoyMessage, "decoy-message", "", "message shown on a decoy read")
	createCmd.Flags().StringVar(&allowedCountry, "country", "", "restrict reads to a country code")

	_ = createCmd.MarkFlagRequired("text")
}
