package track

import (
	"fmt"
	"time"

	"vanishnote/internal/app/client"
	trackdomain "vanishnote/internal/domain/track"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Cmd is the parent command for tracking operations.
var Cmd = &cobra.Command{
	Use:   "track",
	Short: "Check whether a note was read",
}

var statusCmd = &cobra.Command{
	Use:   "status <tracking-id>",
	Short: "Show the tracking status of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := client.FromContext(cmd.Context())
		if app == nil {
			return fmt.Errorf("client not initialized")
		}

		resp, err := app.TrackStatus(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !resp.Success || resp.Info == nil {
			color.Red("No tracking record found (it may have expired).")
			return nil
		}

		info := resp.Info
		if info.Status == trackdomain.StatusRead {
			color.Green("Status: Read")
			if !info.ReadAt.IsZero() {
				fmt.Printf("  read at: %s\n", info.ReadAt.Format(time.RFC1123))
			}
			if info.IP != "" {
				fmt.Printf("  ip:      %s\n", info.IP)
			}
			if info.Device != "" {
				fmt.Printf("  device:  %s\n", info.Device)
			}
		} else {
			color.Yellow("Status: Unread")
			if !info.CreatedAt.IsZero() {
				fmt.Printf("  created at: %s\n", info.CreatedAt.Format(time.RFC1123))
			}
		}
		return nil
	},
}

func init() {
	Cmd.AddCommand(statusCmd)
}
