package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/interviewsprint/internal/app"
	"github.com/abhisek/interviewsprint/internal/workspace"
)

// runApp builds the workspace, seeds it with the starter kit, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	ws := workspace.New(d.generator, workspace.WithLogger(logger))
	ws.LoadStarterKit()

	skip, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Context:    cmd.Context(),
		Workspace:  ws,
		Events:     d.store.EventRepo(),
		SkipSplash: skip,
	})
}
