package cmd

import (
	"context"

	"github.com/madhatterpub/site/internal/app"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `Run the web server on APP_ADDR until interrupted.

With CONTENT_FILE set, the file overrides the built-in content; with
CONTENT_WATCH=true it is reloaded whenever it changes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// Serve builds the site from the environment and runs it until a signal
// arrives.
func Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := app.New(loadConfig(), afero.NewOsFs())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := a.Boot(ctx); err != nil {
		return err
	}
	return a.Server.Start()
}
