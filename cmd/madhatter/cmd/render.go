package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/madhatterpub/site/internal/app"
	"github.com/madhatterpub/site/internal/export"
	"github.com/madhatterpub/site/web"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Export the home page and its assets as static files",
	Long: `Render the home page as a first-time visitor sees it and write it, the
static assets and the directions QR code below --out.

Examples:
  madhatter render --out dist
  CONTENT_FILE=content.yaml madhatter render --out dist`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(renderOut, 0o755); err != nil {
			return err
		}
		a, err := app.New(loadConfig(), afero.NewOsFs())
		if err != nil {
			return err
		}
		return render(cmd, a, afero.NewBasePathFs(afero.NewOsFs(), renderOut))
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "dist", "output directory")
	rootCmd.AddCommand(renderCmd)
}

func render(cmd *cobra.Command, a *app.App, dst afero.Fs) error {
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		return err
	}
	res, err := export.Site(cmd.Context(), dst, export.Options{
		Page:     a.Home,
		Store:    a.Store,
		Renderer: a.Renderer,
		Static:   static,
	})
	if err != nil {
		return err
	}
	for _, f := range res.Files {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f)
	}
	return nil
}
