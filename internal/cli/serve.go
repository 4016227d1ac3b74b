package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"huggable/internal/server"
	"huggable/internal/store"
)

var (
	serveName string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve an already-generated app without regenerating it",
	Example: `  huggable serve --name "Todo App"
  huggable serve --name "Portfolio" --port 3000`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := store.AppDir(conf.OutputDir, serveName)
		if err != nil {
			return err
		}
		if _, err := os.Stat(filepath.Join(dir, store.EntryFile)); err != nil {
			return fmt.Errorf("no generated app named %q: create it first with 'huggable --name %q --description ...'", serveName, serveName)
		}
		if servePort == 0 {
			servePort = conf.Port
		}
		return server.Serve(cmd.Context(), dir, servePort)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveName, "name", "", "Name of the generated app to serve")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to run the local server on (default 8080)")
	serveCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(serveCmd)
}
