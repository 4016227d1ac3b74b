// Package cli wires the generation pipeline behind the huggable command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"huggable/config"
	"huggable/internal/ai"
	"huggable/internal/sanitize"
	"huggable/internal/server"
	"huggable/internal/store"
	"huggable/internal/types"
)

// Generator produces a raw HTML document for an app description.
type Generator interface {
	GenerateApp(ctx context.Context, description, style string) (string, error)
}

// newGenerator is swapped in tests to avoid real API calls.
var newGenerator = func(apiKey, model string) Generator {
	return ai.NewGenerator(apiKey, model)
}

var conf config.Config

var (
	apiKey      string
	appName     string
	description string
	style       string
	noRun       bool
	port        int
	model       string
)

var rootCmd = &cobra.Command{
	Use:   "huggable",
	Short: "Create beautiful web apps from a plain-text description",
	Long: `Huggable sends your app description to a hosted LLM, saves the generated
single-file web app under generated_apps/, and serves it locally for preview.`,
	Example: `  huggable --name "Todo App" --description "A modern todo list with dark mode"
  huggable --name "Portfolio" --description "Personal portfolio site" --style "Minimalist, monochrome"
  huggable --name "Game" --description "Simple puzzle game" --no-run`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCreate,
}

func init() {
	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "OpenAI API key (or set OPENAI_API_KEY env variable)")
	rootCmd.Flags().StringVar(&appName, "name", "", "Name of the web app to create")
	rootCmd.Flags().StringVar(&description, "description", "", "Description of what the web app should do")
	rootCmd.Flags().StringVar(&style, "style", "", "Style preferences (e.g. 'Dark mode, neon colors, cyberpunk')")
	rootCmd.Flags().BoolVar(&noRun, "no-run", false, "Don't automatically run the server after creation")
	rootCmd.Flags().IntVar(&port, "port", 0, "Port to run the local server on (default 8080)")
	rootCmd.Flags().StringVar(&model, "model", "", "Chat model to use for generation (default from config)")
	rootCmd.MarkFlagRequired("name")
	rootCmd.MarkFlagRequired("description")
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	key := apiKey
	if key == "" {
		key = conf.OpenAIKey
	}
	if key == "" {
		// Fail before any network or filesystem activity.
		fmt.Println("❌ Error: No API key provided!")
		return errors.New("set the OPENAI_API_KEY environment variable or use the --api-key flag")
	}

	if model == "" {
		model = conf.Model
	}
	if port == 0 {
		port = conf.Port
	}

	projectID := uuid.New().String()
	req := types.GenerationRequest{Description: description, StylePreferences: style}

	fmt.Printf("\n🎨 Creating web app: %s\n", appName)
	fmt.Printf("📝 Description: %s\n\n", req.Description)
	log.Printf("Generating app %q (project %s) with model %s", appName, projectID, model)

	fmt.Printf("🤖 Calling %s to generate your web app...\n", model)
	gen := newGenerator(key, model)
	raw, err := gen.GenerateApp(ctx, req.Description, req.StylePreferences)
	if err != nil {
		return fmt.Errorf("error calling generation API: %w", err)
	}

	html := sanitize.CleanHTML(raw)

	project, err := store.Save(conf.OutputDir, appName, html)
	if err != nil {
		return err
	}
	fmt.Printf("✅ App saved to: %s\n", project.EntryFile)
	fmt.Println("\n✨ Web app successfully created!")

	if noRun {
		fmt.Printf("\n📁 App created at: %s\n", project.EntryFile)
		fmt.Printf("Run 'huggable serve --name %q --port %d' to serve it\n", appName, port)
		return nil
	}

	return server.Serve(ctx, project.Dir, port)
}

// Execute runs the CLI and maps outcomes to process exit codes: 0 for
// success or a user interrupt, 1 for everything else.
func Execute(cfg config.Config) {
	conf = cfg

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("\n\n👋 Goodbye!")
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "\n❌ %v\n", err)
		os.Exit(1)
	}
}
