package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
)

//nolint:gochecknoglobals // Cobra boilerplate
var contentFile string

//nolint:gochecknoglobals // Cobra boilerplate
var jsonOutput bool

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site and content query tools",
	Long: `portfolio serves a personal portfolio website with project search,
a keyword chatbot, message drafts and a contact form.

Run without a subcommand to start the web server. The query subcommands
answer the same questions from the terminal.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "YAML content file (default is CONTENT_FILE or the built-in dataset)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
}

// loadConfig reads settings from the environment. The --content flag wins
// over CONTENT_FILE.
func loadConfig() (cfg config.Config, err error) {
	cfg, err = config.Load()
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, err
	}
	if contentFile != "" {
		cfg.ContentFile = contentFile
	}
	return cfg, err
}

func loadPortfolio() (p content.Portfolio, err error) {
	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return p, err
	}
	p, err = content.Load(cfg.ContentFile)
	return p, err
}
