package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/chatbot"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/drafts"
	"github.com/Zachkp/portfolio/internal/finder"
	"github.com/Zachkp/portfolio/internal/highlights"
)

//nolint:gochecknoglobals // Cobra boilerplate
var findFilters finder.FilterSet

//nolint:gochecknoglobals // Cobra boilerplate
var draftCompany string

//nolint:gochecknoglobals // Cobra boilerplate
var findCmd = &cobra.Command{
	Use:   "find [query]",
	Short: "Search projects",
	Long: `Search projects by free text and filters, best match first.

Example:
  portfolio find react
  portfolio find --tech Go --tech Rust --status completed`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var p content.Portfolio
		p, err = loadPortfolio()
		if err != nil {
			return err
		}
		matches := finder.New(p.Projects).Search(strings.Join(args, " "), findFilters)
		err = printMatches(cmd.OutOrStdout(), matches)
		return err
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var suggestCmd = &cobra.Command{
	Use:   "suggest <partial>",
	Short: "Autocomplete a project search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var p content.Portfolio
		p, err = loadPortfolio()
		if err != nil {
			return err
		}
		err = printSuggestions(cmd.OutOrStdout(), finder.New(p.Projects).Suggest(args[0]))
		return err
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var highlightsCmd = &cobra.Command{
	Use:   "highlights",
	Short: "Print synthesized career highlights",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var p content.Portfolio
		p, err = loadPortfolio()
		if err != nil {
			return err
		}
		items := highlights.New(p, time.Now).Synthesize()
		if jsonOutput {
			err = writeJSON(cmd.OutOrStdout(), items)
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), highlights.FormatBullets(items))
		return err
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the portfolio chatbot a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var p content.Portfolio
		p, err = loadPortfolio()
		if err != nil {
			return err
		}
		resp := chatbot.NewMatcher(p).Answer(strings.Join(args, " "))
		if jsonOutput {
			err = writeJSON(cmd.OutOrStdout(), resp)
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Answer)
		return err
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var draftCmd = &cobra.Command{
	Use:   "draft [job|collaboration|freelance|general]",
	Short: "Generate a contact message draft",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var p content.Portfolio
		p, err = loadPortfolio()
		if err != nil {
			return err
		}
		intent := string(drafts.IntentGeneral)
		if len(args) == 1 {
			intent = args[0]
		}
		d := drafts.NewGenerator(p.Personal.FirstName).Draft(intent, drafts.Details{Company: draftCompany})
		if jsonOutput {
			err = writeJSON(cmd.OutOrStdout(), d)
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Subject: %s\n\n%s\n", d.Subject, d.Message)
		return err
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(findCmd, suggestCmd, highlightsCmd, askCmd, draftCmd)

	findCmd.Flags().StringVar(&findFilters.Category, "category", "", "Project category (\"all\" for any)")
	findCmd.Flags().StringSliceVar(&findFilters.TechStack, "tech", nil, "Tech stack entry, repeatable; any match qualifies")
	findCmd.Flags().StringVar(&findFilters.Year, "year", "", "Project year")
	findCmd.Flags().StringVar(&findFilters.Status, "status", "", "Project status (\"all\" for any)")

	draftCmd.Flags().StringVar(&draftCompany, "company", "", "Company name to fill into the draft")
}

func printMatches(w io.Writer, matches []finder.Match) (err error) {
	if jsonOutput {
		err = writeJSON(w, matches)
		return err
	}
	if len(matches) == 0 {
		_, err = fmt.Fprintln(w, "No projects found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tTITLE\tYEAR\tSTATUS\tTECH")
	for _, m := range matches {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n",
			m.Score, m.Project.Title, m.Project.Year, m.Project.Status, strings.Join(m.Project.TechStack, ", "))
	}
	err = tw.Flush()
	return err
}

func printSuggestions(w io.Writer, suggestions []finder.Suggestion) (err error) {
	if jsonOutput {
		err = writeJSON(w, suggestions)
		return err
	}
	for _, s := range suggestions {
		_, err = fmt.Fprintf(w, "%s\t(%s)\n", s.Value, s.Type)
		if err != nil {
			return err
		}
	}
	return err
}

func writeJSON(w io.Writer, v interface{}) (err error) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err = enc.Encode(v)
	if err != nil {
		err = errors.Wrap(err, "failed to encode output")
	}
	return err
}
