// cmd/journey/commands.go
package main

import (
	"errors"
	"fmt"
	"time"

	"leetcode_journey/internal/client"
	"leetcode_journey/internal/endpoint"
	"leetcode_journey/internal/model"
	"leetcode_journey/internal/schedule"
	"leetcode_journey/internal/webutil"

	"github.com/spf13/cobra"
)

func newConfigCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the backend endpoint.",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the saved endpoint and the resolved submission URL.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolver.Config()
			if err != nil {
				return err
			}
			state, err := c.resolver.State()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", model.KeyAPIURL, cfg.BaseURL)
			fmt.Fprintf(out, "%s: %t\n", model.KeyUseRemote, cfg.UseRemote)
			fmt.Fprintf(out, "state: %s\n", state)
			fmt.Fprintf(out, "submit to: %s\n", endpoint.LogURL(cfg.BaseURL))
			fmt.Fprintf(out, "file: %s\n", c.store.Path())
			return nil
		},
	}

	var remote bool
	set := &cobra.Command{
		Use:   "set <url>",
		Short: "Save the backend base URL.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolver.SetConfig(args[0], remote)
			if err != nil {
				return err
			}
			kind := "local"
			if cfg.UseRemote {
				kind = "remote"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s endpoint: %s\n", kind, cfg.BaseURL)
			return nil
		},
	}
	set.Flags().BoolVar(&remote, "remote", false, "treat the URL as the deployed remote endpoint")

	cmd.AddCommand(show, set)
	return cmd
}

func newDetectCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Find a reachable backend (saved remote first, then local).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.resolver.AutoDetect(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			if result == model.DetectNone {
				return fmt.Errorf("%w: start the local server (go run ./cmd) or check the remote URL", model.ErrNetworkUnavailable)
			}
			return nil
		},
	}
}

func newProbeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <url>",
		Short: "Check whether a backend answers at the given base URL.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseURL, err := endpoint.NormalizeBaseURL(args[0])
			if err != nil {
				return err
			}
			if c.resolver.Probe(cmd.Context(), baseURL, c.probeTimeout) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s reachable\n", baseURL)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s unreachable\n", baseURL)
			return fmt.Errorf("%w: %s", model.ErrNetworkUnavailable, baseURL)
		},
	}
}

func newLogCmd(c *cli) *cobra.Command {
	var req model.LogRequest
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a solved problem (or a review of one already logged).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if d, err := model.ParseDifficulty(req.Difficulty); err == nil {
				req.Difficulty = d.String()
			}
			if err := webutil.ValidateStruct(req); err != nil {
				var appErr *model.AppError
				if errors.As(err, &appErr) {
					return fmt.Errorf("%w: %s", model.ErrInvalidInput, appErr.Message)
				}
				return err
			}

			resp, err := client.New(c.resolver, c.logger).Submit(cmd.Context(), &req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			if resp.NextReview != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Next review: %s\n", resp.NextReview)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&req.ProblemNumber, "number", "", "problem number")
	cmd.Flags().StringVar(&req.Name, "name", "", "problem title")
	cmd.Flags().StringVar(&req.URL, "url", "", "problem URL")
	cmd.Flags().StringVar(&req.Difficulty, "difficulty", "", "Easy, Medium or Hard")
	cmd.Flags().StringVar(&req.Topic, "topic", "", "comma separated topics")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "free-form notes")
	return cmd
}

func newScheduleCmd() *cobra.Command {
	var (
		difficulty string
		reviews    int
		from       string
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the next review interval for a difficulty and review count.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := model.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			start := time.Now()
			if from != "" {
				start, err = time.ParseInLocation(model.DateLayout, from, time.Local)
				if err != nil {
					return fmt.Errorf("%w: --from must be YYYY-MM-DD", model.ErrInvalidInput)
				}
			}
			days, err := schedule.NextInterval(d, reviews)
			if err != nil {
				return err
			}
			next, err := schedule.NextReviewDate(start, d, reviews)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s after %d review(s): %d days, next review %s\n",
				d, reviews, days, next.Format(model.DateLayout))
			return nil
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Easy, Medium or Hard")
	cmd.Flags().IntVar(&reviews, "reviews", 0, "number of prior reviews")
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD, default today)")
	return cmd
}
