package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
	"github.com/ewilliams-labs/moodmate/internal/core/services"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Classify free text into a mood preset",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.orchestrator()
			if err != nil {
				return err
			}
			preset := svc.Classify(cmd.Context(), strings.Join(args, " "), "")
			if ctx.jsonOutput() {
				return writeJSON(cmd, preset)
			}
			printPreset(cmd, preset)
			return nil
		},
	}
}

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	var (
		bucketFlag string
		energy     float64
		valence    float64
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend tracks for a mood bucket",
		Long: "Recommend tracks for a mood bucket. Energy and valence default to the " +
			"bucket's fallback preset when not given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, err := domain.ParseBucket(bucketFlag)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			presets, err := cfg.PresetTable()
			if err != nil {
				return err
			}
			defaults := presets.Lookup(bucket)
			if !cmd.Flags().Changed("energy") {
				energy = defaults.Energy
			}
			if !cmd.Flags().Changed("valence") {
				valence = defaults.Valence
			}

			svc, err := ctx.orchestrator()
			if err != nil {
				return err
			}
			tracks, err := svc.Recommend(cmd.Context(), bucket, energy, valence, limit)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]any{"tracks": tracks})
			}
			printTracks(cmd, tracks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucketFlag, "bucket", "b", "", "Mood bucket: focus, energize or calm")
	cmd.Flags().Float64Var(&energy, "energy", 0, "Target energy between 0 and 1")
	cmd.Flags().Float64Var(&valence, "valence", 0, "Target valence between 0 and 1")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of tracks (default from config, max 50)")
	_ = cmd.MarkFlagRequired("bucket")
	return cmd
}

func newQuoteCommand(ctx *commandContext) *cobra.Command {
	var (
		bucketFlag  string
		moodContext string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Write a short quote for a mood bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, err := domain.ParseBucket(bucketFlag)
			if err != nil {
				return err
			}
			svc, err := ctx.orchestrator()
			if err != nil {
				return err
			}
			q, err := svc.Quote(cmd.Context(), bucket, moodContext, "")
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]string{"quote": q})
			}
			printQuote(cmd, q)
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucketFlag, "bucket", "b", "", "Mood bucket: focus, energize or calm")
	cmd.Flags().StringVar(&moodContext, "context", "", "Optional words about the situation")
	_ = cmd.MarkFlagRequired("bucket")
	return cmd
}

type suggestOutput struct {
	Preset domain.Preset         `json:"preset"`
	Tracks *[]domain.TrackRecord `json:"tracks,omitempty"`
	Quote  *string               `json:"quote,omitempty"`
	Errors map[string]string     `json:"errors,omitempty"`
}

func newSuggestCommand(ctx *commandContext) *cobra.Command {
	var (
		limit   int
		noMusic bool
		noQuote bool
	)

	cmd := &cobra.Command{
		Use:   "suggest <text>",
		Short: "Classify text, then recommend tracks and write a quote",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.orchestrator()
			if err != nil {
				return err
			}
			s := svc.Suggest(cmd.Context(), services.SuggestRequest{
				Text:  strings.Join(args, " "),
				Limit: limit,
				Music: !noMusic,
				Quote: !noQuote,
			})

			if ctx.jsonOutput() {
				out := suggestOutput{Preset: s.Preset}
				if !noMusic && s.TracksErr == nil {
					out.Tracks = &s.Tracks
				}
				if !noQuote && s.QuoteErr == nil {
					out.Quote = &s.Quote
				}
				if s.TracksErr != nil || s.QuoteErr != nil {
					out.Errors = map[string]string{}
					if s.TracksErr != nil {
						out.Errors["tracks"] = s.TracksErr.Error()
					}
					if s.QuoteErr != nil {
						out.Errors["quote"] = s.QuoteErr.Error()
					}
				}
				return writeJSON(cmd, out)
			}

			w := cmd.OutOrStdout()
			printPreset(cmd, s.Preset)
			if !noMusic {
				fmt.Fprintln(w)
				if s.TracksErr != nil {
					fmt.Fprintf(w, "Tracks unavailable: %v\n", s.TracksErr)
				} else {
					printTracks(cmd, s.Tracks)
				}
			}
			if !noQuote {
				fmt.Fprintln(w)
				if s.QuoteErr != nil {
					fmt.Fprintf(w, "Quote unavailable: %v\n", s.QuoteErr)
				} else {
					printQuote(cmd, s.Quote)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of tracks (default from config, max 50)")
	cmd.Flags().BoolVar(&noMusic, "no-music", false, "Skip track recommendations")
	cmd.Flags().BoolVar(&noQuote, "no-quote", false, "Skip the quote")
	return cmd
}
