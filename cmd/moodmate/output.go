package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/moodmate/internal/core/domain"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPreset(cmd *cobra.Command, p domain.Preset) {
	rows := [][]string{
		{"Bucket", p.Bucket().String()},
		{"Energy", formatScore(p.Energy())},
		{"Valence", formatScore(p.Valence())},
		{"Genres", strings.Join(p.SeedGenres(), ", ")},
		{"Source", string(p.Source())},
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
}

func printTracks(cmd *cobra.Command, tracks []domain.TrackRecord) {
	out := cmd.OutOrStdout()
	if len(tracks) == 0 {
		fmt.Fprintln(out, "No tracks found.")
		return
	}
	rows := make([][]string, 0, len(tracks))
	for i, t := range tracks {
		rows = append(rows, []string{strconv.Itoa(i + 1), t.Title, t.Artists, t.Album, t.SpotifyURL})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Title", "Artists", "Album", "Link"},
		rows,
		[]columnAlignment{alignRight},
	))
}

func printQuote(cmd *cobra.Command, q string) {
	if q == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "(no quote)")
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%q\n", q)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
