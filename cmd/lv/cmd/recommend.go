package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/listing-valuator/internal/api/client"
)

func recommendCmd() *cobra.Command {
	var (
		latitude  float64
		longitude float64
		detail    bool
	)

	cmd := &cobra.Command{
		Use:   "recommend <user-id>",
		Short: "Recommend listings for a user",
		Long: "Rank listings for a user from their views, favorites, messages, and\n" +
			"saved searches. Without --lat/--lon the user's signup location is used.",
		Example: `  lv recommend u1
  lv recommend u1 --lat 40.7 --lon -74 --detail`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &apiclient.RecommendationsParams{Expand: !detail, Detail: detail}
			if cmd.Flags().Changed("lat") {
				params.Latitude, params.Longitude = &latitude, &longitude
			}

			resp, err := newClient().Recommendations(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			if len(resp.ListingIDs) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No recommendations yet.")
				return err
			}
			if detail {
				return printScores(cmd.OutOrStdout(), resp.Scores)
			}
			return printListingsTable(cmd.OutOrStdout(), resp.Listings)
		},
	}

	cmd.Flags().Float64Var(&latitude, "lat", 0, "current latitude")
	cmd.Flags().Float64Var(&longitude, "lon", 0, "current longitude")
	cmd.Flags().BoolVar(&detail, "detail", false, "show per-signal score breakdowns")
	cmd.MarkFlagsRequiredTogether("lat", "lon")

	return cmd
}
