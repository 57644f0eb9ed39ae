package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/listing-valuator/internal/api/client"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Manage listings and engagement",
	}

	listingsRoot.AddCommand(
		listingsCreateCmd(),
		listingsGetCmd(),
		listingsSoldCmd(),
		listingsVisitCmd(),
		listingsFavoriteCmd(),
	)

	return listingsRoot
}

func listingsCreateCmd() *cobra.Command {
	var (
		l         apiclient.NewListing
		condition string
		owner     string
		latitude  float64
		longitude float64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create or update a listing by VIN",
		Example: `  lv listings create --vin 1HGCV1F34LA000001 --make Honda --model Civic \
    --year 2020 --mileage 30000 --price 19000 --owner s1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l.Condition = domain.Condition(condition)
			if owner != "" {
				l.OwnerID = &owner
			}
			if cmd.Flags().Changed("lat") {
				l.Latitude, l.Longitude = &latitude, &longitude
			}

			out, err := newClient().CreateListing(cmd.Context(), &l)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), out)
			}
			return printListingDetail(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&l.VIN, "vin", "", "vehicle identification number (required)")
	cmd.Flags().StringVar(&condition, "condition", string(domain.ConditionUsed), "vehicle condition")
	cmd.Flags().StringVar(&l.Make, "make", "", "manufacturer (required)")
	cmd.Flags().StringVar(&l.Model, "model", "", "model name (required)")
	cmd.Flags().IntVar(&l.Year, "year", 0, "model year (required)")
	cmd.Flags().IntVar(&l.Mileage, "mileage", 0, "odometer reading")
	cmd.Flags().StringVar(&l.Color, "color", "", "exterior color")
	cmd.Flags().Float64Var(&l.Price, "price", 0, "asking price (required)")
	cmd.Flags().Float64Var(&latitude, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&longitude, "lon", 0, "longitude")
	cmd.Flags().StringVar(&owner, "owner", "", "seller user ID; omit for catalog listings")

	for _, name := range []string{"vin", "make", "model", "year", "price"} {
		cobra.CheckErr(cmd.MarkFlagRequired(name))
	}
	cmd.MarkFlagsRequiredTogether("lat", "lon")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show listing details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newClient().GetListing(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), l)
			}
			return printListingDetail(cmd.OutOrStdout(), l)
		},
	}
}

func listingsSoldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sold <id>",
		Short: "Mark a listing sold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, changed, err := newClient().MarkSold(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]any{"listing": l, "changed": changed})
			}
			if !changed {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Listing %s was already sold.\n", l.ID)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Listing %s marked sold.\n", l.ID)
			return err
		},
	}
}

func listingsVisitCmd() *cobra.Command {
	var (
		userID string
		clicks int
		dwell  float64
	)

	cmd := &cobra.Command{
		Use:     "visit <listing-id>",
		Short:   "Record a listing visit",
		Example: `  lv listings visit l1 --user u1 --clicks 3 --dwell 45`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newClient().RecordVisit(cmd.Context(), args[0], userID, clicks, dwell)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), v)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Visit recorded: %d clicks, %.0fs total dwell\n",
				v.Clicks, v.DwellSeconds)
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "visiting user ID (required)")
	cmd.Flags().IntVar(&clicks, "clicks", 0, "clicks during the visit")
	cmd.Flags().Float64Var(&dwell, "dwell", 0, "seconds spent on the listing")
	cobra.CheckErr(cmd.MarkFlagRequired("user"))

	return cmd
}

func listingsFavoriteCmd() *cobra.Command {
	var (
		userID string
		remove bool
	)

	cmd := &cobra.Command{
		Use:   "favorite <listing-id>",
		Short: "Favorite or unfavorite a listing",
		Example: `  lv listings favorite l1 --user u1
  lv listings favorite l1 --user u1 --remove`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := newClient().SetFavorite(cmd.Context(), args[0], userID, !remove)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]bool{"favorited": !remove, "changed": changed})
			}
			state := "favorited"
			if remove {
				state = "unfavorited"
			}
			if !changed {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Listing %s already %s.\n", args[0], state)
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Listing %s %s.\n", args[0], state)
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID (required)")
	cmd.Flags().BoolVar(&remove, "remove", false, "unfavorite instead")
	cobra.CheckErr(cmd.MarkFlagRequired("user"))

	return cmd
}
