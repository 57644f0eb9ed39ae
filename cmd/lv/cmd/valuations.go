package cmd

import (
	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/listing-valuator/internal/api/client"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

// vehicleFlags are the flags shared by estimate and comps.
type vehicleFlags struct {
	condition string
	make      string
	model     string
	year      int
	mileage   int
	latitude  float64
	longitude float64
	sellerID  string
}

func (f *vehicleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.condition, "condition", string(domain.ConditionUsed), "vehicle condition (new, used, certified, salvage)")
	cmd.Flags().StringVar(&f.make, "make", "", "manufacturer (required)")
	cmd.Flags().StringVar(&f.model, "model", "", "model name (required)")
	cmd.Flags().IntVar(&f.year, "year", 0, "model year (required)")
	cmd.Flags().IntVar(&f.mileage, "mileage", 0, "odometer reading in miles")
	cmd.Flags().Float64Var(&f.latitude, "lat", 0, "vehicle latitude")
	cmd.Flags().Float64Var(&f.longitude, "lon", 0, "vehicle longitude")
	cmd.Flags().StringVar(&f.sellerID, "seller", "", "seller ID whose sales history adjusts the price")

	cobra.CheckErr(cmd.MarkFlagRequired("make"))
	cobra.CheckErr(cmd.MarkFlagRequired("model"))
	cobra.CheckErr(cmd.MarkFlagRequired("year"))
	cmd.MarkFlagsRequiredTogether("lat", "lon")
}

func (f *vehicleFlags) vehicle(cmd *cobra.Command) *apiclient.Vehicle {
	v := &apiclient.Vehicle{
		Condition: domain.Condition(f.condition),
		Make:      f.make,
		Model:     f.model,
		Year:      f.year,
		Mileage:   f.mileage,
		SellerID:  f.sellerID,
	}
	if cmd.Flags().Changed("lat") {
		v.Latitude, v.Longitude = &f.latitude, &f.longitude
	}
	return v
}

func estimateCmd() *cobra.Command {
	var flags vehicleFlags

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a vehicle's market price",
		Long: "Estimate a vehicle's market price from comparable listings. The\n" +
			"recommended price reflects the seller's sales history when --seller\n" +
			"is given and the estimate has high confidence.",
		Example: `  lv estimate --make Honda --model Civic --year 2020 --mileage 30000
  lv estimate --make Honda --model Civic --year 2020 --seller s1 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			est, err := newClient().Estimate(cmd.Context(), flags.vehicle(cmd))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), est)
			}
			return printEstimate(cmd.OutOrStdout(), est)
		},
	}
	flags.register(cmd)

	return cmd
}

func compsCmd() *cobra.Command {
	var flags vehicleFlags

	cmd := &cobra.Command{
		Use:     "comps",
		Short:   "Show the comparables behind an estimate",
		Example: `  lv comps --make Honda --model Civic --year 2020 --mileage 30000 --lat 40.7 --lon -74`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := newClient().Comparables(cmd.Context(), flags.vehicle(cmd))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), set)
			}
			return printComparables(cmd.OutOrStdout(), set)
		},
	}
	flags.register(cmd)

	return cmd
}
