package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

func usersCmd() *cobra.Command {
	usersRoot := &cobra.Command{
		Use:   "users",
		Short: "Manage users and saved searches",
	}

	usersRoot.AddCommand(
		usersCreateCmd(),
		usersGetCmd(),
		preferencesCmd(),
	)

	return usersRoot
}

func usersCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "create <email> <zip>",
		Short:   "Register a user",
		Example: `  lv users create buyer@example.com 10001`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := newClient().CreateUser(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), u)
			}
			return printUser(cmd.OutOrStdout(), u)
		},
	}
}

func usersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := newClient().GetUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), u)
			}
			return printUser(cmd.OutOrStdout(), u)
		},
	}
}

func preferencesCmd() *cobra.Command {
	prefsRoot := &cobra.Command{
		Use:   "prefs",
		Short: "Manage a user's saved and recent searches",
	}

	prefsRoot.AddCommand(prefsListCmd(), prefsAddCmd())

	return prefsRoot
}

func prefsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <user-id>",
		Short: "List saved and recent searches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := newClient().ListPreferences(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), prefs)
			}
			if len(prefs) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No searches saved.")
				return err
			}
			return printPreferences(cmd.OutOrStdout(), prefs)
		},
	}
}

func prefsAddCmd() *cobra.Command {
	var (
		viewed     bool
		condition  string
		makeName   string
		model      string
		yearMin    int
		yearMax    int
		maxPrice   float64
		maxMileage int
	)

	cmd := &cobra.Command{
		Use:   "add <user-id>",
		Short: "Save a search",
		Long: "Save a search filter for a user. Use --viewed to record a recently\n" +
			"run search instead; only the most recent viewed searches are kept.",
		Example: `  lv users prefs add u1 --make Honda --model Civic --max-price 20000
  lv users prefs add u1 --viewed --make Toyota`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var f domain.SearchFilter
			flags := cmd.Flags()
			if flags.Changed("condition") {
				c := domain.Condition(condition)
				f.Condition = &c
			}
			if flags.Changed("make") {
				f.Make = &makeName
			}
			if flags.Changed("model") {
				f.Model = &model
			}
			if flags.Changed("year-min") {
				f.YearMin = &yearMin
			}
			if flags.Changed("year-max") {
				f.YearMax = &yearMax
			}
			if flags.Changed("max-price") {
				f.MaxPrice = &maxPrice
			}
			if flags.Changed("max-mileage") {
				f.MaxMileage = &maxMileage
			}

			kind := domain.PreferenceFavorited
			if viewed {
				kind = domain.PreferenceViewed
			}

			p, err := newClient().SavePreference(cmd.Context(), args[0], kind, f)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s search %s\n", p.Kind, p.ID)
			return err
		},
	}

	cmd.Flags().BoolVar(&viewed, "viewed", false, "record as a recently run search")
	cmd.Flags().StringVar(&condition, "condition", "", "vehicle condition")
	cmd.Flags().StringVar(&makeName, "make", "", "manufacturer")
	cmd.Flags().StringVar(&model, "model", "", "model name")
	cmd.Flags().IntVar(&yearMin, "year-min", 0, "oldest model year")
	cmd.Flags().IntVar(&yearMax, "year-max", 0, "newest model year")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price")
	cmd.Flags().IntVar(&maxMileage, "max-mileage", 0, "maximum mileage")

	return cmd
}
