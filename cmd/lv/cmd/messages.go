package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func messageCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:     "message <listing-id> <text>",
		Short:   "Send a message about a listing",
		Example: `  lv message l1 "Is this still available?" --from u1 --to s1`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newClient().SendMessage(cmd.Context(), args[0], from, to, args[1])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), m)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Message %s sent.\n", m.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "sender user ID (required)")
	cmd.Flags().StringVar(&to, "to", "", "receiver user ID (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("from"))
	cobra.CheckErr(cmd.MarkFlagRequired("to"))

	return cmd
}
