package main

import (
	"fmt"

	"homevest-listings/pkg/tokenstore"

	"github.com/spf13/cobra"
)

func (c *cli) tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the stored bearer token",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <token>",
		Short: "Store a bearer token for later commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(store tokenstore.Store) error {
				if err := store.Set(cmd.Context(), c.cfg.TokenStore.Key, args[0]); err != nil {
					return fmt.Errorf("failed to store token: %w", err)
				}
				fmt.Fprintln(c.out, "token stored")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the stored bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withStore(cmd.Context(), func(store tokenstore.Store) error {
				if err := store.Delete(cmd.Context(), c.cfg.TokenStore.Key); err != nil {
					return fmt.Errorf("failed to clear token: %w", err)
				}
				fmt.Fprintln(c.out, "token cleared")
				return nil
			})
		},
	})

	return cmd
}
