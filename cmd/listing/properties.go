package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) getCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a single property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bearer, err := c.resolveToken(cmd.Context(), token)
			if err != nil {
				return err
			}
			property, err := c.client().GetProperty(cmd.Context(), bearer, args[0])
			if err != nil {
				fmt.Fprintln(c.errOut, err.Error())
				return err
			}
			return c.printJSON(property)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "bearer token, overrides the stored one")
	return cmd
}

func (c *cli) listCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties owned by the token holder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bearer, err := c.resolveToken(cmd.Context(), token)
			if err != nil {
				return err
			}
			properties, err := c.client().ListProperties(cmd.Context(), bearer)
			if err != nil {
				fmt.Fprintln(c.errOut, err.Error())
				return err
			}
			return c.printJSON(properties)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "bearer token, overrides the stored one")
	return cmd
}
