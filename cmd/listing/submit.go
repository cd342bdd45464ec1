package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"homevest-listings/internal/models"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (c *cli) submitCmd() *cobra.Command {
	var file, token string
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate a listing and create it on the property service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			input, err := loadListing(file)
			if err != nil {
				return err
			}
			bearer, err := c.resolveToken(ctx, token)
			if err != nil {
				return err
			}

			result, err := c.client().CreateProperty(ctx, input, bearer)
			if err != nil {
				fmt.Fprintln(c.errOut, err.Error())
				return err
			}
			return c.printJSON(result)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "listing file (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&token, "token", "", "bearer token, overrides the stored one")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (c *cli) validateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate and encode a listing without sending it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := loadListing(file)
			if err != nil {
				return err
			}
			payload, err := c.client().Prepare(cmd.Context(), input)
			if err != nil {
				fmt.Fprintln(c.errOut, err.Error())
				return err
			}
			for _, field := range payload.Fields {
				fmt.Fprintln(c.out, field)
			}
			fmt.Fprintf(c.out, "%d parts, %d bytes\n", len(payload.Fields), len(payload.Body))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "listing file (.yaml, .yml or .json)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// loadListing decodes a listing draft, picking the format from the extension.
func loadListing(path string) (*models.PropertyListingInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read listing: %w", err)
	}

	var input models.PropertyListingInput
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &input)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &input)
	default:
		return nil, fmt.Errorf("unsupported listing format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode listing %s: %w", path, err)
	}
	return &input, nil
}
