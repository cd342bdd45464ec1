package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"homevest-listings/pkg/config"
	"homevest-listings/pkg/logger"
	"homevest-listings/pkg/propertyapi"
	"homevest-listings/pkg/tokenstore"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type cli struct {
	configPath string
	cfg        *config.Config
	out        io.Writer
	errOut     io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "listing",
		Short:         "Validate and submit property listings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	defaultPath := os.Getenv("CONFIG_PATH")
	if defaultPath == "" {
		defaultPath = "configs/config.yaml"
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", defaultPath, "path to the YAML config file")

	root.AddCommand(
		c.submitCmd(),
		c.validateCmd(),
		c.getCmd(),
		c.listCmd(),
		c.tokenCmd(),
	)
	return root
}

func (c *cli) load() error {
	envErr := godotenv.Load()
	cfg, err := config.LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	logger.InitLogger(c.errOut, cfg.Log.Level)
	if envErr != nil {
		logger.GlobalLogger.Debugf("No .env file found, relying on system environment variables: %v", envErr)
	}
	c.cfg = cfg
	return nil
}

func (c *cli) client() *propertyapi.Client {
	api := c.cfg.PropertyAPI
	return propertyapi.NewClient(propertyapi.ClientConfig{
		BaseURL:    api.BaseURL,
		CreatePath: api.CreatePath,
		Timeout:    api.Timeout,
		MaxRetries: api.MaxRetries,
		RetryDelay: api.RetryDelay,
	})
}

func (c *cli) withStore(ctx context.Context, fn func(tokenstore.Store) error) error {
	store, err := tokenstore.New(ctx, c.cfg.TokenStore)
	if err != nil {
		return fmt.Errorf("failed to open token store: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// resolveToken prefers an explicit flag value over the stored token.
func (c *cli) resolveToken(ctx context.Context, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	var token string
	err := c.withStore(ctx, func(store tokenstore.Store) error {
		var err error
		token, err = store.Get(ctx, c.cfg.TokenStore.Key)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("no token available, run `listing token set` or pass --token: %w", err)
	}
	return token, nil
}

func (c *cli) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, string(data))
	return err
}
