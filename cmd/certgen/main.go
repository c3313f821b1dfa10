// Command certgen renders the certificate background variants and publishes
// the active one.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/certgen"
	"github.com/gogpu/certgen/internal/config"
	"github.com/gogpu/certgen/internal/logging"
	"github.com/gogpu/certgen/internal/store"
	"github.com/gogpu/certgen/variant"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "certgen",
		Short:         "Generate certificate backgrounds",
		Long:          "Render every certificate background variant to PNG and publish the active one.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.DefineFlags(root)
	root.AddCommand(generateCmd(), activateCmd(), variantsCmd())
	return root
}

// setup loads the configuration and installs the logger. The returned
// closer releases the log file, if any.
func setup(cmd *cobra.Command) (config.Config, io.Closer, error) {
	file, _ := cmd.Flags().GetString("config")
	conf, meta, err := config.Load(cmd, file)
	if err != nil {
		return config.Config{}, nil, err
	}
	if meta.FileNotFound {
		return config.Config{}, nil, fmt.Errorf("config file not found: %s", file)
	}
	logger, closer, err := logging.New(conf.Log, cmd.ErrOrStderr())
	if err != nil {
		return config.Config{}, nil, err
	}
	certgen.SetLogger(logger)
	return conf, closer, nil
}

func closeLog(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
	certgen.SetLogger(nil)
}

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Render all variants and activate the configured one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, closer, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeLog(closer)

			cfg := conf.Certgen()
			g, err := certgen.NewGenerator(cfg, store.New(cfg.OutputDir, cfg.DPI))
			if err != nil {
				return err
			}
			res, err := g.Generate(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generated variants: %s\n", strings.Join(res.Generated, ", "))
			fmt.Fprintf(out, "Active variant: %s\n", res.Active)
			return nil
		},
	}
}

var errUsage = errors.New("usage: certgen activate <variant>")

func activateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <variant>",
		Short: "Publish an already rendered variant",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w\navailable variants: %s", errUsage, strings.Join(variant.Names(), ", "))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if _, err := variant.Lookup(name); err != nil {
				return err
			}
			conf, closer, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeLog(closer)

			if err := store.New(conf.OutputDir, conf.DPI).Activate(name); err != nil {
				return fmt.Errorf("activate %s: %w", name, err)
			}
			certgen.Logger().Info("certgen: variant activated", "variant", name, "dir", conf.OutputDir)
			fmt.Fprintf(cmd.OutOrStdout(), "Activated variant: %s\n", name)
			return nil
		},
	}
}

func variantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the defined variants",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range variant.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
