// Package commands implements the nkbridge command line: checking theme
// files, evaluating transform chains and printing configuration, all
// against a headless UI core.
package commands

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	nuklear "github.com/keharriso/love-nuklear"
	"github.com/keharriso/love-nuklear/headless"
	"github.com/keharriso/love-nuklear/host"
)

// Execute runs the command line.
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "nkbridge",
		Short:         "Inspect themes, transforms and configuration of the nuklear bridge",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("format", "yaml", "Output format: yaml or json")
	root.PersistentFlags().String("config", "nuklear.toml", "Path to the bridge configuration")

	root.AddCommand(newCheckCmd(), newTransformCmd(), newDrawCmd(), newConfigCmd())
	return root
}

// outputFormat returns the validated --format flag.
func outputFormat(cmd *cobra.Command) (Format, error) {
	f, _ := cmd.Flags().GetString("format")
	switch Format(f) {
	case FormatYAML, FormatJSON:
		return Format(f), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", f)
	}
}

func printResult(cmd *cobra.Command, v any) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	return Print(cmd.OutOrStdout(), format, v)
}

func loadConfig(cmd *cobra.Command) (nuklear.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return nuklear.LoadConfig(path)
}

// newContext returns a bridge over a headless core using the Go font.
func newContext(cfg nuklear.Config) (*nuklear.Context, *headless.Core, error) {
	font, err := host.NewGoFont(13)
	if err != nil {
		return nil, nil, err
	}
	ui := headless.New(cfg.Stacks)
	ctx, err := nuklear.New(ui, host.NewBasic(font), cfg)
	if err != nil {
		return nil, nil, err
	}
	ctx.SetLogger(log.New(io.Discard, "", 0))
	return ctx, ui, nil
}
