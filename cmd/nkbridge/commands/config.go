package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	nuklear "github.com/keharriso/love-nuklear"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  "Print the configuration loaded from --config, or the defaults when the file does not exist.",
		Args:  cobra.NoArgs,
		RunE:  runConfig,
	}
	cmd.Flags().String("write", "", "Also save the configuration as TOML to this path")
	return cmd
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if path, _ := cmd.Flags().GetString("write"); path != "" {
		if err := nuklear.SaveConfig(path, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
	}
	return printResult(cmd, cfg)
}
