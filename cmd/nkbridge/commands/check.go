package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/keharriso/love-nuklear/theme"
)

// CheckResult is the output of `check`.
type CheckResult struct {
	Theme   string   `yaml:"theme"             json:"theme"`
	Name    string   `yaml:"name,omitempty"    json:"name,omitempty"`
	Colors  bool     `yaml:"colors"            json:"colors"`
	Pushed  int      `yaml:"pushed"            json:"pushed"`
	Images  int      `yaml:"images"            json:"images"`
	Fonts   int      `yaml:"fonts"             json:"fonts"`
	Unknown []string `yaml:"unknown,omitempty" json:"unknown,omitempty"`
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check THEME",
		Short: "Load a theme file and apply it to a headless core",
		Long: "Parse THEME, resolve its images and fonts relative to its directory, apply it " +
			"to a headless core and run one frame so every referenced resource is re-registered.",
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := args[0]
	th, err := theme.Load(path, theme.NewDir(filepath.Dir(path)))
	if err != nil {
		return err
	}

	ctx, ui, err := newContext(cfg)
	if err != nil {
		return err
	}
	pushed, err := th.Apply(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply %s: %w", path, err)
	}
	if err := ctx.Frame(func() error { return nil }); err != nil {
		return err
	}

	return printResult(cmd, CheckResult{
		Theme:   path,
		Name:    th.Name,
		Colors:  th.Colors != nil,
		Pushed:  pushed,
		Images:  ctx.ImageCount(),
		Fonts:   ctx.FontCount(),
		Unknown: th.Check(ui.Style()),
	})
}
