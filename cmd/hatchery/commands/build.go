package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hatchery/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [LOCATION]",
		Short: "Build a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, _ := cmd.Flags().GetStringArray("target")
			ext, _ := cmd.Flags().GetBool("ext")
			cleanOnly, _ := cmd.Flags().GetBool("clean-only")

			req := domain.BuildRequest{
				Targets: targets,
				Ext:     ext,
				BuildFlags: domain.BuildFlags{
					HooksOnly:       boolFlag(cmd, "hooks-only", domain.EnvBuildHooksOnly),
					NoHooks:         boolFlag(cmd, "no-hooks", domain.EnvBuildNoHooks),
					Clean:           boolFlag(cmd, "clean", domain.EnvBuildClean),
					CleanHooksAfter: boolFlag(cmd, "clean-hooks-after", domain.EnvBuildCleanHooksAfter),
					CleanOnly:       cleanOnly,
				},
			}
			if len(args) > 0 {
				req.Location = args[0]
			}

			return c.app.Build(cmd.Context(), environmentName(cmd), req)
		},
	}

	cmd.Flags().StringArrayP("target", "t", nil,
		"The target to build, overriding project defaults. This may be selected multiple times e.g. `-t sdist -t wheel`")
	cmd.Flags().Bool("hooks-only", false, "Whether or not to only execute build hooks [env var: `HATCH_BUILD_HOOKS_ONLY`]")
	cmd.Flags().Bool("no-hooks", false, "Whether or not to disable build hooks [env var: `HATCH_BUILD_NO_HOOKS`]")
	cmd.Flags().Bool("ext", false,
		"Whether or not to only execute build hooks for distributing binary Python packages. Equivalent to `--hooks-only -t wheel`")
	cmd.Flags().BoolP("clean", "c", false,
		"Whether or not existing artifacts should first be removed [env var: `HATCH_BUILD_CLEAN`]")
	cmd.Flags().Bool("clean-hooks-after", false,
		"Whether or not build hook artifacts should be removed after each build [env var: `HATCH_BUILD_CLEAN_HOOKS_AFTER`]")
	cmd.Flags().Bool("clean-only", false, "")
	_ = cmd.Flags().MarkHidden("clean-only")

	return cmd
}
