package toolup

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toolup-cli/toolup/pkg/commands/gen"
	"github.com/toolup-cli/toolup/pkg/commands/initialize"
	"github.com/toolup-cli/toolup/pkg/commands/list"
	"github.com/toolup-cli/toolup/pkg/paths"
)

func newSetupCmd() *cobra.Command {
	setupCmd := &cobra.Command{
		Use:   "setup",
		Short: MsgSetupShort,
	}
	setupCmd.AddCommand(newListCmd())
	setupCmd.AddCommand(newGenCmd())
	return setupCmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := paths.WorkspaceRoot()
			if err != nil {
				return err
			}

			result, err := list.ListComponents(list.Options{WorkspaceRoot: root})
			if err != nil {
				return err
			}

			if len(result.Components) == 0 {
				cmd.Println(MsgNoComponents)
				return nil
			}

			for _, c := range result.Components {
				header := c.ID
				if c.DisplayName != "" && c.DisplayName != c.ID {
					header = fmt.Sprintf("%s (%s)", c.ID, c.DisplayName)
				}
				cmd.Println(formatBold(header))
				if c.Description != "" {
					cmd.Printf("  %s\n", c.Description)
				}
				if len(c.Dependencies) > 0 {
					cmd.Printf("  depends on: %s\n", strings.Join(c.Dependencies, ", "))
				}
				if c.EnvVars > 0 {
					cmd.Printf("  env vars: %d (%d secret)\n", c.EnvVars, c.Secrets)
				}
			}
			return nil
		},
	}
}

func newGenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen [component...]",
		Short: MsgGenShort,
		Long:  MsgGenLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := paths.WorkspaceRoot()
			if err != nil {
				return err
			}

			result, err := gen.GenerateSetup(gen.Options{
				WorkspaceRoot: root,
				Selected:      args,
			})
			if err != nil {
				return err
			}

			cmd.Printf(MsgOrderFormat, strings.Join(result.Order, " -> "))
			for _, f := range result.Files {
				if f.Written {
					cmd.Printf(MsgWrittenFormat, f.Path)
				} else {
					cmd.Printf(MsgUnchangedFmt, f.Path)
				}
			}
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := paths.WorkspaceRoot()
			if err != nil {
				return err
			}

			result, err := initialize.InitWorkspace(initialize.Options{
				WorkspaceRoot: root,
				Force:         force,
			})
			if err != nil {
				return err
			}

			for _, path := range result.Created {
				cmd.Printf(MsgCreatedFormat, path)
			}
			for _, path := range result.Skipped {
				cmd.Printf(MsgSkippedFormat, path)
			}
			cmd.Println(MsgInitDone)
			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return initCmd
}
