package toolup

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/toolup-cli/toolup/internal/version"
	"github.com/toolup-cli/toolup/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "toolup",
		Short: MsgRootShort,
		Long: `toolup prepares a workspace for developer and agent tooling: it resolves
an install order over a component catalog, generates an install script, and
maintains plain and secret environment documents without ever clobbering
values you have filled in.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newTopicsCmd())

	return rootCmd
}
