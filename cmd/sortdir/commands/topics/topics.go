package topics

import (
	"github.com/arthur-debert/sortdir/pkg/topics"
	"github.com/spf13/cobra"
)

// NewCommand creates the topics command
func NewCommand(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics [topic]",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return tm.ListTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return tm.WriteIndex(cmd.OutOrStdout(), cmd.Root().Name())
			}
			return tm.Render(cmd.OutOrStdout(), args[0])
		},
	}
}
