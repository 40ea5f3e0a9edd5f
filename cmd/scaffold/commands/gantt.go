package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGanttCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gantt <schedule>",
		Short: "Lay out a schedule as a Gantt chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := renderOptions(cmd, args)
			if err != nil {
				return err
			}
			return c.app.Gantt(cmd.Context(), opts)
		},
	}
	addRenderFlags(cmd)
	return cmd
}
