package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/scaffold/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <schedule>",
		Short: "Re-render whenever the schedule or settings change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := renderOptions(cmd, args)
			if err != nil {
				return err
			}

			viewArg, _ := cmd.Flags().GetString("view")
			view, err := app.ParseView(viewArg)
			if err != nil {
				return err
			}
			monthArg, _ := cmd.Flags().GetString("month")
			month, err := app.ParseMonth(monthArg)
			if err != nil {
				return err
			}
			interactive, _ := cmd.Flags().GetBool("interactive")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				RenderOptions: opts,
				View:          view,
				Month:         month,
				Interactive:   interactive,
			})
		},
	}
	addRenderFlags(cmd)
	cmd.Flags().String("view", "gantt", "Layout to render: gantt or calendar")
	cmd.Flags().StringP("month", "m", "", "Calendar month as YYYY-MM")
	cmd.Flags().BoolP("interactive", "i", false, "Browse the calendar in the terminal, reloading on change")
	return cmd
}
