package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/scaffold/internal/app"
)

func (c *CLI) newCalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar <schedule>",
		Short: "Lay out one month of a schedule as a calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := renderOptions(cmd, args)
			if err != nil {
				return err
			}

			monthArg, _ := cmd.Flags().GetString("month")
			month, err := app.ParseMonth(monthArg)
			if err != nil {
				return err
			}
			interactive, _ := cmd.Flags().GetBool("interactive")

			return c.app.Calendar(cmd.Context(), app.CalendarOptions{
				RenderOptions: opts,
				Month:         month,
				Interactive:   interactive,
			})
		},
	}
	addRenderFlags(cmd)
	cmd.Flags().StringP("month", "m", "", "Month to show as YYYY-MM (default: month of the first task)")
	cmd.Flags().BoolP("interactive", "i", false, "Browse months in the terminal")
	return cmd
}
