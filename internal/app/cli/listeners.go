package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"orderflow/internal/app"
)

func newListenersCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "listeners [event]",
		Short: "Print the call order of the registered listeners",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.NewDispatcher(rt.cfg, rt.log, nil)
			if err != nil {
				return err
			}

			names := d.EventNames()
			if len(args) == 1 {
				names = []string{args[0]}
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				bindings := d.HandlersFor(name)
				fmt.Fprintf(out, "%s (%d)\n", name, len(bindings))
				for i, b := range bindings {
					fmt.Fprintf(out, "  %d. priority=%d seq=%d\n", i+1, b.Priority(), b.Seq())
				}
			}
			return nil
		},
	}
}
