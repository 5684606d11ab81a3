package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hireplan/internal/planner"
)

func monthsCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "months",
		Short: "List month labels between two months (inclusive)",
		RunE: func(cmd *cobra.Command, args []string) error {
			months, err := planner.ExpandMonths(start, end)
			if err != nil {
				return err
			}
			for _, m := range months {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "起始月份 YYYY-MM")
	cmd.Flags().StringVar(&end, "end", "", "结束月份 YYYY-MM")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
