package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"production-board/internal/model"
	"production-board/internal/view"
)

func newScheduleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Group shots by date and print the schedule with its date axis and progress.",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			data, err := readInput(cmd, file)
			if err != nil {
				return err
			}

			var shots model.Collection[model.Shot]
			if err := json.Unmarshal(data, &shots); err != nil {
				return fmt.Errorf("decode shots: %w", err)
			}

			out, err := a.uc.Schedule(cmd.Context(), view.ScheduleInput{Shots: shots})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringP("file", "f", "-", "JSON file with shots (- for stdin)")
	return cmd
}
