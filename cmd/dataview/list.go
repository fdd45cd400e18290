package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"production-board/internal/dataview"
	"production-board/internal/model"
	"production-board/internal/view"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Filter and sort a collection and print the result.",
		Example: `  dataview list -k tasks -f tasks.json --status done --sort priority --direction desc
  dataview list -k notes -f notes.json --query camera --due "next friday"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kindName, _ := cmd.Flags().GetString("kind")
			kind, err := view.ParseKind(kindName)
			if err != nil {
				return fmt.Errorf("%w: %q", err, kindName)
			}

			file, _ := cmd.Flags().GetString("file")
			data, err := readInput(cmd, file)
			if err != nil {
				return err
			}

			due, _ := cmd.Flags().GetString("due")
			patch := patchFromFlags(cmd.Flags())

			var out any
			switch kind {
			case view.KindShots:
				out, err = runList(cmd.Context(), data, patch, due, a.uc.ListShots)
			case view.KindTasks:
				out, err = runList(cmd.Context(), data, patch, due, a.uc.ListTasks)
			case view.KindNotes:
				out, err = runList(cmd.Context(), data, patch, due, a.uc.ListNotes)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringP("kind", "k", string(view.KindTasks), "Collection kind: shots, tasks or notes")
	cmd.Flags().StringP("file", "f", "-", "JSON file with items (- for stdin)")
	cmd.Flags().StringP("query", "q", "", "Search text")
	cmd.Flags().String("category", "", "Category filter (All for none)")
	cmd.Flags().String("status", "", "Status filter (All for none)")
	cmd.Flags().String("priority", "", "Priority filter (All for none)")
	cmd.Flags().StringP("sort", "s", "", "Sort key: alpha, status, priority, dueDate, created, modified or any field name")
	cmd.Flags().StringP("direction", "d", "", "Sort direction: asc or desc")
	cmd.Flags().String("due", "", `Drop items due after this day ("today", "in 3 days", "2024-03-10")`)
	return cmd
}

// patchFromFlags sets only the fields whose flags were given, so configured
// defaults apply to the rest.
func patchFromFlags(flags *pflag.FlagSet) dataview.StatePatch {
	var p dataview.StatePatch
	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	p.Query = str("query")
	p.Category = str("category")
	p.Status = str("status")
	p.Priority = str("priority")
	if s := str("sort"); s != nil {
		spec := dataview.ParseSort(*s)
		p.SortBy = &spec
	}
	if d := str("direction"); d != nil {
		dir := dataview.Direction(*d)
		p.SortDirection = &dir
	}
	return p
}

func runList[T model.Entity](
	ctx context.Context,
	data []byte,
	patch dataview.StatePatch,
	due string,
	run func(context.Context, view.ListInput[T]) (view.ListOutput[T], error),
) (view.ListOutput[T], error) {
	var items model.Collection[T]
	if err := json.Unmarshal(data, &items); err != nil {
		return view.ListOutput[T]{}, fmt.Errorf("decode items: %w", err)
	}
	return run(ctx, view.ListInput[T]{
		Items: items,
		State: patch,
		Due:   due,
	})
}
