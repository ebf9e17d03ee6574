package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFormCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Inspect forms",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("form", args[0])
			if err != nil {
				return err
			}

			client, err := opts.client()
			if err != nil {
				return err
			}

			form, err := client.FindFormByID(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("find form %d: %w", id, err)
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), form)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatForm(form))
			return nil
		},
	})

	return cmd
}

func parseID(kind, s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", kind, s)
	}
	return id, nil
}
