package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	convertkit "github.com/listinterop/convertkit-go"
)

func newSubscribeCmd(opts *rootOptions) *cobra.Command {
	var (
		firstName string
		tags      []string
	)

	cmd := &cobra.Command{
		Use:   "subscribe <form-id> <email>",
		Short: "Subscribe an address to a form",
		Long: `Subscribe an address to a form.

Each --tag is a tag ID when it is all digits and a tag name otherwise.
Tags that do not exist are skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formID, err := parseID("form", args[0])
			if err != nil {
				return err
			}
			email := args[1]

			refs := make([]convertkit.TagRef, 0, len(tags))
			for _, tag := range tags {
				refs = append(refs, parseTagRef(tag))
			}

			client, err := opts.client()
			if err != nil {
				return err
			}

			if err := client.SubscribeToForm(cmd.Context(), formID, email, firstName, refs...); err != nil {
				return fmt.Errorf("subscribe: %w", err)
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"form": formID, "email": email})
			}
			fmt.Fprint(cmd.OutOrStdout(), success(fmt.Sprintf("Subscribed %s to form %d", email, formID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "subscriber first name")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "tag name or ID to apply (repeatable)")
	return cmd
}

func parseTagRef(s string) convertkit.TagRef {
	if id, err := strconv.Atoi(s); err == nil {
		return convertkit.TagID(id)
	}
	return convertkit.TagName(s)
}
