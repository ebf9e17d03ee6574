package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTagCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
		Long:  `List, look up, or create account tags.`,
	}
	cmd.AddCommand(
		newTagListCmd(opts),
		newTagFindCmd(opts),
		newTagCreateCmd(opts),
	)
	return cmd
}

func newTagListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			tags, err := client.ListTags(cmd.Context())
			if err != nil {
				return fmt.Errorf("list tags: %w", err)
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), tags)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatTagList(tags))
			return nil
		},
	}
}

func newTagFindCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "find <name>",
		Short: "Find a tag by name, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			tag, err := client.FindTagByName(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("find tag: %w", err)
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				if tag == nil {
					return writeJSON(out, nil)
				}
				return writeJSON(out, tag)
			}
			if tag == nil {
				fmt.Fprintf(out, "No tag named %q.\n", args[0])
				return nil
			}
			fmt.Fprint(out, formatTag(tag))
			return nil
		},
	}
}

func newTagCreateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>...",
		Short: "Create tags",
		Long:  `Create one tag per name. With "-" as the only argument, names are read from stdin, one per line.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(args) == 1 && args[0] == "-" {
				var err error
				if names, err = readNames(cmd); err != nil {
					return err
				}
			}

			client, err := opts.client()
			if err != nil {
				return err
			}

			if err := client.CreateTag(cmd.Context(), names...); err != nil {
				return fmt.Errorf("create tags: %w", err)
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"created": names})
			}
			fmt.Fprint(cmd.OutOrStdout(), success(fmt.Sprintf("Created %d tag(s): %s", len(names), strings.Join(names, ", "))))
			return nil
		},
	}
}

// readNames reads non-blank lines from the command's input.
func readNames(cmd *cobra.Command) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return names, nil
}
