package cli

import (
	"fmt"

	"github.com/blog-api/internal/notebook"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const dateFormat = "Jan 2, 2006 15:04"

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all posts, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			posts := notebook.Newest(a.store.SeedIfEmpty())
			out := cmd.OutOrStdout()

			if len(posts) == 0 {
				fmt.Fprintln(out, "No posts yet. Create one with: notebook create")
				return nil
			}

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Title", "Author", "Created", "ID"})
			table.SetAutoWrapText(false)
			for _, p := range posts {
				table.Append([]string{p.Title, p.Author, p.CreatedAt.Local().Format(dateFormat), p.ID})
			}
			table.Render()
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			post, ok := a.store.Get(args[0])
			if !ok {
				return errPostNotFound
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, post.Title)
			fmt.Fprintf(out, "By %s on %s\n", post.Author, post.CreatedAt.Local().Format(dateFormat))
			if !post.LastModified.Equal(post.CreatedAt) {
				fmt.Fprintf(out, "Last modified %s\n", post.LastModified.Local().Format(dateFormat))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, post.Content)
			return nil
		},
	}
}
