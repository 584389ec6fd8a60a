package cli

import (
	"github.com/blog-api/internal/notebook"
	"github.com/blog-api/internal/validation"
	"github.com/spf13/cobra"
)

func (a *app) createCmd() *cobra.Command {
	var form validation.NoteForm

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Write a new post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if errs := validation.ValidateNoteForm(form); len(errs) > 0 {
				printFieldErrors(cmd.ErrOrStderr(), errs)
				return errInvalidForm
			}

			post, ok := a.store.Create(notebook.PostFromForm(form))
			if !ok {
				return errSaveFailed
			}
			printSuccess(cmd.OutOrStdout(), "Created post %s", post.ID)
			return nil
		},
	}

	addFormFlags(cmd, &form)
	return cmd
}

func (a *app) editCmd() *cobra.Command {
	var form validation.NoteForm

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title, author or content of a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			existing, ok := a.store.Get(args[0])
			if !ok {
				return errPostNotFound
			}

			// Fields without a flag keep their current value.
			merged := validation.NoteForm{Title: existing.Title, Author: existing.Author, Content: existing.Content}
			flags := cmd.Flags()
			if flags.Changed("title") {
				merged.Title = form.Title
			}
			if flags.Changed("author") {
				merged.Author = form.Author
			}
			if flags.Changed("content") {
				merged.Content = form.Content
			}

			if errs := validation.ValidateNoteForm(merged); len(errs) > 0 {
				printFieldErrors(cmd.ErrOrStderr(), errs)
				return errInvalidForm
			}

			post := notebook.PostFromForm(merged)
			post.ID = existing.ID
			if !a.store.Update(post) {
				return errSaveFailed
			}
			printSuccess(cmd.OutOrStdout(), "Updated post %s", post.ID)
			return nil
		},
	}

	addFormFlags(cmd, &form)
	return cmd
}

func addFormFlags(cmd *cobra.Command, form *validation.NoteForm) {
	cmd.Flags().StringVarP(&form.Title, "title", "t", "", "post title (at least 3 characters)")
	cmd.Flags().StringVarP(&form.Author, "author", "a", "", "author name (at least 2 characters)")
	cmd.Flags().StringVarP(&form.Content, "content", "c", "", "post content (at least 10 characters)")
}
