package main

import (
	"fmt"
	"io"

	"postboard/internal/model"
	"postboard/internal/ui"
	"postboard/internal/ui/component"

	"github.com/spf13/cobra"
)

const defaultPrintWidth = 80

func newPostsCmd(f *flags) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Print remote posts as cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), *f)
			if err != nil {
				return err
			}
			defer e.Close()
			items := e.fetcher.Items(cmd.Context(), e.cfg.PostsLimit)
			return printPosts(cmd.OutOrStdout(), items, width)
		},
	}
	cmd.Flags().IntVar(&width, "width", defaultPrintWidth, "card width in columns")
	return cmd
}

func newUsersCmd(f *flags) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Print remote users as cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), *f)
			if err != nil {
				return err
			}
			defer e.Close()
			users := e.fetcher.Users(cmd.Context())
			return printUsers(cmd.OutOrStdout(), users, width)
		},
	}
	cmd.Flags().IntVar(&width, "width", defaultPrintWidth, "card width in columns")
	return cmd
}

func printPosts(w io.Writer, items []model.Item, width int) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, ui.Styles.Empty.Render(ui.EmptyPostsText))
		return err
	}
	for _, it := range items {
		if _, err := fmt.Fprintln(w, component.PostCard{Post: it}.View(width, false)); err != nil {
			return err
		}
	}
	return nil
}

func printUsers(w io.Writer, users []model.User, width int) error {
	if len(users) == 0 {
		_, err := fmt.Fprintln(w, ui.Styles.Empty.Render(ui.EmptyUsersText))
		return err
	}
	for _, u := range users {
		if _, err := fmt.Fprintln(w, component.UserCard{User: u}.View(width)); err != nil {
			return err
		}
	}
	return nil
}
