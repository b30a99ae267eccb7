package main

import (
	"github.com/hfashion/storefront/internal/domain/user"
	"github.com/spf13/cobra"
)

func newWishlistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Show saved products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := a.client.Wishlist(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), w)
		},
	}

	add := &cobra.Command{
		Use:   "add PRODUCT_ID",
		Short: "Save a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.client.AddToWishlist(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), w)
		},
	}

	remove := &cobra.Command{
		Use:   "remove PRODUCT_ID",
		Short: "Drop a saved product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.client.RemoveFromWishlist(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), w)
		},
	}

	cmd.AddCommand(add, remove)
	return cmd
}

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Show the account profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := a.client.Profile(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	}

	var name, email string
	update := &cobra.Command{
		Use:   "update",
		Short: "Change the profile name or email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req user.UpdateProfileRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}
			u, err := a.client.UpdateProfile(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	}
	update.Flags().StringVar(&name, "name", "", "display name")
	update.Flags().StringVar(&email, "email", "", "email address")
	update.MarkFlagsOneRequired("name", "email")

	cmd.AddCommand(update)
	return cmd
}
