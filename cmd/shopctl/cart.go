package main

import (
	"fmt"
	"strconv"

	"github.com/hfashion/storefront/internal/domain/cart"
	"github.com/spf13/cobra"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the shopping cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client.Cart(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}

	var (
		quantity    int
		size, color string
	)
	add := &cobra.Command{
		Use:   "add PRODUCT_ID",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := cart.AddItemRequest{ProductID: args[0], Quantity: quantity}
			if size != "" {
				req.Size = &size
			}
			if color != "" {
				req.Color = &color
			}
			c, err := a.client.AddToCart(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}
	add.Flags().IntVarP(&quantity, "quantity", "q", 1, "units to add")
	add.Flags().StringVar(&size, "size", "", "size variant")
	add.Flags().StringVar(&color, "color", "", "color variant")

	var lineSize, lineColor string
	update := &cobra.Command{
		Use:   "update PRODUCT_ID QUANTITY",
		Short: "Set the quantity of a product; 0 removes it",
		Long: "Set the quantity of a product; 0 removes it. With --size or --color only\n" +
			"the matching variant line changes.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}

			var c *cart.Cart
			if cmd.Flags().Changed("size") || cmd.Flags().Changed("color") {
				c, err = a.client.UpdateCartLine(cmd.Context(), args[0], lineSize, lineColor, n)
			} else {
				c, err = a.client.UpdateCartItem(cmd.Context(), args[0], n)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}
	update.Flags().StringVar(&lineSize, "size", "", "size of the line to update")
	update.Flags().StringVar(&lineColor, "color", "", "color of the line to update")

	remove := &cobra.Command{
		Use:   "remove PRODUCT_ID",
		Short: "Remove every line of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client.RemoveCartItem(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.client.ClearCart(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}

	cmd.AddCommand(add, update, remove, clearCmd)
	return cmd
}
