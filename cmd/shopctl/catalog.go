package main

import (
	"fmt"

	"github.com/hfashion/storefront/internal/domain/product"
	"github.com/spf13/cobra"
)

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the storefront is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.client.Health(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return err
		},
	}
}

func newProductsCmd(a *app) *cobra.Command {
	var filter product.ListFilter
	var category string

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter.Category = product.Category(category)
			products, err := a.client.Products(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), products)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "new-arrivals, men, women or accessories")
	cmd.Flags().BoolVar(&filter.Featured, "featured", false, "only featured products")
	cmd.Flags().BoolVar(&filter.Trending, "trending", false, "only trending products")
	cmd.Flags().StringVar(&filter.Sort, "sort", "", "price_asc or price_desc")

	var limit int
	search := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search products by name, description or category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := a.client.Search(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), products)
		},
	}
	search.Flags().IntVar(&limit, "limit", 0, "maximum results (server default when 0)")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.client.Product(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}

	cmd.AddCommand(get, search)
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List departments with product counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories, err := a.client.Categories(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), categories)
		},
	}
}

func newEventsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Show recent tracking events of this session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			events, err := a.client.Events(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), events)
		},
	}
}
