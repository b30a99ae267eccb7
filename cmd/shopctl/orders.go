package main

import (
	"fmt"
	"os"

	"github.com/hfashion/storefront/internal/domain/order"
	"github.com/spf13/cobra"
)

func newOrdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List placed orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders, err := a.client.Orders(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), orders)
		},
	}

	get := &cobra.Command{
		Use:   "get ORDER_ID",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.client.Order(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), o)
		},
	}

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Price the current cart with shipping and tax",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.client.CheckoutSummary(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s)
		},
	}

	var addr order.Address
	place := &cobra.Command{
		Use:   "place",
		Short: "Check out the current cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := a.client.PlaceOrder(cmd.Context(), addr)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), o)
		},
	}
	f := place.Flags()
	f.StringVar(&addr.FirstName, "first-name", "", "recipient first name")
	f.StringVar(&addr.LastName, "last-name", "", "recipient last name")
	f.StringVar(&addr.Address, "address", "", "street address")
	f.StringVar(&addr.City, "city", "", "city")
	f.StringVar(&addr.State, "state", "", "state or region")
	f.StringVar(&addr.ZipCode, "zip", "", "postal code")
	f.StringVar(&addr.Country, "country", "", "country")
	f.StringVar(&addr.Phone, "phone", "", "contact phone")
	for _, name := range []string{"first-name", "last-name", "address", "city", "state", "zip", "phone"} {
		_ = place.MarkFlagRequired(name)
	}

	var out string
	invoice := &cobra.Command{
		Use:   "invoice ORDER_ID",
		Short: "Download the PDF invoice of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.client.Invoice(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			path := out
			if path == "" {
				path = "invoice-" + args[0] + ".pdf"
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write invoice: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", path, len(data))
			return err
		},
	}
	invoice.Flags().StringVarP(&out, "output", "o", "", "output file")

	cmd.AddCommand(get, summary, place, invoice)
	return cmd
}
