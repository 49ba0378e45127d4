package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nikolayk812/storefront/internal/api"
	"github.com/nikolayk812/storefront/internal/domain"
)

func newHomeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show categories, banners and featured products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.home.Get(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "categories:")
			for _, c := range data.Categories {
				fmt.Fprintf(out, "  %s\t%s\n", c.ID, c.Name)
			}
			fmt.Fprintf(out, "banners: %d\n", len(data.Banners))
			fmt.Fprintln(out, "products:")
			printProducts(out, data.Products)
			return nil
		},
	}
}

func newProductsCmd(a *app) *cobra.Command {
	var (
		query  api.ProductQuery
		filter domain.ProductFilter
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Search the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := a.client.Products(cmd.Context(), query)
			if err := resultErr(result); err != nil {
				return err
			}

			printProducts(cmd.OutOrStdout(), domain.FilterProducts(result.Data, filter))
			return nil
		},
	}
	cmd.Flags().StringVar(&query.Search, "search", "", "server side search")
	cmd.Flags().StringVar(&query.CategoryID, "category", "", "category id")
	cmd.Flags().StringVar(&filter.Query, "name", "", "name contains, applied locally")
	cmd.Flags().BoolVar(&filter.InStockOnly, "in-stock", false, "only products in stock")

	return cmd
}

func printProducts(out io.Writer, products []domain.Product) {
	for _, p := range products {
		stock := "in stock"
		if !p.InStock {
			stock = "sold out"
		}
		fmt.Fprintf(out, "  %s\t%s\t%s\t%s", p.ID, p.Name, p.RetailPrice.StringFixed(2), stock)
		for _, tier := range p.WholesaleTiers {
			fmt.Fprintf(out, "\t%d+ @ %s", tier.MinQuantity, tier.UnitPrice.StringFixed(2))
		}
		fmt.Fprintln(out)
	}
}
