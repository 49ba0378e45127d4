package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nikolayk812/storefront/internal/domain"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the cart",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the cart with effective prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cart, err := a.cartStore(cmd.Context())
			if err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), cart.Snapshot())
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add PRODUCT_ID [QUANTITY]",
		Short: "Add a product, merging with an existing line",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity := 1
			if len(args) == 2 {
				q, err := parseQuantity(args[1])
				if err != nil {
					return err
				}
				quantity = q
			}

			product, err := a.findProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cart, err := a.cartStore(cmd.Context())
			if err != nil {
				return err
			}
			cart.AddItem(product.CartItem(), quantity)
			printCart(cmd.OutOrStdout(), cart.Snapshot())
			return nil
		},
	}

	update := &cobra.Command{
		Use:   "update PRODUCT_ID QUANTITY",
		Short: "Set a line quantity, zero removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := parseQuantity(args[1])
			if err != nil {
				return err
			}

			cart, err := a.cartStore(cmd.Context())
			if err != nil {
				return err
			}
			cart.UpdateQuantity(args[0], quantity)
			printCart(cmd.OutOrStdout(), cart.Snapshot())
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove PRODUCT_ID",
		Short: "Remove a line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cart, err := a.cartStore(cmd.Context())
			if err != nil {
				return err
			}
			cart.RemoveItem(args[0])
			printCart(cmd.OutOrStdout(), cart.Snapshot())
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cart, err := a.cartStore(cmd.Context())
			if err != nil {
				return err
			}
			cart.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "cart is empty")
			return nil
		},
	}

	cmd.AddCommand(show, add, update, remove, clearCmd)
	return cmd
}

// parseQuantity accepts 0 to domain.MaxQuantity; zero means remove on update.
func parseQuantity(s string) (int, error) {
	q, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("quantity %q is not a number", s)
	}
	if q < 0 || q > domain.MaxQuantity {
		return 0, fmt.Errorf("quantity %d must be between 0 and %d", q, domain.MaxQuantity)
	}
	return q, nil
}

func printCart(out io.Writer, cart domain.Cart) {
	if len(cart.Items) == 0 {
		fmt.Fprintln(out, "cart is empty")
		return
	}
	for _, item := range cart.Items {
		fmt.Fprintf(out, "%s\t%s\t%d x %s\t= %s\n",
			item.ProductID, item.Name, item.Quantity, item.Price.StringFixed(2), item.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(out, "items: %d, total: %s\n", cart.TotalItems(), cart.Total())
}

func newWishlistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage the wishlist",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the wishlist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wishlist, err := a.wishlistStore(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, item := range wishlist.Snapshot().Items {
				fmt.Fprintf(out, "%s\t%s\t%s\n", item.ProductID, item.Name, item.Price.StringFixed(2))
			}
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle PRODUCT_ID",
		Short: "Add the product, or remove it when already saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wishlist, err := a.wishlistStore(cmd.Context())
			if err != nil {
				return err
			}

			// removal does not need the catalog
			if wishlist.Contains(args[0]) {
				wishlist.Remove(args[0])
				fmt.Fprintln(cmd.OutOrStdout(), "removed")
				return nil
			}

			product, err := a.findProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			wishlist.Toggle(product.WishlistItem())
			fmt.Fprintln(cmd.OutOrStdout(), "added")
			return nil
		},
	}

	cmd.AddCommand(show, toggle)
	return cmd
}
