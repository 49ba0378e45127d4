package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/store"
)

func newCheckoutCmd(a *app) *cobra.Command {
	var (
		contact   domain.ContactInfo
		address   domain.Address
		addressID string
		payment   domain.PaymentInfo
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			checkout, err := a.checkoutStore(ctx)
			if err != nil {
				return err
			}

			if addressID != "" {
				saved := a.client.Addresses(ctx)
				if err := resultErr(saved); err != nil {
					return err
				}
				found := false
				for _, addr := range saved.Data {
					if addr.ID == addressID {
						address, found = addr, true
						break
					}
				}
				if !found {
					return fmt.Errorf("address %q not found", addressID)
				}
			}

			checkout.SetContact(contact)
			if address.Line1 != "" || address.ID != "" {
				checkout.SetAddress(address)
			}
			summary := checkout.PrepareSummary()
			if payment.Method != "" {
				checkout.SetPayment(payment)
			}

			out := cmd.OutOrStdout()
			for _, line := range summary.Lines {
				fmt.Fprintf(out, "%s\t%d x %s\n", line.Name, line.Quantity, line.UnitPrice.StringFixed(2))
			}
			fmt.Fprintf(out, "subtotal: %s\nshipping: %s\noverweight: %s\ntotal: %s\n",
				summary.Subtotal, summary.ShippingFee, summary.OverweightSurcharge, summary.GrandTotal)

			if dryRun {
				return nil
			}

			order, err := checkout.Submit(ctx)
			if errors.Is(err, store.ErrCheckoutIncomplete) {
				return fmt.Errorf("%w, see checkout --help", err)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "order %s %s, %s\n", order.ID, order.Status, order.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&contact.Name, "name", "", "contact name")
	cmd.Flags().StringVar(&contact.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&contact.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&addressID, "address-id", "", "use a saved address")
	cmd.Flags().StringVar(&address.Line1, "line1", "", "street address")
	cmd.Flags().StringVar(&address.Line2, "line2", "", "apartment, suite")
	cmd.Flags().StringVar(&address.City, "city", "", "city")
	cmd.Flags().StringVar(&address.Region, "region", "", "region")
	cmd.Flags().StringVar(&address.PostalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&payment.Method, "payment", "", "payment method, e.g. cod or card")
	cmd.Flags().StringVar(&payment.Reference, "payment-ref", "", "payment reference")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the summary without ordering")

	return cmd
}
