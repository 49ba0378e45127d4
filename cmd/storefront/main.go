package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	a.close()
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	var (
		envFile string
		guest   bool
	)

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront client: catalog, cart, wishlist and checkout",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.open(cmd.Context(), envFile); err != nil {
				return err
			}
			// an explicit guest visit never overrides a stored sign-in
			if guest && !a.session.Session().Authenticated {
				a.session.ContinueAsGuest()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file")
	root.PersistentFlags().BoolVar(&guest, "guest", false, "browse without an account, the cart is not saved")

	root.AddCommand(
		newLoginCmd(a),
		newSignupCmd(a),
		newVerifyCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newHomeCmd(a),
		newProductsCmd(a),
		newCartCmd(a),
		newWishlistCmd(a),
		newCheckoutCmd(a),
		newAddressesCmd(a),
		newChatCmd(a),
	)

	return root
}
