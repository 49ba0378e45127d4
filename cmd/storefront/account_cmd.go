package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikolayk812/storefront/internal/domain"
)

func newAddressesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addresses",
		Short: "Manage saved addresses",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := a.client.Addresses(cmd.Context())
			if err := resultErr(result); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, addr := range result.Data {
				fmt.Fprintf(out, "%s\t%s\t%s, %s\n", addr.ID, addr.Label, addr.Line1, addr.City)
			}
			return nil
		},
	}

	var addr domain.Address
	add := &cobra.Command{
		Use:   "add",
		Short: "Save a new address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := a.client.CreateAddress(cmd.Context(), addr)
			if err := resultErr(result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", result.Data.ID)
			return nil
		},
	}
	add.Flags().StringVar(&addr.Label, "label", "", "label, e.g. home")
	add.Flags().StringVar(&addr.Line1, "line1", "", "street address")
	add.Flags().StringVar(&addr.Line2, "line2", "", "apartment, suite")
	add.Flags().StringVar(&addr.City, "city", "", "city")
	add.Flags().StringVar(&addr.Region, "region", "", "region")
	add.Flags().StringVar(&addr.PostalCode, "postal-code", "", "postal code")
	add.Flags().StringVar(&addr.Phone, "phone", "", "phone")

	remove := &cobra.Command{
		Use:   "delete ADDRESS_ID",
		Short: "Delete a saved address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resultErr(a.client.DeleteAddress(cmd.Context(), args[0])); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func newChatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to support",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := a.client.ChatMessages(cmd.Context())
			if err := resultErr(result); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range result.Data {
				fmt.Fprintf(out, "[%s] %s: %s\n", m.SentAt.Format("2006-01-02 15:04"), m.From, m.Body)
			}
			return nil
		},
	}

	send := &cobra.Command{
		Use:   "send MESSAGE...",
		Short: "Send a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := a.client.SendChatMessage(cmd.Context(), strings.Join(args, " "))
			if err := resultErr(result); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "sent")
			return nil
		},
	}

	cmd.AddCommand(list, send)
	return cmd
}
