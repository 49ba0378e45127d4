package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikolayk812/storefront/internal/api"
)

func newLoginCmd(a *app) *cobra.Command {
	var creds api.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with login and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.auth.Login(cmd.Context(), creds); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", a.session.Session().User.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&creds.Login, "login", "", "email or phone")
	cmd.Flags().StringVar(&creds.Password, "password", "", "password")

	return cmd
}

func newSignupCmd(a *app) *cobra.Command {
	var req api.SignupRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register an account, then confirm it with verify",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := a.client.Signup(cmd.Context(), req)
			if err := resultErr(result); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Data)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")

	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	var (
		req    api.OTPRequest
		resend bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Confirm a phone number with a one-time code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if resend {
				result := a.client.ResendOTP(cmd.Context(), req.Phone)
				if err := resultErr(result); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Data)
				return nil
			}

			if err := a.auth.VerifyOTP(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "verified, signed in as %s\n", a.session.Session().User.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone")
	cmd.Flags().StringVar(&req.Code, "code", "", "one-time code")
	cmd.Flags().BoolVar(&resend, "resend", false, "request a new code instead")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.session.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("session.Logout: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := a.session.Session()
			out := cmd.OutOrStdout()
			switch {
			case !session.Authenticated:
				fmt.Fprintln(out, "not signed in")
			case session.IsGuest():
				fmt.Fprintln(out, "guest")
			default:
				fmt.Fprintf(out, "%s <%s> id=%s\n", session.User.Name, session.User.Email, session.User.ID)
			}
			return nil
		},
	}
}
