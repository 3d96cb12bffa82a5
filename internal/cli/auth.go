package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orgdesk/orgdesk/internal/session"
	"github.com/orgdesk/orgdesk/pkg/log"
)

func (a *app) signUpCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := a.gw.SignUp(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, msg)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func (a *app) signInCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Exchange credentials for an access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.gw.SignIn(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := a.sessions.Save(token); err != nil {
				return err
			}
			log.Debugf("credential stored at %s", a.cfg.Session.File)
			fmt.Fprintf(a.out, "signed in as %s\n", email)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func (a *app) signOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Discard the stored credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sessions.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "signed out")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the resolved identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session.Resolve(cmd.Context(), a.sessions, a.gw)
			if sess.Anonymous() {
				fmt.Fprintln(a.out, "anonymous")
				return nil
			}
			fmt.Fprintf(a.out, "%s (user %d)\n", sess.User.Email, sess.User.ID)
			if exp, ok := session.PeekExpiry(a.sessions.Token()); ok {
				fmt.Fprintf(a.out, "credential expires %s\n", exp.Format("2006-01-02 15:04:05 MST"))
			}
			return nil
		},
	}
}
