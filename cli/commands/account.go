package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Inspect credentials",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Verify the credentials of the selected profile (auth/check)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.newClient()
			if err != nil {
				return err
			}
			resp, err := client.CheckAuth(cmd.Context())
			if err != nil {
				return a.handleError(err)
			}
			if a.jsonOutput {
				return a.outputJSON(resp)
			}
			fmt.Fprintf(a.stdout, "Credentials for profile %q are valid.\n", a.profile)
			return nil
		},
	})

	return cmd
}

func (a *App) newBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the account balance (my/balance)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.newClient()
			if err != nil {
				return err
			}
			resp, err := client.Balance(cmd.Context())
			if err != nil {
				return a.handleError(err)
			}
			if a.jsonOutput {
				return a.outputJSON(resp)
			}
			fmt.Fprintf(a.stdout, "Balance: %s\n", moneyText(resp.Balance))
			return nil
		},
	}
}

func (a *App) newFreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "free",
		Short: "Show the free message allowance (my/free)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.newClient()
			if err != nil {
				return err
			}
			resp, err := client.FreeUsage(cmd.Context())
			if err != nil {
				return a.handleError(err)
			}
			if a.jsonOutput {
				return a.outputJSON(resp)
			}
			fmt.Fprintf(a.stdout, "Free today: %s of %s used\n", intText(resp.UsedToday), intText(resp.TotalFree))
			return nil
		},
	}
}

func (a *App) newLimitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "limit",
		Short: "Show the daily sending limit (my/limit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.newClient()
			if err != nil {
				return err
			}
			resp, err := client.LimitUsage(cmd.Context())
			if err != nil {
				return a.handleError(err)
			}
			if a.jsonOutput {
				return a.outputJSON(resp)
			}
			fmt.Fprintf(a.stdout, "Limit today: %s of %s used\n", intText(resp.UsedToday), intText(resp.TotalLimit))
			return nil
		},
	}
}

func (a *App) newSendersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "senders",
		Short: "List approved sender names (my/senders)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.newClient()
			if err != nil {
				return err
			}
			resp, err := client.Senders(cmd.Context())
			if err != nil {
				return a.handleError(err)
			}
			if a.jsonOutput {
				return a.outputJSON(resp)
			}
			if len(resp.Senders) == 0 {
				fmt.Fprintln(a.stdout, "No approved senders.")
				return nil
			}
			for _, s := range resp.Senders {
				fmt.Fprintf(a.stdout, "  - %s\n", s)
			}
			return nil
		},
	}
}
