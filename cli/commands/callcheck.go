package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petal-labs/smsru-go/core"
)

func (a *App) newCallcheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "callcheck",
		Short: "Verify a phone number by an incoming call",
		Long: `Verify a phone number: the user calls the number SMS.RU hands out,
then the check is polled until it is confirmed or expires.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <phone>",
		Short: "Start a call check (callcheck/add)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phone, err := a.parsePhone(args[0])
			if err != nil {
				return a.fail(ExitValidation, "validation_error", err)
			}

			client, _, err := a.newClient()
			if err != nil {
				return err
			}

			resp, err := client.StartCallAuth(cmd.Context(), core.StartCallAuth{Phone: phone})
			if err != nil {
				return a.handleError(err)
			}

			if a.jsonOutput {
				return a.outputJSON(resp)
			}
			if resp.CheckID != nil {
				fmt.Fprintf(a.stdout, "Check ID: %s\n", resp.CheckID)
			}
			switch {
			case resp.CallPhonePretty != nil:
				fmt.Fprintf(a.stdout, "Ask the user to call: %s\n", *resp.CallPhonePretty)
			case resp.CallPhone != nil:
				fmt.Fprintf(a.stdout, "Ask the user to call: %s\n", resp.CallPhone)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status <check_id>",
		Short: "Poll a call check (callcheck/status)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := core.NewCallCheckID(args[0])
			if err != nil {
				return a.fail(ExitValidation, "validation_error", err)
			}

			client, _, err := a.newClient()
			if err != nil {
				return err
			}

			resp, err := client.CheckCallAuthStatus(cmd.Context(), core.CheckCallAuthStatus{CheckID: id})
			if err != nil {
				return a.handleError(err)
			}

			if a.jsonOutput {
				return a.outputJSON(resp)
			}
			fmt.Fprintln(a.stdout, callCheckText(resp))
			return nil
		},
	})

	return cmd
}

func callCheckText(resp *core.CallAuthStatusResponse) string {
	if resp.CheckStatus == nil {
		return "unknown"
	}
	var s string
	known, ok := resp.CheckStatus.Known()
	switch {
	case !ok:
		s = fmt.Sprintf("status %d", *resp.CheckStatus)
	case known == core.CallCheckConfirmed:
		s = "confirmed"
	case known == core.CallCheckNotConfirmedYet:
		s = "not confirmed yet"
	default:
		s = "expired or invalid check id"
	}
	if resp.CheckStatusText != nil && *resp.CheckStatusText != "" {
		s += " (" + *resp.CheckStatusText + ")"
	}
	return s
}
