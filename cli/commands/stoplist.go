package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petal-labs/smsru-go/core"
)

func (a *App) newStoplistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stoplist",
		Short: "Manage numbers that never receive messages",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <phone> <note>",
		Short: "Block a number (stoplist/add)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			phone, err := a.parsePhone(args[0])
			if err != nil {
				return a.fail(ExitValidation, "validation_error", err)
			}
			text, err := core.NewStoplistText(args[1])
			if err != nil {
				return a.fail(ExitValidation, "validation_error", err)
			}
			client, _, err := a.newClient()
			if err != nil {
				return err
			}
			resp, err := client.AddStoplistEntry(cmd.Context(), core.AddStoplistEntry{Phone: phone, Text: text})
			if err != nil {
				return a.handleError(err)
			}
			if a.jsonOutput {
				return a.outputJSON(resp)
			}
			fmt.Fprintf(a.stdout, "%s added to the stoplist.\n", phone)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "del <phone>",
		Short: "Unblock a number (stoplist/del)",
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
			resp, err := client.RemoveStoplistEntry(cmd.Context(), core.RemoveStoplistEntry{Phone: phone})
			if err != nil {
				return a.handleError(err)
			}
			if a.jsonOutput {
				return a.outputJSON(resp)
			}
			fmt.Fprintf(a.stdout, "%s removed from the stoplist.\n", phone)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "List blocked numbers (stoplist/get)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.newClient()
			if err != nil {
				return err
			}
			resp, err := client.Stoplist(cmd.Context())
			if err != nil {
				return a.handleError(err)
			}
			if a.jsonOutput {
				return a.outputJSON(resp)
			}
			if len(resp.Stoplist) == 0 {
				fmt.Fprintln(a.stdout, "Stoplist is empty.")
				return nil
			}
			for _, phone := range sortedPhones(resp.Stoplist) {
				fmt.Fprintf(a.stdout, "  %s  %s\n", phone, resp.Stoplist[phone])
			}
			return nil
		},
	})

	return cmd
}

func (a *App) newCallbacksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "callbacks",
		Short: "Manage delivery report URLs",
	}

	printCallbacks := func(resp *core.CallbacksResponse) error {
		if a.jsonOutput {
			return a.outputJSON(resp)
		}
		if len(resp.Callbacks) == 0 {
			fmt.Fprintln(a.stdout, "No callbacks registered.")
			return nil
		}
		for _, u := range resp.Callbacks {
			fmt.Fprintf(a.stdout, "  - %s\n", u)
		}
		return nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <url>",
		Short: "Register a callback URL (callback/add)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := core.NewCallbackURL(args[0])
			if err != nil {
				return a.fail(ExitValidation, "validation_error", err)
			}
			client, _, err := a.newClient()
			if err != nil {
				return err
			}
			resp, err := client.AddCallback(cmd.Context(), core.AddCallback{URL: u})
			if err != nil {
				return a.handleError(err)
			}
			return printCallbacks(resp)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "del <url>",
		Short: "Unregister a callback URL (callback/del)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := core.NewCallbackURL(args[0])
			if err != nil {
				return a.fail(ExitValidation, "validation_error", err)
			}
			client, _, err := a.newClient()
			if err != nil {
				return err
			}
			resp, err := client.RemoveCallback(cmd.Context(), core.RemoveCallback{URL: u})
			if err != nil {
				return a.handleError(err)
			}
			return printCallbacks(resp)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "List callback URLs (callback/get)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := a.newClient()
			if err != nil {
				return err
			}
			resp, err := client.Callbacks(cmd.Context())
			if err != nil {
				return a.handleError(err)
			}
			return printCallbacks(resp)
		},
	})

	return cmd
}
