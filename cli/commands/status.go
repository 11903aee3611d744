package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/petal-labs/smsru-go/core"
)

func (a *App) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <sms_id>...",
		Short: "Check delivery status of sent messages",
		Long: `Check the delivery status of up to 100 messages (sms/status).

Example:
  smsru status 000000-10000000 000000-10000001`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]core.SMSID, 0, len(args))
			for _, arg := range args {
				id, err := core.NewSMSID(arg)
				if err != nil {
					return a.fail(ExitValidation, "validation_error", err)
				}
				ids = append(ids, id)
			}
			req, err := core.NewCheckStatus(ids)
			if err != nil {
				return a.fail(ExitValidation, "validation_error", err)
			}

			client, _, err := a.newClient()
			if err != nil {
				return err
			}

			resp, err := client.CheckStatus(cmd.Context(), req)
			if err != nil {
				return a.handleError(err)
			}

			if a.jsonOutput {
				return a.outputJSON(resp)
			}

			keys := make([]core.SMSID, 0, len(resp.SMS))
			for id := range resp.SMS {
				keys = append(keys, id)
			}
			sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

			for _, id := range keys {
				item := resp.SMS[id]
				line := fmt.Sprintf("%s  %s", id, envelopeText(item.Envelope))
				if item.Cost != nil {
					line += ", cost " + item.Cost.String()
				}
				fmt.Fprintln(a.stdout, line)
			}
			return nil
		},
	}
}
