package commands

import (
	"fmt"
	"net/netip"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/petal-labs/smsru-go/cli/config"
	"github.com/petal-labs/smsru-go/core"
)

// messageFlags are shared by send and cost.
type messageFlags struct {
	to       []string
	text     string
	toText   []string
	from     string
	translit bool
}

func (f *messageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.to, "to", nil, "recipient phone numbers, comma separated or repeated")
	cmd.Flags().StringVar(&f.text, "text", "", "message text for every --to recipient")
	cmd.Flags().StringArrayVar(&f.toText, "to-text", nil, "PHONE=TEXT pair for per-recipient messages (repeatable)")
	cmd.Flags().StringVar(&f.from, "from", "", "approved sender name (default is the profile sender)")
	cmd.Flags().BoolVar(&f.translit, "translit", false, "transliterate Cyrillic text")
}

func (a *App) newSendCommand() *cobra.Command {
	var (
		flags     messageFlags
		ip        string
		at        string
		ttl       int
		daytime   bool
		test      bool
		partnerID string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send an SMS",
		Long: `Send an SMS to one or more recipients (sms/send).

A response can be OK while single recipients failed; each recipient is
reported and the command exits with code 2 if any of them failed.

Examples:
  smsru send --to +79251234567 --text "Hello"
  smsru send --to 79251234567,79031234567 --text "Hello" --test
  smsru send --to-text 79251234567="Hi Ann" --to-text 79031234567="Hi Bob"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, profile, err := a.newClient()
			if err != nil {
				return err
			}

			recipients, err := a.recipients(flags)
			if err != nil {
				return a.fail(ExitValidation, "validation_error", err)
			}

			opts := core.SendOptions{
				Daytime:  daytime,
				Translit: flags.translit,
				Test:     test || profile.Test,
			}
			if opts.From, err = senderID(flags.from, profile); err != nil {
				return a.fail(ExitValidation, "validation_error", err)
			}
			if ip != "" {
				addr, perr := netip.ParseAddr(ip)
				if perr != nil {
					return a.fail(ExitValidation, "validation_error",
						&core.ValidationError{Field: "ip", Input: ip, Reason: perr.Error(), Err: core.ErrInvalidFormat})
				}
				opts.IP = addr
			}
			if at != "" {
				ts, terr := parseSendTime(at)
				if terr != nil {
					return a.fail(ExitValidation, "validation_error", terr)
				}
				opts.Time = &ts
			}
			if cmd.Flags().Changed("ttl") {
				minutes, terr := core.NewTTLMinutes(ttl)
				if terr != nil {
					return a.fail(ExitValidation, "validation_error", terr)
				}
				opts.TTL = &minutes
			}
			if partnerID != "" {
				pid, perr := core.NewPartnerID(partnerID)
				if perr != nil {
					return a.fail(ExitValidation, "validation_error", perr)
				}
				opts.PartnerID = &pid
			}

			req, err := core.NewSendSMS(recipients, opts)
			if err != nil {
				return a.fail(ExitValidation, "validation_error", err)
			}

			resp, err := client.SendSMS(cmd.Context(), req)
			if err != nil {
				return a.handleError(err)
			}

			if a.jsonOutput {
				if err := a.outputJSON(resp); err != nil {
					return err
				}
			} else {
				a.printSendResult(resp)
			}
			return a.recipientFailures(resp.SMS)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&ip, "ip", "", "end user IP address for fraud checks")
	cmd.Flags().StringVar(&at, "time", "", "delayed send: unix seconds or RFC 3339 time")
	cmd.Flags().IntVar(&ttl, "ttl", 0, "message lifetime in minutes (1-1440)")
	cmd.Flags().BoolVar(&daytime, "daytime", false, "deliver only in the recipient's daytime")
	cmd.Flags().BoolVar(&test, "test", false, "test mode: nothing is sent or charged")
	cmd.Flags().StringVar(&partnerID, "partner-id", "", "SMS.RU partner program id")

	return cmd
}

func (a *App) newCostCommand() *cobra.Command {
	var flags messageFlags

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Price an SMS without sending it",
		Long: `Price an SMS for one or more recipients (sms/cost).

Examples:
  smsru cost --to +79251234567 --text "Hello"
  smsru cost --to-text 79251234567="Hi Ann" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, profile, err := a.newClient()
			if err != nil {
				return err
			}

			recipients, err := a.recipients(flags)
			if err != nil {
				return a.fail(ExitValidation, "validation_error", err)
			}

			opts := core.CostOptions{Translit: flags.translit}
			if opts.From, err = senderID(flags.from, profile); err != nil {
				return a.fail(ExitValidation, "validation_error", err)
			}

			req, err := core.NewCheckCost(recipients, opts)
			if err != nil {
				return a.fail(ExitValidation, "validation_error", err)
			}

			resp, err := client.CheckCost(cmd.Context(), req)
			if err != nil {
				return a.handleError(err)
			}

			if a.jsonOutput {
				return a.outputJSON(resp)
			}

			fmt.Fprintf(a.stdout, "Total: %s for %s SMS\n", moneyText(resp.TotalCost), intText(resp.TotalSMS))
			for _, phone := range sortedPhones(resp.SMS) {
				item := resp.SMS[phone]
				if item.OK() {
					fmt.Fprintf(a.stdout, "  %s  %s (%s SMS)\n", phone, moneyText(item.Cost), intText(item.SMS))
					continue
				}
				fmt.Fprintf(a.stdout, "  %s  %s\n", phone, envelopeText(item.Envelope))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// recipients builds either a to-many or a per-recipient message set.
func (a *App) recipients(f messageFlags) (core.Recipients, error) {
	if len(f.toText) > 0 {
		if len(f.to) > 0 || f.text != "" {
			return core.Recipients{}, fmt.Errorf("--to-text cannot be combined with --to or --text")
		}
		messages := make(map[core.RawPhoneNumber]core.MessageText, len(f.toText))
		for _, pair := range f.toText {
			rawPhone, rawText, ok := strings.Cut(pair, "=")
			if !ok {
				return core.Recipients{}, fmt.Errorf("invalid --to-text %q: want PHONE=TEXT", pair)
			}
			phone, err := a.parsePhone(rawPhone)
			if err != nil {
				return core.Recipients{}, err
			}
			text, err := core.NewMessageText(rawText)
			if err != nil {
				return core.Recipients{}, err
			}
			messages[phone] = text
		}
		return core.PerRecipient(messages), nil
	}

	if len(f.to) == 0 {
		return core.Recipients{}, fmt.Errorf("recipients required: use --to or --to-text")
	}
	phones := make([]core.RawPhoneNumber, 0, len(f.to))
	for _, raw := range f.to {
		phone, err := a.parsePhone(raw)
		if err != nil {
			return core.Recipients{}, err
		}
		phones = append(phones, phone)
	}
	text, err := core.NewMessageText(f.text)
	if err != nil {
		return core.Recipients{}, err
	}
	return core.ToMany(phones, text), nil
}

// parsePhone normalizes a number to E.164 using the configured region.
func (a *App) parsePhone(raw string) (core.RawPhoneNumber, error) {
	phone, err := core.ParsePhoneNumber(a.region, raw)
	if err != nil {
		return core.RawPhoneNumber{}, err
	}
	return phone.RawPhoneNumber(), nil
}

func senderID(flag string, profile *config.ProfileConfig) (*core.SenderID, error) {
	name := flag
	if name == "" {
		name = profile.Sender
	}
	if name == "" {
		return nil, nil
	}
	id, err := core.NewSenderID(name)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseSendTime(value string) (core.UnixTimestamp, error) {
	if sec, err := strconv.ParseUint(value, 10, 64); err == nil {
		return core.UnixTimestamp(sec), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return 0, &core.ValidationError{
			Field:  core.FieldTime,
			Input:  value,
			Reason: "expected unix seconds or RFC 3339",
			Err:    core.ErrInvalidFormat,
		}
	}
	return core.UnixTimestampFromTime(t)
}

func (a *App) printSendResult(resp *core.SendSMSResponse) {
	fmt.Fprintf(a.stdout, "Balance: %s\n", moneyText(resp.Balance))
	for _, phone := range sortedPhones(resp.SMS) {
		item := resp.SMS[phone]
		if item.OK() && item.SMSID != nil {
			fmt.Fprintf(a.stdout, "  %s  sent, sms_id %s\n", phone, item.SMSID)
			continue
		}
		fmt.Fprintf(a.stdout, "  %s  %s\n", phone, envelopeText(item.Envelope))
	}
}

// recipientFailures returns an exit error when any recipient failed.
func (a *App) recipientFailures(items map[core.RawPhoneNumber]core.SMSResult) error {
	failed := 0
	for _, item := range items {
		if !item.OK() {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return exitWithCode(ExitProvider, fmt.Errorf("%d of %d recipients failed", failed, len(items)))
}

func sortedPhones[V any](m map[core.RawPhoneNumber]V) []core.RawPhoneNumber {
	phones := make([]core.RawPhoneNumber, 0, len(m))
	for p := range m {
		phones = append(phones, p)
	}
	sort.Slice(phones, func(i, j int) bool { return phones[i].String() < phones[j].String() })
	return phones
}

func envelopeText(e core.Envelope) string {
	s := fmt.Sprintf("%s %d", e.Status, e.StatusCode)
	if text := e.Text(); text != "" {
		s += " " + text
	}
	return s
}

func moneyText(m *core.Money) string {
	if m == nil {
		return "-"
	}
	return m.String()
}

func intText(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}
