package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/petal-labs/smsru-go/cli/keystore"
)

func (a *App) newKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage stored credentials",
		Long: `Manage api_id values and passwords referenced by config profiles.
Values are stored encrypted in ~/.smsru/keys.enc.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <name>",
		Short: "Store a secret under a name",
		Long:  `Store a secret under a name. The value is prompted without echo.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			value, err := a.readSecret(fmt.Sprintf("Enter secret for %s: ", name))
			if err != nil {
				return a.fail(ExitValidation, "input_error", err)
			}
			if value == "" {
				return a.fail(ExitValidation, "validation_error", fmt.Errorf("secret cannot be empty"))
			}

			ks, err := a.newKeystore()
			if err != nil {
				return a.fail(ExitValidation, "keystore_error", fmt.Errorf("failed to open keystore: %w", err))
			}
			if err := ks.Set(name, value); err != nil {
				return a.fail(ExitValidation, "keystore_error", fmt.Errorf("failed to store key: %w", err))
			}

			fmt.Fprintf(a.stdout, "Secret %s stored successfully.\n", name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored names",
		Long:  `List all stored names. Values are never shown.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := a.newKeystore()
			if err != nil {
				return a.fail(ExitValidation, "keystore_error", fmt.Errorf("failed to open keystore: %w", err))
			}
			names, err := ks.List()
			if err != nil {
				return a.fail(ExitValidation, "keystore_error", fmt.Errorf("failed to list keys: %w", err))
			}

			if a.jsonOutput {
				return a.outputJSON(map[string][]string{"keys": names})
			}
			if len(names) == 0 {
				fmt.Fprintln(a.stdout, "No secrets stored.")
				return nil
			}
			fmt.Fprintln(a.stdout, "Stored keys:")
			for _, name := range names {
				fmt.Fprintf(a.stdout, "  - %s\n", name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			ks, err := a.newKeystore()
			if err != nil {
				return a.fail(ExitValidation, "keystore_error", fmt.Errorf("failed to open keystore: %w", err))
			}
			if err := ks.Delete(name); err != nil {
				if _, ok := err.(*keystore.ErrKeyNotFound); ok {
					return a.fail(ExitValidation, "not_found", fmt.Errorf("no secret stored for %s", name))
				}
				return a.fail(ExitValidation, "keystore_error", fmt.Errorf("failed to delete key: %w", err))
			}

			fmt.Fprintf(a.stdout, "Secret %s deleted.\n", name)
			return nil
		},
	})

	return cmd
}

// readSecret prompts on stderr and reads a line, without echo when stdin is
// a terminal.
func (a *App) readSecret(prompt string) (string, error) {
	fmt.Fprint(a.stderr, prompt)

	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.stderr) // Newline after hidden input
		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	// Fallback for non-terminal (e.g., piped input)
	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return strings.TrimSpace(line), nil
}
