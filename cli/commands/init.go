package commands

import (
	"fmt"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"github.com/petal-labs/smsru-go/cli/config"
)

var validProfileName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

func (a *App) newInitCommand() *cobra.Command {
	var (
		login   string
		sender  string
		baseURL string
		timeout time.Duration
		test    bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create or update a config profile",
		Long: `Create or update a profile in ~/.smsru/config.yaml and store its secret
in the keystore. Without --login the api_id is prompted; with --login the
password is.

Examples:
  smsru init
  smsru init --profile shop --sender MyShop
  smsru init --profile legacy --login 79251234567`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.profile
			if err := validateProfileName(name); err != nil {
				return a.fail(ExitValidation, "validation_error", err)
			}

			profile := config.ProfileConfig{
				Login:   login,
				BaseURL: baseURL,
				Timeout: timeout,
				Sender:  sender,
				Test:    test,
			}
			ref, prompt := name, "Enter api_id: "
			if login != "" {
				ref, prompt = name+"_password", "Enter password: "
				profile.PasswordRef = ref
			} else {
				profile.APIIDRef = ref
			}

			secret, err := a.readSecret(prompt)
			if err != nil {
				return a.fail(ExitValidation, "input_error", err)
			}
			if secret == "" {
				return a.fail(ExitValidation, "validation_error", fmt.Errorf("secret cannot be empty"))
			}

			ks, err := a.newKeystore()
			if err != nil {
				return a.fail(ExitValidation, "keystore_error", fmt.Errorf("failed to open keystore: %w", err))
			}
			if err := ks.Set(ref, secret); err != nil {
				return a.fail(ExitValidation, "keystore_error", fmt.Errorf("failed to store key: %w", err))
			}

			if a.cfg.Profiles == nil {
				a.cfg.Profiles = make(map[string]config.ProfileConfig)
			}
			a.cfg.Profiles[name] = profile
			if a.cfg.DefaultProfile == "" {
				a.cfg.DefaultProfile = name
			}
			if cmd.Flags().Changed("region") {
				a.cfg.Region = a.region
			}

			path := a.configPath()
			if err := a.cfg.Save(path); err != nil {
				return a.fail(ExitValidation, "config_error", fmt.Errorf("failed to write %s: %w", path, err))
			}

			fmt.Fprintf(a.stdout, "Profile %q saved to %s\n\n", name, path)
			fmt.Fprintln(a.stdout, "Next steps:")
			fmt.Fprintf(a.stdout, "  smsru --profile %s auth check\n", name)
			fmt.Fprintf(a.stdout, "  smsru --profile %s send --to <phone> --text \"Hello\" --test\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&login, "login", "", "authenticate with login and password instead of api_id")
	cmd.Flags().StringVar(&sender, "sender", "", "default sender name")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "API base URL (default https://sms.ru)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "request timeout, e.g. 30s")
	cmd.Flags().BoolVar(&test, "test", false, "send in test mode by default")

	return cmd
}

func validateProfileName(name string) error {
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if !validProfileName.MatchString(name) {
		return fmt.Errorf("invalid profile name %q: must start with a letter and contain only letters, numbers, underscores, and hyphens", name)
	}
	return nil
}
