package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/spf13/cobra"

	"github.com/petal-labs/smsru-go/cli/config"
	"github.com/petal-labs/smsru-go/cli/keystore"
	"github.com/petal-labs/smsru-go/core"
	"github.com/petal-labs/smsru-go/smsru"
)

// ConfigLoader loads CLI config from a path.
type ConfigLoader func(path string) (*config.Config, error)

// ClientFactory creates an API client for resolved credentials.
type ClientFactory func(auth core.Auth, opts ...smsru.Option) *smsru.Client

// KeystoreFactory creates a keystore instance.
type KeystoreFactory func() (keystore.Keystore, error)

// EnvLoader reads SMSRU_* variables.
type EnvLoader func() (smsru.EnvConfig, error)

// AppOption customizes App dependencies.
type AppOption func(*App)

// App holds CLI state and runtime dependencies.
type App struct {
	root *cobra.Command

	loadConfig   ConfigLoader
	createClient ClientFactory
	newKeystore  KeystoreFactory
	loadEnv      EnvLoader
	stdin        io.Reader
	stdout       io.Writer
	stderr       io.Writer
	cfgFile      string
	profile      string
	region       string
	jsonOutput   bool
	verbose      bool
	cfg          *config.Config
	logger       *slog.Logger
}

// WithConfigLoader injects a config loader dependency.
func WithConfigLoader(loader ConfigLoader) AppOption {
	return func(a *App) {
		if loader != nil {
			a.loadConfig = loader
		}
	}
}

// WithClientFactory injects a client factory dependency.
func WithClientFactory(factory ClientFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.createClient = factory
		}
	}
}

// WithKeystoreFactory injects a keystore factory dependency.
func WithKeystoreFactory(factory KeystoreFactory) AppOption {
	return func(a *App) {
		if factory != nil {
			a.newKeystore = factory
		}
	}
}

// WithEnvLoader injects the environment reader.
func WithEnvLoader(loader EnvLoader) AppOption {
	return func(a *App) {
		if loader != nil {
			a.loadEnv = loader
		}
	}
}

// WithIO injects process I/O streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) AppOption {
	return func(a *App) {
		if stdin != nil {
			a.stdin = stdin
		}
		if stdout != nil {
			a.stdout = stdout
		}
		if stderr != nil {
			a.stderr = stderr
		}
	}
}

// NewApp creates a new CLI app with default dependencies.
func NewApp(opts ...AppOption) *App {
	a := &App{
		loadConfig:   config.LoadConfig,
		createClient: smsru.New,
		newKeystore:  keystore.NewKeystore,
		loadEnv:      decodeEnv,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.root = a.newRootCommand()
	return a
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "smsru",
		Short: "smsru - command-line client for the SMS.RU API",
		Long: `smsru sends SMS, checks delivery and manages an SMS.RU account.

Credentials come from the selected profile in ~/.smsru/config.yaml, whose
secrets live in the encrypted keystore, or from SMSRU_API_ID /
SMSRU_LOGIN and SMSRU_PASSWORD.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags available to all commands.
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ~/.smsru/config.yaml)")
	root.PersistentFlags().StringVar(&a.profile, "profile", "", "config profile (default is default_profile or \"default\")")
	root.PersistentFlags().StringVar(&a.region, "region", "", "region for phone numbers without a country code (default RU)")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "emit JSON output")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")

	root.AddCommand(a.newSendCommand())
	root.AddCommand(a.newCostCommand())
	root.AddCommand(a.newStatusCommand())
	root.AddCommand(a.newCallcheckCommand())
	root.AddCommand(a.newAuthCommand())
	root.AddCommand(a.newBalanceCommand())
	root.AddCommand(a.newFreeCommand())
	root.AddCommand(a.newLimitCommand())
	root.AddCommand(a.newSendersCommand())
	root.AddCommand(a.newStoplistCommand())
	root.AddCommand(a.newCallbacksCommand())
	root.AddCommand(a.newKeysCommand())
	root.AddCommand(a.newInitCommand())
	root.AddCommand(a.newVersionCommand())

	return root
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.ExecuteArgs(os.Args[1:])
}

// ExecuteArgs runs the root command with explicit arguments.
func (a *App) ExecuteArgs(args []string) error {
	a.root.SetArgs(args)
	a.root.SetIn(a.stdin)
	a.root.SetOut(a.stdout)
	a.root.SetErr(a.stderr)

	err := a.root.Execute()
	if err == nil {
		return nil
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return err
	}
	// Flag and argument errors from cobra.
	a.printError("usage_error", err)
	return exitWithCode(ExitValidation, err)
}

func (a *App) initConfig() error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	path := a.configPath()
	cfg, err := a.loadConfig(path)
	if err != nil {
		return a.fail(ExitValidation, "config_error", fmt.Errorf("failed to load config %s: %w", path, err))
	}
	a.cfg = cfg

	// Apply config defaults if flags not set.
	if a.profile == "" {
		a.profile = cfg.DefaultProfile
	}
	if a.profile == "" {
		a.profile = config.DefaultProfile
	}
	if a.region == "" {
		a.region = cfg.PhoneRegion()
	}

	return nil
}

func (a *App) configPath() string {
	if a.cfgFile != "" {
		return a.cfgFile
	}
	return config.DefaultConfigPath()
}

var defaultApp = NewApp()

// Execute runs the default app root command.
func Execute() error {
	return defaultApp.Execute()
}

func decodeEnv() (smsru.EnvConfig, error) {
	var env smsru.EnvConfig
	if err := envdecode.Decode(&env); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return env, err
	}
	return env, nil
}
