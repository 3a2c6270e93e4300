package cli

import (
	"fmt"
	"os"

	"github.com/rawbytedev/tagwire/internal/config"
	"github.com/rawbytedev/tagwire/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options is the state shared by every subcommand of one root command.
type options struct {
	cfgFile  string
	output   string
	logLevel string

	cfg config.Config
	log zerolog.Logger
}

// NewRootCmd builds a fresh command tree. Each call has its own flag state.
func NewRootCmd() *cobra.Command {
	o := &options{cfg: config.Default(), log: zerolog.Nop()}
	root := &cobra.Command{
		Use:   "tagwire",
		Short: "Encode, decode and inspect tagged binary scalar buffers",
		Long: `tagwire reads and writes the tagged binary scalar format: a '<' marker,
one tag byte per value followed by its big-endian payload or NUL-terminated
string, and a closing '>' marker.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&o.cfgFile, "config", "", "TOML config file")
	root.PersistentFlags().StringVarP(&o.output, "output", "o", "", "output format: text, json, yaml (default \"text\")")
	root.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, disabled")

	root.AddCommand(
		newEncodeCmd(o),
		newDecodeCmd(o),
		newConvertCmd(o),
		newDemoCmd(o),
		newVersionCmd(),
	)
	return root
}

func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if o.output != "" {
		cfg.Output = o.output
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	cfg.Normalize()
	if err := config.Validate(cfg); err != nil {
		return err
	}
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: log level %q", config.ErrInvalidConfig, cfg.LogLevel)
	}
	o.cfg = cfg
	o.log = logging.New(cmd.ErrOrStderr(), "tagwire", cfg.LogLevel)
	return nil
}

// flagOr returns the named bool flag when it was set on the command line,
// fallback otherwise.
func flagOr(cmd *cobra.Command, name string, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetBool(name)
		return v
	}
	return fallback
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
