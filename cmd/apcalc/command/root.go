// Package command implements the apcalc command line.
package command

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ignisf/bigdecimal"
)

// config holds the settings shared by all subcommands. Settings come from
// flags, APCALC_* environment variables and an optional config file, in
// that order of precedence.
type config struct {
	v   *viper.Viper
	log *slog.Logger

	prec   uint
	base   int
	format byte
	digits int
}

// New returns the apcalc root command.
func New() *cobra.Command {
	cfg := &config{v: viper.New()}

	root := &cobra.Command{
		Use:   "apcalc",
		Short: "apcalc evaluates arbitrary precision floating-point expressions.",
		Long: "`apcalc` evaluates reverse polish notation expressions over binary floating-point numbers\n" +
			"of arbitrary precision, rounding every result to nearest even.\n\n" +
			"Settings can also be given as APCALC_PREC, APCALC_BASE, ... environment variables or\n" +
			"in a config file.",
		SilenceUsage:      true,
		PersistentPreRunE: cfg.load,
	}

	fs := root.PersistentFlags()
	fs.Uint("prec", bigdecimal.DefaultPrec, "Working precision in bits.")
	fs.Int("base", 0, "Base of input numbers; 0 detects the 0x and 0b prefixes.")
	fs.String("format", "g", "Output format, one of e, E, f, g or G.")
	fs.Int("digits", -1, "Output digits; -1 prints the fewest digits that read back to the same value.")
	fs.BoolP("verbose", "v", false, "Log evaluation steps.")
	fs.Bool("no-color", false, "Disable colored log output.")
	fs.String("config", "", "Path to a config file.")
	if err := cfg.bind(fs); err != nil {
		panic(err)
	}

	root.AddCommand(newEval(cfg), newFmt(cfg))
	return root
}

// bind makes the flags in fs the highest precedence source of their
// settings.
func (cfg *config) bind(fs *pflag.FlagSet) error {
	if err := cfg.v.BindPFlags(fs); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	cfg.v.SetEnvPrefix("APCALC")
	cfg.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.v.AutomaticEnv()
	return nil
}

// load reads the configuration and sets up logging.
func (cfg *config) load(cmd *cobra.Command, args []string) error {
	v := cfg.v
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	level := slog.LevelInfo
	if v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	cfg.log = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:   level,
		NoColor: v.GetBool("no-color"),
	}))

	cfg.prec = v.GetUint("prec")
	if _, err := bigdecimal.NewPrec(cfg.prec); err != nil {
		return err
	}
	cfg.base = v.GetInt("base")
	cfg.digits = v.GetInt("digits")
	switch f := v.GetString("format"); f {
	case "e", "E", "f", "g", "G":
		cfg.format = f[0]
	default:
		return fmt.Errorf("invalid format %q: expected e, E, f, g or G", f)
	}

	cfg.log.Debug("configuration loaded",
		"prec", cfg.prec,
		"base", cfg.base,
		"format", string(cfg.format),
		"digits", cfg.digits,
		"config", v.ConfigFileUsed())
	return nil
}

// text formats d according to the output settings.
func (cfg *config) text(d *bigdecimal.Decimal) string {
	return d.Text(cfg.format, cfg.digits)
}
