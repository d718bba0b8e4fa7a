package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/scamintel/scamintel/config"
	"github.com/scamintel/scamintel/logging"
	"github.com/scamintel/scamintel/regexp"
	"github.com/scamintel/scamintel/version"
)

const configDescription = `config file path
order of precedence:
1. --config/-c
2. env var SCAMINTEL_CONFIG
3. env var SCAMINTEL_CONFIG_TOML with the file content
4. (target path)/.scamintel.toml
If none of the four options are used, then scamintel will use the default config`

// configFileName is looked up in the scanned directory.
const configFileName = ".scamintel.toml"

var rootCmd = &cobra.Command{
	Use:          "scamintel",
	Short:        "scamintel pulls payment handles, phone numbers and links out of scam messages",
	Version:      version.Version,
	SilenceUsage: true,
}

const (
	BYTE     = 1.0
	KILOBYTE = BYTE * 1000
	MEGABYTE = KILOBYTE * 1000
	GIGABYTE = MEGABYTE * 1000
)

func init() {
	cobra.OnInitialize(initLog)
	rootCmd.PersistentFlags().StringP("config", "c", "", configDescription)
	rootCmd.PersistentFlags().Int("exit-code", 1, "exit code when scam intel has been found")
	rootCmd.PersistentFlags().StringP("report-path", "r", "", "report file (use \"-\" for stdout)")
	rootCmd.PersistentFlags().StringP("report-format", "f", "", "output format (json, csv, result, intel, template)")
	rootCmd.PersistentFlags().StringP("report-template", "", "", "template file used to generate the report (implies --report-format=template)")
	rootCmd.PersistentFlags().StringP("baseline-path", "b", "", "path to a json report with findings that can be ignored")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print every finding as it is reported")
	rootCmd.PersistentFlags().BoolP("no-color", "", false, "turn off color for verbose output")
	rootCmd.PersistentFlags().Uint("redact", 0, "redact matched values from output. To redact only part of a value apply a percent from 0..100, e.g. --redact=20 (default 100%)")
	rootCmd.Flag("redact").NoOptDefVal = "100"
	rootCmd.PersistentFlags().StringP("ignore-path", "i", ".", "path to .scamintelignore file or folder containing one")
	rootCmd.PersistentFlags().Duration("timeout", 0, "scan budget per message, e.g. 500ms, 0 disables; overrides the config")
	rootCmd.PersistentFlags().String("engine", "", "regex engine (re2, stdlib); overrides the config")
	rootCmd.PersistentFlags().Int("max-input-bytes", 0, "messages larger than this are skipped; overrides the config")
	rootCmd.PersistentFlags().Int("match-context", 0, "bytes of surrounding text kept with each finding; overrides the config")
	rootCmd.PersistentFlags().Int("max-archive-depth", 0, "allow scanning into nested archives up to this depth (default \"0\", no archive traversal is done)")
}

var logLevel = zerolog.InfoLevel

func initLog() {
	ll, err := rootCmd.Flags().GetString("log-level")
	if err != nil {
		logging.Fatal().Msg(err.Error())
	}

	switch strings.ToLower(ll) {
	case "trace":
		logLevel = zerolog.TraceLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "err", "error":
		logLevel = zerolog.ErrorLevel
	case "fatal":
		logLevel = zerolog.FatalLevel
	default:
		logging.Warn().Msgf("unknown log level: %s", ll)
	}
	logging.Logger = logging.Logger.Level(logLevel)
}

// readConfig returns the config content and where it came from, following
// the order in configDescription. Empty content means the default config.
func readConfig(cmd *cobra.Command, source string) ([]byte, string, error) {
	if cfgPath := mustGetStringFlag(cmd, "config"); cfgPath != "" {
		logging.Debug().Msgf("using scamintel config %s from `--config`", cfgPath)
		content, err := os.ReadFile(cfgPath)
		return content, cfgPath, err
	}
	if envPath := os.Getenv("SCAMINTEL_CONFIG"); envPath != "" {
		logging.Debug().Msgf("using scamintel config from SCAMINTEL_CONFIG env var: %s", envPath)
		content, err := os.ReadFile(envPath)
		return content, envPath, err
	}
	if content := os.Getenv("SCAMINTEL_CONFIG_TOML"); content != "" {
		logging.Debug().Str("content", content).Msg("using scamintel config from SCAMINTEL_CONFIG_TOML env var content")
		return []byte(content), "", nil
	}

	if source == "" {
		return nil, "", nil
	}
	fileInfo, err := os.Stat(source)
	if err != nil {
		return nil, "", err
	}
	if !fileInfo.IsDir() {
		logging.Debug().Msgf("unable to load scamintel config from %s since the target is a file, using default config",
			filepath.Join(source, configFileName))
		return nil, "", nil
	}

	cfgPath := filepath.Join(source, configFileName)
	content, err := os.ReadFile(cfgPath)
	if errors.Is(err, os.ErrNotExist) {
		logging.Debug().Msgf("no scamintel config found in path %s, using default scamintel config", cfgPath)
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	logging.Debug().Msgf("using existing scamintel config %s from `(target path)/%s`", cfgPath, configFileName)
	return content, cfgPath, nil
}

// Config loads the config for a scan of source, applies flag overrides and
// selects the regex engine. It exits on an invalid config.
func Config(cmd *cobra.Command, source string) config.Config {
	content, path, err := readConfig(cmd, source)
	if err != nil {
		logging.Fatal().Err(err).Msg("unable to read scamintel config")
	}

	cfg, err := config.Load(content)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load config")
	}
	cfg.Path = path

	if err := cfg.CheckVersion(version.Version); err != nil {
		logging.Warn().Err(err).Msg("config expects a newer scamintel")
	}

	flags := cmd.Flags()
	if flags.Changed("engine") {
		cfg.Scan.Engine = mustGetStringFlag(cmd, "engine")
	}
	if flags.Changed("timeout") {
		cfg.Scan.Timeout = mustGetDurationFlag(cmd, "timeout")
	}
	if flags.Changed("max-input-bytes") {
		cfg.Scan.MaxInputBytes = mustGetIntFlag(cmd, "max-input-bytes")
	}
	if flags.Changed("match-context") {
		cfg.Scan.MatchContext = mustGetIntFlag(cmd, "match-context")
	}
	if flags.Changed("redact") {
		cfg.Scan.Redact = mustGetUintFlag(cmd, "redact")
	}
	if err := cfg.Scan.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("invalid scan settings")
	}

	regexp.SetEngine(cfg.Scan.Engine)
	logging.Debug().Msgf("using %s regex engine", regexp.Version())

	return cfg
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if strings.Contains(err.Error(), "unknown flag") {
			// exit code 126: Command invoked cannot execute
			os.Exit(126)
		}
		logging.Fatal().Msg(err.Error())
	}
}

func bytesConvert(bytes uint64) string {
	unit := ""
	value := float32(bytes)

	switch {
	case bytes >= GIGABYTE:
		unit = "GB"
		value = value / GIGABYTE
	case bytes >= MEGABYTE:
		unit = "MB"
		value = value / MEGABYTE
	case bytes >= KILOBYTE:
		unit = "KB"
		value = value / KILOBYTE
	case bytes >= BYTE:
		unit = "bytes"
	case bytes == 0:
		return "0"
	}

	stringValue := strings.TrimSuffix(
		fmt.Sprintf("%.2f", value), ".00",
	)

	return fmt.Sprintf("%s %s", stringValue, unit)
}

func FormatDuration(d time.Duration) string {
	scale := 100 * time.Second
	// look for the max scale that is smaller than d
	for scale > d {
		scale = scale / 10
	}
	return d.Round(scale / 100).String()
}

func mustGetBoolFlag(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}

func mustGetIntFlag(cmd *cobra.Command, name string) int {
	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}

func mustGetUintFlag(cmd *cobra.Command, name string) uint {
	value, err := cmd.Flags().GetUint(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}

func mustGetDurationFlag(cmd *cobra.Command, name string) time.Duration {
	value, err := cmd.Flags().GetDuration(name)
	if err != nil {
		logging.Fatal().Err(err).Msgf("could not get flag: %s", name)
	}
	return value
}
