package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/efi-boot-control/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envTool      = "EFI_BOOT_CONTROL_TOOL"
	envRebootCmd = "EFI_BOOT_CONTROL_REBOOT_CMD"
	envCountdown = "EFI_BOOT_CONTROL_COUNTDOWN"
	envTrace     = "EFI_BOOT_CONTROL_TRACE"
	envLogFile   = "EFI_BOOT_CONTROL_LOG_FILE"
)

const (
	defaultTool      = "efibootmgr"
	defaultRebootCmd = "reboot"
	defaultCountdown = 5
	maxCountdown     = 60
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("efi-boot-control", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	tool := fs.String("efibootmgr", envOrDefault(env, envTool, defaultTool), "path to the efibootmgr binary")
	rebootCmd := fs.String("reboot-cmd", envOrDefault(env, envRebootCmd, defaultRebootCmd), "command issued when the reboot countdown expires")
	countdown := fs.Int("countdown", envOrInt(env, envCountdown, defaultCountdown), "seconds to count down before rebooting")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(*tool) == "" {
		return Config{}, fmt.Errorf("efibootmgr path must not be empty")
	}
	if strings.TrimSpace(*rebootCmd) == "" {
		return Config{}, fmt.Errorf("reboot command must not be empty")
	}
	if *countdown < 1 || *countdown > maxCountdown {
		return Config{}, fmt.Errorf("countdown must be between 1 and %d seconds (got %d)", maxCountdown, *countdown)
	}

	cfg := Config{
		App: app.Config{
			Tool:      *tool,
			RebootCmd: *rebootCmd,
			Countdown: *countdown,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"efibootmgr": *tool,
			"rebootCmd":  *rebootCmd,
			"countdown":  strconv.Itoa(*countdown),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	// Additional validation hooks can be placed here as configuration evolves.
	return nil
}
