package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Tool != "efibootmgr" {
		t.Fatalf("expected default tool efibootmgr, got %q", cfg.App.Tool)
	}
	if cfg.App.RebootCmd != "reboot" {
		t.Fatalf("expected default reboot command, got %q", cfg.App.RebootCmd)
	}
	if cfg.App.Countdown != 5 {
		t.Fatalf("expected default countdown 5, got %d", cfg.App.Countdown)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{
		"EFI_BOOT_CONTROL_TOOL=/usr/local/sbin/efibootmgr",
		"EFI_BOOT_CONTROL_COUNTDOWN=10",
	}
	cfg, err := LoadArgs([]string{"-countdown", "3"}, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Tool != "/usr/local/sbin/efibootmgr" {
		t.Fatalf("expected env tool, got %q", cfg.App.Tool)
	}
	if cfg.App.Countdown != 3 {
		t.Fatalf("expected flag to win over env, got %d", cfg.App.Countdown)
	}
}

func TestLoadArgsEnvironment(t *testing.T) {
	environ := []string{
		"EFI_BOOT_CONTROL_REBOOT_CMD=systemctl reboot",
		"EFI_BOOT_CONTROL_TRACE=1",
		"EFI_BOOT_CONTROL_LOG_FILE=/tmp/ebc.log",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.RebootCmd != "systemctl reboot" {
		t.Fatalf("expected env reboot command, got %q", cfg.App.RebootCmd)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled")
	}
	if cfg.Logging.FilePath != "/tmp/ebc.log" {
		t.Fatalf("expected log file path, got %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsRejectsBadCountdown(t *testing.T) {
	if _, err := LoadArgs([]string{"-countdown", "0"}, nil); err == nil {
		t.Fatalf("expected error for countdown 0")
	}
	if _, err := LoadArgs([]string{"-countdown", "61"}, nil); err == nil {
		t.Fatalf("expected error for countdown 61")
	}
}

func TestLoadArgsRejectsEmptyTool(t *testing.T) {
	if _, err := LoadArgs([]string{"-efibootmgr", ""}, nil); err == nil {
		t.Fatalf("expected error for empty tool path")
	}
	if _, err := LoadArgs([]string{"-reboot-cmd", " "}, nil); err == nil {
		t.Fatalf("expected error for blank reboot command")
	}
}

func TestFlagsMapMirrorsValues(t *testing.T) {
	cfg, err := LoadArgs([]string{"-trace"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Flags["trace"] != "true" {
		t.Fatalf("expected trace flag recorded, got %q", cfg.Flags["trace"])
	}
	if cfg.Flags["countdown"] != "5" {
		t.Fatalf("expected countdown flag recorded, got %q", cfg.Flags["countdown"])
	}
}
