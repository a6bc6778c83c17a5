package main

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frudas24/flipmon/internal/config"
	"github.com/frudas24/flipmon/internal/display"
	"github.com/frudas24/flipmon/internal/monitor"
	"github.com/frudas24/flipmon/internal/testutil"
	"github.com/frudas24/flipmon/internal/toggle"
)

// useFake swaps the display API and monitor listing for the duration of a test.
func useFake(t *testing.T, fake *testutil.FakeDisplay) {
	t.Helper()
	prevAPI, prevList := newAPI, listMonitors
	newAPI = func() (display.API, error) { return fake, nil }
	listMonitors = func() ([]monitor.Monitor, error) {
		return []monitor.Monitor{{Index: 1, Width: 2560, Height: 1440, Primary: true}}, nil
	}
	t.Cleanup(func() {
		newAPI, listMonitors = prevAPI, prevList
	})
}

// testConfig returns a config storing positions in a temp dir.
func testConfig(t *testing.T) config.Config {
	dir := t.TempDir()
	return config.Config{DataDir: dir, StoreDir: dir, DeviceIndex: 1, MalformedPolicy: "ignore"}
}

// TestRunToggle_PrintsSuccess verifies the success message and the saved position.
func TestRunToggle_PrintsSuccess(t *testing.T) {
	fake := testutil.NewFakeDisplay(display.Mode{Width: 1920, Height: 1080})
	useFake(t, fake)
	cfg := testConfig(t)

	var out bytes.Buffer
	if err := runToggle(cfg, &out); err != nil {
		t.Fatalf("runToggle failed: %v", err)
	}
	if strings.TrimSpace(out.String()) != toggle.MsgSuccess {
		t.Fatalf("unexpected output %q", out.String())
	}
	if _, err := os.Stat(filepath.Join(cfg.StoreDir, "orientation0.txt")); err != nil {
		t.Fatalf("expected saved position: %v", err)
	}
}

// TestRunToggle_DryRunUsesTestFlag verifies dry runs only test the mode.
func TestRunToggle_DryRunUsesTestFlag(t *testing.T) {
	fake := testutil.NewFakeDisplay(display.Mode{Width: 1920, Height: 1080})
	useFake(t, fake)
	cfg := testConfig(t)
	cfg.DryRun = true

	var out bytes.Buffer
	if err := runToggle(cfg, &out); err != nil {
		t.Fatalf("runToggle failed: %v", err)
	}
	if len(fake.Calls) != 1 || !fake.Calls[0].Flags.Test || fake.Calls[0].Flags.UpdateRegistry {
		t.Fatalf("expected a CDS_TEST apply, got %+v", fake.Calls)
	}
	if fake.Modes[`\\.\DISPLAY2`].Orientation != display.OrientationDefault {
		t.Fatalf("expected mode unchanged after dry run")
	}
}

// TestRunToggle_UnexpectedResultIsNotFatal verifies unknown codes are printed, not returned.
func TestRunToggle_UnexpectedResultIsNotFatal(t *testing.T) {
	fake := testutil.NewFakeDisplay(display.Mode{Width: 1920, Height: 1080})
	fake.Result = display.Result(-3)
	useFake(t, fake)

	var out bytes.Buffer
	if err := runToggle(testConfig(t), &out); err != nil {
		t.Fatalf("runToggle failed: %v", err)
	}
	if !strings.Contains(out.String(), "Unexpected result from ChangeDisplaySettingsExW: -3") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

// TestRunToggle_NoSecondary verifies a missing device is returned as fatal.
func TestRunToggle_NoSecondary(t *testing.T) {
	fake := testutil.NewFakeDisplay(display.Mode{})
	fake.Devices = fake.Devices[:1]
	useFake(t, fake)

	var out bytes.Buffer
	err := runToggle(testConfig(t), &out)
	if !errors.Is(err, toggle.ErrNoSecondaryMonitor) {
		t.Fatalf("expected ErrNoSecondaryMonitor, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no outcome message, got %q", out.String())
	}
}

// TestRunStatus_NoSideEffects verifies status reports without saving or applying.
func TestRunStatus_NoSideEffects(t *testing.T) {
	fake := testutil.NewFakeDisplay(display.Mode{Width: 1920, Height: 1080})
	useFake(t, fake)
	cfg := testConfig(t)

	var out bytes.Buffer
	if err := runStatus(cfg, &out); err != nil {
		t.Fatalf("runStatus failed: %v", err)
	}
	if !strings.Contains(out.String(), "next:     1080x1920 270° portrait at (0,0)") {
		t.Fatalf("expected next mode in output, got %q", out.String())
	}
	entries, _ := os.ReadDir(cfg.StoreDir)
	if len(entries) != 0 || len(fake.Calls) != 0 {
		t.Fatalf("expected no side effects, got %d files and %d calls", len(entries), len(fake.Calls))
	}
}

// TestRootCmd_RejectsArgs verifies the root command takes no arguments.
func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for positional argument")
	}
}

// TestNewToggler_Policy verifies the malformed-position policy is parsed from config.
func TestNewToggler_Policy(t *testing.T) {
	useFake(t, testutil.NewFakeDisplay(display.Mode{}))
	cfg := testConfig(t)
	cfg.MalformedPolicy = "fail"
	tg, err := newToggler(cfg)
	if err != nil || tg.MalformedPolicy != toggle.PolicyFail {
		t.Fatalf("expected fail policy, got %+v err=%v", tg, err)
	}
	cfg.MalformedPolicy = "retry"
	if _, err := newToggler(cfg); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}

// TestRunStatus_WarnsOnPrimary verifies targeting the primary device is flagged.
func TestRunStatus_WarnsOnPrimary(t *testing.T) {
	useFake(t, testutil.NewFakeDisplay(display.Mode{}))
	cfg := testConfig(t)
	cfg.DeviceIndex = 0

	var out bytes.Buffer
	if err := runStatus(cfg, &out); err != nil {
		t.Fatalf("runStatus failed: %v", err)
	}
	if !strings.Contains(out.String(), "primary desktop") {
		t.Fatalf("expected primary warning, got %q", out.String())
	}
}

// TestRunToggle_LogsRestoredLanding verifies the layout log names the restored position and shape.
func TestRunToggle_LogsRestoredLanding(t *testing.T) {
	start := display.Mode{Width: 1080, Height: 1920, Orientation: display.Orientation270, Position: display.Point{X: 2560}}
	fake := testutil.NewFakeDisplay(start)
	useFake(t, fake)
	listMonitors = func() ([]monitor.Monitor, error) {
		return []monitor.Monitor{{Index: 2, Origin: display.Point{X: 100, Y: 50}, Width: 1920, Height: 1080}}, nil
	}
	cfg := testConfig(t)
	if err := os.WriteFile(filepath.Join(cfg.StoreDir, "orientation0.txt"), []byte("100 50"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var logs bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(prev) })

	if err := runToggle(cfg, &bytes.Buffer{}); err != nil {
		t.Fatalf("runToggle failed: %v", err)
	}
	got := logs.String()
	if !strings.Contains(got, "270° -> 0° (stored position)") || !strings.Contains(got, "at (100,50) landscape") {
		t.Fatalf("unexpected layout log %q", got)
	}
}
