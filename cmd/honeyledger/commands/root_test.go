// ABOUTME: Tests for root CLI command structure
// ABOUTME: Verifies subcommand wiring and flag defaults

package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	if cmd.Use != "honeyledger" {
		t.Errorf("Use = %q, want %q", cmd.Use, "honeyledger")
	}
	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}
	if cmd.Long == "" {
		t.Error("Long description should not be empty")
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	want := []string{"migrate", "sessions", "intel", "history", "version"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestIntelCmd_Flags(t *testing.T) {
	cmd := NewIntelCmd()

	for _, name := range []string{"confirmed", "json"} {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("--%s flag not found", name)
		}
		if flag.DefValue != "false" {
			t.Errorf("--%s default = %q, want false", name, flag.DefValue)
		}
	}
}

func TestHistoryCmd_Flags(t *testing.T) {
	cmd := NewHistoryCmd()

	flag := cmd.Flags().Lookup("limit")
	if flag == nil {
		t.Fatal("--limit flag not found")
	}
	if flag.DefValue != "50" {
		t.Errorf("--limit default = %q, want 50", flag.DefValue)
	}
}

func TestVersionCmd(t *testing.T) {
	SetVersion("1.2.3", "abc1234", "2026-08-30")

	cmd := NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "honeyledger 1.2.3") {
		t.Errorf("output = %q, want it to contain honeyledger 1.2.3", out.String())
	}
	if !strings.Contains(out.String(), "abc1234") {
		t.Errorf("output = %q, want it to contain the commit", out.String())
	}
}
