package cli

import (
	"os"
	"testing"
)

func TestRootCommandSubcommands(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	want := []string{
		"enforce", "grid", "move", "link", "segments",
		"info", "validate", "render", "serve", "inspect",
		"plans", "completion",
	}

	registered := make(map[string]bool)
	for _, cmd := range root.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestRootCommandUse(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("root.Use = %q, want %q", root.Use, appName)
	}
	if !root.SilenceUsage {
		t.Error("root command should silence usage on errors")
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	c.SetLogLevel(LogDebug)

	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("log level = %v, want %v", c.Logger.GetLevel(), LogDebug)
	}
}
