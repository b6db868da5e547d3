package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tui-titlebar/internal/menu"
	"github.com/atomicstack/tui-titlebar/internal/nav"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Style != nav.StyleHorizontal {
		t.Fatalf("expected horizontal style, got %q", cfg.App.Style)
	}
	if !cfg.App.Overflow || !cfg.App.Controls {
		t.Fatalf("expected overflow and controls on by default")
	}
	if cfg.App.AltKey != "f10" {
		t.Fatalf("expected f10 alt key, got %q", cfg.App.AltKey)
	}
	if got, want := menu.Count(cfg.App.Items), menu.Count(menu.DefaultItems()); got != want {
		t.Fatalf("expected default menu (%d items), got %d", want, got)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		envStyle + "=vertical",
		envTitle + "=from-env",
		envWidth + "=50",
		envOverflow + "=false",
		envTrace + "=1",
	}
	cfg, err := LoadArgs([]string{"-title", "from-flag", "-platform", "Windows"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Title != "from-flag" {
		t.Fatalf("expected flag title, got %q", cfg.App.Title)
	}
	if cfg.App.Style != nav.StyleVertical {
		t.Fatalf("expected env style, got %q", cfg.App.Style)
	}
	if cfg.App.Width != 50 || cfg.App.Overflow {
		t.Fatalf("expected env width and overflow, got %#v", cfg.App)
	}
	if cfg.App.Platform != "windows" {
		t.Fatalf("expected lower-cased platform, got %q", cfg.App.Platform)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from env")
	}
	if cfg.Flags["title"] != "from-flag" || cfg.Flags["width"] != "50" {
		t.Fatalf("unexpected flags %#v", cfg.Flags)
	}
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected width error")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatalf("expected height error")
	}
}

func TestLoadArgsIgnoresMalformedEnv(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envWidth + "=wide", envControls + "=maybe", "garbage"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || !cfg.App.Controls {
		t.Fatalf("malformed values should fall back to defaults, got %#v", cfg.App)
	}
}

func TestLoadArgsReadsMenuFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.toml")
	data := "[[menu]]\nlabel = \"&Tools\"\n\n  [[menu.submenu]]\n  label = \"&Build\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write menu: %v", err)
	}
	cfg, err := LoadArgs([]string{"-menu-file", path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.App.Items) != 1 || cfg.App.Items[0].Label != "&Tools" {
		t.Fatalf("expected Tools menu, got %#v", cfg.App.Items)
	}

	if _, err := LoadArgs([]string{"-menu-file", filepath.Join(t.TempDir(), "missing.toml")}, nil); err == nil {
		t.Fatalf("expected error for a missing menu file")
	} else if !strings.HasPrefix(err.Error(), "menu file:") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestValidateSuggestsCorrections(t *testing.T) {
	cfg, err := LoadArgs([]string{"-style", "vert"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), `did you mean "vertical"`) {
		t.Fatalf("expected vertical suggestion, got %v", err)
	}

	cfg.App.Style = nav.StyleStacked
	cfg.App.Platform = "mac"
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "expected one of") {
		t.Fatalf("expected platform list, got %v", err)
	}

	cfg.App.Platform = "linux"
	cfg.App.AltKey = ""
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected empty alt key to be rejected")
	}
}

func TestSuggest(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"horiz", "horizontal"},
		{"STACK", "stacked"},
		{"", ""},
		{"zzz", ""},
	}
	candidates := []string{"horizontal", "vertical", "stacked"}
	for _, tc := range cases {
		if got := suggest(tc.value, candidates); got != tc.want {
			t.Fatalf("suggest(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestLoadArgsControlFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{"-disable-minimize", "-maximized"}, []string{envNoMaximize + "=true"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.DisableMinimize || !cfg.App.DisableMaximize || !cfg.App.Maximized {
		t.Fatalf("unexpected control settings %#v", cfg.App)
	}
	if cfg.Flags["disableMinimize"] != "true" {
		t.Fatalf("unexpected flags %#v", cfg.Flags)
	}
}
