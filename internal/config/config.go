package config

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/atomicstack/tui-titlebar/internal/app"
	"github.com/atomicstack/tui-titlebar/internal/menu"
	"github.com/atomicstack/tui-titlebar/internal/nav"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose   bool
	PrintMenu bool
}

const (
	envMenuFile   = "TITLEBAR_MENU_FILE"
	envTitle      = "TITLEBAR_TITLE"
	envStyle      = "TITLEBAR_STYLE"
	envPlatform   = "TITLEBAR_PLATFORM"
	envAutoHide   = "TITLEBAR_AUTO_HIDE"
	envOverflow   = "TITLEBAR_OVERFLOW"
	envControls   = "TITLEBAR_CONTROLS"
	envNoMinimize = "TITLEBAR_DISABLE_MINIMIZE"
	envNoMaximize = "TITLEBAR_DISABLE_MAXIMIZE"
	envAltKey     = "TITLEBAR_ALT_KEY"
	envMaximized  = "TITLEBAR_MAXIMIZED"
	envWidth      = "TITLEBAR_WIDTH"
	envHeight     = "TITLEBAR_HEIGHT"
	envShowFooter = "TITLEBAR_FOOTER"
	envVerbose    = "TITLEBAR_VERBOSE"
	envTrace      = "TITLEBAR_TRACE"
	envLogFile    = "TITLEBAR_LOG_FILE"
)

// Platforms lists the accepted values for -platform.
var Platforms = []string{"darwin", "linux", "windows"}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tui-titlebar", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	menuFile := fs.String("menu-file", envOrDefault(env, envMenuFile, ""), "path to a TOML menu definition (built-in menu when empty)")
	title := fs.String("title", envOrDefault(env, envTitle, ""), "window title shown in the bar")
	style := fs.String("style", envOrDefault(env, envStyle, string(nav.StyleHorizontal)), "menu style: horizontal, vertical or stacked")
	platform := fs.String("platform", envOrDefault(env, envPlatform, defaultPlatform()), "platform conventions: darwin, linux or windows")
	autoHide := fs.Bool("auto-hide", envOrBool(env, envAutoHide, false), "hide the menu until it is hovered or activated")
	overflow := fs.Bool("overflow", envOrBool(env, envOverflow, true), "collect top-level entries that do not fit behind a … button")
	controls := fs.Bool("controls", envOrBool(env, envControls, true), "draw minimize, maximize and close controls")
	disableMinimize := fs.Bool("disable-minimize", envOrBool(env, envNoMinimize, false), "draw the minimize control disabled")
	disableMaximize := fs.Bool("disable-maximize", envOrBool(env, envNoMaximize, false), "draw the maximize control disabled")
	altKey := fs.String("alt-key", envOrDefault(env, envAltKey, "f10"), "key that stands in for tapping Alt")
	maximized := fs.Bool("maximized", envOrBool(env, envMaximized, false), "start in the alternate screen")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print progress messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	printMenu := fs.Bool("print-menu", false, "print the menu as a table and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	items, err := loadMenu(*menuFile)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Title:           *title,
			MenuFile:        *menuFile,
			Items:           items,
			Style:           nav.Style(strings.ToLower(strings.TrimSpace(*style))),
			Platform:        strings.ToLower(strings.TrimSpace(*platform)),
			AutoHide:        *autoHide,
			Overflow:        *overflow,
			Controls:        *controls,
			DisableMinimize: *disableMinimize,
			DisableMaximize: *disableMaximize,
			AltKey:          strings.ToLower(strings.TrimSpace(*altKey)),
			Maximized:       *maximized,
			Width:           *width,
			Height:          *height,
			ShowFooter:      *footer,
			Verbose:         *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose:   *verbose,
			PrintMenu: *printMenu,
		},
		Flags: map[string]string{
			"menuFile":        *menuFile,
			"title":           *title,
			"style":           *style,
			"platform":        *platform,
			"autoHide":        strconv.FormatBool(*autoHide),
			"overflow":        strconv.FormatBool(*overflow),
			"controls":        strconv.FormatBool(*controls),
			"disableMinimize": strconv.FormatBool(*disableMinimize),
			"disableMaximize": strconv.FormatBool(*disableMaximize),
			"altKey":          *altKey,
			"maximized":       strconv.FormatBool(*maximized),
			"width":           strconv.Itoa(*width),
			"height":          strconv.Itoa(*height),
			"footer":          strconv.FormatBool(*footer),
			"trace":           strconv.FormatBool(*trace),
			"verbose":         strconv.FormatBool(*verbose),
			"logFile":         *logFile,
			"printMenu":       strconv.FormatBool(*printMenu),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func loadMenu(path string) ([]menu.Item, error) {
	if strings.TrimSpace(path) == "" {
		return menu.DefaultItems(), nil
	}
	items, err := menu.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("menu file: %w", err)
	}
	return items, nil
}

// defaultPlatform maps the build platform onto the accepted -platform values.
func defaultPlatform() string {
	switch runtime.GOOS {
	case "darwin", "windows":
		return runtime.GOOS
	}
	return "linux"
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

// Validate checks enumerated options, suggesting the closest accepted value
// for typos.
func Validate(cfg Config) error {
	styles := make([]string, 0, len(nav.Styles()))
	for _, s := range nav.Styles() {
		styles = append(styles, string(s))
	}
	if err := oneOf("style", string(cfg.App.Style), styles); err != nil {
		return err
	}
	if err := oneOf("platform", cfg.App.Platform, Platforms); err != nil {
		return err
	}
	if cfg.App.AltKey == "" {
		return fmt.Errorf("alt-key must not be empty")
	}
	return nil
}

func oneOf(name, value string, allowed []string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	if hint := suggest(value, allowed); hint != "" {
		return fmt.Errorf("invalid %s %q (did you mean %q?)", name, value, hint)
	}
	return fmt.Errorf("invalid %s %q (expected one of %s)", name, value, strings.Join(allowed, ", "))
}

// suggest returns the closest fuzzy match for value, or "".
func suggest(value string, candidates []string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	ranks := fuzzy.RankFindNormalizedFold(value, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
