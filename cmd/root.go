package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/fp/internal/config"
	"github.com/zjrosen/fp/internal/document"
	"github.com/zjrosen/fp/internal/log"
	"github.com/zjrosen/fp/internal/pager"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in the first frame.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// localConfigPath is checked before the user config directory.
const localConfigPath = ".fp/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	startLine int
	cfg       config.Config
	cfgErr    error
)

var rootCmd = &cobra.Command{
	Use:   "fp FILE",
	Short: "A terminal file pager with syntax highlighting",
	Long: `fp shows a text file in a bordered, scrollable terminal view with naive
syntax highlighting for keywords, types, numbers and comments.

Keys:
  j / down      scroll one line down
  k / up        scroll one line up
  PgDn / PgUp   scroll one page
  g / G         jump to top / bottom
  q / esc       quit

Examples:
  # Page through a file
  fp src/main.rs

  # Show 20 lines starting at line 100
  fp -l 20 -s 100 src/main.rs`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runPager,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .fp/config.yaml, then ~/.config/fp/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a debug log (path from FP_LOG, default debug.log)")
	rootCmd.Flags().IntP("lines", "l", 0,
		"number of lines to show (0 = fill the terminal)")
	rootCmd.Flags().IntVarP(&startLine, "start-line", "s", 1,
		"line to show at the top (1-based)")

	// Bind flags to viper
	_ = viper.BindPFlag("lines", rootCmd.Flags().Lookup("lines"))
}

func initConfig() {
	cfg, cfgErr = loadConfig(viper.GetViper(), cfgFile)
}

// loadConfig resolves the config file, applies defaults and unmarshals into a Config.
// A missing config file is not an error.
func loadConfig(v *viper.Viper, explicitPath string) (config.Config, error) {
	defaults := config.Defaults()
	v.SetDefault("lines", defaults.Lines)
	v.SetDefault("ui.tab_width", defaults.UI.TabWidth)
	v.SetDefault("ui.scrollbar", defaults.UI.Scrollbar)

	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return defaults, fmt.Errorf("reading config: %w", err)
		}
		v.SetConfigFile(explicitPath)
	} else {
		// Config lookup order:
		// 1. .fp/config.yaml (current directory)
		// 2. ~/.config/fp/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			v.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			v.AddConfigPath(filepath.Join(home, ".config", "fp"))
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return defaults, fmt.Errorf("reading config: %w", err)
		}
	}

	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return defaults, fmt.Errorf("parsing config: %w", err)
	}
	return c, nil
}

func runPager(cmd *cobra.Command, args []string) error {
	cleanup, err := initLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	if cfgErr != nil {
		log.ErrorErr(log.CatConfig, "Failed to load config", cfgErr, "path", cfgFile)
		return cfgErr
	}
	if err := config.Validate(cfg); err != nil {
		log.Error(log.CatConfig, "Invalid configuration", "lines", cfg.Lines, "tabWidth", cfg.UI.TabWidth)
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if viper.ConfigFileUsed() == "" {
		log.Warn(log.CatConfig, "No config file found, using defaults")
	}

	return viewFile(cmd.ErrOrStderr(), args[0], cfg, startLine)
}

// initLogging enables the debug log when --debug or FP_DEBUG is set.
// FP_LOG picks the file and FP_LOG_LEVEL the minimum level.
func initLogging() (func(), error) {
	if !debugFlag && os.Getenv("FP_DEBUG") == "" {
		return func() {}, nil
	}

	logPath := os.Getenv("FP_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}

	cleanup, err := log.InitWithTeaLog(logPath, "fp")
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}

	if name := os.Getenv("FP_LOG_LEVEL"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("initializing logging: %w", err)
		}
		log.SetMinLevel(level)
	}

	log.Info(log.CatConfig, "fp starting", "version", version, "config", viper.ConfigFileUsed())
	return cleanup, nil
}

// viewFile loads path and pages through it. An empty file prints a notice
// to stderr and is not an error.
func viewFile(stderr io.Writer, path string, c config.Config, start int, programOpts ...tea.ProgramOption) error {
	doc, err := document.Load(path)
	if errors.Is(err, document.ErrEmpty) {
		_, _ = fmt.Fprintln(stderr, "File is empty.")
		return nil
	}
	if err != nil {
		return err
	}

	return pager.Run(doc, pager.Options{
		Name:        path,
		FixedHeight: c.Lines,
		StartLine:   start,
		TabWidth:    c.UI.TabWidth,
		Scrollbar:   c.UI.Scrollbar,
	}, programOpts...)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
