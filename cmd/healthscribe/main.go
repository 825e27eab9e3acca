package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	healthscribe "github.com/gupta19esha/HealthScribeGPT/pkg"
	"github.com/gupta19esha/HealthScribeGPT/pkg/config"
	pkgdb "github.com/gupta19esha/HealthScribeGPT/pkg/db"
	"github.com/gupta19esha/HealthScribeGPT/pkg/logger"
	"github.com/gupta19esha/HealthScribeGPT/pkg/utils"

	"github.com/spf13/cobra"
)

var (
	dbPath    string
	walMode   bool
	syncMode  string
	debugMode bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:     "healthscribe",
	Short:   "An AI health journal that turns free-text notes into health metrics.",
	Version: fmt.Sprintf("v%s", healthscribe.Version),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if dbPath == "" {
			dbPath = cfg.DBPath
		}

		logDir := cfg.LogDir
		if logDir == "" {
			logDir = utils.DefaultLogDir()
		}
		return logger.Init(logger.Config{Debug: debugMode, Dir: logDir})
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = &cobra.Command{
	Use:   fmt.Sprintf("completion %s", strings.Join(completionShells, "|")),
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for healthscribe.

The command prints a completion script to stdout. You can source it in your shell
or install it to the appropriate location for your shell to enable completions permanently.

Examples:

  Bash (current shell):
    $ source <(healthscribe completion bash)

  Zsh:
    $ healthscribe completion zsh > "${fpath[1]}/_healthscribe"

  Fish:
    $ healthscribe completion fish > ~/.config/fish/completions/healthscribe.fish

  PowerShell:
    PS> healthscribe completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells,
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	PersistentPreRunE:     func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print the version number of healthscribe",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(healthscribe.Version)
	},
}

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the healthscribe database",
}

var dbUpgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade the database schema to the latest version",
	Long: `Connects to the SQLite database at the --db path (or the default location) and
applies any schema migrations the store needs. A missing database is created
and initialized with the latest schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := utils.ResolveAndEnsureDBPath(dbPath)
		if err != nil {
			return err
		}
		if path == "" {
			return errors.New("database path is required")
		}

		fmt.Printf("Upgrading database at: %s (WAL: %t, Sync: %s)\n", path, walMode, syncMode)

		dbConn, err := pkgdb.Open(path, dbOptions())
		if err != nil {
			return err
		}
		defer dbConn.Close()

		if err := pkgdb.MigrateLatest(dbConn, path); err != nil {
			return err
		}
		fmt.Printf("Database is at schema version %d\n", pkgdb.LatestVersion)
		return nil
	},
}

func initCmd() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file (uses HEALTHSCRIBE_DB or a system-specific default if not provided)")
	rootCmd.PersistentFlags().BoolVar(&walMode, "wal", false, "Enable SQLite WAL (Write-Ahead Logging) mode")
	rootCmd.PersistentFlags().StringVar(&syncMode, "sync", "FULL", "SQLite synchronous pragma (OFF, NORMAL, FULL, EXTRA)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to stderr")

	dbCmd.AddCommand(dbUpgradeCmd)

	initEntriesCmd()
	initGoalsCmd()
	initHabitsCmd()
	initNutritionCmd()
	initReportCmd()
	initServeCmd()
	rootCmd.AddCommand(completionCmd, versionCmd, dbCmd,
		entriesCmd, analyzeCmd, analyticsCmd,
		goalsCmd, habitsCmd, mealsCmd, waterCmd,
		reportCmd, serveCmd, mcpCmd, tuiCmd)
}

func main() {
	initCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
