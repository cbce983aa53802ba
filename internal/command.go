package application

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

type flags struct {
	configPath string
	logLevel   string
	playerOne  string
	playerTwo  string
}

// NewRootCmd - builds the tictactoe command with its replay sub-command.
func NewRootCmd() *cobra.Command {
	opts := &flags{}

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Two-player tic-tac-toe in the terminal",
		Long: `tictactoe plays a game of tic-tac-toe between two people at one terminal.

Enter moves as "row col" with rows and columns numbered 0-2 from the top-left.
Type "new" to start over and "quit" to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			return RunApp(initLogger(conf, cmd.ErrOrStderr()), conf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yml", "Config file path")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info (env: TICTACTOE_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&opts.playerOne, "player-one", "", "Name of the X player (env: TICTACTOE_PLAYER_ONE)")
	rootCmd.PersistentFlags().StringVar(&opts.playerTwo, "player-two", "", "Name of the O player (env: TICTACTOE_PLAYER_TWO)")

	rootCmd.AddCommand(newReplayCmd(opts))

	return rootCmd
}

func newReplayCmd(opts *flags) *cobra.Command {
	return &cobra.Command{
		Use:     "replay row,col...",
		Short:   "Apply a list of moves and print the resulting board",
		Example: "tictactoe replay 0,0 1,1 0,1 1,0 0,2",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			return ReplayGame(initLogger(conf, cmd.ErrOrStderr()), conf, args, cmd.OutOrStdout())
		},
	}
}

// loadConfig - reads the config file and environment, then applies explicitly set flags.
func loadConfig(cmd *cobra.Command, opts *flags) (*config.Config, error) {
	conf, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		conf.LogLevel = opts.logLevel
	}
	if cmd.Flags().Changed("player-one") {
		conf.PlayerOne = opts.playerOne
	}
	if cmd.Flags().Changed("player-two") {
		conf.PlayerTwo = opts.playerTwo
	}

	return conf, nil
}

// initialize logger. Stdout belongs to the board, so logs go to w.
func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
