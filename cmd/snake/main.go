// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake                - Play Snake (same as "snake play")
//	snake play           - Play Snake
//	snake serve          - Start SSH server for remote play
//	snake config         - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible food placement
//	--config <path>      - Use a specific config YAML
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic arcade game played in the terminal.

Steer the snake around a 26x15 board, eat the food to grow and score,
and avoid the walls and your own body.

Available commands:
  play     - Play Snake (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake play --seed 42
  snake serve --ssh :2222
  snake config > ~/.snake/configs/snake.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
