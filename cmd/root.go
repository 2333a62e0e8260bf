package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"clash/cli"
	"clash/config"
	"clash/engine"
	"clash/game"
)

var (
	configDir string
	seed      int64
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "clash",
	Short: "Clash of Commands - a two-player tactical card game",
	Long: `Clash of Commands is a two-player, zone-based tactical card game.

Players draw from a personal deck, deploy troops into battlefield zones
and accumulate command points; a player loses when morale reaches zero.
This version supports drawing and deploying troops to HQ or RESERVE.`,
	RunE: runMatch,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&configDir, "config-dir", ".", "directory containing clash.cfg.json")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "deck shuffle seed (0 = random)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "override the configured log level")
}

func runMatch(cmd *cobra.Command, args []string) error {
	if err := config.Load(configDir); err != nil {
		return err
	}

	levelName := config.LogLevel()
	if logLevel != "" {
		levelName = logLevel
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(level)

	matchSeed := uint64(seed)
	if seed == 0 {
		matchSeed, err = config.Seed()
		if err != nil {
			return err
		}
	}
	log.Debug().Uint64("seed", matchSeed).Msg("match seed")

	rng := rand.New(rand.NewSource(matchSeed))
	state := game.NewGameState(config.Rules(), rng)

	// One shared commander: both players act through the same terminal.
	commander := cli.NewCommander(os.Stdin, os.Stdout)
	e := engine.New(state, commander, commander)

	fmt.Println("Clash of Commands - Starter Prototype")
	fmt.Println("This version only lets you DRAW and DEPLOY troops to HQ/RESERVE.")

	winner := e.Run()
	fmt.Printf("PLAYER %d WINS!\n", winner)
	return nil
}
