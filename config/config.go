// Package config loads match configuration with viper. Everything has a
// default, and the config file is optional.
package config

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"clash/game"
)

const configName = "clash.cfg.json"

// Load sets defaults and reads the optional JSON config file from
// configDir. A missing file is not an error; a malformed one is.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("seed", 0) // 0 = derive a seed from crypto/rand

	viper.SetDefault("rules.startingMorale", 25)
	viper.SetDefault("rules.commandPointGain", 2)
	viper.SetDefault("rules.commandPointCap", 5)
	viper.SetDefault("rules.startingHandSize", 5)
	viper.SetDefault("rules.drawPerTurn", 1)
	viper.SetDefault("rules.deckCopies", 2)

	viper.SetConfigName(configName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return viper.GetString("logLevel")
}

// Rules builds the match rules from configuration. The deployable zone set
// stays fixed to the standard rules.
func Rules() game.Rules {
	rules := game.NewStandardRules()
	rules.StartingMorale = viper.GetInt("rules.startingMorale")
	rules.CommandPointGain = viper.GetInt("rules.commandPointGain")
	rules.CommandPointCap = viper.GetInt("rules.commandPointCap")
	rules.StartingHandSize = viper.GetInt("rules.startingHandSize")
	rules.DrawPerTurn = viper.GetInt("rules.drawPerTurn")
	rules.DeckCopies = viper.GetInt("rules.deckCopies")
	return rules
}

// Seed returns the configured shuffle seed, deriving a random one from
// crypto/rand when unset.
func Seed() (uint64, error) {
	if s := viper.GetInt64("seed"); s != 0 {
		return uint64(s), nil
	}
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
