package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/utils"
)

const defaultConfigPath = "config.json"

// parseConfig loads the config file named by -config and applies any other
// flags given on the command line on top of it
func parseConfig(args []string) (utils.Config, error) {
	fs := flag.NewFlagSet("go-life", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath, "path to a JSON config file")
	flagConfig := utils.DefaultConfig()
	flagConfig.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return utils.Config{}, errors.Wrap(err, "[parseConfig] failed to parse flags")
	}

	config := loadConfig(*configPath)

	overrides := flag.NewFlagSet("overrides", flag.ContinueOnError)
	config.Bind(overrides)
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" || setErr != nil {
			return
		}
		setErr = overrides.Set(f.Name, f.Value.String())
	})
	if setErr != nil {
		return utils.Config{}, errors.Wrap(setErr, "[parseConfig] failed to apply flag")
	}

	if err := config.Validate(); err != nil {
		return utils.Config{}, errors.Wrap(err, "[parseConfig] invalid config")
	}
	return config, nil
}

// loadConfig reads the config file, falling back to defaults when it is unusable
func loadConfig(filename string) utils.Config {
	config, err := utils.LoadConfig(filename)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		return utils.DefaultConfig()
	}
	return config
}

// initializeGame builds the game and shows the startup banner
func initializeGame(config utils.Config, out io.Writer) (*game.Game, error) {
	g, err := game.New(config, out)
	if err != nil {
		return nil, err
	}
	displayGameInfo(out, config, g)
	return g, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, g *game.Game) {
	grid := g.Grid()
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d | Tick: %v\n",
		grid.Rows(), grid.Cols(), grid.Population(), config.TickInterval)
	fmt.Fprintln(out, "Type a command and press Enter, Ctrl+C to exit")
	fmt.Fprintln(out)
	time.Sleep(time.Second)
}
