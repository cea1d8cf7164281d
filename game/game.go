package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// errQuit stops the loop and is not reported by Run
var errQuit = errors.New("quit")

// Game drives a single grid from timer ticks and user commands.
// Only the goroutine running the loop touches the grid.
type Game struct {
	cfg      utils.Config
	out      io.Writer
	renderer *model.TerminalRenderer
	pool     *model.GridPool
	src      *rand.Rand
	stats    *utils.Stats

	grid       *model.Grid
	running    bool
	generation int
	lastStep   time.Time
	message    string
}

// New builds a game with a random board sized from the config
func New(cfg utils.Config, out io.Writer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[game.New] invalid config")
	}

	src := model.NewSource()
	if cfg.Seed != 0 {
		src = model.NewSeededSource(cfg.Seed)
	}

	g := &Game{
		cfg:      cfg,
		out:      out,
		renderer: model.NewTerminalRenderer(out),
		pool:     model.NewGridPool(),
		src:      src,
		stats:    utils.NewStats(),
		running:  cfg.StartRunning,
	}

	grid, err := g.pool.Random(cfg.Rows, cfg.Cols, cfg.AliveProbability, src)
	if err != nil {
		return nil, errors.Wrap(err, "[game.New] failed to build grid")
	}
	g.replaceGrid(grid)
	return g, nil
}

// Grid returns the current board
func (g *Game) Grid() *model.Grid {
	return g.grid
}

// Running reports whether ticks advance the board
func (g *Game) Running() bool {
	return g.running
}

// Generation returns the number of generations since the board was built
func (g *Game) Generation() int {
	return g.generation
}

// Stats returns the running statistics
func (g *Game) Stats() *utils.Stats {
	return g.stats
}

// Apply executes a command and reports whether the game should end.
// Invalid user input returns an error and leaves the board untouched.
func (g *Game) Apply(cmd Command) (bool, error) {
	switch cmd.Kind {
	case CmdPlay:
		if !g.running {
			g.lastStep = time.Now()
		}
		g.running = true
	case CmdStop:
		g.running = false
	case CmdNext:
		g.step()
	case CmdRandom:
		rows, cols := g.randomSize()
		grid, err := g.pool.Random(rows, cols, g.src.Float64(), g.src)
		if err != nil {
			return false, errors.Wrap(err, "[Game.Apply] failed to build random grid")
		}
		g.replaceGrid(grid)
	case CmdBlank:
		rows, cols := g.randomSize()
		grid, err := g.pool.Get(rows, cols)
		if err != nil {
			return false, errors.Wrap(err, "[Game.Apply] failed to build blank grid")
		}
		g.replaceGrid(grid)
	case CmdToggle:
		if !g.grid.Contains(cmd.Row, cmd.Col) {
			return false, errors.Errorf("[Game.Apply] cell (%d, %d) is outside the %dx%d grid",
				cmd.Row, cmd.Col, g.grid.Rows(), g.grid.Cols())
		}
		g.grid.Toggle(cmd.Row, cmd.Col)
	case CmdBack:
		grid, err := g.pool.Random(g.cfg.Rows, g.cfg.Cols, g.cfg.AliveProbability, g.src)
		if err != nil {
			return false, errors.Wrap(err, "[Game.Apply] failed to rebuild start grid")
		}
		g.running = false
		g.replaceGrid(grid)
	case CmdQuit:
		return true, nil
	default:
		return false, errors.Errorf("[Game.Apply] unknown command kind %d", cmd.Kind)
	}
	return false, nil
}

// Tick advances one generation if the game is running
func (g *Game) Tick() {
	if g.running {
		g.step()
	}
}

func (g *Game) step() {
	now := time.Now()
	g.grid.Advance()
	g.generation++
	g.stats.Update(g.generation, g.grid.Population(), now.Sub(g.lastStep))
	g.lastStep = now
}

func (g *Game) randomSize() (rows, cols int) {
	span := g.cfg.SizeMax - g.cfg.SizeMin
	return g.cfg.SizeMin + g.src.IntN(span), g.cfg.SizeMin + g.src.IntN(span)
}

func (g *Game) replaceGrid(grid *model.Grid) {
	model.GridToPool(g.grid, g.pool)
	g.grid = grid
	g.generation = 0
	g.lastStep = time.Now()
	g.stats.Reset(grid.Population())
}

func (g *Game) limitReached() bool {
	return g.cfg.MaxGenerations > 0 && g.generation >= g.cfg.MaxGenerations
}

// Render draws the status line, the board and any pending message
func (g *Game) Render() error {
	if err := g.renderer.Clear(); err != nil {
		return err
	}

	population := g.grid.Population()
	state := "Stopped"
	if g.running {
		state = "Running"
	}
	if population == 0 {
		state += " | Extinct"
	}
	if _, err := fmt.Fprintf(g.out, "Gen: %d | Living: %d | Grid: %dx%d | %s | %.1f gen/sec | Avg Pop: %.1f\n",
		g.generation, population, g.grid.Rows(), g.grid.Cols(), state,
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation); err != nil {
		return errors.Wrap(err, "[Game.Render] failed to write status")
	}

	if err := g.renderer.Display(g.grid); err != nil {
		return err
	}

	if g.message != "" {
		if _, err := fmt.Fprintln(g.out, g.message); err != nil {
			return errors.Wrap(err, "[Game.Render] failed to write message")
		}
	}
	_, err := fmt.Fprintln(g.out, helpLine)
	return errors.Wrap(err, "[Game.Render] failed to write help")
}

// input is one line from the reader, parsed or rejected
type input struct {
	cmd Command
	err error
}

// Run renders the board and processes ticks and commands read from in until a
// quit command, the generation limit, or cancellation of ctx. When in reaches
// EOF a stopped game ends, a running game keeps ticking. A read error ends the
// game and is returned.
func (g *Game) Run(ctx context.Context, in io.Reader) error {
	eg, ctx := errgroup.WithContext(ctx)
	inputs := make(chan input)

	eg.Go(func() error {
		if err := readInputs(ctx, in, inputs); err != nil {
			return errors.Wrap(err, "[Game.Run] failed to read input")
		}
		close(inputs)
		return nil
	})
	eg.Go(func() error {
		return g.loop(ctx, inputs)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

func (g *Game) loop(ctx context.Context, inputs <-chan input) error {
	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()

	if err := g.Render(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !g.running {
				continue
			}
			g.Tick()
		case in, ok := <-inputs:
			if !ok {
				if !g.running {
					return errQuit
				}
				inputs = nil
				continue
			}
			g.message = ""
			if in.err != nil {
				g.message = in.err.Error()
				break
			}
			quit, err := g.Apply(in.cmd)
			if err != nil {
				g.message = err.Error()
			}
			if quit {
				return errQuit
			}
		}

		if err := g.Render(); err != nil {
			return err
		}
		if g.limitReached() {
			fmt.Fprintf(g.out, "Reached maximum generations limit (%d)\n", g.cfg.MaxGenerations)
			return errQuit
		}
	}
}

// readInputs parses lines from in and forwards them until EOF, a read error,
// or the end of ctx
func readInputs(ctx context.Context, in io.Reader, out chan<- input) error {
	lines, errc := scanLines(ctx, in)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			cmd, err := ParseCommand(line)
			select {
			case out <- input{cmd: cmd, err: err}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// scanLines reads in line by line on its own goroutine. The scanner error, nil
// at EOF, is sent on errc before lines is closed. A blocked Read on in cannot be
// interrupted, so this goroutine may outlive ctx until the next line or EOF.
func scanLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}
