package blocks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/plus3/blockfall/score"
)

// Phase is the state machine position of a game.
type Phase uint8

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// Command is a player input.
type Command uint8

const (
	MoveLeft Command = iota
	MoveRight
	SoftDrop
	RotateCW
)

var commandNames = [...]string{"move-left", "move-right", "soft-drop", "rotate"}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// Commands returns every command.
func Commands() []Command {
	return []Command{MoveLeft, MoveRight, SoftDrop, RotateCW}
}

// Step describes what a single Tick did.
type Step uint8

const (
	StepIdle Step = iota
	StepSpawned
	StepFell
	StepLocked
	StepGameOver
)

var stepNames = [...]string{"idle", "spawned", "fell", "locked", "game-over"}

func (s Step) String() string {
	if int(s) < len(stepNames) {
		return stepNames[s]
	}
	return fmt.Sprintf("Step(%d)", uint8(s))
}

// State is a snapshot of a game. It shares nothing with the live game.
type State struct {
	Grid   *Grid
	Active *Piece // nil between a lock and the next spawn
	Ghost  int    // rows the active piece can still fall
	Score  score.State
	Phase  Phase

	LinesCleared int
	PiecesLocked int
}

// Game is the falling-block state machine. All methods are safe for
// concurrent use; each takes the game lock for its whole duration.
type Game struct {
	mu sync.Mutex

	cfg     Config
	catalog *Catalog
	score   *score.Tracker
	logger  *slog.Logger

	grid   *Grid
	active *Piece
	phase  Phase
	lines  int
	locked int
}

// NewGame creates a game in the Playing phase with an empty grid and no
// active piece. The first Tick spawns. A nil tracker keeps score without
// persistence; a nil logger discards output.
func NewGame(cfg Config, catalog *Catalog, tracker *score.Tracker, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if catalog == nil {
		catalog = NewCatalog(cfg, nil)
	}
	if tracker == nil {
		tracker = score.NewTracker(nil, cfg.HighScoreKey, logger)
	}
	return &Game{
		cfg:     cfg,
		catalog: catalog,
		score:   tracker,
		logger:  logger,
		grid:    NewGrid(cfg.Width, cfg.Height),
		phase:   Playing,
	}, nil
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}

// Tick advances the simulation by one drop interval.
func (g *Game) Tick(ctx context.Context) Step {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != Playing {
		return StepIdle
	}

	if g.active == nil {
		p := g.catalog.RandomPiece()
		if Collides(p, g.grid, 0, 0) {
			g.phase = GameOver
			st := g.score.State()
			g.logger.Info("game over",
				"score", st.Current,
				"best", st.Best,
				"lines", g.lines,
				"pieces", g.locked,
			)
			return StepGameOver
		}
		g.active = p
		g.logger.Debug("spawned piece", "kind", p.Kind, "x", p.Origin.X, "y", p.Origin.Y)
		return StepSpawned
	}

	if AttemptShift(g.active, g.grid, 0, 1) {
		return StepFell
	}

	Lock(g.active, g.grid)
	rows := ClearFullRows(g.grid)
	g.locked++
	g.lines += rows
	if rows > 0 {
		g.score.AddPoints(ctx, rows*PointsPerRow)
	}
	g.logger.Debug("locked piece",
		"kind", g.active.Kind,
		"x", g.active.Origin.X,
		"y", g.active.Origin.Y,
		"rows", rows,
	)
	g.active = nil
	return StepLocked
}

// Apply executes a player command and reports whether it changed the active
// piece. Commands are ignored outside Playing or while no piece is active.
func (g *Game) Apply(cmd Command) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != Playing || g.active == nil {
		return false
	}

	switch cmd {
	case MoveLeft:
		return AttemptShift(g.active, g.grid, -1, 0)
	case MoveRight:
		return AttemptShift(g.active, g.grid, 1, 0)
	case SoftDrop:
		return AttemptShift(g.active, g.grid, 0, 1)
	case RotateCW:
		return Rotate(g.active, g.grid)
	}
	return false
}

// Restart clears the grid and current score and returns to Playing. The
// best score is kept.
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.grid = NewGrid(g.cfg.Width, g.cfg.Height)
	g.active = nil
	g.phase = Playing
	g.lines = 0
	g.locked = 0
	g.catalog.Reset()
	g.score.Reset()
	g.logger.Info("game restarted", "best", g.score.State().Best)
}

func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return State{
		Grid:         g.grid.Clone(),
		Active:       g.active.Clone(),
		Ghost:        DropDistance(g.active, g.grid),
		Score:        g.score.State(),
		Phase:        g.phase,
		LinesCleared: g.lines,
		PiecesLocked: g.locked,
	}
}
