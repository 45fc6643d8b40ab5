package main

import (
	"math/rand"
	"time"
)

const (
	boardRows = 15
	boardCols = 10

	fallInterval  = 1000 * time.Millisecond
	clockInterval = 100 * time.Millisecond

	tetrisBonus = 1000
)

// State is the game state machine position.
type State int

const (
	Playing State = iota
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case GameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}

// Command is an abstract input action. The key-mapping layer translates raw
// key events into commands; the game never sees physical keys.
type Command int

const (
	CmdMoveLeft Command = iota
	CmdMoveRight
	CmdRotate
	CmdSoftDrop
	CmdHardDrop
	CmdTogglePause
	CmdReset
)

// StepResult describes what a tick or command did, so the UI layer can
// drive sound and redraw without reaching into game internals.
type StepResult struct {
	Moved    bool
	Locked   bool
	Cleared  int
	GameOver bool
}

// Game owns the board, the piece ring, the counters and the state machine.
// Everything runs on a single timeline: Tick is called from the UI clock
// and Apply from key handling, never concurrently.
type Game struct {
	board       *Grid
	pieces      *Ring[*Piece]
	state       State
	score       int
	lines       int
	lastGravity time.Time
	rng         *rand.Rand
}

// NewGame builds a game with an empty board and a random first piece.
func NewGame() *Game {
	return newGameWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newGameWithRand(rng *rand.Rand) *Game {
	board, err := NewGrid(boardRows, boardCols)
	if err != nil {
		panic(err)
	}
	pieces, err := NewRing(allPieces()...)
	if err != nil {
		panic(err)
	}
	game := &Game{
		board:  board,
		pieces: pieces,
		state:  Playing,
		rng:    rng,
	}
	game.pieces.RandomSelect(rng).ResetPosition(board)
	return game
}

// Board returns the board grid. Callers must treat it as read-only.
func (g *Game) Board() *Grid { return g.board }

// ActivePiece returns the currently falling piece. Callers must treat it
// as read-only.
func (g *Game) ActivePiece() *Piece { return g.pieces.Current() }

// State returns the current state machine position.
func (g *Game) State() State { return g.state }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lines returns the total number of cleared lines.
func (g *Game) Lines() int { return g.lines }

// Tick advances gravity. One downward step happens when more than the fall
// interval has elapsed since the last step; a blocked step lands the piece.
// The gravity clock is updated whether or not the step succeeded.
func (g *Game) Tick(now time.Time) StepResult {
	if g.state != Playing {
		return StepResult{}
	}
	if g.lastGravity.IsZero() {
		g.lastGravity = now
		return StepResult{}
	}
	if now.Sub(g.lastGravity) <= fallInterval {
		return StepResult{}
	}
	g.lastGravity = now
	if g.pieces.Current().MoveDown(g.board) {
		return StepResult{Moved: true}
	}
	return g.land()
}

// Apply processes a discrete input command. Movement commands are accepted
// only while playing; pause toggling and reset work from the other states
// too.
func (g *Game) Apply(cmd Command) StepResult {
	switch cmd {
	case CmdTogglePause:
		switch g.state {
		case Playing:
			g.state = Paused
		case Paused:
			g.state = Playing
		}
		return StepResult{}
	case CmdReset:
		g.reset()
		return StepResult{}
	}
	if g.state != Playing {
		return StepResult{}
	}
	piece := g.pieces.Current()
	switch cmd {
	case CmdMoveLeft:
		return StepResult{Moved: piece.MoveLeft(g.board)}
	case CmdMoveRight:
		return StepResult{Moved: piece.MoveRight(g.board)}
	case CmdRotate:
		return StepResult{Moved: piece.Rotate(g.board)}
	case CmdSoftDrop:
		return StepResult{Moved: piece.MoveDown(g.board)}
	case CmdHardDrop:
		moved := false
		for piece.MoveDown(g.board) {
			moved = true
		}
		result := g.land()
		result.Moved = moved
		return result
	}
	return StepResult{}
}

// land commits the active piece, clears filled rows, scores the clear and
// spawns the next piece. A spawn that collides ends the game.
func (g *Game) land() StepResult {
	result := StepResult{Locked: true}
	g.pieces.Current().CommitTo(g.board)
	cleared := g.board.RemoveFilledRows()
	result.Cleared = cleared
	if cleared > 0 {
		g.lines += cleared
		if cleared < 4 {
			// non-tetris clears score against the cumulative line
			// total, not the lines just cleared
			g.score += g.lines * 10
		} else {
			g.score += tetrisBonus
		}
	}
	if !g.pieces.RandomSelect(g.rng).ResetPosition(g.board) {
		g.state = GameOver
		result.GameOver = true
	}
	return result
}

// reset clears the board and counters and starts a fresh game from any
// state.
func (g *Game) reset() {
	g.board.Clear()
	g.score = 0
	g.lines = 0
	g.state = Playing
	g.lastGravity = time.Time{}
	g.pieces.RandomSelect(g.rng).ResetPosition(g.board)
}

// DropRow returns the row the active piece would land on if hard dropped.
// The board and piece are not modified; the shadow overlay uses this.
func (g *Game) DropRow() int {
	grid, row, col := g.pieces.Current().Footprint()
	for fits(g.board, grid, row+1, col) {
		row++
	}
	return row
}
