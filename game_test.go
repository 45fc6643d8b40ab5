package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	return newGameWithRand(rand.New(rand.NewSource(seed)))
}

// forcePiece makes the given shape the active piece, reset to the top.
func forcePiece(t *testing.T, g *Game, kind Kind) *Piece {
	t.Helper()
	g.pieces.index = int(kind)
	piece := g.pieces.Current()
	require.Equal(t, kind, piece.Kind())
	require.True(t, piece.ResetPosition(g.board))
	return piece
}

func TestNewGameStartsPlaying(t *testing.T) {
	g := newTestGame(t, 1)
	assert.Equal(t, Playing, g.State())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.Lines())
	assert.Equal(t, boardRows, g.Board().Rows())
	assert.Equal(t, boardCols, g.Board().Cols())
}

func TestGravityTick(t *testing.T) {
	g := newTestGame(t, 1)
	start := time.Now()

	// first tick only arms the gravity clock
	result := g.Tick(start)
	assert.False(t, result.Moved)

	// under the interval: nothing happens
	result = g.Tick(start.Add(fallInterval))
	assert.False(t, result.Moved)

	_, rowBefore, _ := g.ActivePiece().Footprint()
	result = g.Tick(start.Add(fallInterval + time.Millisecond))
	assert.True(t, result.Moved)
	_, rowAfter, _ := g.ActivePiece().Footprint()
	assert.Equal(t, rowBefore+1, rowAfter)
}

func TestTickIgnoredWhilePausedAndGameOver(t *testing.T) {
	g := newTestGame(t, 1)
	start := time.Now()
	g.Tick(start)

	g.Apply(CmdTogglePause)
	require.Equal(t, Paused, g.State())
	result := g.Tick(start.Add(10 * fallInterval))
	assert.False(t, result.Moved)
	assert.False(t, result.Locked)

	g.Apply(CmdTogglePause)
	assert.Equal(t, Playing, g.State())
}

func TestMovementGatedWhilePaused(t *testing.T) {
	g := newTestGame(t, 1)
	g.Apply(CmdTogglePause)

	_, _, before := g.ActivePiece().Footprint()
	assert.False(t, g.Apply(CmdMoveLeft).Moved)
	assert.False(t, g.Apply(CmdMoveRight).Moved)
	assert.False(t, g.Apply(CmdRotate).Moved)
	assert.False(t, g.Apply(CmdSoftDrop).Moved)
	_, _, after := g.ActivePiece().Footprint()
	assert.Equal(t, before, after)
}

func TestSoftDropMovesOneRow(t *testing.T) {
	g := newTestGame(t, 1)
	_, before, _ := g.ActivePiece().Footprint()
	assert.True(t, g.Apply(CmdSoftDrop).Moved)
	_, after, _ := g.ActivePiece().Footprint()
	assert.Equal(t, before+1, after)
}

func TestHardDropLandsAndStaysOnBoard(t *testing.T) {
	g := newTestGame(t, 1)
	result := g.Apply(CmdHardDrop)
	assert.True(t, result.Locked)

	// the landed piece is committed; some bottom-row neighborhood must be
	// occupied now
	occupied := 0
	for c := 0; c < boardCols; c++ {
		if g.Board().At(boardRows-1, c) != Empty {
			occupied++
		}
	}
	assert.Greater(t, occupied, 0)
}

func TestScoringUsesCumulativeLineTotal(t *testing.T) {
	g := newTestGame(t, 1)

	// three separate single-line clears: the rule awards the cumulative
	// line total times ten each time, so 10, then 20, then 30
	wantScores := []int{10, 30, 60}
	for step, want := range wantScores {
		g.board.Clear()
		fillRow(g.board, boardRows-1, 4, 5)
		forcePiece(t, g, KindO)

		result := g.Apply(CmdHardDrop)
		require.Equal(t, 1, result.Cleared, "step %d", step)
		assert.Equal(t, step+1, g.Lines())
		assert.Equal(t, want, g.Score())
	}
}

func TestTetrisScoresFlatBonus(t *testing.T) {
	g := newTestGame(t, 1)
	for r := boardRows - 4; r < boardRows; r++ {
		fillRow(g.board, r, 9)
	}
	piece := forcePiece(t, g, KindI)
	require.True(t, piece.Rotate(g.board)) // vertical
	piece.row = 0
	piece.col = 9

	result := g.Apply(CmdHardDrop)
	require.Equal(t, 4, result.Cleared)
	assert.Equal(t, 4, g.Lines())
	assert.Equal(t, tetrisBonus, g.Score())
}

func TestTetrisBonusIgnoresCumulativeMultiplier(t *testing.T) {
	g := newTestGame(t, 1)

	// one single clear first, then a tetris: the tetris adds the flat
	// bonus regardless of the line total
	g.board.Clear()
	fillRow(g.board, boardRows-1, 4, 5)
	forcePiece(t, g, KindO)
	require.Equal(t, 1, g.Apply(CmdHardDrop).Cleared)
	require.Equal(t, 10, g.Score())

	g.board.Clear()
	for r := boardRows - 4; r < boardRows; r++ {
		fillRow(g.board, r, 9)
	}
	piece := forcePiece(t, g, KindI)
	require.True(t, piece.Rotate(g.board))
	piece.row = 0
	piece.col = 9

	result := g.Apply(CmdHardDrop)
	require.Equal(t, 4, result.Cleared)
	assert.Equal(t, 5, g.Lines())
	assert.Equal(t, 10+tetrisBonus, g.Score())
}

func TestLandingWithoutClearDoesNotScore(t *testing.T) {
	g := newTestGame(t, 1)
	forcePiece(t, g, KindO)
	result := g.Apply(CmdHardDrop)
	assert.Equal(t, 0, result.Cleared)
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.Lines())
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	g := newTestGame(t, 1)

	// occupy the spawn area for every shape, without filling any row
	for r := 0; r < 2; r++ {
		for c := 3; c <= 6; c++ {
			g.board.cells[r][c] = 1
		}
	}
	g.pieces.index = int(KindO)
	piece := g.pieces.Current()
	piece.row = boardRows - 2
	piece.col = 0

	result := g.Apply(CmdHardDrop)
	assert.True(t, result.GameOver)
	assert.Equal(t, GameOver, g.State())

	// terminal state: gravity and movement are dead until reset
	assert.False(t, g.Apply(CmdMoveLeft).Moved)
	assert.False(t, g.Tick(time.Now().Add(time.Hour)).Moved)
	g.Apply(CmdTogglePause)
	assert.Equal(t, GameOver, g.State())
}

func TestResetRestartsFromAnyState(t *testing.T) {
	g := newTestGame(t, 1)
	g.board.cells[boardRows-1][0] = 1
	g.score = 120
	g.lines = 3
	g.state = GameOver

	g.Apply(CmdReset)
	assert.Equal(t, Playing, g.State())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.Lines())
	for r := 0; r < boardRows; r++ {
		for c := 0; c < boardCols; c++ {
			assert.Equal(t, Empty, g.Board().At(r, c))
		}
	}
	_, row, _ := g.ActivePiece().Footprint()
	assert.Equal(t, 0, row)
}

func TestDropRowDoesNotMutate(t *testing.T) {
	g := newTestGame(t, 1)
	grid, row, col := g.ActivePiece().Footprint()

	dropRow := g.DropRow()
	assert.GreaterOrEqual(t, dropRow, row)
	assert.LessOrEqual(t, dropRow+grid.Rows(), boardRows)

	gridAfter, rowAfter, colAfter := g.ActivePiece().Footprint()
	assert.Same(t, grid, gridAfter)
	assert.Equal(t, row, rowAfter)
	assert.Equal(t, col, colAfter)
}

func TestHardDropBoundedByBoardRows(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := newTestGame(t, seed)
		_, before, _ := g.ActivePiece().Footprint()
		assert.LessOrEqual(t, g.DropRow()-before, boardRows)
		result := g.Apply(CmdHardDrop)
		assert.True(t, result.Locked)
	}
}
