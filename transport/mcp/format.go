package mcp

import (
	"fmt"
	"strings"

	"github.com/wricardo/mcp-training/hanoi/game/engine"
	"github.com/wricardo/mcp-training/hanoi/game/service"
)

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nCreated: %s\n\n%s",
		session.ID,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Disks: %d | Step: %d | Optimal: %d\n\n", state.N, state.Step, state.Optimal)
	b.WriteString(engine.FormatTowers(state.Towers))
	b.WriteString("\n")

	var avail []string
	if state.CanUndo {
		avail = append(avail, "undo")
	}
	if state.CanRedo {
		avail = append(avail, "redo")
	}
	if len(avail) > 0 {
		fmt.Fprintf(&b, "\nAvailable: %s\n", strings.Join(avail, ", "))
	}

	if state.Won {
		if state.Step == state.Optimal {
			b.WriteString("\n🎉 SOLVED in the optimal number of moves!")
		} else {
			fmt.Fprintf(&b, "\n🎉 SOLVED in %d moves (%d over optimal)", state.Step, state.Step-state.Optimal)
		}
	}

	if state.LastAction != "" {
		fmt.Fprintf(&b, "\nLast action: %s", state.LastAction)
	}

	return b.String()
}

func formatResult(result *service.Result) string {
	if !result.OK {
		msg := "✗ " + result.Message
		if result.State != nil {
			msg += "\n\n" + formatGameState(result.State)
		}
		return msg
	}
	return "✓ OK\n\n" + formatGameState(result.State)
}

func formatSolution(moves []engine.Move) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Optimal solution (%d moves):\n", len(moves))
	for i, m := range moves {
		fmt.Fprintf(&b, "%d. %s -> %s\n", i+1, m.Src, m.Dest)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Move History (Page %d/%d) | Total: %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	if len(history.Moves) == 0 {
		b.WriteString("(no moves yet)")
		return b.String()
	}

	for _, move := range history.Moves {
		fmt.Fprintf(&b, "%d. %s -> %s\n", move.Step, move.Src, move.Dest)
	}
	if history.HasNext {
		fmt.Fprintf(&b, "\nMore on page %d", history.Page+1)
	}

	return strings.TrimRight(b.String(), "\n")
}
