package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	LevelTrace slog.Level = slog.LevelDebug - 4

	cellsPerRow = 10
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// PrintState renders the tape as a table, ten cells per row, with the cell
// under the data pointer marked.
func PrintState(w io.Writer, s Snapshot) {
	fmt.Fprintf(w, "==============State (DP=%d, IP=%d)==============\n",
		s.DataPointer, s.InstPointer)

	tapeTable := table.NewWriter()
	tapeTable.SetOutputMirror(w)
	tapeTable.SetTitle(fmt.Sprintf("Tape (%d cells)", len(s.Tape)))

	header := table.Row{"Addr"}
	for col := 0; col < cellsPerRow; col++ {
		header = append(header, "+"+strconv.Itoa(col))
	}
	tapeTable.AppendHeader(header)

	rows := (len(s.Tape) + cellsPerRow - 1) / cellsPerRow
	if int(s.DataPointer) >= rows*cellsPerRow {
		rows = int(s.DataPointer)/cellsPerRow + 1
	}

	for row := 0; row < rows; row++ {
		base := row * cellsPerRow
		r := table.Row{base}
		for col := 0; col < cellsPerRow; col++ {
			addr := uint(base + col)
			v := strconv.Itoa(int(s.Cell(addr)))
			if addr == s.DataPointer {
				v = "*" + v
			}
			r = append(r, v)
		}
		tapeTable.AppendRow(r)
	}

	tapeTable.Render()
}

func LogState(state *coreState) {
	slog.Debug("StateCheckpoint",
		"DP", state.DP,
		"IP", state.IP,
		"TapeLen", state.Tape.Len(),
	)
}
