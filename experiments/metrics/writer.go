package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID   int
	Seed uint64
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped run directory under root.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "session", "seed", "agent", "rows", "cols", "mines", "outcome", "moves", "logic_moves", "random_moves", "cells_revealed"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Session,
			strconv.FormatUint(record.Seed, 10),
			record.Agent,
			strconv.Itoa(record.Rows),
			strconv.Itoa(record.Cols),
			strconv.Itoa(record.Mines),
			record.Outcome.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.LogicMoves),
			strconv.Itoa(record.RandomMoves),
			strconv.Itoa(record.CellsRevealed),
		})
	}
	return w.write("games.csv", "game records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "row", "col", "strategy", "revealed", "status"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Row),
			strconv.Itoa(record.Col),
			record.Strategy,
			strconv.Itoa(record.Revealed),
			record.Status.String(),
		})
	}
	return w.write("moves.csv", "move records", header, rows)
}

func (w *Writer) write(name, what string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", what, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s file: %w", what, cerr)
		}
	}()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", what, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", what, err)
	}

	return nil
}
