package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type GameRecord struct {
	Agent1 string // Dark
	Agent2 string // Light
	GameMetric
}

type MoveRecord struct {
	Game string // GameMetric.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp>-<run id> and writes records into it.
// Every writer gets its own directory, even within the same second.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp+"-"+uuid.NewString()[:8])
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create directory %s", baseDir)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_side", "winner", "dark", "light", "empty",
		"start_time", "end_time", "duration", "total_moves"}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			record.Agent1,
			record.Agent2,
			record.StartingSide.String(),
			record.Winner.String(),
			strconv.Itoa(record.Dark),
			strconv.Itoa(record.Light),
			strconv.Itoa(record.Empty),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}

	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "side", "x", "y", "candidates", "flipped", "passed", "fallback", "duration"}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game,
			strconv.Itoa(record.Step),
			record.Side.String(),
			strconv.Itoa(record.Move.X),
			strconv.Itoa(record.Move.Y),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Flipped),
			strconv.FormatBool(record.Passed),
			strconv.FormatBool(record.Fallback),
			record.Duration.String(),
		})
	}

	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", file)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s header", file)
	}

	err = writer.WriteAll(rows)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s rows", file)
	}

	return nil
}
