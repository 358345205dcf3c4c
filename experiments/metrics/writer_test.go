package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Run("writes game and move records as csv", func(t *testing.T) {
		root := t.TempDir()
		w, err := NewWriter(root)
		require.NoError(t, err)

		now := time.Now()
		games := []GameRecord{{
			ID:         "g1",
			Winner:     "black",
			StartTime:  now,
			EndTime:    now.Add(time.Second),
			Duration:   time.Second,
			TotalMoves: 7,
		}}
		moves := []MoveRecord{{
			Game: "g1",
			MoveMetric: MoveMetric{
				Step:   1,
				Player: "black",
				SearchMetric: SearchMetric{
					Budget:       100,
					Iterations:   100,
					FullPlayouts: 90,
					TreeReused:   true,
				},
			},
		}}

		require.NoError(t, w.WriteGameRecords(games))
		require.NoError(t, w.WriteMoveRecords(moves))

		gameRows := readCSV(t, filepath.Join(w.BaseDir(), "game_records.csv"))
		require.Len(t, gameRows, 2, "Header plus one record")
		require.Equal(t, "g1", gameRows[1][0])
		require.Equal(t, "black", gameRows[1][1])
		require.Equal(t, "7", gameRows[1][5])

		moveRows := readCSV(t, filepath.Join(w.BaseDir(), "move_records.csv"))
		require.Len(t, moveRows, 2)
		require.Equal(t, "g1", moveRows[1][0])
		require.Equal(t, "1", moveRows[1][1])
		require.Equal(t, "true", moveRows[1][8])
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
