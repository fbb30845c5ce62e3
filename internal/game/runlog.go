package game

import (
	"encoding/json"
	"os"
	"path/filepath"

	"undervault/internal/component"

	"github.com/google/uuid"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	RunID        string         `json:"run_id"`
	Depth        int            `json:"depth"`
	Turns        int            `json:"turns"`
	Kills        map[string]int `json:"kills"` // monster name → kill count
	XPEarned     int            `json:"xp_earned"`
	FinalLevel   int            `json:"final_level"`
	CauseOfDeath string         `json:"cause_of_death,omitempty"`
}

func newRunLog() RunLog {
	return RunLog{
		RunID: uuid.NewString(),
		Depth: 1,
		Kills: make(map[string]int),
	}
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl.
// Errors are silently discarded so a disk problem never crashes the game.
func (g *Game) saveRunLog() {
	if c := g.world.Get(g.playerID, component.CLevel); c != nil {
		g.runLog.FinalLevel = c.(component.Level).Value
	}

	dir, err := runLogDir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(g.runLog)
	if err != nil {
		return
	}
	f.Write(data)         //nolint:errcheck — best-effort write
	f.Write([]byte("\n")) //nolint:errcheck
}

// runLogDir returns the directory where run logs are stored.
// Follows the XDG Base Directory spec: $XDG_DATA_HOME/undervault,
// defaulting to ~/.local/share/undervault.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "undervault"), nil
}
