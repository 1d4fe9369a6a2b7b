package runner

import (
	"embed"
	"os"
	"path/filepath"
	"sync"
)

const (
	formantScript  = "soundToFormant.praat"
	pitchScript    = "soundToPitch.praat"
	textGridScript = "soundToTextgrid.praat"
	reportScript   = "getVoiceReport.praat"

	ScriptsEnv = "PRAAT_SCRIPTS"
)

//go:embed scripts/*.praat
var scripts embed.FS

var (
	extractOnce sync.Once
	extractDir  string
	extractErr  error
)

// extractScripts writes the shipped scripts to a directory Praat can read
// them from.
func extractScripts() (string, error) {
	extractOnce.Do(func() {
		extractDir = filepath.Join(os.TempDir(), "praat-format-scripts")
		if extractErr = os.MkdirAll(extractDir, 0o755); extractErr != nil {
			return
		}
		entries, err := scripts.ReadDir("scripts")
		if err != nil {
			extractErr = err
			return
		}
		for _, e := range entries {
			d, err := scripts.ReadFile("scripts/" + e.Name())
			if err != nil {
				extractErr = err
				return
			}
			if err := os.WriteFile(filepath.Join(extractDir, e.Name()), d, 0o644); err != nil {
				extractErr = err
				return
			}
		}
	})
	return extractDir, extractErr
}
