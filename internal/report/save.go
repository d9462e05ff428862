package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SaveReport writes text under dir as diagnostic_<unix-timestamp>.txt
// and returns the path of the written file. The directory is created
// when missing.
func SaveReport(dir, text string, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("diagnostic_%d.txt", at.Unix()))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("writing report %q: %w", path, err)
	}
	return path, nil
}
