package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// shotMsg is sent after a screenshot is written.
type shotMsg struct {
	path string
	err  error
}

// saveShot writes the frame without escape sequences to
// dir/shot-YYYYMMDD-HHMMSS.txt.
func saveShot(frame, dir string, at time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := writeShot(frame, dir, at)
		return shotMsg{path: path, err: err}
	}
}

func writeShot(frame, dir string, at time.Time) (string, error) {
	name := fmt.Sprintf("shot-%s.txt", at.Format("20060102-150405"))
	path := filepath.Join(dir, name)

	text := ansi.Strip(frame)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}
