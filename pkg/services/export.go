package services

import (
	"bufio"
	"fmt"
	"os"
)

// Export writes the list as plain text to a prompted destination, which is
// created if missing and truncated otherwise. Nothing is created when the
// list is empty. It returns the destination path, or "" if nothing was
// written.
func (t *Tracker) Export() (string, error) {
	list, err := t.store.Load()
	if err != nil {
		return "", err
	}

	dest, err := t.prompt.Line(askExportFile)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		fmt.Fprintln(t.out, MsgEmptyExport)
		return "", nil
	}

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, anime := range list {
		if _, err := w.WriteString(anime.ExportBlock()); err != nil {
			return "", fmt.Errorf("write export file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	t.logger.Info("list exported", "path", dest, "count", len(list))
	return dest, nil
}
