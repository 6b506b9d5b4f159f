package controller

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/buildmaintain/bm/internal/notify"
)

// Exporter fetches a binary document for one record. The gateway's export
// endpoints satisfy it.
type Exporter func(ctx context.Context, id string) (data []byte, filename string, err error)

// Export downloads the identified record's binary export and saves it under
// dir. The payload is staged in a uniquely named temporary file which is
// removed once the final file exists, so a failed rename never leaves a
// half-written export behind.
func (l *List[T]) Export(ctx context.Context, export Exporter, id, dir string) (string, error) {
	data, filename, err := export(ctx, id)
	if err != nil {
		l.notifyError(err, fmt.Sprintf("Failed to export %s", l.cfg.Name))
		return "", err
	}
	if filename == "" {
		filename = fmt.Sprintf("%s-%s.xlsx", l.cfg.Name, id)
	}

	tmp := filepath.Join(dir, "."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		l.notifyError(err, fmt.Sprintf("Failed to save %s export", l.cfg.Name))
		return "", fmt.Errorf("stage export: %w", err)
	}

	dest := filepath.Join(dir, filename)
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		l.notifyError(err, fmt.Sprintf("Failed to save %s export", l.cfg.Name))
		return "", fmt.Errorf("save export: %w", err)
	}

	if l.notifier != nil {
		l.notifier.Notify(notify.Notification{
			Level:    notify.LevelSuccess,
			Category: l.cfg.Name,
			Message:  fmt.Sprintf("Exported to %s", dest),
		})
	}
	return dest, nil
}
