package templatestore

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/notifykit/pkg/logger"
)

// Invalidator drops cached templates of a notification type.
type Invalidator interface {
	Invalidate(notificationType string)
}

// Watch invalidates entries of c whenever <dir>/<type>.yaml changes. It blocks
// until ctx is done or the watcher fails.
func Watch(ctx context.Context, dir string, c Invalidator, l *slog.Logger) error {
	if l == nil {
		l = slog.Default()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return errors.New("templatestore: watcher closed")
			}
			if typ, hit := changedType(ev); hit {
				c.Invalidate(typ)
				l.LogAttrs(ctx, slog.LevelDebug, "template file changed",
					logger.NotificationType(typ),
					slog.String("op", ev.Op.String()),
				)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return errors.New("templatestore: watcher closed")
			}
			l.LogAttrs(ctx, slog.LevelWarn, "template watcher error", logger.Error(err))
		}
	}
}

// changedType maps a filesystem event to the notification type it affects.
func changedType(ev fsnotify.Event) (string, bool) {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return "", false
	}
	name := filepath.Base(ev.Name)
	typ, ok := strings.CutSuffix(name, ".yaml")
	if !ok || typ == "" {
		return "", false
	}
	return typ, true
}
