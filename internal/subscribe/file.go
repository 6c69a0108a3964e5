package subscribe

import (
	"context"
	"log"

	"github.com/fsnotify/fsnotify"
)

// FileNotifier watches the backlight sysfs file for writes. Unlike the
// uevent notifier it needs no netlink socket, but only sees changes
// that go through the watched file.
type FileNotifier struct {
	path string
	read ReadFunc
}

func NewFile(path string, read ReadFunc) *FileNotifier {
	return &FileNotifier{path: path, read: read}
}

func (f *FileNotifier) Subscribe(ctx context.Context) (<-chan any, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(f.path); err != nil {
		watcher.Close()
		return nil, err
	}

	events := make(chan any, 1)

	go func() {
		defer watcher.Close()
		defer close(events)

		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !e.Has(fsnotify.Write) {
					continue
				}

				v, present, err := f.read()
				if err != nil || !present {
					continue
				}

				select {
				case events <- v:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("subscribe: watch error: %v", err)
			}
		}
	}()

	return events, nil
}
