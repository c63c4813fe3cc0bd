// Package fs adapts files on local disk to the sorter's ports.
package fs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/beltsort/internal/ports"
	"github.com/bft-labs/beltsort/pkg/log"
)

// DefaultDebounce is the quiet period after a write before the file is read.
const DefaultDebounce = 50 * time.Millisecond

// FeedOptions configures a FileFeed.
type FeedOptions struct {
	// Debounce coalesces bursts of write events. Default: 50ms.
	Debounce time.Duration

	// FromEnd skips content already present when the feed is opened.
	FromEnd bool
}

// FileFeed follows a text file and emits each complete line appended to it.
// It watches the parent directory so that truncation, removal and rename are
// observed as well as writes.
type FileFeed struct {
	path     string
	debounce time.Duration
	logger   ports.Logger

	watcher *fsnotify.Watcher
	lines   chan string
	errs    chan error

	// owned by the run goroutine
	offset  int64
	partial []byte

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
}

var _ ports.Feed = (*FileFeed)(nil)

// NewFileFeed opens path and starts following it. The feed stops when ctx is
// cancelled, when Close is called, or when the file is removed or renamed.
func NewFileFeed(ctx context.Context, path string, opts FeedOptions, logger ports.Logger) (*FileFeed, error) {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve feed path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat feed: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("feed %s is a directory", abs)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	f := &FileFeed{
		path:     abs,
		debounce: opts.Debounce,
		logger:   logger,
		watcher:  watcher,
		lines:    make(chan string, 64),
		errs:     make(chan error, 16),
	}
	if opts.FromEnd {
		f.offset = info.Size()
	}

	runCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel

	f.wg.Add(1)
	go f.run(runCtx)

	logger.Info("following feed", log.String("path", abs), log.Bool("from_end", opts.FromEnd))
	return f, nil
}

// Lines returns the channel of complete lines, without the trailing newline.
func (f *FileFeed) Lines() <-chan string { return f.lines }

// Errors returns read and watch errors. They do not stop the feed.
func (f *FileFeed) Errors() <-chan error { return f.errs }

// Close stops following the file and waits for the watch goroutine to exit.
func (f *FileFeed) Close() error {
	var err error
	f.closeOnce.Do(func() {
		f.cancel()
		f.wg.Wait()
		err = f.watcher.Close()
	})
	return err
}

func (f *FileFeed) run(ctx context.Context) {
	defer f.wg.Done()
	defer close(f.errs)
	defer close(f.lines)

	if !f.drain(ctx) {
		return
	}

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				f.logger.Info("feed file went away, stopping", log.String("path", f.path))
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(f.debounce)
			} else {
				timer.Reset(f.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			if !f.drain(ctx) {
				return
			}

		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			f.report(fmt.Errorf("watch %s: %w", f.path, err))
		}
	}
}

// drain reads everything between the saved offset and EOF and emits the
// complete lines. It returns false when ctx ended while sending.
func (f *FileFeed) drain(ctx context.Context) bool {
	file, err := os.Open(f.path)
	if err != nil {
		f.report(fmt.Errorf("open feed: %w", err))
		return true
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		f.report(fmt.Errorf("stat feed: %w", err))
		return true
	}
	if info.Size() < f.offset {
		f.logger.Warn("feed truncated, restarting from the beginning",
			log.String("path", f.path), log.Any("previous_offset", f.offset), log.Any("size", info.Size()))
		f.offset = 0
		f.partial = nil
	}

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		f.report(fmt.Errorf("seek feed: %w", err))
		return true
	}
	data, err := io.ReadAll(file)
	if err != nil {
		f.report(fmt.Errorf("read feed: %w", err))
	}
	f.offset += int64(len(data))

	buf := append(f.partial, data...)
	for {
		i := bytes.IndexByte(buf, '\n')
		if i < 0 {
			break
		}
		line := string(bytes.TrimSuffix(buf[:i], []byte("\r")))
		buf = buf[i+1:]
		select {
		case f.lines <- line:
		case <-ctx.Done():
			return false
		}
	}
	f.partial = append([]byte(nil), buf...)
	return true
}

func (f *FileFeed) report(err error) {
	select {
	case f.errs <- err:
	default:
		f.logger.Warn("feed error dropped", log.Err(err))
	}
}
