package graphics

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/milk9111/gfxbind/logging"
)

const reloadDebounce = 100 * time.Millisecond

// ShaderWatcher reloads shaders when their Kage source files change on disk.
// File events are collected in the background; Poll applies them and is
// meant to be called from the game loop.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	events  chan string
	closeCh chan struct{}
	once    sync.Once

	mu      sync.Mutex
	shaders map[string][]*Shader
	dirs    map[string]bool
}

func NewShaderWatcher() (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &ShaderWatcher{
		watcher: w,
		events:  make(chan string, 16),
		closeCh: make(chan struct{}),
		shaders: map[string][]*Shader{},
		dirs:    map[string]bool{},
	}
	go watcher.run()
	return watcher, nil
}

// Watch reloads s whenever the file at path changes. The containing
// directory is watched so editors that replace files on save are seen.
func (w *ShaderWatcher) Watch(path string, s *Shader) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.dirs[dir] {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	w.shaders[abs] = append(w.shaders[abs], s)
	return nil
}

// Poll applies pending file changes and returns how many shaders were
// reloaded. A shader that fails to compile keeps its previous program.
func (w *ShaderWatcher) Poll() int {
	reloaded := 0
	for {
		select {
		case path := <-w.events:
			reloaded += w.reload(path)
		default:
			return reloaded
		}
	}
}

func (w *ShaderWatcher) reload(path string) int {
	w.mu.Lock()
	shaders := append([]*Shader(nil), w.shaders[path]...)
	w.mu.Unlock()
	if len(shaders) == 0 {
		return 0
	}

	logger := logging.With("shader")
	src, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("reload read failed", "path", path, "error", err)
		return 0
	}
	n := 0
	for _, s := range shaders {
		if err := s.Reload(src); err != nil {
			logger.Error("reload failed", "path", path, "error", err)
			continue
		}
		n++
	}
	return n
}

func (w *ShaderWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *ShaderWatcher) run() {
	logger := logging.With("shader")
	pending := newDebouncer(reloadDebounce, w.closeCh)
	defer pending.Stop()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isShaderFile(event.Name) {
				continue
			}
			pending.Trigger(event.Name)
		case path := <-pending.C:
			select {
			case w.events <- path:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error", "error", err)
		case <-w.closeCh:
			return
		}
	}
}

// debouncer delivers a key on C once no Trigger for it has arrived for
// delay. Every Trigger restarts the key's timer.
type debouncer struct {
	C chan string

	delay  time.Duration
	done   <-chan struct{}
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func newDebouncer(delay time.Duration, done <-chan struct{}) *debouncer {
	return &debouncer{
		C:      make(chan string),
		delay:  delay,
		done:   done,
		timers: map[string]*time.Timer{},
	}
}

func (d *debouncer) Trigger(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t := d.timers[key]; t != nil {
		t.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.timers[key] != t {
			d.mu.Unlock()
			return
		}
		delete(d.timers, key)
		d.mu.Unlock()
		select {
		case d.C <- key:
		case <-d.done:
		}
	})
	d.timers[key] = t
}

func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for key, t := range d.timers {
		t.Stop()
		delete(d.timers, key)
	}
}

func isShaderFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".kage")
}
