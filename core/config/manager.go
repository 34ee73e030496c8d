package config

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Manager holds the live configuration and reloads it when the backing file
// changes. Watchers are invoked with the new configuration after each reload.
type Manager struct {
	path    string
	current atomic.Pointer[Config]
	logger  *slog.Logger

	watcherMu sync.RWMutex
	watchers  []func(*Config)

	fsWatcher *fsnotify.Watcher
	stopOnce  sync.Once
	stop      chan struct{}
}

// NewManager loads the configuration at path and returns a manager around it.
func NewManager(path string, logger *slog.Logger) (*Manager, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	m := &Manager{
		path:   path,
		logger: logger,
		stop:   make(chan struct{}),
	}
	m.current.Store(cfg)
	return m, nil
}

// Current returns the live configuration. The returned value must be treated
// as read-only.
func (m *Manager) Current() *Config {
	return m.current.Load()
}

// OnChange registers a callback invoked after every successful reload.
func (m *Manager) OnChange(fn func(*Config)) {
	m.watcherMu.Lock()
	defer m.watcherMu.Unlock()

	m.watchers = append(m.watchers, fn)
}

// Watch starts watching the config file for changes. No-op without a path.
func (m *Manager) Watch() error {
	if m.path == "" {
		return nil
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsWatcher.Add(m.path); err != nil {
		fsWatcher.Close()
		return err
	}

	m.fsWatcher = fsWatcher
	go m.watchLoop()
	return nil
}

func (m *Manager) watchLoop() {
	for {
		select {
		case event, ok := <-m.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				m.reload()
			}
		case err, ok := <-m.fsWatcher.Errors:
			if !ok {
				return
			}
			m.logger.Error("config watch error", "path", m.path, "error", err)
		case <-m.stop:
			return
		}
	}
}

func (m *Manager) reload() {
	cfg, err := Load(m.path)
	if err != nil {
		m.logger.Error("config reload failed", "path", m.path, "error", err)
		return
	}

	m.current.Store(cfg)
	m.logger.Info("config reloaded", "path", m.path)
	m.notifyWatchers(cfg)
}

func (m *Manager) notifyWatchers(cfg *Config) {
	m.watcherMu.RLock()
	defer m.watcherMu.RUnlock()

	for _, fn := range m.watchers {
		fn(cfg)
	}
}

// Close stops the file watcher.
func (m *Manager) Close() {
	m.stopOnce.Do(func() {
		close(m.stop)
		if m.fsWatcher != nil {
			m.fsWatcher.Close()
		}
	})
}
