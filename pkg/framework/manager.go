package framework

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"
)

// Manager supervises registered applications, polling each one's
// OnMonitor hook on a fixed interval.
type Manager struct {
	Interval time.Duration

	lock sync.Mutex
	apps []Application
}

// NewManager creates a Manager.
func NewManager() *Manager {
	return &Manager{Interval: time.Second}
}

// Register adds applications to be monitored.
func (m *Manager) Register(apps ...Application) *Manager {
	m.lock.Lock()
	m.apps = append(m.apps, apps...)
	m.lock.Unlock()
	return m
}

// Name implements Named.
func (m *Manager) Name() string {
	return "app-manager"
}

// Run implements Runnable.
func (m *Manager) Run(ctx context.Context) error {
	interval := m.Interval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.monitor()
		}
	}
}

func (m *Manager) monitor() {
	m.lock.Lock()
	apps := make([]Application, len(m.apps))
	copy(apps, m.apps)
	m.lock.Unlock()
	for _, app := range apps {
		glog.V(4).Infof("monitor %s", app.Name())
		app.OnMonitor()
	}
}
