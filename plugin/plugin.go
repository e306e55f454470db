// Package plugin builds its registry in one explicit routine instead of
// having each type register itself as a side effect of being declared.
package plugin

import (
	"sync"

	"github.com/marcodamonte/oop-concepts/registry"
)

type Plugin interface {
	Name() string
}

type AudioPlugin struct{}

func (AudioPlugin) Name() string { return "AudioPlugin" }

type VideoPlugin struct{}

func (VideoPlugin) Name() string { return "VideoPlugin" }

var (
	plugins     *registry.Registry[Plugin]
	pluginsOnce sync.Once
)

// Registry returns the process-wide plugin table, building it on the first
// call. Safe to call from multiple goroutines.
func Registry() *registry.Registry[Plugin] {
	pluginsOnce.Do(func() {
		plugins = registry.New[Plugin]("plugin")
		registerAll(plugins)
	})
	return plugins
}

// registerAll lists every plugin variant. A new plugin is added here.
func registerAll(r *registry.Registry[Plugin]) {
	r.MustRegister(AudioPlugin{}.Name(), func() Plugin { return AudioPlugin{} })
	r.MustRegister(VideoPlugin{}.Name(), func() Plugin { return VideoPlugin{} })
}
