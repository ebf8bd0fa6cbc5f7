package config

import (
	"path"

	"github.com/ruslanmv/factoryai/internal/constants"
)

// Default component ids.
const (
	FactoryAppAI   = "factory-app-ai"
	FactoryFeature = "factory-feature"
	FactoryDebug   = "factory-debug"
)

// ComponentDescriptor is the static record describing one component.
type ComponentDescriptor struct {
	Name    string
	Path    string // relative to the root directory
	URL     string
	Enabled bool
}

// DefaultComponents returns the fixed component set used when a
// configuration is built without components. Factory-Debug ships disabled.
func DefaultComponents() map[string]ComponentDescriptor {
	base := constants.DefaultSubmodulesDir
	return map[string]ComponentDescriptor{
		FactoryAppAI: {
			Name:    "Factory-App-AI",
			Path:    path.Join(base, "Factory-App-AI"),
			URL:     "https://github.com/ruslanmv/Factory-App-AI",
			Enabled: true,
		},
		FactoryFeature: {
			Name:    "Factory-Feature",
			Path:    path.Join(base, "Factory-Feature"),
			URL:     "https://github.com/ruslanmv/Factory-Feature",
			Enabled: true,
		},
		FactoryDebug: {
			Name:    "Factory-Debug",
			Path:    path.Join(base, "Factory-Debug"),
			URL:     "https://github.com/ruslanmv/Factory-Debug",
			Enabled: false,
		},
	}
}

var aliases = map[string]string{
	"app":     FactoryAppAI,
	"feature": FactoryFeature,
	"debug":   FactoryDebug,
}

// CanonicalID maps the short CLI aliases (app, feature, debug) to component ids.
// Anything else is returned unchanged.
func CanonicalID(name string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}

// Aliases returns the short alias for each default component id.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for alias, id := range aliases {
		out[id] = alias
	}
	return out
}
