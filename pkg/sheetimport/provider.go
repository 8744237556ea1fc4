// Package sheetimport turns photographed or scanned sheet music into
// library songs using a vision model. Recognition results are cached on
// disk so re-running an import does not burn API quota.
package sheetimport

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Recognition is the structured result a provider extracts from one or
// more pages of the same piece.
type Recognition struct {
	Name   string   `json:"name" msgpack:"name"`
	BPM    int      `json:"bpm" msgpack:"bpm"`
	Jianpu []string `json:"jianpu" msgpack:"jianpu"`
	Notes  string   `json:"notes,omitempty" msgpack:"notes,omitempty"`
}

// Provider recognizes numbered notation from page images.
type Provider interface {
	// Name identifies the provider ("gemini", "ark").
	Name() string

	// Recognize reads the pages, in order, and returns one recognition
	// covering all of them.
	Recognize(ctx context.Context, pages []Page) (*Recognition, error)
}

// Page is one image handed to a provider.
type Page struct {
	Data     []byte
	MIMEType string
}

// Factory builds a provider from an API key.
type Factory func(ctx context.Context, apiKey string) (Provider, error)

var (
	factoryMu sync.RWMutex
	factories = map[string]Factory{}
)

// RegisterProvider makes a provider constructible by name.
func RegisterProvider(name string, f Factory) {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	factories[name] = f
}

// NewProvider builds the named provider.
func NewProvider(ctx context.Context, name, apiKey string) (Provider, error) {
	factoryMu.RLock()
	f, ok := factories[name]
	factoryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown provider %q (have %v)", name, ProviderNames())
	}
	if apiKey == "" {
		return nil, fmt.Errorf("provider %q: missing API key", name)
	}
	return f(ctx, apiKey)
}

// ProviderNames lists registered providers, sorted.
func ProviderNames() []string {
	factoryMu.RLock()
	defer factoryMu.RUnlock()
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
