package song

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

// Library holds the built-in sample songs plus every song found in a
// directory of YAML/JSON files.
type Library struct {
	dir    string
	logger *slog.Logger

	songs  map[string]*Song // key -> song
	byName map[string]string
}

// Open loads the library from dir. Sample songs are always present; a
// missing directory is not an error. Files that fail to decode or
// validate are logged and skipped.
func Open(dir string, logger *slog.Logger) (*Library, error) {
	if logger == nil {
		logger = slog.Default()
	}
	lib := &Library{
		dir:    dir,
		logger: logger,
		songs:  make(map[string]*Song),
		byName: make(map[string]string),
	}

	for _, s := range SampleSongs() {
		lib.add(s)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return lib, nil
		}
		return nil, fmt.Errorf("read songs dir: %w", err)
	}

	loaded := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		s, err := LoadFile(path)
		if err != nil {
			logger.Warn("skipping song file", "path", path, "error", err)
			continue
		}
		lib.add(s)
		loaded++
	}
	logger.Debug("song library loaded", "dir", dir, "external", loaded, "total", len(lib.songs))
	return lib, nil
}

func (l *Library) add(s *Song) {
	key := s.Key()
	l.songs[key] = s
	l.byName[s.Name] = key
}

// Get looks a song up by exact name or by key.
func (l *Library) Get(nameOrKey string) (*Song, error) {
	if key, ok := l.byName[nameOrKey]; ok {
		return l.songs[key], nil
	}
	key := strings.ReplaceAll(strings.ToLower(nameOrKey), " ", "_")
	if s, ok := l.songs[key]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("song %q not found", nameOrKey)
}

// Info is one row of the library listing.
type Info struct {
	Name        string `yaml:"name" json:"name"`
	Key         string `yaml:"key" json:"key"`
	BPM         int    `yaml:"bpm" json:"bpm"`
	Bars        int    `yaml:"bars" json:"bars"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// List returns every song's summary, sorted by name.
func (l *Library) List() []Info {
	infos := make([]Info, 0, len(l.songs))
	for key, s := range l.songs {
		infos = append(infos, Info{
			Name:        s.Name,
			Key:         key,
			BPM:         s.BPM,
			Bars:        len(s.BarTexts()),
			Description: s.Description,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// LoadFile decodes and validates one song file, YAML or JSON by extension.
func LoadFile(path string) (*Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	isJSON := strings.EqualFold(filepath.Ext(path), ".json")
	if isJSON {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if err := ValidateDoc(doc); err != nil {
		return nil, err
	}

	var s Song
	if isJSON {
		err = json.Unmarshal(data, &s)
	} else {
		err = yaml.Unmarshal(data, &s)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return &s, nil
}

// Save writes a song next to its siblings, YAML or JSON by extension.
func Save(s *Song, path string) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = yaml.Marshal(s)
	}
	if err != nil {
		return fmt.Errorf("encode song %q: %w", s.Name, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
