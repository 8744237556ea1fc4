package sheetimport

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/burrowlab/wellflute/pkg/jianpu"
	"github.com/burrowlab/wellflute/pkg/song"
)

var imageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// Importer drives the sheet import pipeline: collect pages, recognize
// them (through the cache), validate the transcription, and write the
// resulting song files.
type Importer struct {
	Provider Provider
	Cache    *Cache

	// OutputDir receives the written song files.
	OutputDir string

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Imported describes one song produced by a Run.
type Imported struct {
	Song     *song.Song
	Path     string
	Cached   bool
	Warnings []string
}

func (im *Importer) logger() *slog.Logger {
	if im.Logger != nil {
		return im.Logger
	}
	return slog.Default()
}

// Run imports every image found in args (files or directories). Images
// sharing a directory are treated as consecutive pages of one piece,
// ordered by filename.
func (im *Importer) Run(ctx context.Context, args []string) ([]Imported, error) {
	groups, err := collectPages(args)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("no images found (want %s)", strings.Join(extList(), ", "))
	}

	var out []Imported
	for _, dir := range sortedKeys(groups) {
		imp, err := im.importGroup(ctx, groups[dir])
		if err != nil {
			return out, fmt.Errorf("import %s: %w", dir, err)
		}
		out = append(out, *imp)
	}
	return out, nil
}

func (im *Importer) importGroup(ctx context.Context, pages []Page) (*Imported, error) {
	rec, cached := im.recognize(ctx, pages)
	if rec == nil {
		r, err := im.Provider.Recognize(ctx, pages)
		if err != nil {
			return nil, err
		}
		rec = r
		if im.Cache != nil {
			if err := im.Cache.Put(im.Provider.Name(), pages, rec); err != nil {
				im.logger().Warn("failed to cache recognition", "error", err)
			}
		}
	}

	s, warnings := im.buildSong(rec)
	path := filepath.Join(im.OutputDir, s.Key()+".yaml")
	if err := song.Save(s, path); err != nil {
		return nil, err
	}
	return &Imported{Song: s, Path: path, Cached: cached, Warnings: warnings}, nil
}

func (im *Importer) recognize(ctx context.Context, pages []Page) (*Recognition, bool) {
	if im.Cache == nil {
		return nil, false
	}
	rec, ok := im.Cache.Get(im.Provider.Name(), pages)
	if !ok {
		return nil, false
	}
	im.logger().Debug("recognition served from cache", "provider", im.Provider.Name())
	return rec, true
}

// buildSong turns a recognition into a song, collecting warnings for
// anything that will not play back cleanly. Lines the parser rejects
// are kept so the user can fix them by hand in the written file.
func (im *Importer) buildSong(rec *Recognition) (*song.Song, []string) {
	var warnings []string

	name := strings.TrimSpace(rec.Name)
	if name == "" {
		name = "imported-" + uuid.NewString()[:8]
		warnings = append(warnings, "sheet has no readable title, generated "+name)
	}
	bpm := rec.BPM
	if bpm <= 0 {
		bpm = 90
		warnings = append(warnings, "no tempo detected, defaulting to 90 bpm")
	}

	s := &song.Song{
		Name:        name,
		BPM:         bpm,
		Jianpu:      rec.Jianpu,
		Description: strings.TrimSpace(rec.Notes),
	}
	for i, text := range s.BarTexts() {
		if _, err := jianpu.ParseBar(text, i); err != nil {
			warnings = append(warnings, fmt.Sprintf("bar %d did not parse: %v", i, err))
		}
	}
	if len(s.Jianpu) == 0 {
		warnings = append(warnings, "no notation recognized")
	}
	return s, warnings
}

// collectPages walks args and groups images by containing directory.
func collectPages(args []string) (map[string][]Page, error) {
	files := map[string][]string{}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if _, ok := imageExts[strings.ToLower(filepath.Ext(arg))]; !ok {
				return nil, fmt.Errorf("%s: not a supported image", arg)
			}
			dir := filepath.Dir(arg)
			files[dir] = append(files[dir], arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if _, ok := imageExts[strings.ToLower(filepath.Ext(e.Name()))]; ok {
				files[arg] = append(files[arg], filepath.Join(arg, e.Name()))
			}
		}
	}

	groups := map[string][]Page{}
	for dir, paths := range files {
		sort.Strings(paths)
		for _, p := range paths {
			data, err := os.ReadFile(p)
			if err != nil {
				return nil, err
			}
			groups[dir] = append(groups[dir], Page{
				Data:     data,
				MIMEType: imageExts[strings.ToLower(filepath.Ext(p))],
			})
		}
	}
	return groups, nil
}

func sortedKeys(m map[string][]Page) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func extList() []string {
	exts := make([]string, 0, len(imageExts))
	for e := range imageExts {
		exts = append(exts, e)
	}
	sort.Strings(exts)
	return exts
}
