package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"deploycheck/internal/config"
	"deploycheck/internal/logging"
)

// ErrNotExist reports that a tracked file is absent from the bundle.
var ErrNotExist = errors.New("bundle file does not exist")

// Kind identifies one of the tracked bundle files.
type Kind int

const (
	KindHTML Kind = iota
	KindHeaders
	KindRedirects
	KindRouting
	KindRobots
	KindNotes
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindHTML:
		return "html"
	case KindHeaders:
		return "headers"
	case KindRedirects:
		return "redirects"
	case KindRouting:
		return "routing"
	case KindRobots:
		return "robots"
	case KindNotes:
		return "notes"
	default:
		return "unknown"
	}
}

// Kinds returns every tracked kind in checklist order.
func Kinds() []Kind {
	return []Kind{KindHTML, KindHeaders, KindRedirects, KindRouting, KindRobots, KindNotes}
}

// File describes one tracked file as observed on disk.
type File struct {
	Kind   Kind
	Name   string
	Path   string
	Exists bool
	Size   int64
}

// Bundle holds the located files and caches decoded contents.
type Bundle struct {
	files  [kindCount]File
	texts  map[Kind]string
	logger *slog.Logger
}

// Locate stats every tracked file of layout. It never reads file contents.
func Locate(layout config.Bundle, logger *slog.Logger) *Bundle {
	b := &Bundle{
		texts:  make(map[Kind]string, kindCount),
		logger: logging.NewComponentLogger(logger, "bundle"),
	}
	names := layout.Names()
	for _, kind := range Kinds() {
		name := names[kind]
		path := layout.Path(name)
		file := File{Kind: kind, Name: name, Path: path}
		info, err := os.Stat(path)
		switch {
		case err == nil:
			file.Exists = true
			file.Size = info.Size()
		case !errors.Is(err, fs.ErrNotExist):
			b.logger.Warn("stat bundle file failed",
				logging.String(logging.FieldPath, path),
				logging.Error(err),
			)
		}
		b.files[kind] = file
	}
	return b
}

// File returns the observed state of kind.
func (b *Bundle) File(kind Kind) File {
	if kind < 0 || kind >= kindCount {
		return File{Kind: kind}
	}
	return b.files[kind]
}

// Files returns every tracked file in checklist order.
func (b *Bundle) Files() []File {
	out := make([]File, 0, kindCount)
	for _, kind := range Kinds() {
		out = append(out, b.files[kind])
	}
	return out
}

// Exists reports whether kind was present when the bundle was located.
func (b *Bundle) Exists(kind Kind) bool {
	return b.File(kind).Exists
}

// Load returns the decoded text of kind, reading it on first use.
// Absent files return ErrNotExist.
func (b *Bundle) Load(kind Kind) (string, error) {
	if text, ok := b.texts[kind]; ok {
		return text, nil
	}
	file := b.File(kind)
	if !file.Exists {
		return "", fmt.Errorf("%s: %w", file.Name, ErrNotExist)
	}
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file.Path, err)
	}
	text := Decode(data)
	b.texts[kind] = text
	b.logger.Debug("bundle file loaded",
		logging.String(logging.FieldPath, file.Path),
		logging.Int("bytes", len(data)),
	)
	return text, nil
}
