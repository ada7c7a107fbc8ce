// Package xcursor loads Xcursor-format cursor images and the themes
// that they are arranged into, decoding them into standard image types.
package xcursor

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"deedles.dev/pane/internal/set"
)

// Cursor is a single named cursor, holding all of the variants of the
// cursor present in its file.
type Cursor struct {
	// Images contains the cursor's animation frames, keyed by nominal
	// size. A non-animated cursor has a single frame per size.
	Images map[int][]*Image

	// Comments contains whatever copyright, license, and other
	// information was embedded in the cursor's file.
	Comments []*Comment
}

// BestSize returns the nominal size available for the cursor that is
// closest to size, preferring the larger in case of a tie. It returns 0
// if the cursor has no images at all.
func (c *Cursor) BestSize(size int) (best int) {
	bestDist := -1
	for s := range c.Images {
		dist := max(s-size, size-s)
		if (bestDist < 0) || (dist < bestDist) || ((dist == bestDist) && (s > best)) {
			best, bestDist = s, dist
		}
	}
	return best
}

// Image is a single cursor image.
type Image struct {
	// NominalSize is the size that the image is intended for. It is the
	// size in the name of the image's chunk, not necessarily the size
	// of the image itself.
	NominalSize int

	// Hot is the position of the cursor's hot spot within the image.
	Hot image.Point

	// Delay is how long an animated cursor displays this frame for.
	Delay time.Duration

	Image *image.NRGBA
}

// Comment is a piece of metadata embedded in a cursor file.
type Comment struct {
	Subtype CommentSubtype
	Comment string
}

type CommentSubtype uint32

const (
	CommentSubtypeCopyright CommentSubtype = 1 + iota
	CommentSubtypeLicense
	CommentSubtypeOther
)

// Theme is a named collection of cursors.
type Theme struct {
	Name    string
	Cursors map[string]*Cursor
}

// LoadTheme loads the named cursor theme from the system's cursor
// directories, following its chain of inherited themes for cursors that
// it does not provide itself. If name is empty, the theme named
// "default" is loaded.
//
// A cursor appears in the theme under every name that its file has in
// the theme's directory, so aliases maintained as symlinks all work.
func LoadTheme(name string) (*Theme, error) {
	if name == "" {
		name = "default"
	}

	t := Theme{
		Name:    name,
		Cursors: make(map[string]*Cursor),
	}
	return &t, t.load(name, set.New[string]())
}

func (t *Theme) load(theme string, loaded set.Set[string]) error {
	if !loaded.Add(theme) {
		// Inheritance cycles are just ignored.
		return nil
	}

	// A theme may be spread over several search paths, such as a user
	// override plus the system copy, and a directory holding only an
	// index.theme still contributes its inherited themes. The usual
	// "default" theme is exactly that: an index.theme and nothing else.
	var inherits []string
	for _, path := range libraryPaths() {
		dir := filepath.Join(path, theme, "cursors")
		err := t.loadDir(dir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load dir %q: %w", dir, err)
		}

		inh, err := loadInherits(filepath.Join(path, theme, "index.theme"))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load inherited themes: %w", err)
		}
		inherits = append(inherits, inh...)
	}

	// Inherited themes only fill in cursors that the theme itself did
	// not provide anywhere, so they load after every path has been
	// scanned.
	for _, inherited := range inherits {
		err := t.load(inherited, loaded)
		if err != nil {
			return fmt.Errorf("load inherited theme %q: %w", inherited, err)
		}
	}

	return nil
}

func (t *Theme) loadDir(path string) error {
	dir, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("read dir: %w", err)
	}

	for _, ent := range dir {
		if _, ok := t.Cursors[ent.Name()]; ok {
			// Themes earlier in the inheritance chain take
			// precedence.
			continue
		}
		if ft := ent.Type().Type(); !ft.IsRegular() && (ft != fs.ModeSymlink) {
			continue
		}

		entpath := filepath.Join(path, ent.Name())
		cur, err := DecodeFile(entpath)
		if err != nil {
			if errors.Is(err, ErrBadMagic) {
				// Theme directories contain the occasional
				// non-cursor file.
				continue
			}
			return fmt.Errorf("load %q: %w", entpath, err)
		}

		t.Cursors[ent.Name()] = cur
	}

	return nil
}

func loadInherits(index string) (inherits []string, err error) {
	file, err := os.Open(index)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s := bufio.NewScanner(file)
	for s.Scan() {
		line := s.Text()
		if !strings.HasPrefix(line, "Inherits") {
			continue
		}

		_, after, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		inherits = strings.FieldsFunc(after, func(c rune) bool {
			return (c == ':') || (c == ',')
		})
		for i, v := range inherits {
			inherits[i] = strings.TrimSpace(v)
		}

		break
	}
	if err := s.Err(); err != nil {
		return inherits, fmt.Errorf("scan: %w", err)
	}

	return inherits, nil
}

var defaultLibraryPaths = []string{
	"~/.icons",
	"/usr/share/icons",
	"/usr/share/pixmaps",
	"~/.cursors",
	"/usr/share/cursors/xorg-x11",
	"/usr/X11R6/lib/X11/icons",
}

func libraryPaths() []string {
	paths := defaultLibraryPaths
	if v, ok := os.LookupEnv("XCURSOR_PATH"); ok {
		paths = filepath.SplitList(v)
	} else {
		v, ok := os.LookupEnv("XDG_DATA_HOME")
		if !ok || !filepath.IsAbs(v) {
			v = "~/.local/share"
		}
		paths = append([]string{filepath.Join(v, "icons")}, paths...)
	}

	expanded := make([]string, 0, len(paths))
	for _, path := range paths {
		path, ok := expandHome(path)
		if !ok {
			continue
		}
		expanded = append(expanded, path)
	}
	return expanded
}

func expandHome(path string) (string, bool) {
	if !strings.HasPrefix(path, "~/") {
		return path, true
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, path[2:]), true
}
