package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kbox/parabox/game/engine"
)

var (
	ErrConfigNotFound = errors.New("puzzle not found")
	ErrInvalidConfig  = errors.New("invalid puzzle")
)

const puzzleExt = ".box"

// Puzzle is a named, parsed map: the initial state plus the win
// condition it must be checked against.
type Puzzle struct {
	Name  string
	State *engine.State
	Win   *engine.WinConfig
}

// PuzzleInfo is the catalog entry returned by ListPuzzles, cheap enough
// to build for every file in the directory without holding every
// parsed puzzle in memory at once.
type PuzzleInfo struct {
	Filename string
	Name     string
	Boards   int
}

// Manager loads and caches puzzle map files from a directory.
type Manager struct {
	mapsDir string
	mu      sync.RWMutex
	puzzles map[string]*Puzzle
	def     *Puzzle
}

// NewManager creates a manager rooted at mapsDir. The directory must
// already exist; a missing or unparsable default puzzle is not fatal,
// since a manager can always load puzzles on demand via LoadPuzzle.
func NewManager(mapsDir string) (*Manager, error) {
	if _, err := os.Stat(mapsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("maps directory does not exist: %s", mapsDir)
	}

	m := &Manager{
		mapsDir: mapsDir,
		puzzles: make(map[string]*Puzzle),
	}
	m.loadDefaultPuzzle()
	return m, nil
}

// LoadPuzzle loads a puzzle by name, trying the cache first. name may
// be given with or without the .box extension.
func (m *Manager) LoadPuzzle(name string) (*Puzzle, error) {
	name = strings.TrimSuffix(name, puzzleExt)

	m.mu.RLock()
	if p, ok := m.puzzles[name]; ok {
		m.mu.RUnlock()
		return p, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if p, ok := m.puzzles[name]; ok {
		return p, nil
	}

	path := filepath.Join(m.mapsDir, name+puzzleExt)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("reading map file: %w", err)
	}

	state, win, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	p := &Puzzle{Name: name, State: state, Win: win}
	m.puzzles[name] = p
	return p, nil
}

// ListPuzzles returns catalog entries for every .box file in the maps
// directory, skipping any that fail to parse.
func (m *Manager) ListPuzzles() ([]*PuzzleInfo, error) {
	entries, err := os.ReadDir(m.mapsDir)
	if err != nil {
		return nil, fmt.Errorf("reading maps directory: %w", err)
	}

	var infos []*PuzzleInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), puzzleExt) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), puzzleExt)
		p, err := m.LoadPuzzle(name)
		if err != nil {
			continue
		}
		infos = append(infos, &PuzzleInfo{
			Filename: entry.Name(),
			Name:     p.Name,
			Boards:   len(p.State.Boards),
		})
	}
	return infos, nil
}

// GetDefault returns the default puzzle, or nil if none could be
// loaded (an empty maps directory, say).
func (m *Manager) GetDefault() *Puzzle {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// SetDefault sets the default puzzle by name.
func (m *Manager) SetDefault(name string) error {
	p, err := m.LoadPuzzle(name)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.def = p
	m.mu.Unlock()
	return nil
}

// RefreshCache drops every cached puzzle and reloads the default.
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.puzzles = make(map[string]*Puzzle)
	m.mu.Unlock()
	m.loadDefaultPuzzle()
	return nil
}

func (m *Manager) loadDefaultPuzzle() {
	if p, err := m.LoadPuzzle("default"); err == nil {
		m.mu.Lock()
		m.def = p
		m.mu.Unlock()
		return
	}

	infos, err := m.ListPuzzles()
	if err != nil || len(infos) == 0 {
		return
	}
	if p, err := m.LoadPuzzle(infos[0].Name); err == nil {
		m.mu.Lock()
		m.def = p
		m.mu.Unlock()
	}
}

// SavePuzzle writes text to name.box in the maps directory and updates
// the cache, validating it parses first.
func (m *Manager) SavePuzzle(name, text string) error {
	state, win, err := Parse(text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	path := filepath.Join(m.mapsDir, name+puzzleExt)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing map file: %w", err)
	}

	m.mu.Lock()
	m.puzzles[name] = &Puzzle{Name: name, State: state, Win: win}
	m.mu.Unlock()
	return nil
}
