// Package fixture implements the golden-file format used by the move
// tests in game/config: a header line, a map, a "================"
// separator, and an expected output that can be regenerated by setting
// UPDATE_EXPECT=1.
package fixture

import (
	"fmt"
	"os"
	"strings"
)

const separator = "================"

// Fixture is one golden test case loaded from disk.
//
// For move tests, Header is an action string (one character per push,
// from the L/R/U/D codec) and Want is the expected rendering of the
// state after every action has been applied in turn. For solve tests,
// Header is unused (empty) and Want is the expected direction sequence
// the solver should produce.
type Fixture struct {
	path   string
	Header string
	Map    string
	Want   string
}

// Load reads and parses a fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	return parse(path, string(data))
}

func parse(path, text string) (*Fixture, error) {
	lines := strings.Split(text, "\n")

	sepIdx := -1
	for i, line := range lines {
		if line == separator {
			sepIdx = i
			break
		}
	}
	if sepIdx < 0 {
		return nil, fmt.Errorf("fixture: %s: missing %q separator", path, separator)
	}
	if sepIdx < 1 {
		return nil, fmt.Errorf("fixture: %s: missing header line before map", path)
	}

	header := lines[0]
	mapLines := lines[1:sepIdx]
	wantLines := lines[sepIdx+1:]

	return &Fixture{
		path:   path,
		Header: header,
		Map:    strings.Join(mapLines, "\n") + "\n",
		Want:   strings.TrimRight(strings.Join(wantLines, "\n"), "\n"),
	}, nil
}

// Check compares got against the fixture's recorded expectation. If
// they differ and UPDATE_EXPECT=1 is set in the environment, the
// fixture file is rewritten with got as the new expectation instead of
// failing; t.Helper() callers should treat a non-nil returned error as
// a test failure.
func (f *Fixture) Check(got string) error {
	got = strings.TrimRight(got, "\n")
	if got == f.Want {
		return nil
	}

	if os.Getenv("UPDATE_EXPECT") == "1" {
		if err := f.update(got); err != nil {
			return fmt.Errorf("fixture: failed to update %s: %w", f.path, err)
		}
		return nil
	}

	return fmt.Errorf("fixture: %s: got:\n%s\nwant:\n%s", f.path, got, f.Want)
}

func (f *Fixture) update(got string) error {
	var b strings.Builder
	b.WriteString(f.Header)
	b.WriteByte('\n')
	b.WriteString(f.Map)
	b.WriteString(separator)
	b.WriteByte('\n')
	b.WriteString(got)
	b.WriteByte('\n')

	if err := os.WriteFile(f.path, []byte(b.String()), 0644); err != nil {
		return err
	}
	f.Want = got
	return nil
}
