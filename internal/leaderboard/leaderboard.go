// Package leaderboard persists the top-3 scores as a flat text file, one
// decimal score per line. The file is the single source of truth for the
// top-3 list across process restarts.
package leaderboard

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Size is the number of scores the board keeps.
const Size = 3

// Board reads and writes the leaderboard file.
type Board struct {
	path string
}

// New creates a board backed by the given file path. A leading ~ expands to
// the user's home directory.
func New(path string) (*Board, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("leaderboard: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("leaderboard: cannot create directory %s: %w", dir, err)
	}

	return &Board{path: path}, nil
}

// Path returns the backing file path.
func (b *Board) Path() string {
	return b.path
}

// Load returns the top scores, sorted descending and padded with zeros to
// Size entries. A missing or unreadable file yields all zeros; Load never
// fails the caller.
func (b *Board) Load() []int {
	scores := make([]int, 0, Size)

	data, err := os.ReadFile(b.path)
	if err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			n, convErr := strconv.Atoi(line)
			if convErr != nil {
				continue
			}
			scores = append(scores, n)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(scores)))

	if len(scores) > Size {
		scores = scores[:Size]
	}
	for len(scores) < Size {
		scores = append(scores, 0)
	}
	return scores
}

// Update merges a new score into the stored list, keeping only the best
// Size entries. Persistence is best-effort: the returned error is
// informational and must not end the session.
func (b *Board) Update(newScore int) error {
	scores := b.Load()
	scores = append(scores, newScore)
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	return b.save(scores[:Size])
}

// save writes the scores, one per line. Last write wins; partial-write
// corruption is accepted given the trivial format.
func (b *Board) save(scores []int) error {
	var sb strings.Builder
	for _, s := range scores {
		fmt.Fprintf(&sb, "%d\n", s)
	}
	if err := os.WriteFile(b.path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("leaderboard: cannot write %s: %w", b.path, err)
	}
	return nil
}
