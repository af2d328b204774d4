// Package score keeps the top high scores in a plain text file, one
// integer per line, highest first.
package score

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TopN is how many scores the board keeps
const TopN = 3

// Board is a top-N high score table backed by a file
type Board struct {
	path   string
	scores []int
}

// Open loads the board at path. A missing file is an empty board.
func Open(path string) (*Board, error) {
	b := &Board{path: path}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			b.scores = normalize(nil)
			return b, nil
		}
		return nil, errors.Wrapf(err, "open high scores %s", path)
	}
	defer f.Close()

	scores, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read high scores %s", path)
	}
	b.scores = scores
	return b, nil
}

// Path returns the backing file
func (b *Board) Path() string {
	return b.path
}

// Top returns the scores, highest first, padded with zeros to TopN
func (b *Board) Top() []int {
	out := make([]int, len(b.scores))
	copy(out, b.scores)
	return out
}

// Qualifies reports whether s would enter the table
func (b *Board) Qualifies(s int) bool {
	return s > 0 && s > b.scores[len(b.scores)-1]
}

// Submit adds a score, keeps the best TopN and rewrites the file
func (b *Board) Submit(s int) error {
	b.scores = normalize(append(b.Top(), s))
	return b.save()
}

func (b *Board) save() error {
	tmp := b.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrap(err, "create high scores")
	}

	if err := Write(f, b.scores); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(err, "write high scores")
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "close high scores")
	}

	return errors.Wrap(os.Rename(tmp, b.path), "replace high scores")
}

// Read parses newline separated scores. Blank lines and non-positive
// values are skipped. The result is sorted and padded to TopN.
func Read(r io.Reader) ([]int, error) {
	var scores []int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if n > 0 {
			scores = append(scores, n)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return normalize(scores), nil
}

// Write emits scores one per line
func Write(w io.Writer, scores []int) error {
	bw := bufio.NewWriter(w)
	for _, s := range scores {
		if _, err := fmt.Fprintln(bw, s); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// normalize sorts descending, trims to TopN and pads with zeros
func normalize(scores []int) []int {
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	if len(scores) > TopN {
		scores = scores[:TopN]
	}
	for len(scores) < TopN {
		scores = append(scores, 0)
	}
	return scores
}
