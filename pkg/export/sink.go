package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grid-tools/fuelmix/pkg/models/api"
)

// Sink persists a serialized statset. A failed run must never leave a
// partially written artifact behind.
type Sink interface {
	WriteProcessed(set api.StatSet) error
	WriteRaw(set api.StatSet) error
}

// FileSink writes statsets as JSON files under a directory. Writes go to
// a temp file first and are renamed into place, so output is
// all-or-nothing.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

// WriteProcessed writes the computed share statset to processed.json with
// history data arrays compacted onto single lines.
func (s *FileSink) WriteProcessed(set api.StatSet) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal statset: %w", err)
	}
	return s.write("processed.json", compactHistoryArrays(data))
}

// WriteRaw snapshots the upstream feed response to raw.json.
func (s *FileSink) WriteRaw(set api.StatSet) error {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal raw statset: %w", err)
	}
	return s.write("raw.json", data)
}

func (s *FileSink) write(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("finalize %s: %w", name, err)
	}
	return nil
}

// historyDataPattern anchors on the interval key so only the numeric data
// arrays inside history objects are matched, never metadata arrays.
var historyDataPattern = regexp.MustCompile(`(?s)("interval":[^}]*?"data":\s*)\[([^\]]*)\]`)

var arrayWhitespace = regexp.MustCompile(`\s+`)

// compactHistoryArrays folds each history data array onto a single line,
// leaving the rest of the indented JSON untouched.
func compactHistoryArrays(data []byte) []byte {
	return historyDataPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		groups := historyDataPattern.FindSubmatch(match)
		compacted := arrayWhitespace.ReplaceAllString(strings.TrimSpace(string(groups[2])), " ")
		return []byte(fmt.Sprintf("%s[%s]", groups[1], compacted))
	})
}
