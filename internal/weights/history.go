// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package weights

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/content-screener/pkg/types"
)

// AppendHistory writes one JSON line to the weight-history ledger. The
// ledger is append-only: prior lines are never rewritten, and line order is
// chronological order. A failed append is fatal to the cycle so the audit
// trail never claims less than what happened.
func (c *Controller) AppendHistory(entry types.WeightHistoryEntry) error {
	if err := os.MkdirAll(filepath.Dir(c.cfg.HistoryPath), 0o755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding history entry: %w", err)
	}

	f, err := os.OpenFile(c.cfg.HistoryPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening history ledger: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("appending history entry: %w", err)
	}
	return nil
}

// LoadHistory reads the full ledger in line order. Unparsable lines are
// skipped rather than failing the read; a missing ledger is an empty
// history.
func (c *Controller) LoadHistory() ([]types.WeightHistoryEntry, error) {
	f, err := os.Open(c.cfg.HistoryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history ledger: %w", err)
	}
	defer f.Close()

	var history []types.WeightHistoryEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry types.WeightHistoryEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		history = append(history, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history ledger: %w", err)
	}
	return history, nil
}
