// Package audit appends one JSONL record per guard decision. Records carry a
// hash of the evaluated text instead of the text itself, so the log never
// stores the PII it exists to account for.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/piigate/piigate/internal/types"
)

// DecisionRecord is one audited guard or scrub decision.
type DecisionRecord struct {
	Timestamp   time.Time      `json:"timestamp"`
	RequestID   string         `json:"request_id"`
	Flow        string         `json:"flow"`
	TextHash    string         `json:"text_hash"`
	TextLength  int            `json:"text_length"`
	Score       int            `json:"score"`
	Blocked     bool           `json:"blocked"`
	MatchCounts map[string]int `json:"match_counts,omitempty"`
	Injection   bool           `json:"injection,omitempty"`
	Duration    string         `json:"duration"`
}

// AuditLog appends decision records to a JSONL file. Safe for concurrent use.
type AuditLog struct {
	mu      sync.Mutex
	logPath string
}

func NewAuditLog(path string) *AuditLog {
	return &AuditLog{logPath: path}
}

// NewRecord builds a record for a decision over text. The text is reduced to
// an xxhash digest and a rune count.
func NewRecord(flow, text string, matches []types.Match, score int, blocked, injection bool, took time.Duration) DecisionRecord {
	counts := map[string]int{}
	for _, m := range matches {
		counts[string(m.Category)]++
	}
	if len(counts) == 0 {
		counts = nil
	}
	return DecisionRecord{
		Timestamp:   time.Now().UTC(),
		RequestID:   uuid.NewString(),
		Flow:        flow,
		TextHash:    fmt.Sprintf("%016x", xxhash.Sum64String(text)),
		TextLength:  len([]rune(text)),
		Score:       score,
		Blocked:     blocked,
		MatchCounts: counts,
		Injection:   injection,
		Duration:    took.String(),
	}
}

// Append writes one record. Permissions are owner-only since even match
// category counts can be sensitive.
func (a *AuditLog) Append(record DecisionRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// LoadHistory reads all records, newest first. Malformed lines are skipped.
func (a *AuditLog) LoadHistory() ([]DecisionRecord, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []DecisionRecord
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var record DecisionRecord
		if err := decoder.Decode(&record); err != nil {
			continue
		}
		records = append(records, record)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}
