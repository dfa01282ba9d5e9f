package service

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Geetha-SV/ContractAI/config"
	"github.com/Geetha-SV/ContractAI/model"
)

// AuditSink appends one JSON line per analyzed document to a log file. The
// log is append-only: records are never rewritten or read back here. Each
// append opens and closes the file, relying on platform append semantics.
type AuditSink struct {
	path string
}

func NewAuditSink(cfg *config.AuditConfig) *AuditSink {
	return &AuditSink{path: cfg.Path}
}

// Append records the content hash, timestamp, and classification summary of
// one analysis.
func (s *AuditSink) Append(a *model.Analysis) error {
	record := model.AuditRecord{
		Hash:    a.TextHash,
		Time:    a.CreatedAt.Format(time.RFC3339),
		Type:    a.Type,
		Risk:    a.Risk,
		Parties: a.Parties,
	}

	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal audit record: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to append audit record: %w", err)
	}
	return nil
}
