package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/mmrzaf/bizgen/internal/domain"
)

type exportConfigHashPayload struct {
	RequestHash    string `json:"request_hash"`
	TargetKind     string `json:"target_kind"`
	TargetDatabase string `json:"target_database,omitempty"`
	TargetSchema   string `json:"target_schema,omitempty"`
	TargetDSN      string `json:"target_dsn"`
	Table          string `json:"table"`
	Mode           string `json:"mode"`
	BatchSize      int    `json:"batch_size"`
}

// HashExportConfig fingerprints where and how a generated table is
// written, on top of the request fingerprint.
func HashExportConfig(requestHash string, target *domain.TargetConfig, table, mode string, batchSize int) (string, error) {
	p := exportConfigHashPayload{
		RequestHash:    requestHash,
		TargetKind:     target.Kind,
		TargetDatabase: target.Database,
		TargetSchema:   target.Schema,
		TargetDSN:      target.DSN,
		Table:          table,
		Mode:           mode,
		BatchSize:      batchSize,
	}
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
