package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/textutil"
	"github.com/mmrzaf/bizgen/internal/timeutil"
)

// HashRequest fingerprints a generation call. Two calls with the same
// fingerprint produce the same table, faker text aside.
func HashRequest(req domain.GenerationRequest, seed int64, today time.Time) (string, error) {
	data, err := json.Marshal(canonicalizeRequest(req, seed, today))
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

func canonicalizeRequest(req domain.GenerationRequest, seed int64, today time.Time) map[string]interface{} {
	result := map[string]interface{}{
		"category": textutil.Fold(req.Category),
		"rows":     req.Rows,
		"seed":     seed,
		"today":    timeutil.StartOfDay(today).Format(timeutil.DateLayout),
	}
	if req.Subcategory != "" {
		result["subcategory"] = textutil.Fold(req.Subcategory)
	}
	return result
}
