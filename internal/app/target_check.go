package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mmrzaf/bizgen/internal/domain"
	"github.com/mmrzaf/bizgen/internal/exec"
	"github.com/mmrzaf/bizgen/internal/validation"
)

// checkedSink is what the bundled sinks offer beyond exec.Target.
type checkedSink interface {
	exec.Target
	ServerVersion() (string, error)
	DropTable(tableName string) error
}

// CheckTarget connects to t, reads the server version and probes whether
// the credentials can create, insert into and truncate a scratch table,
// which is dropped afterwards. The returned check is non-nil even when err
// is set.
func CheckTarget(t *domain.TargetConfig) (*domain.TargetCheck, error) {
	check := &domain.TargetCheck{
		ID:        uuid.NewString(),
		TargetID:  t.ID,
		CheckedAt: time.Now().UTC(),
	}

	if err := validation.NewValidator(nil).ValidateTarget(t); err != nil {
		check.Error = err.Error()
		return check, err
	}

	sink, err := newSink(resolveTargetForRun(t, ""))
	if err != nil {
		check.Error = err.Error()
		return check, err
	}

	start := time.Now()
	err = sink.Connect()
	check.LatencyMS = time.Since(start).Milliseconds()
	if err != nil {
		check.Error = err.Error()
		return check, err
	}
	defer sink.Close()
	check.OK = true

	cs, ok := sink.(checkedSink)
	if !ok {
		return check, nil
	}
	if ver, err := cs.ServerVersion(); err == nil {
		check.ServerVer = ver
	}
	check.Capabilities = probeCapabilities(cs, fmt.Sprintf("bizgen_check_%d", time.Now().UnixNano()))
	return check, nil
}

func probeCapabilities(sink checkedSink, table string) domain.TargetCapabilities {
	var caps domain.TargetCapabilities
	columns := []domain.Column{{Name: "id", Type: domain.ColumnTypeInt}}

	if err := sink.CreateTableIfNotExists(table, columns); err != nil {
		return caps
	}
	caps.CanCreate = true
	defer sink.DropTable(table)

	if err := sink.InsertBatch(table, []string{"id"}, [][]any{{int64(1)}}); err != nil {
		return caps
	}
	caps.CanInsert = true

	caps.CanTruncate = sink.TruncateTable(table) == nil
	return caps
}
