package app

import (
	"time"

	"github.com/mmrzaf/fixturegen/internal/domain"
	"github.com/mmrzaf/fixturegen/internal/infra/targets"
	"github.com/mmrzaf/fixturegen/internal/validation"
)

// CheckTarget connects to t and reports latency and server version. The
// returned check is populated even when err is non-nil.
func CheckTarget(t *domain.ExportTarget) (*domain.TargetCheck, error) {
	check := &domain.TargetCheck{CheckedAt: time.Now().UTC()}

	if err := validation.ValidateExportTarget(t); err != nil {
		check.Error = err.Error()
		return check, err
	}

	start := time.Now()
	tgt, err := targets.New(resolveTarget(t, ""))
	if err != nil {
		check.Error = "unsupported target kind"
		return check, err
	}
	if err := tgt.Connect(); err != nil {
		check.Error = err.Error()
		check.LatencyMS = time.Since(start).Milliseconds()
		return check, err
	}
	defer tgt.Close()

	check.OK = true
	check.LatencyMS = time.Since(start).Milliseconds()
	if ver, verErr := tgt.ServerVersion(); verErr == nil {
		check.ServerVersion = ver
	}
	return check, nil
}
