package app

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/zerr"
)

// fingerprint hashes everything that determines the bytes of one output.
func fingerprint(in inputs, view domain.View, month time.Time, format domain.Format) (string, error) {
	h := xxhash.New()
	err := json.NewEncoder(h).Encode(struct {
		Tasks    []domain.Task
		Settings *domain.Settings
		View     domain.View
		Month    time.Time
		Format   domain.Format
	}{in.tasks, in.settings, view, month, format})
	if err != nil {
		return "", zerr.Wrap(err, "failed to fingerprint inputs")
	}
	return strconv.FormatUint(h.Sum64(), 16), nil
}
