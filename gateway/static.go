// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/danielhkuo/stimmie/models"
)

//go:embed fallback-data.json
var defaultFallback []byte

// StaticSource reads a bundled dataset. The file may contain comments
// and trailing commas.
type StaticSource struct {
	path string
}

// NewStatic returns a source for path, or for the embedded dataset when
// path is empty.
func NewStatic(path string) *StaticSource {
	return &StaticSource{path: path}
}

func (s *StaticSource) ReadAllResponses(ctx context.Context) ([]models.ResponseRecord, error) {
	data := defaultFallback
	if s.path != "" {
		var err error
		data, err = os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read fallback dataset: %w", err)
		}
	}
	return models.DecodeRecords(jsonc.ToJSON(data)), nil
}
