// Package cardfile reads and writes credit card data files. JSON and CSV
// sources are supported for reading; saves always produce JSON.
package cardfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/paydown/cc-paydown-planner/internal/config"
	"github.com/paydown/cc-paydown-planner/pkg/snowball"
)

// Load reads cards from path, dispatching on the file extension. Records
// that fail validation are logged and skipped; the load fails only when the
// file yields no valid cards at all.
func Load(logger *zap.Logger, path string, defaults config.Defaults) ([]snowball.Card, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(logger, path, defaults)
	case ".csv":
		return LoadCSV(logger, path, defaults)
	default:
		return nil, fmt.Errorf("unsupported file type: %s (supported types: .csv, .json)", filepath.Ext(path))
	}
}
