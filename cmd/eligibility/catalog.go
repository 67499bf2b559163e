package main

import (
	"errors"
	"fmt"

	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
	"github.com/HendryAvila/sheraa-eligibility/internal/catalogdb"
	"github.com/HendryAvila/sheraa-eligibility/internal/config"
	"go.uber.org/zap"
)

// errCatalogInvalid is returned when strict mode rejects a catalog.
var errCatalogInvalid = errors.New("catalog failed integrity checks")

// loadCatalog reads the catalog from the configured source.
func loadCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	switch cfg.Source {
	case config.SourceBuiltin, "":
		return catalog.Default(), nil
	case config.SourceYAML:
		cat, err := catalog.LoadFile(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("loading yaml catalog: %w", err)
		}
		return cat, nil
	case config.SourceSQLite:
		store, err := catalogdb.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		cat, err := store.Load()
		if err != nil {
			return nil, fmt.Errorf("loading sqlite catalog: %w", err)
		}
		return cat, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// loadCheckedCatalog loads the catalog and runs the self-check. Issues are
// logged; in strict mode they abort startup.
func loadCheckedCatalog(cfg config.CatalogConfig, logger *zap.Logger) (*catalog.Catalog, error) {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	report := catalog.RunProtocolChecks(cat)
	for _, w := range report.Warnings {
		logger.Warn("catalog warning", zap.String("detail", w))
	}
	for _, issue := range report.Issues {
		logger.Error("catalog issue", zap.String("detail", issue))
	}
	if !report.OK && cfg.Strict {
		return nil, fmt.Errorf("%w: %d issue(s)", errCatalogInvalid, len(report.Issues))
	}

	logger.Info("catalog loaded",
		zap.String("source", string(cfg.Source)),
		zap.Int("questions", cat.Len()),
		zap.Int("programs", cat.NumPrograms()),
	)
	return cat, nil
}
