package usecase

import (
	"time"

	"notification-enricher/internal/directory"
	"notification-enricher/internal/enrich"
	"notification-enricher/internal/registry"
	"notification-enricher/internal/report"
	pkgLog "notification-enricher/pkg/log"
)

type usecase struct {
	l         pkgLog.Logger
	registry  *registry.Registry
	resolver  directory.Resolver
	catalog   report.Catalog
	artifacts report.ArtifactStore
	clock     func() time.Time
}

// New creates the enrichment engine. Catalog and artifacts may be nil when
// the reporting backend is not deployed; scheduled records then keep their
// passthrough display fields only.
func New(
	l pkgLog.Logger,
	reg *registry.Registry,
	resolver directory.Resolver,
	catalog report.Catalog,
	artifacts report.ArtifactStore,
) enrich.UseCase {
	return &usecase{
		l:         l,
		registry:  reg,
		resolver:  resolver,
		catalog:   catalog,
		artifacts: artifacts,
		clock:     time.Now,
	}
}
