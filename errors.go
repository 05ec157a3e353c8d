package i18n

import "errors"

// Sentinel errors for the package. ErrMessageNotFound is load-bearing:
// catalogs must return it (or wrap it) for a plain miss so the service
// can tell "missing translation" apart from a broken catalog.
var (
	// ErrMessageNotFound signals that a catalog holds no entry for the
	// requested (code, locale) pair.
	ErrMessageNotFound = errors.New("message not found")

	// ErrNilCatalog is returned when a service is constructed without a
	// catalog collaborator.
	ErrNilCatalog = errors.New("catalog is nil")

	// ErrFacadeNotInitialized is raised on first facade use when no
	// default service has been bound and no provider is registered.
	// This is a wiring defect, not a runtime request condition.
	ErrFacadeNotInitialized = errors.New("i18n facade used before a default service was bound")

	// Config loading
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// Catalog loading
	ErrFailedToReadCatalogFile  = errors.New("failed to read catalog file")
	ErrFailedToParseCatalogFile = errors.New("failed to parse catalog file")
	ErrEmptyCatalogFile         = errors.New("catalog file is empty")
	ErrInvalidCatalogStructure  = errors.New("invalid catalog structure")
)
