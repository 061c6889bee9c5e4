package main

import "errors"

// Error definitions
var (
	ErrNoDatabasesConfigured = errors.New("no databases configured")
	ErrEnvironmentNotFound   = errors.New("environment not found")
	ErrMissingCatalogSource  = errors.New("either a catalog file, database URL or environment must be specified")
)
