// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldKind   = "kind"
	FieldOutput = "output"

	// Target fields.
	FieldSelector = "selector"
	FieldTag      = "tag"
	FieldIndex    = "index"

	// Edit fields.
	FieldName     = "name"
	FieldValue    = "value"
	FieldElements = "elements"
	FieldDryRun   = "dry_run"
	FieldBackup   = "backup"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
