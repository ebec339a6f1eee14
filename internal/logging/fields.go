package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldBytes      = "bytes"

	// Pipeline fields.
	FieldStage   = "stage"
	FieldStages  = "stages"
	FieldChanged = "changed"
	FieldEnabled = "enabled"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Stage listing fields.
	FieldName        = "name"
	FieldDescription = "description"
	FieldGlyph       = "glyph"
)
