package replvars

import (
	"github.com/itsatony/go-cuserr"
)

// Error message constants
const (
	// Registry errors
	ErrMsgEmptyTokenName = "token name cannot be empty"
	ErrMsgNilResolver    = "token resolver cannot be nil"

	// Tool errors
	ErrMsgUnsupportedTool      = "unsupported action"
	ErrMsgConfirmationRequired = "tool is irreversible and must be confirmed before running"
	ErrMsgToolFailed           = "maintenance tool failed"

	// Configuration errors
	ErrMsgConfigRead    = "failed to read configuration file"
	ErrMsgConfigParse   = "failed to parse configuration"
	ErrMsgConfigInvalid = "invalid configuration"

	// Snapshot errors
	ErrMsgSnapshotRead  = "failed to read post snapshot"
	ErrMsgSnapshotParse = "failed to parse post snapshot"
)

// Error code constants for categorization
const (
	ErrCodeRegistry = "REPLVARS_REGISTRY"
	ErrCodeTool     = "REPLVARS_TOOL"
	ErrCodeConfig   = "REPLVARS_CONFIG"
	ErrCodeSnapshot = "REPLVARS_SNAPSHOT"
)

// NewEmptyTokenNameError reports a registration without a name.
func NewEmptyTokenNameError() error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgEmptyTokenName)
}

// NewNilResolverError reports a registration without a resolver.
func NewNilResolverError(name string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgNilResolver).
		WithMetadata(MetaKeyToken, name)
}

// NewUnsupportedToolError reports a tool id outside the known set.
func NewUnsupportedToolError(id string) error {
	return cuserr.NewNotFoundError(MetaKeyTool, ErrMsgUnsupportedTool).
		WithMetadata(MetaKeyTool, id)
}

// NewConfirmationRequiredError reports an irreversible tool run without confirmation.
func NewConfirmationRequiredError(id string) error {
	return cuserr.NewValidationError(ErrCodeTool, ErrMsgConfirmationRequired).
		WithMetadata(MetaKeyTool, id)
}

// NewToolFailedError wraps a backend failure during a tool run.
func NewToolFailedError(id string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeTool, ErrMsgToolFailed).
		WithMetadata(MetaKeyTool, id)
}

// NewConfigError wraps configuration loading failures.
func NewConfigError(msg, path string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeConfig, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeConfig, msg)
	}
	return err.WithMetadata(MetaKeyPath, path)
}

// NewConfigValidationError reports a configuration field that failed validation.
func NewConfigValidationError(field, reason string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgConfigInvalid).
		WithMetadata(MetaKeyField, field).
		WithMetadata(MetaKeyReason, reason)
}

// NewSnapshotError wraps post snapshot loading failures.
func NewSnapshotError(msg, path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeSnapshot, msg).
		WithMetadata(MetaKeyPath, path)
}
