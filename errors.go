package codequest

import "errors"

// Asset failure kinds. Match them with errors.Is.
var (
	// ErrMissingOptionalAsset marks a decorative asset that could not be
	// loaded. Callers substitute a placeholder and carry on.
	ErrMissingOptionalAsset = errors.New("missing optional asset")
	// ErrMissingRequiredAsset marks an asset the game cannot start without.
	ErrMissingRequiredAsset = errors.New("missing required asset")
)

// AssetError describes a failed asset load.
type AssetError struct {
	Path     string
	Required bool
	Err      error
}

func (e *AssetError) Error() string {
	kind := "optional"
	if e.Required {
		kind = "required"
	}
	if e.Err == nil {
		return kind + " asset " + e.Path + ": not found"
	}
	return kind + " asset " + e.Path + ": " + e.Err.Error()
}

// Unwrap exposes the underlying cause.
func (e *AssetError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *AssetError) Is(target error) bool {
	switch target {
	case ErrMissingOptionalAsset:
		return !e.Required
	case ErrMissingRequiredAsset:
		return e.Required
	}
	return false
}
