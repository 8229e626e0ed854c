package gomark

import (
	"errors"
	"fmt"
)

// ErrDirectiveNotRegistered is the sentinel DirectiveNotRegisteredError
// unwraps to. An unregistered directive is fatal, unlike DirectiveMalformed
// and IncludeResolutionFailed: directive.go emits a dedicated token type
// with no HTML renderer registered for it, so Render/Convert surface
// RendererMissingMethodError rather than falling back to literal text.
var ErrDirectiveNotRegistered = errors.New("gomark: directive not registered")

// RendererMissingMethodError reports that the renderer has no method for a
// token type. This is fatal: spec §3 requires every emitted token type to be
// registered with at least one renderer method.
type RendererMissingMethodError struct {
	TokenType string
}

func (e *RendererMissingMethodError) Error() string {
	return fmt.Sprintf("gomark: no renderer method for token type %q", e.TokenType)
}

// DirectiveNotRegisteredError names the unregistered directive.
type DirectiveNotRegisteredError struct {
	Name string
}

func (e *DirectiveNotRegisteredError) Error() string {
	return fmt.Sprintf("gomark: directive %q has no registered handler", e.Name)
}

func (e *DirectiveNotRegisteredError) Unwrap() error {
	return ErrDirectiveNotRegistered
}
