package uri

import (
	"errors"
	"fmt"
)

var (
	// ErrUnparseable is returned when the input does not even have the
	// overall shape of a URI reference. The structural pattern accepts
	// arbitrary content in every group, so this is a defensive condition.
	ErrUnparseable = errors.New("failed to parse a URI from the given string")

	// ErrAuthorityWithoutHost is returned when user information is present
	// without a host.
	ErrAuthorityWithoutHost = errors.New("user information set without a host")

	// ErrPortWithoutHost is returned when a port is present without a host.
	ErrPortWithoutHost = errors.New("no host defined for port")
)

// SyntaxError reports a component that failed its RFC-3986 grammar. Use
// errors.As to recover the component name and the offending value.
type SyntaxError struct {
	Component string
	Value     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Component, e.Value)
}
