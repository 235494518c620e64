package uri

import (
	"strconv"
	"strings"
)

// newUri runs the per-component grammar checks in document order, tracking
// authority presence across components. Validation is all-or-nothing: the
// first failing component aborts the whole construction.
func newUri(c Components) (*Uri, error) {
	u := &Uri{}
	hasAuthority := false

	if c.Scheme != "" {
		if !schemeRegexp.MatchString(c.Scheme) {
			return nil, &SyntaxError{Component: "scheme", Value: c.Scheme}
		}

		u.scheme = c.Scheme
		u.canonicalScheme = strings.ToLower(c.Scheme)
	}

	if c.UserInformation != "" {
		// Rejected as-is: no attempt is made to repair an illegal
		// user information string by percent-encoding it first.
		if !userInfoRegexp.MatchString(c.UserInformation) {
			return nil, &SyntaxError{Component: "user information", Value: c.UserInformation}
		}

		u.rawUserInfo = c.UserInformation
		u.userInfo = Decode(c.UserInformation)
		hasAuthority = true
	}

	if c.Host == "" {
		if hasAuthority {
			return nil, ErrAuthorityWithoutHost
		}
	} else {
		kind, raw, err := validateHost(c.Host)
		if err != nil {
			return nil, err
		}

		u.host = c.Host
		u.rawHost = raw
		u.hostKind = kind
		hasAuthority = true
	}

	if c.Port != "" {
		if !portRegexp.MatchString(c.Port) {
			return nil, &SyntaxError{Component: "port", Value: c.Port}
		}

		if !hasAuthority {
			return nil, ErrPortWithoutHost
		}

		// The port grammar only admits 1-65535, so Atoi cannot fail.
		port, _ := strconv.Atoi(c.Port)
		u.port = port
	}

	if c.Path != "" {
		if !pathRegexp.MatchString(c.Path) {
			return nil, &SyntaxError{Component: "path", Value: c.Path}
		}

		u.path = c.Path
	}
	u.pathKind = classifyPath(u.path, hasAuthority, u.scheme != "")

	if c.Query != "" {
		if !queryRegexp.MatchString(c.Query) {
			return nil, &SyntaxError{Component: "query", Value: c.Query}
		}

		u.query = c.Query
	}

	if c.Fragment != "" {
		if !fragmentRegexp.MatchString(c.Fragment) {
			return nil, &SyntaxError{Component: "fragment", Value: c.Fragment}
		}

		u.fragment = c.Fragment
	}

	return u, nil
}

// validateHost checks the host against the RFC-3986 alternation
// IP-literal / IPv4address / reg-name and reports which branch matched,
// together with the percent-encoded raw form.
//
// A bracketed host is matched directly against the IP-literal production.
// Anything else is percent-encoded first and then matched, so a host such as
// "ex ample" validates as the registered name "ex%20ample".
func validateHost(host string) (HostKind, string, error) {
	if strings.HasPrefix(host, "[") {
		switch {
		case ipv6HostRegexp.MatchString(host):
			return HostKindIPv6, host, nil
		case ipvFutureRegexp.MatchString(host):
			return HostKindIPvFuture, host, nil
		}
		return HostKindNone, "", &SyntaxError{Component: "host", Value: host}
	}

	encoded := Encode(host)
	switch {
	case ipv4Regexp.MatchString(host):
		return HostKindIPv4, encoded, nil
	case regNameRegexp.MatchString(encoded):
		return HostKindRegName, encoded, nil
	}
	return HostKindNone, "", &SyntaxError{Component: "host", Value: host}
}

// classifyPath decides which of the RFC-3986 path shapes a validated path
// has. With an authority the path is always path-abempty; a leading slash
// without an authority makes it path-absolute; otherwise the first segment
// decides between path-rootless and path-noscheme.
func classifyPath(path string, hasAuthority, hasScheme bool) PathKind {
	switch {
	case path == "" && !hasAuthority:
		return PathKindEmpty
	case hasAuthority:
		return PathKindAbEmpty
	case path[0] == '/':
		return PathKindAbsolute
	}

	firstSegment := path
	if i := strings.IndexByte(path, '/'); i >= 0 {
		firstSegment = path[:i]
	}
	if hasScheme || strings.IndexByte(firstSegment, ':') >= 0 {
		return PathKindRootless
	}
	return PathKindNoScheme
}
