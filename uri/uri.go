// Package uri parses, validates and decomposes RFC-3986 URI references.
//
// Parsing is two-phase: Split extracts the seven raw components with a
// single structural pattern, then the per-component grammars of RFC-3986
// §§2-3 are applied in order. A Uri is immutable once constructed and safe
// to share across goroutines; the zero value is the valid empty relative
// reference.
package uri

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// HostKind reports which branch of the RFC-3986 host alternation matched.
type HostKind int32

const (
	HostKindNone HostKind = iota
	HostKindIPv4
	HostKindIPv6
	HostKindIPvFuture
	HostKindRegName
)

// PathKind reports the grammatical shape of the path (RFC-3986 §3.3).
type PathKind int32

const (
	PathKindEmpty PathKind = iota
	PathKindAbEmpty
	PathKindAbsolute
	PathKindNoScheme
	PathKindRootless
)

// Uri is a validated URI reference. All fields are fixed at construction
// time; copies share no mutable state.
type Uri struct {
	scheme          string
	canonicalScheme string
	userInfo        string
	rawUserInfo     string
	host            string
	rawHost         string
	hostKind        HostKind
	port            int
	path            string
	pathKind        PathKind
	query           string
	fragment        string
}

// Parse builds a Uri from a URI reference string. The input must be valid in
// full: on any component failure no partial Uri is returned. The empty
// string parses to the empty relative reference.
func Parse(s string) (*Uri, error) {
	c, err := Split(s)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %q as URI", s)
	}

	u, err := newUri(c)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %q as URI", s)
	}

	return u, nil
}

// FromComponents builds a Uri from pre-split bare components, applying the
// same per-component validation as Parse.
func FromComponents(c Components) (*Uri, error) {
	return newUri(c)
}

// Scheme returns the scheme in its original case, or "" for a relative
// reference.
func (u *Uri) Scheme() string { return u.scheme }

// CanonicalScheme returns the scheme lower-cased. Scheme comparison is
// case-insensitive per RFC-3986 §3.1, so this is the form to compare.
func (u *Uri) CanonicalScheme() string { return u.canonicalScheme }

// UserInformation returns the percent-decoded user information, or "" if
// absent.
func (u *Uri) UserInformation() string { return u.userInfo }

// RawUserInformation returns the user information as validated, still
// percent-encoded. Unless includePassword is set, anything from the first
// ":" on is left out.
func (u *Uri) RawUserInformation(includePassword bool) string {
	if includePassword {
		return u.rawUserInfo
	}
	if i := strings.IndexByte(u.rawUserInfo, ':'); i >= 0 {
		return u.rawUserInfo[:i]
	}
	return u.rawUserInfo
}

// Host returns the host as given in the input, or "" if absent.
func (u *Uri) Host() string { return u.host }

// RawHost returns the percent-encoded host. IP-literals are returned in
// their bracketed form unchanged.
func (u *Uri) RawHost() string { return u.rawHost }

// HostKind reports which host production matched, or HostKindNone when no
// host is present.
func (u *Uri) HostKind() HostKind { return u.hostKind }

// Port returns the port, or 0 if none was given. A present port is always
// in 1-65535.
func (u *Uri) Port() int { return u.port }

// PortOrDefault returns the port, falling back to the scheme's default port
// when none was given. It returns 0 when neither applies.
func (u *Uri) PortOrDefault() int {
	if u.port != 0 {
		return u.port
	}
	return DefaultPort(u.canonicalScheme)
}

// Path returns the path, possibly empty. The path is stored as it appeared
// in the input; no percent-decoding is applied.
func (u *Uri) Path() string { return u.path }

// RawPath returns the path in its encoded input form. Since the path is
// never decoded, this is the same value Path returns.
func (u *Uri) RawPath() string { return u.path }

// PathKind reports the grammatical shape of the path.
func (u *Uri) PathKind() PathKind { return u.pathKind }

// PathSegments returns the "/"-separated path segments, without the leading
// slash of a rooted path. It returns nil for an empty path.
func (u *Uri) PathSegments() []string {
	if u.path == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(u.path, "/"), "/")
}

// Query returns the query, or "" if absent.
func (u *Uri) Query() string { return u.query }

// RawQuery returns the query in its encoded input form, same as Query.
func (u *Uri) RawQuery() string { return u.query }

// Fragment returns the fragment, or "" if absent.
func (u *Uri) Fragment() string { return u.fragment }

// RawFragment returns the fragment in its encoded input form, same as
// Fragment.
func (u *Uri) RawFragment() string { return u.fragment }

// IsAbsolute reports whether this is an absolute URI: a scheme is present
// and no fragment. A reference with a fragment is neither absolute nor
// relative, it is a URI-reference with a fragment.
func (u *Uri) IsAbsolute() bool { return u.scheme != "" && u.fragment == "" }

// IsRelative reports whether this is a relative reference: no scheme and no
// fragment. The empty reference is relative.
func (u *Uri) IsRelative() bool { return u.scheme == "" && u.fragment == "" }

// String reassembles the reference from its components per RFC-3986 §5.3,
// using the original-case scheme and the raw (encoded) user information.
func (u *Uri) String() string {
	var b strings.Builder

	if u.scheme != "" {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}

	if u.host != "" || u.rawUserInfo != "" {
		b.WriteString("//")
		if u.rawUserInfo != "" {
			b.WriteString(u.rawUserInfo)
			b.WriteByte('@')
		}
		b.WriteString(u.host)
		if u.port != 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(u.port))
		}
	}

	b.WriteString(u.path)

	if u.query != "" {
		b.WriteByte('?')
		b.WriteString(u.query)
	}

	if u.fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}

	return b.String()
}

// Default ports for well-known schemes. A URI carrying no explicit port
// defers to these; schemes not listed here have no default.
var defaultPorts = map[string]int{
	"ftp":    21,
	"ssh":    22,
	"telnet": 23,
	"http":   80,
	"ws":     80,
	"https":  443,
	"wss":    443,
}

// DefaultPort returns the default port for a scheme, or 0 if the scheme has
// none registered. The lookup is case-insensitive.
func DefaultPort(scheme string) int {
	return defaultPorts[strings.ToLower(scheme)]
}
