package uri

import "regexp"

// Components holds the seven raw substrings of a URI reference, exactly as
// they appeared in the input: no grammar validation, no decoding. It is the
// hand-off between Split and FromComponents.
//
// Each field is expected to be a bare component, without its delimiter
// (no trailing ":" on the scheme, no leading "#" on the fragment, and so on).
type Components struct {
	Scheme          string
	UserInformation string
	Host            string
	Port            string
	Path            string
	Query           string
	Fragment        string
}

// RFC-3986 Appendix B gives a regular expression that splits a URI reference
// into five parts, with the authority kept as one unit. This pattern extends
// it to seven parts by splitting the authority into user information, host
// and port in place. The host group consumes a bracketed IP-literal as a
// unit so that the port colon after "[::1]" is found in the right place.
var splitRegexp = regexp.MustCompile(
	`^(?:([^:/?#]+):)?` + // scheme
		`(?://(?:([^@]+)@)?(\[[^/?#]*\]|[^/?#:]*)(?::([^/?#]+))?)?` + // authority
		`([^?#]*)` + // path
		`(?:\?([^#]*))?` + // query
		`(?:#(.*))?$`) // fragment

// Split decomposes a URI reference into its seven raw components. It checks
// only the overall structure, never the per-component grammar: an illegal
// scheme still comes back in Components.Scheme and is only rejected by
// FromComponents. Absent components come back empty.
func Split(s string) (Components, error) {
	m := splitRegexp.FindStringSubmatch(s)
	if m == nil {
		return Components{}, ErrUnparseable
	}

	return Components{
		Scheme:          m[1],
		UserInformation: m[2],
		Host:            m[3],
		Port:            m[4],
		Path:            m[5],
		Query:           m[6],
		Fragment:        m[7],
	}, nil
}
