package uri

import "regexp"

// The patterns below are the RFC-3986 component grammars, built up from the
// character classes of §2 exactly as the RFC layers them. They are assembled
// by constant concatenation so each production reads like its ABNF rule.

// RFC-3986 §2.1
// pct-encoded = "%" HEXDIG HEXDIG
const pctEncoded = `%[0-9A-Fa-f][0-9A-Fa-f]`

// RFC-3986 §2.2
// sub-delims = "!" / "$" / "&" / "'" / "(" / ")" / "*" / "+" / "," / ";" / "="
const subDelims = `[!$&'()*+,;=]`

// RFC-3986 §2.3
// unreserved = ALPHA / DIGIT / "-" / "." / "_" / "~"
const unreserved = `[A-Za-z0-9._~-]`

// RFC-3986 §3.1
// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
const schemePattern = `[a-zA-Z][a-zA-Z0-9+.-]*`

// RFC-3986 §3.2.1
// userinfo = *( unreserved / pct-encoded / sub-delims / ":" )
const userInfoPattern = `(?:` + unreserved + `|` + pctEncoded + `|` + subDelims + `|:)*`

// RFC-3986 §3.2.2
// reg-name    = *( unreserved / pct-encoded / sub-delims )
// dec-octet   = DIGIT / %x31-39 DIGIT / "1" 2DIGIT / "2" %x30-34 DIGIT / "25" %x30-35
// IPv4address = dec-octet "." dec-octet "." dec-octet "." dec-octet
const regNamePattern = `(?:` + unreserved + `|` + pctEncoded + `|` + subDelims + `)*`
const decOctet = `(?:[0-9]|[1-9][0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])`
const ipv4Pattern = decOctet + `\.` + decOctet + `\.` + decOctet + `\.` + decOctet

// h16  = 1*4HEXDIG
// ls32 = ( h16 ":" h16 ) / IPv4address
const h16 = `[0-9A-Fa-f]{1,4}`
const ls32 = `(?:` + h16 + `:` + h16 + `|` + ipv4Pattern + `)`

// IPv6address, all nine branches of the RFC alternation:
//
//	                           6( h16 ":" ) ls32
//	/                     "::" 5( h16 ":" ) ls32
//	/ [             h16 ] "::" 4( h16 ":" ) ls32
//	/ [ *1( h16 ":" ) h16 ] "::" 3( h16 ":" ) ls32
//	/ [ *2( h16 ":" ) h16 ] "::" 2( h16 ":" ) ls32
//	/ [ *3( h16 ":" ) h16 ] "::"    h16 ":"   ls32
//	/ [ *4( h16 ":" ) h16 ] "::"              ls32
//	/ [ *5( h16 ":" ) h16 ] "::"              h16
//	/ [ *6( h16 ":" ) h16 ] "::"
const ipv6Pattern = `(?:(?:` + h16 + `:){6}` + ls32 +
	`|::(?:` + h16 + `:){5}` + ls32 +
	`|(?:` + h16 + `)?::(?:` + h16 + `:){4}` + ls32 +
	`|(?:(?:` + h16 + `:){0,1}` + h16 + `)?::(?:` + h16 + `:){3}` + ls32 +
	`|(?:(?:` + h16 + `:){0,2}` + h16 + `)?::(?:` + h16 + `:){2}` + ls32 +
	`|(?:(?:` + h16 + `:){0,3}` + h16 + `)?::` + h16 + `:` + ls32 +
	`|(?:(?:` + h16 + `:){0,4}` + h16 + `)?::` + ls32 +
	`|(?:(?:` + h16 + `:){0,5}` + h16 + `)?::` + h16 +
	`|(?:(?:` + h16 + `:){0,6}` + h16 + `)?::)`

// IPvFuture = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
const ipvFuturePattern = `v[0-9A-Fa-f]+\.(?:` + unreserved + `|` + subDelims + `|:)+`

// RFC-3986 §3.2.3
// port = *DIGIT per the ABNF, but the only usable ports are 1-65535, so the
// accepted range here is 1-65535. Zero is rejected; see DefaultPort for the
// "use the scheme default" case.
const portPattern = `(?:[1-9][0-9]{0,3}|[1-5][0-9]{4}|6[0-4][0-9]{3}|65[0-4][0-9]{2}|655[0-2][0-9]|6553[0-5])`

// RFC-3986 §3.3
// pchar         = unreserved / pct-encoded / sub-delims / ":" / "@"
// segment       = *pchar
// segment-nz    = 1*pchar
// segment-nz-nc = 1*( unreserved / pct-encoded / sub-delims / "@" )
const pchar = `(?:` + unreserved + `|` + pctEncoded + `|` + subDelims + `|[:@])`
const segment = pchar + `*`
const segmentNZ = pchar + `+`
const segmentNZNC = `(?:` + unreserved + `|` + pctEncoded + `|` + subDelims + `|@)+`

// path-abempty  = *( "/" segment )
// path-absolute = "/" [ segment-nz *( "/" segment ) ]
// path-noscheme = segment-nz-nc *( "/" segment )
// path-rootless = segment-nz *( "/" segment )
// path-empty    = 0<pchar>
//
// Which shape applies depends on the surrounding URI; validation accepts the
// union (path-empty falls out of path-abempty) and the shape is classified
// separately, see classifyPath.
const pathAbEmptyPattern = `(?:/` + segment + `)*`
const pathAbsolutePattern = `/(?:` + segmentNZ + `(?:/` + segment + `)*)?`
const pathNoSchemePattern = segmentNZNC + `(?:/` + segment + `)*`
const pathRootlessPattern = segmentNZ + `(?:/` + segment + `)*`
const pathPattern = `(?:` + pathAbEmptyPattern +
	`|` + pathAbsolutePattern +
	`|` + pathNoSchemePattern +
	`|` + pathRootlessPattern + `)`

// RFC-3986 §3.4 and §3.5
// query    = *( pchar / "/" / "?" )
// fragment = *( pchar / "/" / "?" )
const queryPattern = `(?:` + pchar + `|[/?])*`
const fragmentPattern = queryPattern

// Compiled once at package init and never mutated afterwards, so they are
// safe for unsynchronized concurrent use.
var (
	schemeRegexp    = regexp.MustCompile(`^` + schemePattern + `$`)
	userInfoRegexp  = regexp.MustCompile(`^` + userInfoPattern + `$`)
	regNameRegexp   = regexp.MustCompile(`^` + regNamePattern + `$`)
	ipv4Regexp      = regexp.MustCompile(`^` + ipv4Pattern + `$`)
	ipv6HostRegexp  = regexp.MustCompile(`^\[` + ipv6Pattern + `\]$`)
	ipvFutureRegexp = regexp.MustCompile(`^\[` + ipvFuturePattern + `\]$`)
	portRegexp      = regexp.MustCompile(`^` + portPattern + `$`)
	pathRegexp      = regexp.MustCompile(`^` + pathPattern + `$`)
	queryRegexp     = regexp.MustCompile(`^` + queryPattern + `$`)
	fragmentRegexp  = regexp.MustCompile(`^` + fragmentPattern + `$`)
)
