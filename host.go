package pgclient

import (
	"errors"
	"net/netip"
	"strconv"
	"strings"
)

// Hostname validation errors.
var (
	ErrHostnameEmpty        = errors.New("hostname cannot be empty")
	ErrHostnameTooLong      = errors.New("hostname exceeds 253 bytes")
	ErrHostnameInvalidLabel = errors.New("hostname label must be 1-63 alphanumeric or hyphen characters and cannot start or end with a hyphen")
	ErrNotHostOrAddress     = errors.New("not an IP address or valid hostname")
)

// HostName is a validated DNS hostname (RFC 1123: dot-separated labels of
// letters, digits, and interior hyphens).
type HostName struct {
	value string
}

// ParseHostName validates input as a hostname. A single trailing dot
// (fully-qualified form) is accepted.
func ParseHostName(input string) (HostName, error) {
	if input == "" {
		return HostName{}, ErrHostnameEmpty
	}
	if len(input) > 253 {
		return HostName{}, ErrHostnameTooLong
	}
	labels := strings.TrimSuffix(input, ".")
	if labels == "" {
		return HostName{}, ErrHostnameInvalidLabel
	}
	for _, label := range strings.Split(labels, ".") {
		if !validHostLabel(label) {
			return HostName{}, ErrHostnameInvalidLabel
		}
	}
	return HostName{value: input}, nil
}

func validHostLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

// String returns the hostname.
func (h HostName) String() string { return h.value }

// IsZero reports whether the hostname is the zero value.
func (h HostName) IsZero() bool { return h.value == "" }

// Host is how a network endpoint names the server: either a DNS hostname or
// a literal IP address. Exactly one of the two is set.
type Host struct {
	name HostName
	addr netip.Addr
}

// HostFromName wraps a hostname as a Host.
func HostFromName(name HostName) Host { return Host{name: name} }

// HostFromAddr wraps an IP address as a Host.
func HostFromAddr(addr netip.Addr) Host { return Host{addr: addr} }

// ParseHost interprets input as an IP address first, then as a hostname.
func ParseHost(input string) (Host, error) {
	if addr, err := netip.ParseAddr(input); err == nil {
		return HostFromAddr(addr), nil
	}
	name, err := ParseHostName(input)
	if err != nil {
		return Host{}, ErrNotHostOrAddress
	}
	return HostFromName(name), nil
}

// IsIP reports whether the host is an IP address.
func (h Host) IsIP() bool { return h.addr.IsValid() }

// Addr returns the IP address and whether the host is one.
func (h Host) Addr() (netip.Addr, bool) { return h.addr, h.addr.IsValid() }

// Name returns the hostname and whether the host is one.
func (h Host) Name() (HostName, bool) { return h.name, !h.name.IsZero() }

// String returns the hostname, or the canonical text form of the IP
// address. IPv6 addresses are not bracketed here; URL encoding adds
// brackets where the authority syntax requires them.
func (h Host) String() string {
	if h.addr.IsValid() {
		return h.addr.String()
	}
	return h.name.value
}

// Port is a TCP port. The zero value means "unspecified": the driver's
// default applies. Port 0 is not addressable, so no information is lost.
type Port uint16

// ErrInvalidPort is returned for port text outside 1-65535.
var ErrInvalidPort = errors.New("port must be a decimal number between 1 and 65535")

// ParsePort parses a decimal port number.
func ParsePort(input string) (Port, error) {
	n, err := strconv.ParseUint(input, 10, 16)
	if err != nil || n == 0 {
		return 0, ErrInvalidPort
	}
	return Port(n), nil
}

// String returns the decimal form of the port.
func (p Port) String() string { return strconv.FormatUint(uint64(p), 10) }
