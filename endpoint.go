package pgclient

import "net/netip"

// Endpoint is how to reach the database process: a network host/port or a
// local filesystem socket. It is a closed sum; the only implementations are
// NetworkEndpoint and SocketEndpoint, both comparable value types.
//
// Modeling the two kinds as variants (rather than optional fields on one
// flat struct) makes invalid states unrepresentable: a socket endpoint has
// no port, host address override, or channel binding to misconfigure.
type Endpoint interface {
	isEndpoint()
}

// NetworkEndpoint reaches the server over TCP.
type NetworkEndpoint struct {
	// Host names the server and is used for TLS verification.
	Host Host

	// HostAddr optionally overrides DNS resolution with a literal address
	// while Host is still used for certificate verification. The zero
	// (invalid) Addr means no override.
	HostAddr netip.Addr

	// Port is the server port; zero means the driver default.
	Port Port

	// ChannelBinding controls SCRAM channel binding; empty means the
	// driver default.
	ChannelBinding ChannelBinding
}

func (NetworkEndpoint) isEndpoint() {}

// SocketEndpoint reaches the server through a Unix-domain socket.
type SocketEndpoint struct {
	// Path is the socket directory (e.g. /var/run/postgresql) or an
	// abstract-socket name beginning with '@'.
	Path string
}

func (SocketEndpoint) isEndpoint() {}
