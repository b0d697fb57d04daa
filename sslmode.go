package pgclient

import "errors"

// SSLMode is the libpq sslmode setting.
type SSLMode string

// Supported sslmode values.
const (
	SSLModeAllow      SSLMode = "allow"
	SSLModeDisable    SSLMode = "disable"
	SSLModePrefer     SSLMode = "prefer"
	SSLModeRequire    SSLMode = "require"
	SSLModeVerifyCA   SSLMode = "verify-ca"
	SSLModeVerifyFull SSLMode = "verify-full"
)

// ErrUnknownSSLMode is returned for sslmode text outside the supported set.
var ErrUnknownSSLMode = errors.New("sslmode must be one of allow, disable, prefer, require, verify-ca, verify-full")

// ParseSSLMode validates input as an sslmode value.
func ParseSSLMode(input string) (SSLMode, error) {
	switch mode := SSLMode(input); mode {
	case SSLModeAllow, SSLModeDisable, SSLModePrefer, SSLModeRequire,
		SSLModeVerifyCA, SSLModeVerifyFull:
		return mode, nil
	}
	return "", ErrUnknownSSLMode
}

// String returns the wire form of the mode.
func (m SSLMode) String() string { return string(m) }

// ChannelBinding is the libpq channel_binding setting: whether a
// TLS-derived value is bound into the authentication exchange to resist
// relay attacks. The empty string means unspecified.
type ChannelBinding string

// Supported channel_binding values.
const (
	ChannelBindingDisable ChannelBinding = "disable"
	ChannelBindingPrefer  ChannelBinding = "prefer"
	ChannelBindingRequire ChannelBinding = "require"
)

// ErrUnknownChannelBinding is returned for channel_binding text outside the
// supported set.
var ErrUnknownChannelBinding = errors.New("channel_binding must be one of disable, prefer, require")

// ParseChannelBinding validates input as a channel_binding value.
func ParseChannelBinding(input string) (ChannelBinding, error) {
	switch binding := ChannelBinding(input); binding {
	case ChannelBindingDisable, ChannelBindingPrefer, ChannelBindingRequire:
		return binding, nil
	}
	return "", ErrUnknownChannelBinding
}

// String returns the wire form of the binding.
func (b ChannelBinding) String() string { return string(b) }

// SSLRootCert names the certificate authority used to verify the server:
// either a certificate file or the operating system trust store. The zero
// value means unspecified.
type SSLRootCert struct {
	path   string
	system bool
}

// SSLRootCertFile refers to a CA certificate file. The path is stored
// verbatim; existence is not checked.
func SSLRootCertFile(path string) SSLRootCert { return SSLRootCert{path: path} }

// SSLRootCertSystem refers to the operating system trust store.
func SSLRootCertSystem() SSLRootCert { return SSLRootCert{system: true} }

// IsZero reports whether no root certificate source is set.
func (c SSLRootCert) IsZero() bool { return !c.system && c.path == "" }

// IsSystem reports whether the system trust store is selected.
func (c SSLRootCert) IsSystem() bool { return c.system }

// Path returns the certificate file path and whether a file is selected.
func (c SSLRootCert) Path() (string, bool) { return c.path, !c.system && c.path != "" }

// String returns the wire form: the literal "system" or the file path.
func (c SSLRootCert) String() string {
	if c.system {
		return "system"
	}
	return c.path
}
