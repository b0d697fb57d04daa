package pgclient

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ApplicationName length bounds in bytes.
const (
	MinApplicationNameLength = 1
	MaxApplicationNameLength = 63
)

// ApplicationName is the application_name reported to the server. The zero
// value means unspecified.
type ApplicationName struct {
	value string
}

// ParseApplicationName validates input as an application name.
func ParseApplicationName(input string) (ApplicationName, error) {
	if len(input) < MinApplicationNameLength {
		return ApplicationName{}, fmt.Errorf("application name must be at least %d byte, got %d", MinApplicationNameLength, len(input))
	}
	if len(input) > MaxApplicationNameLength {
		return ApplicationName{}, fmt.Errorf("application name must be at most %d bytes, got %d", MaxApplicationNameLength, len(input))
	}
	if strings.IndexByte(input, 0) >= 0 {
		return ApplicationName{}, fmt.Errorf("application name cannot contain NUL bytes")
	}
	return ApplicationName{value: input}, nil
}

// String returns the application name.
func (a ApplicationName) String() string { return a.value }

// IsZero reports whether no application name is set.
func (a ApplicationName) IsZero() bool { return a.value == "" }

// MaxPasswordLength is the maximum password length in bytes.
const MaxPasswordLength = 4096

// Password is a connection password. The zero value means "no password",
// which is distinct from an explicitly empty password.
type Password struct {
	value string
	set   bool
}

// ParsePassword validates input as a password. The empty string is a valid
// (present) password.
func ParsePassword(input string) (Password, error) {
	if len(input) > MaxPasswordLength {
		return Password{}, fmt.Errorf("password must be at most %d bytes, got %d", MaxPasswordLength, len(input))
	}
	if strings.IndexByte(input, 0) >= 0 {
		return Password{}, fmt.Errorf("password cannot contain NUL bytes")
	}
	return Password{value: input, set: true}, nil
}

// Value returns the password text. Callers are responsible for keeping it
// out of logs.
func (p Password) Value() string { return p.value }

// IsZero reports whether no password is set.
func (p Password) IsZero() bool { return !p.set }

// String returns a redacted placeholder so Password values are safe to
// format with %v/%s by default. Use Value for the secret itself.
func (p Password) String() string {
	if !p.set {
		return ""
	}
	return "<redacted>"
}

// Config is a complete Postgres connection configuration with several
// presentation modes:
//
//  1. Connection URL via URLString/URL (decode with ParseURLString)
//  2. PG* environment variables via Env
//  3. pgx connect options via ConnConfig and Connect
//  4. JSON document via MarshalJSON
//  5. Individual field access
//
// Config has value semantics: it is produced whole by ParseURL, direct
// construction, or Default, and changing a field yields a new value. All
// fields hold comparable validated types, so two Configs can be compared
// with ==.
type Config struct {
	// ApplicationName is reported to the server; zero means unset.
	ApplicationName ApplicationName

	// Database is the database to connect to.
	Database Database

	// Endpoint is a NetworkEndpoint or SocketEndpoint.
	Endpoint Endpoint

	// Password is the credential for User; zero means none.
	Password Password

	// SSLMode controls transport security. The zero value behaves as
	// verify-full everywhere the Config is consumed.
	SSLMode SSLMode

	// SSLRootCert selects the CA used to verify the server; zero means
	// the driver default.
	SSLRootCert SSLRootCert

	// User is the role to authenticate as.
	User User
}

// Default returns a configuration for the conventional local server: the
// postgres database and role on localhost with verify-full security.
func Default() Config {
	return Config{
		Database: DatabasePostgres,
		Endpoint: NetworkEndpoint{Host: HostFromName(HostName{value: "localhost"})},
		SSLMode:  SSLModeVerifyFull,
		User:     RolePostgres,
	}
}

// WithEndpoint returns a copy of the Config with the endpoint replaced.
func (c Config) WithEndpoint(endpoint Endpoint) Config {
	c.Endpoint = endpoint
	return c
}

// WithPassword returns a copy of the Config with the password replaced.
func (c Config) WithPassword(password Password) Config {
	c.Password = password
	return c
}

// sslMode resolves the secure default for directly constructed Configs.
func (c Config) sslMode() SSLMode {
	if c.SSLMode == "" {
		return SSLModeVerifyFull
	}
	return c.SSLMode
}

type endpointJSON struct {
	Host           string `json:"host,omitempty"`
	ChannelBinding string `json:"channel_binding,omitempty"`
	HostAddr       string `json:"host_addr,omitempty"`
	Port           uint16 `json:"port,omitempty"`
	SocketPath     string `json:"socket_path,omitempty"`
}

// MarshalJSON renders the Config as a JSON document. Optional fields are
// omitted when absent; the derived connection URL is included. The password
// is emitted in plaintext, as in the URL form: the JSON presentation is a
// faithful serialization, not a log format.
func (c Config) MarshalJSON() ([]byte, error) {
	var endpoint endpointJSON
	switch ep := c.Endpoint.(type) {
	case NetworkEndpoint:
		endpoint.Host = ep.Host.String()
		endpoint.ChannelBinding = string(ep.ChannelBinding)
		if ep.HostAddr.IsValid() {
			endpoint.HostAddr = ep.HostAddr.String()
		}
		endpoint.Port = uint16(ep.Port)
	case SocketEndpoint:
		endpoint.SocketPath = ep.Path
	default:
		return nil, fmt.Errorf("pgclient: cannot marshal Config with endpoint %T", c.Endpoint)
	}

	var rootCert any
	switch {
	case c.SSLRootCert.IsZero():
	case c.SSLRootCert.IsSystem():
		rootCert = "system"
	default:
		path, _ := c.SSLRootCert.Path()
		rootCert = struct {
			File string `json:"file"`
		}{File: path}
	}

	var password string
	if !c.Password.IsZero() {
		password = c.Password.Value()
	}

	return json.Marshal(struct {
		ApplicationName string       `json:"application_name,omitempty"`
		Database        string       `json:"database"`
		Endpoint        endpointJSON `json:"endpoint"`
		Password        string       `json:"password,omitempty"`
		SSLMode         SSLMode      `json:"ssl_mode"`
		SSLRootCert     any          `json:"ssl_root_cert,omitempty"`
		User            string       `json:"user"`
		URL             string       `json:"url"`
	}{
		ApplicationName: c.ApplicationName.String(),
		Database:        c.Database.String(),
		Endpoint:        endpoint,
		Password:        password,
		SSLMode:         c.sslMode(),
		SSLRootCert:     rootCert,
		User:            c.User.String(),
		URL:             c.URLString(),
	})
}
