package pgclient

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig controls the behavior of the connection pool. The zero value
// uses the documented defaults.
type PoolConfig struct {
	// MaxConns defaults to 10.
	MaxConns int32

	// MinConns defaults to 0.
	MinConns int32

	// HealthChecksDisabled disables idle-connection health checks.
	HealthChecksDisabled bool

	// HealthCheckPeriod defaults to 30s when health checks are enabled.
	HealthCheckPeriod time.Duration

	// MaxConnLifetime defaults to 30m.
	MaxConnLifetime time.Duration

	// MaxConnIdleTime defaults to 5m.
	MaxConnIdleTime time.Duration

	// ConnectTimeout defaults to 10s.
	ConnectTimeout time.Duration
}

// Option configures Connect for advanced use cases.
type Option func(*connectOptions)

type connectOptions struct {
	pgxConfigModifier func(*pgxpool.Config)
}

// newPoolWithConfig is a package-private seam used by tests to force
// deterministic pool-construction failures without network dependencies.
var newPoolWithConfig = pgxpool.NewWithConfig

// WithPgxConfig allows low-level pgxpool configuration.
//
// The modifier runs after standard pgclient configuration is applied.
func WithPgxConfig(fn func(*pgxpool.Config)) Option {
	return func(o *connectOptions) {
		o.pgxConfigModifier = fn
	}
}

// AmbientEnvError reports that an environment variable pgx would fold into
// the connection is set while the Config leaves the corresponding field
// absent. Connecting anyway would silently use the ambient value, so the
// adapter fails instead; unset the variable or set the field.
type AmbientEnvError struct {
	Variable string
	Field    string
}

func (e *AmbientEnvError) Error() string {
	return fmt.Sprintf(
		"pgclient: environment variable %s is set but Config does not specify %s; pgx would silently adopt the ambient value, so unset %s or set the field",
		e.Variable, e.Field, e.Variable,
	)
}

// DriverUnsupportedError reports a Config field pgx offers no API for.
type DriverUnsupportedError struct {
	Field string
}

func (e *DriverUnsupportedError) Error() string {
	return fmt.Sprintf("pgclient: pgx does not support %s; remove it from the Config to connect through this adapter", e.Field)
}

// ambientFieldEnv lists variables pgx consults for fields the Config may
// leave absent. Host, user, dbname, and sslmode are always present in the
// generated URL and therefore cannot be inherited from the environment.
var ambientFieldEnv = []struct {
	variable string
	field    string
	absent   func(Config) bool
}{
	{EnvPort, "a port", func(c Config) bool {
		ep, ok := c.Endpoint.(NetworkEndpoint)
		return !ok || ep.Port == 0
	}},
	{EnvPassword, "a password", func(c Config) bool { return c.Password.IsZero() }},
	{EnvAppName, "an application name", func(c Config) bool { return c.ApplicationName.IsZero() }},
	{EnvSSLRootCert, "an ssl root certificate", func(c Config) bool { return c.SSLRootCert.IsZero() }},
}

// ambientFeatureEnv lists variables that would activate driver features the
// Config cannot express at all. Their mere presence is a conflict.
var ambientFeatureEnv = []struct {
	variable string
	field    string
}{
	{"PGSSLCERT", "a client certificate"},
	{"PGSSLKEY", "a client key"},
	{"PGOPTIONS", "server options"},
	{"PGSERVICE", "a service definition"},
	{"PGTARGETSESSIONATTRS", "target session attributes"},
}

func (c Config) checkAmbientEnv() error {
	for _, e := range ambientFeatureEnv {
		if _, ok := os.LookupEnv(e.variable); ok {
			return &AmbientEnvError{Variable: e.variable, Field: e.field}
		}
	}
	for _, e := range ambientFieldEnv {
		if _, ok := os.LookupEnv(e.variable); ok && e.absent(c) {
			return &AmbientEnvError{Variable: e.variable, Field: e.field}
		}
	}
	return nil
}

func (c Config) checkDriverSupport() error {
	if ep, ok := c.Endpoint.(NetworkEndpoint); ok {
		if ep.ChannelBinding != "" {
			return &DriverUnsupportedError{Field: "channel_binding"}
		}
		if ep.HostAddr.IsValid() {
			return &DriverUnsupportedError{Field: "hostaddr"}
		}
	}
	return nil
}

// ConnConfig builds single-connection pgx options from the Config.
//
// Every Config field is either expressed through pgx or rejected: fields
// pgx has no API for (channel_binding, hostaddr) return a
// DriverUnsupportedError, and ambient PG* variables that would fill an
// absent field return an AmbientEnvError rather than connecting with a
// value the Config never specified. An absent password also never inherits
// one from a .pgpass file.
func (c Config) ConnConfig() (*pgx.ConnConfig, error) {
	if err := c.checkDriverSupport(); err != nil {
		return nil, err
	}
	if err := c.checkAmbientEnv(); err != nil {
		return nil, err
	}

	connCfg, err := pgx.ParseConfig(c.URLString())
	if err != nil {
		// SECURITY: parse errors from upstream may contain DSN content.
		// Keep the outer error message sanitized.
		return nil, &SafeError{
			msg:   fmt.Sprintf("pgclient: driver rejected generated URL (%s)", c.endpointDescription()),
			cause: err,
		}
	}
	if c.Password.IsZero() {
		connCfg.Password = ""
	}
	return connCfg, nil
}

// Connect creates a hardened connection pool for the Config.
//
// The same ambient-environment and driver-support policy as ConnConfig
// applies. Pool knobs left zero in PoolConfig take the documented defaults,
// and the pool is pinged once before being returned.
func Connect(ctx context.Context, cfg Config, pool PoolConfig, opts ...Option) (*Pool, error) {
	if cfg.Endpoint == nil {
		return nil, &SafeError{msg: "pgclient: Config.Endpoint is required"}
	}
	if err := cfg.checkDriverSupport(); err != nil {
		return nil, err
	}
	if err := cfg.checkAmbientEnv(); err != nil {
		return nil, err
	}

	pgxCfg, err := pgxpool.ParseConfig(cfg.URLString())
	if err != nil {
		return nil, &SafeError{
			msg:   fmt.Sprintf("pgclient: driver rejected generated URL (%s)", cfg.endpointDescription()),
			cause: err,
		}
	}
	if cfg.Password.IsZero() {
		pgxCfg.ConnConfig.Password = ""
	}

	if pool.MaxConns > 0 {
		pgxCfg.MaxConns = pool.MaxConns
	} else {
		pgxCfg.MaxConns = 10
	}
	pgxCfg.MinConns = pool.MinConns

	if pool.HealthChecksDisabled {
		pgxCfg.HealthCheckPeriod = 0
	} else if pool.HealthCheckPeriod > 0 {
		pgxCfg.HealthCheckPeriod = pool.HealthCheckPeriod
	} else {
		pgxCfg.HealthCheckPeriod = 30 * time.Second
	}

	if pool.MaxConnLifetime > 0 {
		pgxCfg.MaxConnLifetime = pool.MaxConnLifetime
	} else {
		pgxCfg.MaxConnLifetime = 30 * time.Minute
	}

	if pool.MaxConnIdleTime > 0 {
		pgxCfg.MaxConnIdleTime = pool.MaxConnIdleTime
	} else {
		pgxCfg.MaxConnIdleTime = 5 * time.Minute
	}

	if pool.ConnectTimeout > 0 {
		pgxCfg.ConnConfig.ConnectTimeout = pool.ConnectTimeout
	} else {
		pgxCfg.ConnConfig.ConnectTimeout = 10 * time.Second
	}

	var o connectOptions
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}
	if o.pgxConfigModifier != nil {
		o.pgxConfigModifier(pgxCfg)
	}

	p, err := newPoolWithConfig(ctx, pgxCfg)
	if err != nil {
		// SECURITY: cause may include sensitive details; keep outer error safe.
		return nil, &SafeError{
			msg:   fmt.Sprintf("pgclient: failed to create pool (%s)", cfg.endpointDescription()),
			cause: err,
		}
	}

	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, &SafeError{
			msg:   fmt.Sprintf("pgclient: initial ping failed (%s)", cfg.endpointDescription()),
			cause: err,
		}
	}

	return &Pool{pool: p, config: cfg}, nil
}

// endpointDescription is safe error context: it names where we tried to
// connect without reproducing credentials or the full DSN.
func (c Config) endpointDescription() string {
	switch ep := c.Endpoint.(type) {
	case NetworkEndpoint:
		if ep.Port != 0 {
			return fmt.Sprintf("host=%s port=%s", ep.Host, ep.Port)
		}
		return fmt.Sprintf("host=%s", ep.Host)
	case SocketEndpoint:
		return fmt.Sprintf("socket=%s", ep.Path)
	default:
		return "endpoint unset"
	}
}
