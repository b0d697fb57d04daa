package pgclient

// The canonical PG* environment variable names a Config can populate.
// This set is fixed; the env codec never emits any other name.
const (
	EnvAppName        = "PGAPPNAME"
	EnvChannelBinding = "PGCHANNELBINDING"
	EnvDatabase       = "PGDATABASE"
	EnvHost           = "PGHOST"
	EnvHostAddr       = "PGHOSTADDR"
	EnvPassword       = "PGPASSWORD"
	EnvPort           = "PGPORT"
	EnvSSLMode        = "PGSSLMODE"
	EnvSSLRootCert    = "PGSSLROOTCERT"
	EnvUser           = "PGUSER"
)

// EnvVar is one environment-variable assignment.
type EnvVar struct {
	Name  string
	Value string
}

// String returns the assignment in NAME=value form, as consumed by
// exec.Cmd.Env.
func (v EnvVar) String() string { return v.Name + "=" + v.Value }

// Env renders the Config as PG* environment variables, sorted by name.
//
// Only present fields produce entries, so a consumer can distinguish an
// absent field from an explicit value. Network endpoints put the host name
// or address in PGHOST; socket endpoints put the socket path there and
// never emit PGPORT, PGCHANNELBINDING, or PGHOSTADDR. PGSSLMODE is always
// emitted, reflecting the verify-full default. Ports are decimal; IP
// addresses use their canonical text form.
func (c Config) Env() []EnvVar {
	vars := make([]EnvVar, 0, 10)
	add := func(name, value string) {
		vars = append(vars, EnvVar{Name: name, Value: value})
	}

	if !c.ApplicationName.IsZero() {
		add(EnvAppName, c.ApplicationName.String())
	}

	switch ep := c.Endpoint.(type) {
	case NetworkEndpoint:
		if ep.ChannelBinding != "" {
			add(EnvChannelBinding, ep.ChannelBinding.String())
		}
		add(EnvDatabase, c.Database.String())
		add(EnvHost, ep.Host.String())
		if ep.HostAddr.IsValid() {
			add(EnvHostAddr, ep.HostAddr.String())
		}
		if !c.Password.IsZero() {
			add(EnvPassword, c.Password.Value())
		}
		if ep.Port != 0 {
			add(EnvPort, ep.Port.String())
		}
	case SocketEndpoint:
		add(EnvDatabase, c.Database.String())
		add(EnvHost, ep.Path)
		if !c.Password.IsZero() {
			add(EnvPassword, c.Password.Value())
		}
	}

	add(EnvSSLMode, c.sslMode().String())
	if !c.SSLRootCert.IsZero() {
		add(EnvSSLRootCert, c.SSLRootCert.String())
	}
	add(EnvUser, c.User.String())

	return vars
}
