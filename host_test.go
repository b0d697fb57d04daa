package pgclient_test

import (
	"errors"
	"net/netip"
	"strings"
	"testing"

	pgclient "github.com/vango-go/vango-pgclient"
)

func TestParseHostNameValid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"localhost",
		"db.example.com",
		"db.example.com.", // fully qualified
		"my-host",
		"0db",
		"xn--nxasmq6b.example", // punycode label
		strings.Repeat("a", 63) + ".example",
	} {
		name, err := pgclient.ParseHostName(input)
		if err != nil {
			t.Fatalf("ParseHostName(%q) failed: %v", input, err)
		}
		if got := name.String(); got != input {
			t.Fatalf("ParseHostName(%q).String() = %q", input, got)
		}
	}
}

func TestParseHostNameInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", pgclient.ErrHostnameEmpty},
		{"only dot", ".", pgclient.ErrHostnameInvalidLabel},
		{"empty label", "db..example.com", pgclient.ErrHostnameInvalidLabel},
		{"leading hyphen", "-db.example.com", pgclient.ErrHostnameInvalidLabel},
		{"trailing hyphen", "db-.example.com", pgclient.ErrHostnameInvalidLabel},
		{"underscore", "db_1.example.com", pgclient.ErrHostnameInvalidLabel},
		{"label too long", strings.Repeat("a", 64) + ".example", pgclient.ErrHostnameInvalidLabel},
		{"name too long", strings.Repeat("a.", 127) + "example", pgclient.ErrHostnameTooLong},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := pgclient.ParseHostName(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ParseHostName(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestParseHostPrefersAddress(t *testing.T) {
	t.Parallel()

	host, err := pgclient.ParseHost("192.168.0.1")
	if err != nil {
		t.Fatalf("ParseHost failed: %v", err)
	}
	if !host.IsIP() {
		t.Fatal("IPv4 literal not recognized as address")
	}
	addr, ok := host.Addr()
	if !ok || addr != netip.MustParseAddr("192.168.0.1") {
		t.Fatalf("Addr() = %v, %v", addr, ok)
	}
	if _, ok := host.Name(); ok {
		t.Fatal("address host also reported a name")
	}
}

func TestParseHostIPv6(t *testing.T) {
	t.Parallel()

	host, err := pgclient.ParseHost("2001:db8::1")
	if err != nil {
		t.Fatalf("ParseHost failed: %v", err)
	}
	if !host.IsIP() {
		t.Fatal("IPv6 literal not recognized as address")
	}
	// Unbracketed canonical form; bracketing belongs to URL syntax.
	if got := host.String(); got != "2001:db8::1" {
		t.Fatalf("String() = %q", got)
	}
}

func TestParseHostName(t *testing.T) {
	t.Parallel()

	host, err := pgclient.ParseHost("db.example.com")
	if err != nil {
		t.Fatalf("ParseHost failed: %v", err)
	}
	if host.IsIP() {
		t.Fatal("hostname reported as address")
	}
	name, ok := host.Name()
	if !ok || name.String() != "db.example.com" {
		t.Fatalf("Name() = %v, %v", name, ok)
	}
}

func TestParseHostRejectsJunk(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "a b", "db..example", "-bad-"} {
		if _, err := pgclient.ParseHost(input); !errors.Is(err, pgclient.ErrNotHostOrAddress) {
			t.Fatalf("ParseHost(%q) error = %v, want ErrNotHostOrAddress", input, err)
		}
	}
}

func TestParsePort(t *testing.T) {
	t.Parallel()

	valid := map[string]pgclient.Port{
		"1":     1,
		"5432":  5432,
		"65535": 65535,
	}
	for input, want := range valid {
		got, err := pgclient.ParsePort(input)
		if err != nil {
			t.Fatalf("ParsePort(%q) failed: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParsePort(%q) = %d, want %d", input, got, want)
		}
	}

	for _, input := range []string{"", "0", "65536", "-1", "port", "54 32", "0x1f90"} {
		if _, err := pgclient.ParsePort(input); !errors.Is(err, pgclient.ErrInvalidPort) {
			t.Fatalf("ParsePort(%q) error = %v, want ErrInvalidPort", input, err)
		}
	}
}

func TestPortString(t *testing.T) {
	t.Parallel()

	if got := pgclient.Port(5432).String(); got != "5432" {
		t.Fatalf("Port(5432).String() = %q", got)
	}
}
