// Package pgclient models Postgres connection configuration as validated
// whole values.
//
// The central type is Config: a complete description of how to reach a
// server and authenticate, built from validated parts (identifiers, host,
// port, TLS settings). A Config can be rendered as a connection URL, as
// PG* environment variables, as JSON, or turned into a hardened pgx
// connection pool with Connect.
//
// The package keeps a few guarantees:
//
//   - Values are constructed whole. Every field type has a Parse*
//     constructor that rejects invalid input, so holding a value means
//     holding a valid one.
//   - Decoding is conflict-checked. A URL that gives the same field
//     through two channels (authority and query parameter) is rejected,
//     never silently resolved.
//   - Encoding round-trips. ParseURLString(c.URLString()) reproduces c
//     for every valid Config; Config is comparable, so the law is
//     checkable with ==.
//   - Secure by default. A URL without sslmode, and a directly
//     constructed Config without SSLMode, both behave as verify-full.
//   - No ambient surprises. Connect refuses to run when PG* environment
//     variables would fill in fields the Config leaves absent, and an
//     absent password never falls back to a .pgpass file.
//   - Errors are log-safe. Connection failures wrap their cause in a
//     SafeError whose message never contains credentials or the DSN.
//
// Identifier types hold names, not SQL syntax: rendering an identifier
// into SQL text with proper quoting is the caller's concern.
package pgclient
