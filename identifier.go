package pgclient

import (
	"errors"
	"fmt"
	"strings"
)

// MaxIdentifierLength is the maximum length of a Postgres identifier in
// bytes (NAMEDATALEN - 1).
const MaxIdentifierLength = 63

// Identifier validation errors. The set is closed: every identifier
// rejection matches exactly one of these via errors.Is.
var (
	ErrEmptyIdentifier       = errors.New("identifier cannot be empty")
	ErrIdentifierTooLong     = errors.New("identifier exceeds maximum length")
	ErrIdentifierContainsNul = errors.New("identifier cannot contain NUL bytes")
)

func validateIdentifier(input string) error {
	if input == "" {
		return ErrEmptyIdentifier
	}
	if len(input) > MaxIdentifierLength {
		return ErrIdentifierTooLong
	}
	if strings.IndexByte(input, 0) >= 0 {
		return ErrIdentifierContainsNul
	}
	return nil
}

// ident is the shared core behind every identifier type. It holds the
// identifier value, not SQL syntax: a table named `my table` is stored as
// the string `my table`, never as `"my table"`. Callers that interpolate
// identifiers into SQL text must quote separately.
type ident struct {
	value string
}

func parseIdent(input string) (ident, error) {
	if err := validateIdentifier(input); err != nil {
		return ident{}, err
	}
	return ident{value: input}, nil
}

// mustIdent backs the Must* constructors for fixed well-known values.
func mustIdent(input string) ident {
	id, err := parseIdent(input)
	if err != nil {
		panic(fmt.Sprintf("pgclient: invalid identifier %q: %v", input, err))
	}
	return id
}

// String returns the identifier value verbatim, without SQL quoting.
func (i ident) String() string { return i.value }

// IsZero reports whether the identifier is the zero value. A parsed
// identifier is never zero (empty input is rejected).
func (i ident) IsZero() bool { return i.value == "" }

// MarshalText implements encoding.TextMarshaler.
func (i ident) MarshalText() ([]byte, error) { return []byte(i.value), nil }

// Database is a validated Postgres database name.
type Database struct{ ident }

// ParseDatabase validates input as a database name.
func ParseDatabase(input string) (Database, error) {
	id, err := parseIdent(input)
	return Database{id}, err
}

// MustDatabase is ParseDatabase for known-constant values. It panics on the
// same violations ParseDatabase reports.
func MustDatabase(input string) Database { return Database{mustIdent(input)} }

// DatabasePostgres is the default `postgres` database.
var DatabasePostgres = MustDatabase("postgres")

// Role is a validated Postgres role name. Roles with the LOGIN attribute
// are typically called users.
type Role struct{ ident }

// User is a role with the LOGIN attribute.
type User = Role

// ParseRole validates input as a role name.
func ParseRole(input string) (Role, error) {
	id, err := parseIdent(input)
	return Role{id}, err
}

// MustRole is ParseRole for known-constant values. It panics on invalid input.
func MustRole(input string) Role { return Role{mustIdent(input)} }

// RolePostgres is the default `postgres` superuser role.
var RolePostgres = MustRole("postgres")

// Table is a validated Postgres table name.
type Table struct{ ident }

// ParseTable validates input as a table name.
func ParseTable(input string) (Table, error) {
	id, err := parseIdent(input)
	return Table{id}, err
}

// MustTable is ParseTable for known-constant values. It panics on invalid input.
func MustTable(input string) Table { return Table{mustIdent(input)} }

// Relation returns the table as a queryable relation.
func (t Table) Relation() Relation { return Relation{t.ident} }

// Schema is a validated Postgres schema name.
type Schema struct{ ident }

// ParseSchema validates input as a schema name.
func ParseSchema(input string) (Schema, error) {
	id, err := parseIdent(input)
	return Schema{id}, err
}

// MustSchema is ParseSchema for known-constant values. It panics on invalid input.
func MustSchema(input string) Schema { return Schema{mustIdent(input)} }

// SchemaPublic is the default `public` schema.
var SchemaPublic = MustSchema("public")

// Column is a validated Postgres column name.
type Column struct{ ident }

// ParseColumn validates input as a column name.
func ParseColumn(input string) (Column, error) {
	id, err := parseIdent(input)
	return Column{id}, err
}

// MustColumn is ParseColumn for known-constant values. It panics on invalid input.
func MustColumn(input string) Column { return Column{mustIdent(input)} }

// Index is a validated Postgres index name.
type Index struct{ ident }

// ParseIndex validates input as an index name.
func ParseIndex(input string) (Index, error) {
	id, err := parseIdent(input)
	return Index{id}, err
}

// MustIndex is ParseIndex for known-constant values. It panics on invalid input.
func MustIndex(input string) Index { return Index{mustIdent(input)} }

// Constraint is a validated Postgres constraint name. Covers PRIMARY KEY,
// FOREIGN KEY, CHECK, UNIQUE, and EXCLUSION constraints.
type Constraint struct{ ident }

// ParseConstraint validates input as a constraint name.
func ParseConstraint(input string) (Constraint, error) {
	id, err := parseIdent(input)
	return Constraint{id}, err
}

// MustConstraint is ParseConstraint for known-constant values. It panics on invalid input.
func MustConstraint(input string) Constraint { return Constraint{mustIdent(input)} }

// Sequence is a validated Postgres sequence name.
type Sequence struct{ ident }

// ParseSequence validates input as a sequence name.
func ParseSequence(input string) (Sequence, error) {
	id, err := parseIdent(input)
	return Sequence{id}, err
}

// MustSequence is ParseSequence for known-constant values. It panics on invalid input.
func MustSequence(input string) Sequence { return Sequence{mustIdent(input)} }

// View is a validated Postgres view name.
type View struct{ ident }

// ParseView validates input as a view name.
func ParseView(input string) (View, error) {
	id, err := parseIdent(input)
	return View{id}, err
}

// MustView is ParseView for known-constant values. It panics on invalid input.
func MustView(input string) View { return View{mustIdent(input)} }

// Relation returns the view as a queryable relation.
func (v View) Relation() Relation { return Relation{v.ident} }

// MaterializedView is a validated Postgres materialized view name.
type MaterializedView struct{ ident }

// ParseMaterializedView validates input as a materialized view name.
func ParseMaterializedView(input string) (MaterializedView, error) {
	id, err := parseIdent(input)
	return MaterializedView{id}, err
}

// MustMaterializedView is ParseMaterializedView for known-constant values.
// It panics on invalid input.
func MustMaterializedView(input string) MaterializedView {
	return MaterializedView{mustIdent(input)}
}

// Relation returns the materialized view as a queryable relation.
func (m MaterializedView) Relation() Relation { return Relation{m.ident} }

// Relation is a validated name of something queryable: a table, a view, or
// a materialized view. Use it when an operation accepts any of the three
// (e.g. SELECT targets). There is no other cross-type coercion between
// identifier types.
type Relation struct{ ident }

// ParseRelation validates input as a relation name.
func ParseRelation(input string) (Relation, error) {
	id, err := parseIdent(input)
	return Relation{id}, err
}

// MustRelation is ParseRelation for known-constant values. It panics on invalid input.
func MustRelation(input string) Relation { return Relation{mustIdent(input)} }

// Function is a validated Postgres function or procedure name.
type Function struct{ ident }

// ParseFunction validates input as a function name.
func ParseFunction(input string) (Function, error) {
	id, err := parseIdent(input)
	return Function{id}, err
}

// MustFunction is ParseFunction for known-constant values. It panics on invalid input.
func MustFunction(input string) Function { return Function{mustIdent(input)} }

// Trigger is a validated Postgres trigger name.
type Trigger struct{ ident }

// ParseTrigger validates input as a trigger name.
func ParseTrigger(input string) (Trigger, error) {
	id, err := parseIdent(input)
	return Trigger{id}, err
}

// MustTrigger is ParseTrigger for known-constant values. It panics on invalid input.
func MustTrigger(input string) Trigger { return Trigger{mustIdent(input)} }

// Extension is a validated Postgres extension name.
type Extension struct{ ident }

// ParseExtension validates input as an extension name.
func ParseExtension(input string) (Extension, error) {
	id, err := parseIdent(input)
	return Extension{id}, err
}

// MustExtension is ParseExtension for known-constant values. It panics on invalid input.
func MustExtension(input string) Extension { return Extension{mustIdent(input)} }
