package pgclient

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestTestDB_UnsetMethodsReturnErrNotMocked(t *testing.T) {
	t.Parallel()

	db := &TestDB{}

	tag, err := db.Exec(context.Background(), "UPDATE x SET y=1")
	if !errors.Is(err, ErrNotMocked) {
		t.Fatalf("Exec error=%v, want %v", err, ErrNotMocked)
	}
	if tag.String() != "" {
		t.Fatalf("Exec tag=%q, want empty", tag.String())
	}

	rows, err := db.Query(context.Background(), "SELECT 1")
	if !errors.Is(err, ErrNotMocked) {
		t.Fatalf("Query error=%v, want %v", err, ErrNotMocked)
	}
	if rows == nil {
		t.Fatal("Query returned nil rows")
	}
	if !errors.Is(rows.Err(), ErrNotMocked) {
		t.Fatalf("rows.Err()=%v, want %v", rows.Err(), ErrNotMocked)
	}
	if scanErr := rows.Scan(new(any)); !errors.Is(scanErr, ErrNotMocked) {
		t.Fatalf("rows.Scan error=%v, want %v", scanErr, ErrNotMocked)
	}

	row := db.QueryRow(context.Background(), "SELECT 1")
	if row == nil {
		t.Fatal("QueryRow returned nil")
	}
	if err := row.Scan(new(any)); !errors.Is(err, ErrNotMocked) {
		t.Fatalf("QueryRow.Scan error=%v, want %v", err, ErrNotMocked)
	}

	tx, err := db.Begin(context.Background())
	if tx != nil {
		t.Fatal("Begin returned non-nil tx")
	}
	if !errors.Is(err, ErrNotMocked) {
		t.Fatalf("Begin error=%v, want %v", err, ErrNotMocked)
	}

	tx, err = db.BeginTx(context.Background(), pgx.TxOptions{})
	if tx != nil {
		t.Fatal("BeginTx returned non-nil tx")
	}
	if !errors.Is(err, ErrNotMocked) {
		t.Fatalf("BeginTx error=%v, want %v", err, ErrNotMocked)
	}

	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping error=%v, want nil", err)
	}

	db.Close()
}

func TestTestDB_UsesConfiguredFuncs(t *testing.T) {
	t.Parallel()

	wantTag := pgconn.NewCommandTag("INSERT 0 1")
	wantRows := &ErrRows{ErrValue: errors.New("rows sentinel")}
	wantRow := &ErrRow{Err: errors.New("row sentinel")}
	wantTx := &txStub{}
	pingErr := errors.New("ping boom")

	calledExec := false
	calledQuery := false
	calledQueryRow := false
	calledBegin := false
	calledBeginTx := false
	calledPing := false
	calledClose := false

	db := &TestDB{
		ExecFunc: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			calledExec = true
			if sql != "exec-sql" {
				t.Fatalf("Exec sql=%q, want %q", sql, "exec-sql")
			}
			if len(args) != 1 || args[0] != 7 {
				t.Fatalf("Exec args=%v, want [7]", args)
			}
			return wantTag, nil
		},
		QueryFunc: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			calledQuery = true
			if sql != "query-sql" {
				t.Fatalf("Query sql=%q, want %q", sql, "query-sql")
			}
			if len(args) != 1 || args[0] != "arg" {
				t.Fatalf("Query args=%v, want [arg]", args)
			}
			return wantRows, nil
		},
		QueryRowFunc: func(ctx context.Context, sql string, args ...any) pgx.Row {
			calledQueryRow = true
			if sql != "queryrow-sql" {
				t.Fatalf("QueryRow sql=%q, want %q", sql, "queryrow-sql")
			}
			if len(args) != 1 || args[0] != true {
				t.Fatalf("QueryRow args=%v, want [true]", args)
			}
			return wantRow
		},
		BeginFunc: func(ctx context.Context) (pgx.Tx, error) {
			calledBegin = true
			return wantTx, nil
		},
		BeginTxFunc: func(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
			calledBeginTx = true
			if opts.IsoLevel != pgx.Serializable {
				t.Fatalf("BeginTx IsoLevel=%v, want %v", opts.IsoLevel, pgx.Serializable)
			}
			return wantTx, nil
		},
		PingFunc: func(ctx context.Context) error {
			calledPing = true
			return pingErr
		},
		CloseFunc: func() {
			calledClose = true
		},
	}

	tag, err := db.Exec(context.Background(), "exec-sql", 7)
	if err != nil {
		t.Fatalf("Exec error=%v", err)
	}
	if tag.String() != wantTag.String() {
		t.Fatalf("Exec tag=%q, want %q", tag.String(), wantTag.String())
	}

	rows, err := db.Query(context.Background(), "query-sql", "arg")
	if err != nil {
		t.Fatalf("Query error=%v", err)
	}
	if rows != pgx.Rows(wantRows) {
		t.Fatal("Query returned unexpected rows instance")
	}

	row := db.QueryRow(context.Background(), "queryrow-sql", true)
	if row != pgx.Row(wantRow) {
		t.Fatal("QueryRow returned unexpected row instance")
	}

	tx, err := db.Begin(context.Background())
	if err != nil {
		t.Fatalf("Begin error=%v", err)
	}
	if tx != pgx.Tx(wantTx) {
		t.Fatal("Begin returned unexpected tx")
	}

	tx, err = db.BeginTx(context.Background(), pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		t.Fatalf("BeginTx error=%v", err)
	}
	if tx != pgx.Tx(wantTx) {
		t.Fatal("BeginTx returned unexpected tx")
	}

	err = db.Ping(context.Background())
	if !errors.Is(err, pingErr) {
		t.Fatalf("Ping error=%v, want %v", err, pingErr)
	}

	db.Close()

	if !calledExec || !calledQuery || !calledQueryRow || !calledBegin || !calledBeginTx || !calledPing || !calledClose {
		t.Fatalf("expected all configured funcs to be called, got exec=%v query=%v queryRow=%v begin=%v beginTx=%v ping=%v close=%v",
			calledExec, calledQuery, calledQueryRow, calledBegin, calledBeginTx, calledPing, calledClose)
	}
}

func TestErrRow_ScanReturnsStoredError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("row error")
	err := (&ErrRow{Err: sentinel}).Scan(new(any))
	if !errors.Is(err, sentinel) {
		t.Fatalf("error=%v, want %v", err, sentinel)
	}
}

func TestErrRows_MethodContract(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("rows error")
	r := &ErrRows{ErrValue: sentinel}

	r.Close()

	if !errors.Is(r.Err(), sentinel) {
		t.Fatalf("Err()=%v, want %v", r.Err(), sentinel)
	}
	if r.Next() {
		t.Fatal("Next()=true, want false")
	}
	vals, err := r.Values()
	if vals != nil {
		t.Fatalf("Values=%v, want nil", vals)
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("Values error=%v, want %v", err, sentinel)
	}
	if err := r.Scan(new(any)); !errors.Is(err, sentinel) {
		t.Fatalf("Scan error=%v, want %v", err, sentinel)
	}
	if fds := r.FieldDescriptions(); fds != nil {
		t.Fatalf("FieldDescriptions=%v, want nil", fds)
	}
	if raw := r.RawValues(); raw != nil {
		t.Fatalf("RawValues=%v, want nil", raw)
	}
	if conn := r.Conn(); conn != nil {
		t.Fatalf("Conn=%v, want nil", conn)
	}
	if tag := r.CommandTag(); tag.String() != "" {
		t.Fatalf("CommandTag=%q, want empty", tag.String())
	}
}

func TestErrRows_ScanNilErrValue(t *testing.T) {
	t.Parallel()

	err := (&ErrRows{}).Scan(new(any))
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "pgclient.ErrRows: Scan called with nil ErrValue"; got != want {
		t.Fatalf("error=%q, want %q", got, want)
	}
}
