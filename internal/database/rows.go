package database

import (
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// FakeRow 依序將 Values 指派給 Scan 的目標；Err 不為 nil 時直接回傳
type FakeRow struct {
	Values []any
	Err    error
}

func (r FakeRow) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assign(r.Values, dest)
}

// FakeRows 以記憶體中的資料實作 pgx.Rows
type FakeRows struct {
	Data    [][]any
	ScanErr error
	IterErr error

	pos    int
	Closed bool
}

func (r *FakeRows) Close()                                       { r.Closed = true }
func (r *FakeRows) Err() error                                   { return r.IterErr }
func (r *FakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *FakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *FakeRows) RawValues() [][]byte                          { return nil }
func (r *FakeRows) Conn() *pgx.Conn                              { return nil }

func (r *FakeRows) Next() bool {
	if r.Closed || r.pos >= len(r.Data) {
		r.Closed = true
		return false
	}
	r.pos++
	return true
}

func (r *FakeRows) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	return assign(r.Data[r.pos-1], dest)
}

func (r *FakeRows) Values() ([]any, error) {
	return r.Data[r.pos-1], nil
}

func assign(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("fake scan: %d values for %d destinations", len(values), len(dest))
	}
	for i, v := range values {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		src := reflect.ValueOf(v)
		switch {
		case src.Type().AssignableTo(target.Type()):
			target.Set(src)
		case target.Kind() == reflect.Pointer && src.Type().ConvertibleTo(target.Type().Elem()):
			p := reflect.New(target.Type().Elem())
			p.Elem().Set(src.Convert(target.Type().Elem()))
			target.Set(p)
		case src.Type().ConvertibleTo(target.Type()):
			target.Set(src.Convert(target.Type()))
		default:
			return fmt.Errorf("fake scan: cannot assign %T to %s", v, target.Type())
		}
	}
	return nil
}
