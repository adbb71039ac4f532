package mock

import (
	"context"

	"github.com/canaryfilms/portal/db"
)

// Users implements db.DbUsers for testing. Function fields allow overriding
// behavior per test; unset fields fall back to "not found" defaults.
type Users struct {
	ByIDFunc           func(ctx context.Context, id int64) (*db.User, error)
	ByEmailFunc        func(ctx context.Context, email string) (*db.User, error)
	ByProviderFunc     func(ctx context.Context, p db.Provider, externalID string) (*db.User, error)
	TouchLastLoginFunc func(ctx context.Context, id int64) error
	LinkProviderFunc   func(ctx context.Context, id int64, p db.Provider, externalID string) error
	InsertFunc         func(ctx context.Context, draft db.UserDraft) (int64, error)
	HasAdminFunc       func(ctx context.Context) (bool, error)
	ListFunc           func(ctx context.Context) ([]db.User, error)
	SetApprovedFunc    func(ctx context.Context, id int64, approved bool) error
	DeleteFunc         func(ctx context.Context, id int64) (bool, error)

	// Call counters for asserting side-effect ordering.
	TouchCalls  int
	LinkCalls   int
	InsertCalls int
}

var _ db.DbUsers = (*Users)(nil)

func (m *Users) ByID(ctx context.Context, id int64) (*db.User, error) {
	if m.ByIDFunc != nil {
		return m.ByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *Users) ByEmail(ctx context.Context, email string) (*db.User, error) {
	if m.ByEmailFunc != nil {
		return m.ByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *Users) ByProvider(ctx context.Context, p db.Provider, externalID string) (*db.User, error) {
	if m.ByProviderFunc != nil {
		return m.ByProviderFunc(ctx, p, externalID)
	}
	return nil, nil
}

func (m *Users) TouchLastLogin(ctx context.Context, id int64) error {
	m.TouchCalls++
	if m.TouchLastLoginFunc != nil {
		return m.TouchLastLoginFunc(ctx, id)
	}
	return nil
}

func (m *Users) LinkProvider(ctx context.Context, id int64, p db.Provider, externalID string) error {
	m.LinkCalls++
	if m.LinkProviderFunc != nil {
		return m.LinkProviderFunc(ctx, id, p, externalID)
	}
	return nil
}

func (m *Users) Insert(ctx context.Context, draft db.UserDraft) (int64, error) {
	m.InsertCalls++
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, draft)
	}
	return 1, nil
}

func (m *Users) HasAdmin(ctx context.Context) (bool, error) {
	if m.HasAdminFunc != nil {
		return m.HasAdminFunc(ctx)
	}
	return false, nil
}

func (m *Users) List(ctx context.Context) ([]db.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *Users) SetApproved(ctx context.Context, id int64, approved bool) error {
	if m.SetApprovedFunc != nil {
		return m.SetApprovedFunc(ctx, id, approved)
	}
	return nil
}

func (m *Users) Delete(ctx context.Context, id int64) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return false, nil
}

// Adapter implements db.Adapter for store tests, recording every statement
// and its bound arguments.
type Adapter struct {
	ExecuteFunc  func(ctx context.Context, query string, args ...any) (db.Result, error)
	FetchOneFunc func(ctx context.Context, query string, args ...any) (db.Row, error)
	FetchAllFunc func(ctx context.Context, query string, args ...any) ([]db.Row, error)

	Queries []RecordedQuery
}

type RecordedQuery struct {
	Query string
	Args  []any
}

var _ db.Adapter = (*Adapter)(nil)

func (m *Adapter) record(query string, args []any) {
	m.Queries = append(m.Queries, RecordedQuery{Query: query, Args: args})
}

func (m *Adapter) Execute(ctx context.Context, query string, args ...any) (db.Result, error) {
	m.record(query, args)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, query, args...)
	}
	return db.Result{InsertedID: 1, AffectedRows: 1}, nil
}

func (m *Adapter) FetchOne(ctx context.Context, query string, args ...any) (db.Row, error) {
	m.record(query, args)
	if m.FetchOneFunc != nil {
		return m.FetchOneFunc(ctx, query, args...)
	}
	return nil, nil
}

func (m *Adapter) FetchAll(ctx context.Context, query string, args ...any) ([]db.Row, error) {
	m.record(query, args)
	if m.FetchAllFunc != nil {
		return m.FetchAllFunc(ctx, query, args...)
	}
	return nil, nil
}

func (m *Adapter) BootstrapSchema(ctx context.Context) error { return nil }

func (m *Adapter) Close() error { return nil }

// Portal implements db.DbPortal for handler tests.
type Portal struct {
	UpcomingSchedulesFunc func(ctx context.Context, limit int64) ([]db.Schedule, error)
	SchedulesForFunc      func(ctx context.Context, userID int64) ([]db.Schedule, error)
	SchedulesWithCastFunc func(ctx context.Context) ([]db.ScheduleWithCast, error)
	LinesForFunc          func(ctx context.Context, userID int64) ([]db.LineAssignment, error)
	ScriptsFunc           func(ctx context.Context) ([]db.Script, error)
	ScriptByIDFunc        func(ctx context.Context, id int64) (*db.Script, error)
	DocumentsFunc         func(ctx context.Context) ([]db.Document, error)
}

var _ db.DbPortal = (*Portal)(nil)

func (m *Portal) UpcomingSchedules(ctx context.Context, limit int64) ([]db.Schedule, error) {
	if m.UpcomingSchedulesFunc != nil {
		return m.UpcomingSchedulesFunc(ctx, limit)
	}
	return nil, nil
}

func (m *Portal) SchedulesFor(ctx context.Context, userID int64) ([]db.Schedule, error) {
	if m.SchedulesForFunc != nil {
		return m.SchedulesForFunc(ctx, userID)
	}
	return nil, nil
}

func (m *Portal) SchedulesWithCast(ctx context.Context) ([]db.ScheduleWithCast, error) {
	if m.SchedulesWithCastFunc != nil {
		return m.SchedulesWithCastFunc(ctx)
	}
	return nil, nil
}

func (m *Portal) LinesFor(ctx context.Context, userID int64) ([]db.LineAssignment, error) {
	if m.LinesForFunc != nil {
		return m.LinesForFunc(ctx, userID)
	}
	return nil, nil
}

func (m *Portal) Scripts(ctx context.Context) ([]db.Script, error) {
	if m.ScriptsFunc != nil {
		return m.ScriptsFunc(ctx)
	}
	return nil, nil
}

func (m *Portal) ScriptByID(ctx context.Context, id int64) (*db.Script, error) {
	if m.ScriptByIDFunc != nil {
		return m.ScriptByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *Portal) Documents(ctx context.Context) ([]db.Document, error) {
	if m.DocumentsFunc != nil {
		return m.DocumentsFunc(ctx)
	}
	return nil, nil
}
