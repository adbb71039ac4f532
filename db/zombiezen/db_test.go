package zombiezen

import (
	"context"
	"testing"

	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/canaryfilms/portal/db"
)

// newTestDB creates a new in-memory SQLite database and bootstraps the
// schema through the adapter, exactly as startup does.
func newTestDB(t *testing.T) *Db {
	t.Helper()

	// PoolSize 1: each connection in the pool gets its own separate
	// in-memory database.
	pool, err := sqlitex.NewPool("file::memory:", sqlitex.PoolOptions{
		PoolSize: 1,
	})
	if err != nil {
		t.Fatalf("failed to create db pool: %v", err)
	}

	t.Cleanup(func() {
		if err := pool.Close(); err != nil {
			t.Errorf("failed to close db pool: %v", err)
		}
	})

	d, err := NewWithPool(pool)
	if err != nil {
		t.Fatalf("failed to create db: %v", err)
	}

	if err := d.BootstrapSchema(context.Background()); err != nil {
		t.Fatalf("BootstrapSchema failed: %v", err)
	}
	// bootstrapping again must be a no-op
	if err := d.BootstrapSchema(context.Background()); err != nil {
		t.Fatalf("BootstrapSchema is not idempotent: %v", err)
	}
	return d
}

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	store := db.NewUserStore(newTestDB(t))

	var memberID int64

	t.Run("Insert", func(t *testing.T) {
		var err error
		memberID, err = store.Insert(ctx, db.UserDraft{
			Email: "member@example.com",
			Name:  "Member",
		})
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		if memberID == 0 {
			t.Fatal("expected a non-zero inserted id")
		}
	})

	t.Run("ByEmail", func(t *testing.T) {
		user, err := store.ByEmail(ctx, "member@example.com")
		if err != nil {
			t.Fatalf("ByEmail failed: %v", err)
		}
		if user == nil {
			t.Fatal("expected user")
		}
		if user.ID != memberID || user.Role != db.RoleMember {
			t.Errorf("unexpected user: %+v", user)
		}
		if user.IsApproved {
			t.Error("new accounts must start unapproved")
		}
		if user.Created.IsZero() {
			t.Error("created_at default should be set")
		}
		if !user.LastLogin.IsZero() {
			t.Error("last_login should start null")
		}
	})

	t.Run("Approve", func(t *testing.T) {
		if err := store.SetApproved(ctx, memberID, true); err != nil {
			t.Fatalf("SetApproved failed: %v", err)
		}
		user, _ := store.ByID(ctx, memberID)
		if user == nil || !user.IsApproved {
			t.Error("approval did not stick")
		}
	})

	t.Run("LinkAndLookupProvider", func(t *testing.T) {
		if err := store.LinkProvider(ctx, memberID, db.ProviderHackclub, "4242"); err != nil {
			t.Fatalf("LinkProvider failed: %v", err)
		}
		// re-linking the same id must stay safe
		if err := store.LinkProvider(ctx, memberID, db.ProviderHackclub, "4242"); err != nil {
			t.Fatalf("re-LinkProvider failed: %v", err)
		}
		user, err := store.ByProvider(ctx, db.ProviderHackclub, "4242")
		if err != nil {
			t.Fatalf("ByProvider failed: %v", err)
		}
		if user == nil || user.ID != memberID {
			t.Errorf("provider lookup returned %+v", user)
		}
	})

	t.Run("TouchLastLogin", func(t *testing.T) {
		if err := store.TouchLastLogin(ctx, memberID); err != nil {
			t.Fatalf("TouchLastLogin failed: %v", err)
		}
		user, _ := store.ByID(ctx, memberID)
		if user == nil || user.LastLogin.IsZero() {
			t.Error("last_login should be set after touch")
		}
	})

	t.Run("HasAdmin", func(t *testing.T) {
		has, err := store.HasAdmin(ctx)
		if err != nil {
			t.Fatalf("HasAdmin failed: %v", err)
		}
		if has {
			t.Error("no admin inserted yet")
		}

		if _, err := store.Insert(ctx, db.UserDraft{
			Email:      "admin@example.com",
			Name:       "Admin",
			Role:       db.RoleAdmin,
			IsApproved: true,
		}); err != nil {
			t.Fatalf("Insert admin failed: %v", err)
		}

		has, err = store.HasAdmin(ctx)
		if err != nil {
			t.Fatalf("HasAdmin failed: %v", err)
		}
		if !has {
			t.Error("admin should be visible now")
		}
	})

	t.Run("DeleteGuardsAdmins", func(t *testing.T) {
		admin, _ := store.ByEmail(ctx, "admin@example.com")
		deleted, err := store.Delete(ctx, admin.ID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if deleted {
			t.Error("admin rows must survive delete")
		}

		deleted, err = store.Delete(ctx, memberID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if !deleted {
			t.Error("member row should be deleted")
		}
		if user, _ := store.ByID(ctx, memberID); user != nil {
			t.Error("deleted member still present")
		}
	})
}

func TestPortalQueries(t *testing.T) {
	ctx := context.Background()
	d := newTestDB(t)
	users := db.NewUserStore(d)
	portal := db.NewPortalStore(d)

	actorID, err := users.Insert(ctx, db.UserDraft{Email: "a@example.com", Name: "Ann", IsApproved: true})
	if err != nil {
		t.Fatal(err)
	}

	// one shoot far in the future, one in the past
	if _, err := d.Execute(ctx,
		"INSERT INTO shoot_schedules (date, time, location) VALUES (?, ?, ?)",
		"2999-01-01", "09:00", "Studio A"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Execute(ctx,
		"INSERT INTO shoot_schedules (date, time, location) VALUES (?, ?, ?)",
		"2001-01-01", "14:00", "Rooftop"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Execute(ctx,
		"INSERT INTO schedule_actors (schedule_id, user_id, character_name) VALUES (?, ?, ?)",
		1, actorID, "Lead"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Execute(ctx,
		"INSERT INTO lines_to_learn (schedule_id, user_id, scene_number, lines) VALUES (?, ?, ?, ?)",
		1, actorID, "12A", "To be or not to be"); err != nil {
		t.Fatal(err)
	}

	t.Run("UpcomingSchedules", func(t *testing.T) {
		schedules, err := portal.UpcomingSchedules(ctx, 10)
		if err != nil {
			t.Fatalf("UpcomingSchedules failed: %v", err)
		}
		if len(schedules) != 1 {
			t.Fatalf("got %d schedules, want 1 (past shoots excluded)", len(schedules))
		}
		if schedules[0].Location != "Studio A" || schedules[0].ActorCount != 1 {
			t.Errorf("unexpected schedule: %+v", schedules[0])
		}
	})

	t.Run("SchedulesFor", func(t *testing.T) {
		schedules, err := portal.SchedulesFor(ctx, actorID)
		if err != nil {
			t.Fatalf("SchedulesFor failed: %v", err)
		}
		if len(schedules) != 1 || schedules[0].CharacterName != "Lead" {
			t.Errorf("unexpected schedules: %+v", schedules)
		}
	})

	t.Run("SchedulesWithCast", func(t *testing.T) {
		schedules, err := portal.SchedulesWithCast(ctx)
		if err != nil {
			t.Fatalf("SchedulesWithCast failed: %v", err)
		}
		// both schedules listed, newest date first
		if len(schedules) != 2 {
			t.Fatalf("got %d schedules, want 2", len(schedules))
		}
		if schedules[0].Location != "Studio A" || len(schedules[0].Cast) != 1 {
			t.Errorf("unexpected first schedule: %+v", schedules[0])
		}
		if schedules[0].Cast[0].ActorName != "Ann" {
			t.Errorf("cast actor = %q, want Ann", schedules[0].Cast[0].ActorName)
		}
		if len(schedules[1].Cast) != 0 {
			t.Errorf("past schedule should have no cast: %+v", schedules[1])
		}
	})

	t.Run("LinesFor", func(t *testing.T) {
		lines, err := portal.LinesFor(ctx, actorID)
		if err != nil {
			t.Fatalf("LinesFor failed: %v", err)
		}
		if len(lines) != 1 || lines[0].SceneNumber != "12A" {
			t.Errorf("unexpected lines: %+v", lines)
		}
		if lines[0].Location != "Studio A" {
			t.Errorf("line should carry its schedule location: %+v", lines[0])
		}
	})

	t.Run("ScriptsAndDocuments", func(t *testing.T) {
		if _, err := d.Execute(ctx,
			"INSERT INTO scripts (title, content, version) VALUES (?, ?, ?)",
			"Act One", "INT. STUDIO - DAY", 2); err != nil {
			t.Fatal(err)
		}
		if _, err := d.Execute(ctx,
			"INSERT INTO documents (title, file_path, uploaded_by) VALUES (?, ?, ?)",
			"Call Sheet", "/files/call-sheet.pdf", actorID); err != nil {
			t.Fatal(err)
		}

		scripts, err := portal.Scripts(ctx)
		if err != nil {
			t.Fatalf("Scripts failed: %v", err)
		}
		if len(scripts) != 1 || scripts[0].Content != "" {
			t.Errorf("script list must omit content: %+v", scripts)
		}

		script, err := portal.ScriptByID(ctx, scripts[0].ID)
		if err != nil {
			t.Fatalf("ScriptByID failed: %v", err)
		}
		if script == nil || script.Content != "INT. STUDIO - DAY" {
			t.Errorf("unexpected script: %+v", script)
		}

		docs, err := portal.Documents(ctx)
		if err != nil {
			t.Fatalf("Documents failed: %v", err)
		}
		if len(docs) != 1 || docs[0].UploadedByName != "Ann" {
			t.Errorf("unexpected documents: %+v", docs)
		}
	})
}
