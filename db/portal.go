package db

import (
	"context"
	"time"
)

// Schedule is a row of shoot_schedules, optionally annotated with the
// number of cast members or the caller's character.
type Schedule struct {
	ID            int64     `json:"id"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
	Location      string    `json:"location"`
	Notes         string    `json:"notes"`
	ActorCount    int64     `json:"actor_count,omitempty"`
	CharacterName string    `json:"character_name,omitempty"`
}

// ScheduleActor is one cast assignment on a schedule.
type ScheduleActor struct {
	CharacterName string `json:"character_name"`
	ActorName     string `json:"actor_name"`
}

// ScheduleWithCast pairs a schedule with its full cast list.
type ScheduleWithCast struct {
	Schedule
	Cast []ScheduleActor `json:"cast"`
}

type Script struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content,omitempty"`
	Version int64     `json:"version"`
	Created time.Time `json:"created_at"`
	Updated time.Time `json:"updated_at"`
}

type LineAssignment struct {
	ID          int64     `json:"id"`
	SceneNumber string    `json:"scene_number"`
	Lines       string    `json:"lines"`
	Notes       string    `json:"notes"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
}

type Document struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	FilePath       string    `json:"file_path"`
	Category       string    `json:"category"`
	UploadedByName string    `json:"uploaded_by_name"`
	Created        time.Time `json:"created_at"`
}

// DbPortal is the read surface behind the member-facing portal pages.
type DbPortal interface {
	UpcomingSchedules(ctx context.Context, limit int64) ([]Schedule, error)
	SchedulesFor(ctx context.Context, userID int64) ([]Schedule, error)
	SchedulesWithCast(ctx context.Context) ([]ScheduleWithCast, error)
	LinesFor(ctx context.Context, userID int64) ([]LineAssignment, error)
	Scripts(ctx context.Context) ([]Script, error)
	ScriptByID(ctx context.Context, id int64) (*Script, error)
	Documents(ctx context.Context) ([]Document, error)
}

// PortalStore implements DbPortal over the adapter. All statements stick to
// the SQL subset both engines share; per-schedule cast aggregation happens
// in Go instead of GROUP_CONCAT/STRING_AGG.
type PortalStore struct {
	db Adapter
}

var _ DbPortal = (*PortalStore)(nil)

func NewPortalStore(a Adapter) *PortalStore {
	return &PortalStore{db: a}
}

func scheduleFromRow(row Row) Schedule {
	return Schedule{
		ID:            row.Int64("id"),
		Date:          row.Time("date"),
		Time:          row.String("time"),
		Location:      row.String("location"),
		Notes:         row.String("notes"),
		ActorCount:    row.Int64("actor_count"),
		CharacterName: row.String("character_name"),
	}
}

func (s *PortalStore) UpcomingSchedules(ctx context.Context, limit int64) ([]Schedule, error) {
	rows, err := s.db.FetchAll(ctx,
		`SELECT s.id, s.date, s.time, s.location, s.notes, COUNT(sa.id) AS actor_count
		FROM shoot_schedules s
		LEFT JOIN schedule_actors sa ON s.id = sa.schedule_id
		WHERE s.date >= CURRENT_DATE
		GROUP BY s.id, s.date, s.time, s.location, s.notes
		ORDER BY s.date, s.time
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	schedules := make([]Schedule, 0, len(rows))
	for _, row := range rows {
		schedules = append(schedules, scheduleFromRow(row))
	}
	return schedules, nil
}

func (s *PortalStore) SchedulesFor(ctx context.Context, userID int64) ([]Schedule, error) {
	rows, err := s.db.FetchAll(ctx,
		`SELECT s.id, s.date, s.time, s.location, s.notes, sa.character_name
		FROM shoot_schedules s
		JOIN schedule_actors sa ON s.id = sa.schedule_id
		WHERE sa.user_id = ? AND s.date >= CURRENT_DATE
		ORDER BY s.date, s.time`, userID)
	if err != nil {
		return nil, err
	}
	schedules := make([]Schedule, 0, len(rows))
	for _, row := range rows {
		schedules = append(schedules, scheduleFromRow(row))
	}
	return schedules, nil
}

// SchedulesWithCast lists every schedule newest first with its cast. One
// joined query; grouping happens here rather than through engine-specific
// string aggregation.
func (s *PortalStore) SchedulesWithCast(ctx context.Context) ([]ScheduleWithCast, error) {
	rows, err := s.db.FetchAll(ctx,
		`SELECT s.id, s.date, s.time, s.location, s.notes, sa.character_name, u.name AS actor_name
		FROM shoot_schedules s
		LEFT JOIN schedule_actors sa ON s.id = sa.schedule_id
		LEFT JOIN users u ON sa.user_id = u.id
		ORDER BY s.date DESC, s.time DESC, sa.id`)
	if err != nil {
		return nil, err
	}
	var out []ScheduleWithCast
	index := make(map[int64]int)
	for _, row := range rows {
		id := row.Int64("id")
		i, seen := index[id]
		if !seen {
			out = append(out, ScheduleWithCast{Schedule: scheduleFromRow(row)})
			i = len(out) - 1
			index[id] = i
		}
		if actor := row.String("actor_name"); actor != "" {
			out[i].Cast = append(out[i].Cast, ScheduleActor{
				CharacterName: row.String("character_name"),
				ActorName:     actor,
			})
		}
	}
	return out, nil
}

func (s *PortalStore) LinesFor(ctx context.Context, userID int64) ([]LineAssignment, error) {
	rows, err := s.db.FetchAll(ctx,
		`SELECT l.id, l.scene_number, l.lines, l.notes, s.date, s.time, s.location
		FROM lines_to_learn l
		JOIN shoot_schedules s ON l.schedule_id = s.id
		WHERE l.user_id = ? AND s.date >= CURRENT_DATE
		ORDER BY s.date, s.time`, userID)
	if err != nil {
		return nil, err
	}
	lines := make([]LineAssignment, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, LineAssignment{
			ID:          row.Int64("id"),
			SceneNumber: row.String("scene_number"),
			Lines:       row.String("lines"),
			Notes:       row.String("notes"),
			Date:        row.Time("date"),
			Time:        row.String("time"),
			Location:    row.String("location"),
		})
	}
	return lines, nil
}

func (s *PortalStore) Scripts(ctx context.Context) ([]Script, error) {
	rows, err := s.db.FetchAll(ctx,
		"SELECT id, title, version, created_at, updated_at FROM scripts ORDER BY updated_at DESC")
	if err != nil {
		return nil, err
	}
	scripts := make([]Script, 0, len(rows))
	for _, row := range rows {
		scripts = append(scripts, Script{
			ID:      row.Int64("id"),
			Title:   row.String("title"),
			Version: row.Int64("version"),
			Created: row.Time("created_at"),
			Updated: row.Time("updated_at"),
		})
	}
	return scripts, nil
}

func (s *PortalStore) ScriptByID(ctx context.Context, id int64) (*Script, error) {
	row, err := s.db.FetchOne(ctx,
		"SELECT id, title, content, version, created_at, updated_at FROM scripts WHERE id = ?", id)
	if err != nil || row == nil {
		return nil, err
	}
	return &Script{
		ID:      row.Int64("id"),
		Title:   row.String("title"),
		Content: row.String("content"),
		Version: row.Int64("version"),
		Created: row.Time("created_at"),
		Updated: row.Time("updated_at"),
	}, nil
}

func (s *PortalStore) Documents(ctx context.Context) ([]Document, error) {
	rows, err := s.db.FetchAll(ctx,
		`SELECT d.id, d.title, d.description, d.file_path, d.category, d.created_at, u.name AS uploaded_by_name
		FROM documents d
		LEFT JOIN users u ON d.uploaded_by = u.id
		ORDER BY d.created_at DESC`)
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, Document{
			ID:             row.Int64("id"),
			Title:          row.String("title"),
			Description:    row.String("description"),
			FilePath:       row.String("file_path"),
			Category:       row.String("category"),
			UploadedByName: row.String("uploaded_by_name"),
			Created:        row.Time("created_at"),
		})
	}
	return docs, nil
}
