package core

import (
	"net/http"
	"strconv"

	"github.com/canaryfilms/portal/db"
)

const (
	// oks for dynamic portal responses
	CodeOkPortalHome = "ok_portal_home"
	CodeOkSchedules  = "ok_schedules"
	CodeOkLines      = "ok_lines"
	CodeOkScripts    = "ok_scripts"
	CodeOkScript     = "ok_script"
	CodeOkDocuments  = "ok_documents"
)

// homeUpcomingLimit caps the shared upcoming-schedules list on the home
// endpoint.
const homeUpcomingLimit = 5

// PortalHomeData is the dashboard payload: the next few shoots for
// everyone plus the caller's own assignments.
type PortalHomeData struct {
	UpcomingSchedules []db.Schedule       `json:"upcoming_schedules"`
	MySchedules       []db.Schedule       `json:"my_schedules"`
	MyLines           []db.LineAssignment `json:"my_lines"`
}

// PortalHomeHandler renders the member dashboard data.
// Endpoint: GET /api/portal
// Authenticated: Yes (approved)
func (a *App) PortalHomeHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeJsonError(w, errorNoSession)
		return
	}

	upcoming, err := a.portal.UpcomingSchedules(r.Context(), homeUpcomingLimit)
	if err != nil {
		a.logger.Error("failed to load upcoming schedules", "err", err)
		writeJsonError(w, errorDatabaseError)
		return
	}
	mine, err := a.portal.SchedulesFor(r.Context(), p.ID)
	if err != nil {
		a.logger.Error("failed to load member schedules", "user_id", p.ID, "err", err)
		writeJsonError(w, errorDatabaseError)
		return
	}
	lines, err := a.portal.LinesFor(r.Context(), p.ID)
	if err != nil {
		a.logger.Error("failed to load member lines", "user_id", p.ID, "err", err)
		writeJsonError(w, errorDatabaseError)
		return
	}

	writeJsonWithData(w, JsonWithData{
		JsonBasic: JsonBasic{
			Status:  http.StatusOK,
			Code:    CodeOkPortalHome,
			Message: "Portal home",
		},
		Data: PortalHomeData{
			UpcomingSchedules: upcoming,
			MySchedules:       mine,
			MyLines:           lines,
		},
	})
}

// SchedulesHandler lists every schedule with its cast, newest first.
// Endpoint: GET /api/schedules
// Authenticated: Yes (approved)
func (a *App) SchedulesHandler(w http.ResponseWriter, r *http.Request) {
	schedules, err := a.portal.SchedulesWithCast(r.Context())
	if err != nil {
		a.logger.Error("failed to load schedules", "err", err)
		writeJsonError(w, errorDatabaseError)
		return
	}
	writeJsonWithData(w, JsonWithData{
		JsonBasic: JsonBasic{
			Status:  http.StatusOK,
			Code:    CodeOkSchedules,
			Message: "Schedules",
		},
		Data: schedules,
	})
}

// LinesHandler lists the caller's upcoming line assignments.
// Endpoint: GET /api/lines
// Authenticated: Yes (approved)
func (a *App) LinesHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := PrincipalFromContext(r.Context())
	if !ok {
		writeJsonError(w, errorNoSession)
		return
	}
	lines, err := a.portal.LinesFor(r.Context(), p.ID)
	if err != nil {
		a.logger.Error("failed to load member lines", "user_id", p.ID, "err", err)
		writeJsonError(w, errorDatabaseError)
		return
	}
	writeJsonWithData(w, JsonWithData{
		JsonBasic: JsonBasic{
			Status:  http.StatusOK,
			Code:    CodeOkLines,
			Message: "Lines to learn",
		},
		Data: lines,
	})
}

// ScriptsHandler lists scripts without their content.
// Endpoint: GET /api/scripts
// Authenticated: Yes (approved)
func (a *App) ScriptsHandler(w http.ResponseWriter, r *http.Request) {
	scripts, err := a.portal.Scripts(r.Context())
	if err != nil {
		a.logger.Error("failed to load scripts", "err", err)
		writeJsonError(w, errorDatabaseError)
		return
	}
	writeJsonWithData(w, JsonWithData{
		JsonBasic: JsonBasic{
			Status:  http.StatusOK,
			Code:    CodeOkScripts,
			Message: "Scripts",
		},
		Data: scripts,
	})
}

// ScriptHandler returns one script with its full content.
// Endpoint: GET /api/scripts/:id
// Authenticated: Yes (approved)
func (a *App) ScriptHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(a.params.Param(r, "id"), 10, 64)
	if err != nil {
		writeJsonError(w, errorInvalidRequest)
		return
	}
	script, err := a.portal.ScriptByID(r.Context(), id)
	if err != nil {
		a.logger.Error("failed to load script", "script_id", id, "err", err)
		writeJsonError(w, errorDatabaseError)
		return
	}
	if script == nil {
		writeJsonError(w, errorNotFound)
		return
	}
	writeJsonWithData(w, JsonWithData{
		JsonBasic: JsonBasic{
			Status:  http.StatusOK,
			Code:    CodeOkScript,
			Message: "Script",
		},
		Data: script,
	})
}

// DocumentsHandler lists shared documents, newest first.
// Endpoint: GET /api/documents
// Authenticated: Yes (approved)
func (a *App) DocumentsHandler(w http.ResponseWriter, r *http.Request) {
	docs, err := a.portal.Documents(r.Context())
	if err != nil {
		a.logger.Error("failed to load documents", "err", err)
		writeJsonError(w, errorDatabaseError)
		return
	}
	writeJsonWithData(w, JsonWithData{
		JsonBasic: JsonBasic{
			Status:  http.StatusOK,
			Code:    CodeOkDocuments,
			Message: "Documents",
		},
		Data: docs,
	})
}
