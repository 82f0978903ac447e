package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"portfolio-admin/app/denylist"
	"portfolio-admin/app/models"
)

func seedAdminCookie(t *testing.T, app *testApp) *http.Cookie {
	t.Helper()
	_, err := app.users.CreateAdmin("Root", "root", "root@b.com", "secret1")
	require.NoError(t, err)
	return app.login(t, "root@b.com", "secret1")
}

func TestProjects_CRUD(t *testing.T) {
	app := newTestApp(t, denylist.Noop{})
	admin := seedAdminCookie(t, app)

	// mutations are admin-only
	body := map[string]any{"title": "Site", "status": "In Progress", "isPublic": true, "technologies": []string{"go"}}
	rec := app.request(t, http.MethodPost, "/api/projects", body, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	_, err := app.users.Signup("Ada", "ada", "a@b.com", "secret1")
	require.NoError(t, err)
	userCookie := app.login(t, "a@b.com", "secret1")
	rec = app.request(t, http.MethodPost, "/api/projects", body, userCookie)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.request(t, http.MethodPost, "/api/projects", body, admin)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Site", created.Title)

	// listing is public
	rec = app.request(t, http.MethodGet, "/api/projects", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)

	// partial update keeps absent fields
	rec = app.request(t, http.MethodPut, "/api/projects/"+created.ID, map[string]any{"status": "Completed"}, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, "Completed", updated.Status)
	require.Equal(t, "Site", updated.Title)

	rec = app.request(t, http.MethodPut, "/api/projects/no-such-id", map[string]any{"status": "On Hold"}, admin)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Project not found")

	rec = app.request(t, http.MethodDelete, "/api/projects/"+created.ID, nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = app.request(t, http.MethodGet, "/api/projects/"+created.ID, nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClientsAndTasks_AdminOnly(t *testing.T) {
	app := newTestApp(t, denylist.Noop{})
	admin := seedAdminCookie(t, app)

	// even reads require an admin session for back-office data
	rec := app.request(t, http.MethodGet, "/api/clients", nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.request(t, http.MethodPost, "/api/clients",
		map[string]string{"name": "ACME", "company": "ACME Inc", "email": "c@acme.com"}, admin)
	require.Equal(t, http.StatusCreated, rec.Code)
	var client models.Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &client))

	rec = app.request(t, http.MethodPost, "/api/tasks",
		map[string]string{"projectId": "p1", "title": "Design", "status": "Pending"}, admin)
	require.Equal(t, http.StatusCreated, rec.Code)
	var task models.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))

	rec = app.request(t, http.MethodPut, "/api/tasks/"+task.ID, map[string]string{"status": "Done"}, admin)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.request(t, http.MethodPut, "/api/tasks/no-such-id", map[string]string{"status": "Done"}, admin)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Task not found")

	rec = app.request(t, http.MethodDelete, "/api/clients/"+client.ID, nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSiteProfile_PublicReadAdminWrite(t *testing.T) {
	app := newTestApp(t, denylist.Noop{})
	admin := seedAdminCookie(t, app)

	rec := app.request(t, http.MethodPut, "/api/profile", map[string]any{"name": "Ada", "role": "Engineer"}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.request(t, http.MethodPut, "/api/profile", map[string]any{"name": "Ada", "role": "Engineer"}, admin)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/profile", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile models.SiteProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	require.Equal(t, "Ada", profile.Name)
}
