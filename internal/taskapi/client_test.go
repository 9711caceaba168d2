package taskapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"task-allocation/internal/domain/user"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, 2*time.Second, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c, srv
}

func TestListTasks(t *testing.T) {
	var gotPath, gotQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"t1","supervisor_id":"sup-1","description":"one","required_skills":["go"],"due_date":"2024-02-01","start_date":"2024-01-01","assigned_to":"emp-1","status":"in_progress"},
			{"id":"t2","description":"two","required_skills":[],"due_date":"","start_date":"","assigned_to":null,"status":"pending"}
		]`))
	})

	tasks, err := c.ListTasks(context.Background(), "user-1", user.RoleSupervisor)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if gotPath != "/tasks/" {
		t.Fatalf("expected trailing-slash path /tasks/, got %q", gotPath)
	}
	if gotQuery != "user_id=user-1&role=supervisor" {
		t.Fatalf("unexpected query %q", gotQuery)
	}

	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].AssignedTo != "emp-1" {
		t.Fatalf("expected assigned_to mapped, got %q", tasks[0].AssignedTo)
	}
	if tasks[1].AssignedTo != "" || tasks[1].Assigned() {
		t.Fatalf("null assigned_to should map to empty: %+v", tasks[1])
	}
}

func TestCreateTask(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"t9","supervisor_id":"sup-1","description":"Audit logs","required_skills":["security","compliance"],"due_date":"2024-01-15","start_date":"2024-01-01","assigned_to":null,"status":"pending"}`))
	})

	created, err := c.CreateTask(context.Background(), CreateTaskInput{
		SupervisorID:   "sup-1",
		Description:    "Audit logs",
		RequiredSkills: []string{"security", "compliance"},
		StartDate:      "2024-01-01",
		DueDate:        "2024-01-15",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/tasks/" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}

	// The client always sends an unassigned pending task in snake_case.
	if gotBody["status"] != "pending" {
		t.Fatalf("expected status pending, got %v", gotBody["status"])
	}
	if v, ok := gotBody["assigned_to"]; !ok || v != nil {
		t.Fatalf("expected assigned_to null, got %v (present=%v)", v, ok)
	}
	if gotBody["supervisor_id"] != "sup-1" {
		t.Fatalf("expected supervisor_id, got %v", gotBody["supervisor_id"])
	}
	skills, _ := gotBody["required_skills"].([]any)
	if len(skills) != 2 || skills[0] != "security" || skills[1] != "compliance" {
		t.Fatalf("unexpected required_skills %v", gotBody["required_skills"])
	}

	if created.ID != "t9" || created.Status != "pending" || created.Assigned() {
		t.Fatalf("unexpected created task: %+v", created)
	}
}

func TestUpdateTaskDescription(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"t1","description":"after","required_skills":["go"],"due_date":"2024-02-01","start_date":"2024-01-01","assigned_to":"emp-1","status":"in_progress"}`))
	})

	patched, err := c.UpdateTaskDescription(context.Background(), "t1", "after")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if gotMethod != http.MethodPatch || gotPath != "/tasks/t1" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}

	// The patch body carries only the description.
	want := map[string]any{"description": "after"}
	if !reflect.DeepEqual(gotBody, want) {
		t.Fatalf("unexpected patch body %v", gotBody)
	}

	if patched.Description != "after" || patched.AssignedTo != "emp-1" {
		t.Fatalf("unexpected patched task: %+v", patched)
	}
}

func TestListSkills(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"user_id":"u1","skill_name":"go","proficiency_level":4}]`))
	})

	skills, err := c.ListSkills(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotPath != "/skills/u1" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if len(skills) != 1 || skills[0].SkillName != "go" || skills[0].ProficiencyLevel != 4 {
		t.Fatalf("unexpected skills %+v", skills)
	}
}

func TestErrorDetailSurfaced(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Task not found"}`))
	})

	_, err := c.UpdateTaskDescription(context.Background(), "missing", "x")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "Task not found") {
		t.Fatalf("expected backend detail in error, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status code in error, got %q", err.Error())
	}
}

func TestErrorWithoutDetailFallsBackToStatusText(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := c.ListTasks(context.Background(), "u1", user.RoleEmployee)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "Bad Gateway") {
		t.Fatalf("expected status text fallback, got %q", err.Error())
	}
}

func TestContextCancellation(t *testing.T) {
	block := make(chan struct{})
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-block
	})
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := c.ListTasks(ctx, "u1", user.RoleEmployee); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestNewClientRejectsEmptyBaseURL(t *testing.T) {
	if _, err := NewClient("   ", time.Second, nil); err == nil {
		t.Fatalf("expected error for empty base URL")
	}
}
