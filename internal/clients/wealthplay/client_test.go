package wealthplay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jugadveer/wealthplay-cli/internal/csrf"
	"github.com/jugadveer/wealthplay-cli/internal/models"
)

func modelGoalInput(name string, target, sip float64, months int) models.GoalInput {
	return models.GoalInput{
		Name:         name,
		TargetAmount: target,
		MonthlySIP:   sip,
		TimeToGoal:   months,
	}
}

func newTestClient(t *testing.T, srv *httptest.Server, opts ...ClientOption) *Client {
	t.Helper()
	client, err := NewClient(srv.URL, opts...)
	require.NoError(t, err)
	return client
}

func TestMutatingRequestCarriesCSRFHeader(t *testing.T) {
	var captured http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv, WithTokenSource(csrf.StaticSource("tok-42")))
	err := client.postJSON(context.Background(), "/api/users/award-xp/", map[string]int{"amount": 5}, nil)
	require.NoError(t, err)

	require.Equal(t, "tok-42", captured.Get("X-CSRFToken"))
	require.Equal(t, "application/json", captured.Get("Content-Type"))
	require.NotEmpty(t, captured.Get("X-Request-ID"))
}

func TestGetRequestOmitsCSRFHeader(t *testing.T) {
	var captured http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv, WithTokenSource(csrf.StaticSource("tok-42")))
	require.NoError(t, client.get(context.Background(), "/api/users/portfolio/", nil, &struct{}{}))
	require.Empty(t, captured.Get("X-CSRFToken"))
}

func TestLoginPostsMultipartForm(t *testing.T) {
	var (
		contentType string
		username    string
		password    string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/csrf-token/" {
			w.Write([]byte(`{"csrfToken":"boot"}`))
			return
		}
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		username = r.FormValue("username")
		password = r.FormValue("password")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	resp, err := client.Login(context.Background(), "bob", "hunter22")
	require.NoError(t, err)
	require.True(t, resp.Success)

	// The boundary must survive, so the type is multipart, never JSON
	require.True(t, strings.HasPrefix(contentType, "multipart/form-data; boundary="), contentType)
	require.Equal(t, "bob", username)
	require.Equal(t, "hunter22", password)
}

func TestProfileAuthErrorIsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Authentication credentials were not provided."}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	_, err := client.Profile(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	require.True(t, apiErr.IsAuthError())
	require.Equal(t, "Authentication credentials were not provided.", apiErr.Message)
}

func TestAPIErrorMessageFallsBackThroughFields(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error":"Invalid credentials"}`, "Invalid credentials"},
		{"message field", `{"message":"Account locked"}`, "Account locked"},
		{"raw body", `upstream exploded`, "upstream exploded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, errorMessage([]byte(tc.body)))
		})
	}
}

func TestCoursesAcceptsBareArrayAndWrappedObject(t *testing.T) {
	bodies := []string{
		`[{"id":"c1","title":"Budgeting"},{"id":"c2","title":"Investing"}]`,
		`{"courses":[{"id":"c1","title":"Budgeting"},{"id":"c2","title":"Investing"}]}`,
	}

	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		client := newTestClient(t, srv)
		courses, err := client.Courses(context.Background())
		require.NoError(t, err)
		require.Len(t, courses, 2)
		require.Equal(t, "Budgeting", courses[0].Title)
		srv.Close()
	}
}

func TestModuleUnwrapsAndNormalizesFlashCards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/courses/json/c1/m2/", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"module": map[string]interface{}{
				"id":    "m2",
				"title": "Compounding",
				"flash_cards": []map[string]interface{}{
					{"id": 7, "question": "What is compounding?", "answer": "Interest on interest"},
					{"topic": "Rule of 72", "theory_content": "Years to double = 72/rate"},
					{"question": "No id at all"},
				},
			},
		})
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	module, err := client.Module(context.Background(), "c1", "m2")
	require.NoError(t, err)

	require.Equal(t, "7", module.FlashCards[0].ID)
	require.Equal(t, "Rule of 72", module.FlashCards[1].ID)
	require.Equal(t, "Years to double = 72/rate", module.FlashCards[1].Answer)
	require.Equal(t, "card-2", module.FlashCards[2].ID)
}

func TestProgressQueriesCarryCourseAndModule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "c1", r.URL.Query().Get("course_id"))
		require.Equal(t, "m1", r.URL.Query().Get("module_id"))
		w.Write([]byte(`{"flipped_cards":["a","b"]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	cards, err := client.FlippedCards(context.Background(), "c1", "m1")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, cards)
}

func TestCreateGoalValidatesBeforeNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	err := client.CreateGoal(context.Background(), modelGoalInput("", 1000, 50, 12))
	require.Error(t, err)
	require.Zero(t, calls, "invalid goal must not reach the backend")

	err = client.CreateGoal(context.Background(), modelGoalInput("Bike", 0, 50, 12))
	require.Error(t, err)
	require.Zero(t, calls)
}

func TestBuySurfacesBusinessRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Insufficient balance"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	_, err := client.Buy(context.Background(), "AAPL", 10000)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	require.Equal(t, "Insufficient balance", apiErr.Message)
	require.False(t, apiErr.IsAuthError())
}
