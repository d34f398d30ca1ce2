package codility

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTests(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tests", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"tests": []map[string]any{
				{"id": "t-1", "title": "Backend Screening"},
				{"id": "t-2", "name": "frontend-screening"},
			},
		})
	}))

	tests, err := client.ListTests(context.Background())
	require.NoError(t, err)
	require.Len(t, tests, 2)
	assert.Equal(t, "Backend Screening", tests[0].DisplayName())
	assert.Equal(t, "frontend-screening", tests[1].DisplayName())
}

func TestGetTestDetails(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tests/t-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"id": "t-1", "title": "Backend Screening"})
	}))

	test, err := client.GetTestDetails(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, "t-1", test.ID)

	_, err = client.GetTestDetails(context.Background(), "")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestListTestSessions(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tests/t-1/sessions", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"sessions": []map[string]any{
				{"id": "s-1", "test_id": "t-1"},
			},
		})
	}))

	sessions, err := client.ListTestSessions(context.Background(), "t-1")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "t-1", sessions[0].TestID)
}

func TestAddCandidates(t *testing.T) {
	t.Run("sends candidate list", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/tests/t-1/candidates", r.URL.Path)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"candidates":[{"email":"a@b.com","first_name":"Ada"}]}`, string(body))

			json.NewEncoder(w).Encode(map[string]any{"status": "ok", "invited": 1})
		}))

		result, err := client.AddCandidates(context.Background(), "t-1", []Candidate{
			{Email: "a@b.com", FirstName: "Ada"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Invited)
	})

	t.Run("validation", func(t *testing.T) {
		var requests atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
		}))
		t.Cleanup(server.Close)

		client, err := NewClient("test-key", zerolog.Nop(), WithBaseURL(server.URL))
		require.NoError(t, err)

		ctx := context.Background()

		tests := []struct {
			name       string
			testID     string
			candidates []Candidate
		}{
			{"missing test ID", "", []Candidate{{Email: "a@b.com"}}},
			{"empty candidate list", "t-1", nil},
			{"candidate without email", "t-1", []Candidate{{Email: "a@b.com"}, {FirstName: "Bob"}}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := client.AddCandidates(ctx, tt.testID, tt.candidates)
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
			})
		}

		assert.Zero(t, requests.Load(), "validation failures must not hit the network")
	})
}
