package codility

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCodeLiveTemplates(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/codelive/templates", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"templates": []map[string]any{
				{"id": "cl-1", "name": "pairing"},
			},
		})
	}))

	templates, err := client.ListCodeLiveTemplates(context.Background())
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "pairing", templates[0].Name)
}

func TestCreateCodeLiveSession(t *testing.T) {
	t.Run("merges candidate info into payload", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/codelive/sessions", r.URL.Path)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"template_id":"cl-1","candidate_name":"Ada","candidate_email":"ada@example.com"}`, string(body))

			json.NewEncoder(w).Encode(map[string]any{
				"id":          "cls-1",
				"template_id": "cl-1",
				"url":         "https://codility.com/codelive/cls-1",
			})
		}))

		session, err := client.CreateCodeLiveSession(context.Background(), "cl-1", map[string]any{
			"candidate_name":  "Ada",
			"candidate_email": "ada@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "cls-1", session.ID)
		assert.Equal(t, "https://codility.com/codelive/cls-1", session.URL)
	})

	t.Run("candidate info cannot override template ID", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"template_id":"cl-1"}`, string(body))

			json.NewEncoder(w).Encode(map[string]any{"id": "cls-2"})
		}))

		_, err := client.CreateCodeLiveSession(context.Background(), "cl-1", map[string]any{
			"template_id": "evil",
		})
		require.NoError(t, err)
	})

	t.Run("missing template ID", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))

		_, err := client.CreateCodeLiveSession(context.Background(), "", nil)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "template_id", validationErr.Param)
	})
}

func TestCreateWhiteboard(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/codelive/whiteboards", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"session_id":"cls-1"}`, string(body))

		json.NewEncoder(w).Encode(map[string]any{
			"id":  "wb-1",
			"url": "https://codility.com/whiteboards/wb-1",
		})
	}))

	whiteboard, err := client.CreateWhiteboard(context.Background(), "cls-1")
	require.NoError(t, err)
	assert.Equal(t, "wb-1", whiteboard.ID)
}
