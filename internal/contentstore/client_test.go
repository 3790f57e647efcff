// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package contentstore

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/recipe-importer/internal/httputil"
	"github.com/pdiddy/recipe-importer/internal/sink"
	"github.com/pdiddy/recipe-importer/pkg/types"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func init() {
	httputil.RetryBaseDelay = time.Millisecond
}

func sampleRecipe() types.NormalizedRecipe {
	return types.NormalizedRecipe{
		Title:       "Apple Pie",
		Slug:        "apple-pie",
		Description: "Tart and flaky.",
		CategoryID:  "56230a66-83f0-4a25-9a50-8bfd17d08448",
		Subcategory: "Pies",
		Difficulty:  "Medium",
		Servings:    8,
		Tags:        []string{"pie"},
		IngredientGroups: []types.IngredientGroup{
			{GroupLabel: "Filling", Items: []types.IngredientLine{
				{Amount: "6", Name: "apples"},
				{Amount: "1", Unit: "cup", Name: "sugar"},
			}},
			{GroupLabel: "Crust", Items: []types.IngredientLine{{Amount: "2", Unit: "cups", Name: "flour"}}},
		},
		Instructions: []types.InstructionStep{{Index: 1, Text: "Mix."}, {Index: 2, Text: "Bake."}},
		Notes:        []string{},
		Rating:       4.5,
		DateCreated:  "2024-01-01",
		Nutrition:    &types.Nutrition{Calories: 320, Fat: "14g"},
	}
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := NewClient(types.ContentStoreConfig{
		ProjectID:  "abc123",
		Dataset:    "staging",
		APIVersion: "2024-01-01",
		BaseURL:    url,
		Token:      "tok",
	}, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return c
}

func TestClient_Put(t *testing.T) {
	var got mutateRequest
	var auth, path, contentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		path = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(data, &got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"transactionId":"tx1","results":[{"id":"recipe-apple-pie","operation":"create"}]}`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	require.NoError(t, c.Put(context.Background(), []types.NormalizedRecipe{sampleRecipe()}))

	assert.Equal(t, "Bearer tok", auth)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "/v2024-01-01/data/mutate/staging", path)
	require.Len(t, got.Mutations, 1)

	doc := got.Mutations[0].CreateOrReplace
	assert.Equal(t, "recipe-apple-pie", doc.ID)
	assert.Equal(t, "recipe", doc.Type)
	assert.Equal(t, Slug{Type: "slug", Current: "apple-pie"}, doc.Slug)
	assert.Equal(t, Reference{Type: "reference", Ref: "56230a66-83f0-4a25-9a50-8bfd17d08448"}, doc.Category)
	assert.Equal(t, "2026-03-01T12:00:00Z", doc.DateModified)
}

func TestClient_PutErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErr   string
		wantCalls int32
	}{
		{"bad request", http.StatusBadRequest, `{"error":"bad mutation"}`, "HTTP 400: {\"error\":\"bad mutation\"}", 1},
		{"unauthorized", http.StatusUnauthorized, "nope", "HTTP 401", 1},
		{"server error is not retried", http.StatusInternalServerError, "", "HTTP 500", 1},
		{"throttled until exhausted", http.StatusTooManyRequests, "", "HTTP 429", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			c, err := NewClient(types.ContentStoreConfig{
				HTTPConfig: types.HTTPConfig{MaxRetries: 2},
				BaseURL:    ts.URL,
				Token:      "tok",
			})
			require.NoError(t, err)

			err = c.Put(context.Background(), []types.NormalizedRecipe{sampleRecipe()})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestClient_EmptyBatch(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:0")
	assert.NoError(t, c.Put(context.Background(), nil))
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(types.ContentStoreConfig{ProjectID: "p", Token: "  "})
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = NewClient(types.ContentStoreConfig{Token: "t"})
	assert.ErrorIs(t, err, ErrMissingProject)

	c, err := NewClient(types.ContentStoreConfig{ProjectID: "ynsg8i79", Token: "t"})
	require.NoError(t, err)
	assert.Equal(t, "https://ynsg8i79.api.sanity.io/v2024-01-01/data/mutate/production", c.MutateURL())
}

func TestBatcherWithClient(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	recipes := make([]types.NormalizedRecipe, 0, 25)
	for i := 0; i < 25; i++ {
		r := sampleRecipe()
		r.Slug = r.Slug + "-" + string(rune('a'+i))
		recipes = append(recipes, r)
	}

	res, err := sink.NewBatcher(newTestClient(t, ts.URL), 10, 0).Run(context.Background(), recipes, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Len(t, res.Successful, 15)
	assert.Len(t, res.Failed, 10)
}
