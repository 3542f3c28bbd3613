package handlers_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/filmbox/movie-collection-website/internal/domain"
	"github.com/filmbox/movie-collection-website/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionHandler_RequiresAuth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	paths := map[string]func() *http.Response{
		"list":   func() *http.Response { return testutil.GetJSON(t, ts.URL("/collection_items"), "") },
		"create": func() *http.Response { return testutil.PostJSON(t, ts.URL("/collection_items"), "", map[string]any{}) },
		"delete": func() *http.Response { return testutil.Delete(t, ts.URL("/collection_items/"+uuid.NewString()), "") },
	}

	for name, call := range paths {
		t.Run(name, func(t *testing.T) {
			resp := call()
			defer resp.Body.Close()
			testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Unauthorized")
		})
	}
}

func TestCollectionHandler_CRUD(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	var created domain.CollectionItem

	t.Run("create", func(t *testing.T) {
		resp := testutil.PostJSON(t, ts.URL("/collection_items"), token, map[string]any{
			"tmdbId":      603,
			"title":       "The Matrix",
			"posterPath":  "/matrix.jpg",
			"releaseDate": "1999-03-30",
			"voteAverage": 8.2,
			"overview":    "A hacker learns the truth.",
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusCreated)
		testutil.AssertJSONResponse(t, resp, &created)
		assert.Equal(t, 603, created.TmdbID)
		assert.Equal(t, "The Matrix", created.Title)
	})

	t.Run("create duplicate", func(t *testing.T) {
		resp := testutil.PostJSON(t, ts.URL("/collection_items"), token, map[string]any{
			"tmdbId": 603,
			"title":  "The Matrix",
		})
		defer resp.Body.Close()

		testutil.AssertFieldErrors(t, resp, http.StatusUnprocessableEntity, "tmdbId")
	})

	t.Run("create without required fields", func(t *testing.T) {
		resp := testutil.PostJSON(t, ts.URL("/collection_items"), token, map[string]any{
			"overview": "no title or id",
		})
		defer resp.Body.Close()

		testutil.AssertFieldErrors(t, resp, http.StatusUnprocessableEntity, "tmdbId", "title")
	})

	t.Run("list", func(t *testing.T) {
		resp := testutil.GetJSON(t, ts.URL("/collection_items"), token)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var items []domain.CollectionItem
		testutil.AssertJSONResponse(t, resp, &items)
		require.Len(t, items, 1)
		assert.Equal(t, created.ID, items[0].ID)
	})

	t.Run("show", func(t *testing.T) {
		resp := testutil.GetJSON(t, ts.URL("/collection_items/"+created.ID.String()), token)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var item domain.CollectionItem
		testutil.AssertJSONResponse(t, resp, &item)
		assert.Equal(t, created.ID, item.ID)
	})

	t.Run("update", func(t *testing.T) {
		resp := testutil.PutJSON(t, ts.URL("/collection_items/"+created.ID.String()), token, map[string]any{
			"voteAverage": 8.7,
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var item domain.CollectionItem
		testutil.AssertJSONResponse(t, resp, &item)
		assert.Equal(t, 8.7, item.VoteAverage)
		assert.Equal(t, "The Matrix", item.Title, "absent fields stay put")
	})

	t.Run("destroy", func(t *testing.T) {
		resp := testutil.Delete(t, ts.URL("/collection_items/"+created.ID.String()), token)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusNoContent)

		getResp := testutil.GetJSON(t, ts.URL("/collection_items/"+created.ID.String()), token)
		defer getResp.Body.Close()
		testutil.AssertErrorResponse(t, getResp, http.StatusNotFound, "Not found")
	})
}

func TestCollectionHandler_OtherUsersItemsAreInvisible(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	item := testutil.NewCollectionItemBuilder(owner.ID).Build(t, ts.DB.DB)

	_, strangerToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	t.Run("show", func(t *testing.T) {
		resp := testutil.GetJSON(t, ts.URL("/collection_items/"+item.ID.String()), strangerToken)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Not found")
	})

	t.Run("update", func(t *testing.T) {
		resp := testutil.PutJSON(t, ts.URL("/collection_items/"+item.ID.String()), strangerToken, map[string]any{
			"title": "Hijacked",
		})
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Not found")
	})

	t.Run("destroy", func(t *testing.T) {
		resp := testutil.Delete(t, ts.URL("/collection_items/"+item.ID.String()), strangerToken)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Not found")
	})

	t.Run("list excludes them", func(t *testing.T) {
		resp := testutil.GetJSON(t, ts.URL("/collection_items"), strangerToken)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var items []domain.CollectionItem
		testutil.AssertJSONResponse(t, resp, &items)
		assert.Empty(t, items)
	})
}

func TestCollectionHandler_EmptyListIsAnArray(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	resp := testutil.GetJSON(t, ts.URL("/collection_items"), token)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	// Clients iterate the array directly, so an empty collection must be
	// [] and never null.
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(body)))
}

func TestCollectionHandler_ListSort(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	testutil.NewCollectionItemBuilder(user.ID).WithTmdbID(1).WithTitle("Zodiac").Build(t, ts.DB.DB)
	testutil.NewCollectionItemBuilder(user.ID).WithTmdbID(2).WithTitle("Alien").Build(t, ts.DB.DB)

	resp := testutil.GetJSON(t, ts.URL("/collection_items?sort=title"), token)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var items []domain.CollectionItem
	testutil.AssertJSONResponse(t, resp, &items)
	require.Len(t, items, 2)
	assert.Equal(t, "Alien", items[0].Title)
	assert.Equal(t, "Zodiac", items[1].Title)
}
