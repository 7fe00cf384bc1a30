package server

import (
	"net/http"
	"testing"

	"ladle/internal/models"
	"ladle/internal/testutil"
)

func TestSubscriptionFlow(t *testing.T) {
	t.Parallel()

	s, app, db := newTestServer(t)
	follower := testutil.SeedUser(t, db, "follower")
	author := testutil.SeedUser(t, db, "author")
	_, ingredients := testutil.SeedCatalog(t, db)
	testutil.SeedRecipe(t, db, author, "pie", nil, []models.RecipeIngredient{
		{IngredientID: ingredients[0].ID, Amount: 100},
	})
	token := tokenFor(t, s, follower)

	// subscribing to yourself is rejected
	resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/users/1/subscribe", token, nil))
	wantStatus(t, resp, http.StatusBadRequest)

	resp = doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/users/2/subscribe", token, nil))
	wantStatus(t, resp, http.StatusCreated)

	var view models.SubscriptionView
	decodeBody(t, resp, &view)
	if view.Author.Username != "author" || view.RecipesCount != 1 || len(view.Recipes) != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}

	// duplicate subscribe is a client error
	resp = doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/users/2/subscribe", token, nil))
	wantStatus(t, resp, http.StatusBadRequest)

	// unknown author is a 404
	resp = doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/users/999/subscribe", token, nil))
	wantStatus(t, resp, http.StatusNotFound)

	var page struct {
		Count   int64                     `json:"count"`
		Results []models.SubscriptionView `json:"results"`
	}
	resp = doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/users/subscriptions", token, nil))
	wantStatus(t, resp, http.StatusOK)
	decodeBody(t, resp, &page)
	if page.Count != 1 || page.Results[0].Author.ID != 2 {
		t.Fatalf("unexpected listing: %+v", page)
	}

	resp = doRequest(t, app, jsonRequest(t, http.MethodDelete, "/api/users/2/subscribe", token, nil))
	wantStatus(t, resp, http.StatusNoContent)

	// removing an absent subscription is a client error
	resp = doRequest(t, app, jsonRequest(t, http.MethodDelete, "/api/users/2/subscribe", token, nil))
	wantStatus(t, resp, http.StatusBadRequest)
}

// Publishing after subscribing shows up in the listing immediately.
func TestSubscriptionListingLiveCount(t *testing.T) {
	t.Parallel()

	s, app, db := newTestServer(t)
	follower := testutil.SeedUser(t, db, "follower")
	author := testutil.SeedUser(t, db, "author")
	_, ingredients := testutil.SeedCatalog(t, db)
	token := tokenFor(t, s, follower)

	resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/users/2/subscribe", token, nil))
	wantStatus(t, resp, http.StatusCreated)

	testutil.SeedRecipe(t, db, author, "pie", nil, []models.RecipeIngredient{
		{IngredientID: ingredients[0].ID, Amount: 100},
	})

	var page struct {
		Results []models.SubscriptionView `json:"results"`
	}
	resp = doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/users/subscriptions", token, nil))
	wantStatus(t, resp, http.StatusOK)
	decodeBody(t, resp, &page)
	if page.Results[0].RecipesCount != 1 {
		t.Fatalf("expected live recipe count 1, got %d", page.Results[0].RecipesCount)
	}
}
