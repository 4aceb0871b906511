package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/newshub/pkg/db"
)

// newsListResponse is the paginated envelope for article listings
type newsListResponse struct {
	News       []db.ArticleDetail `json:"news"`
	Pagination struct {
		CurrentPage int   `json:"current_page"`
		LastPage    int   `json:"last_page"`
		PerPage     int   `json:"per_page"`
		Total       int64 `json:"total"`
	} `json:"pagination"`
}

// newsListHandler returns paginated articles with optional filters and
// per-user preference personalization
func (s *Server) newsListHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := intParam(q.Get("page"), 1)
	if page < 1 {
		page = 1
	}
	perPage := intParam(q.Get("per_page"), 20)
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	req := db.ArticlesRequest{
		Search: q.Get("search"),
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}

	if days := intParam(q.Get("days"), 0); days > 0 {
		req.Since = time.Now().AddDate(0, 0, -days)
	}

	if slug := q.Get("category"); slug != "" {
		category, err := s.store.GetCategoryBySlug(r.Context(), slug)
		if err != nil {
			RenderError(w, r, fmt.Errorf("unknown category %q", slug), http.StatusBadRequest)
			return
		}
		req.CategoryID = category.ID
	}

	if slug := q.Get("source"); slug != "" {
		source, err := s.store.GetSourceBySlug(r.Context(), slug)
		if err != nil {
			RenderError(w, r, fmt.Errorf("unknown source %q", slug), http.StatusBadRequest)
			return
		}
		req.SourceID = source.ID
	}

	if userID := q.Get("user_id"); userID != "" {
		pref, err := s.store.GetPreference(r.Context(), userID)
		if err != nil {
			RenderError(w, r, err, http.StatusInternalServerError)
			return
		}
		req.PreferredSources = pref.PreferredSources
		req.PreferredCategories = pref.PreferredCategories
		req.ExcludedSources = pref.ExcludedSources
		req.ExcludedCategories = pref.ExcludedCategories
	}

	articles, total, err := s.store.ListArticles(r.Context(), req)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := newsListResponse{News: articles}
	if resp.News == nil {
		resp.News = []db.ArticleDetail{}
	}
	resp.Pagination.CurrentPage = page
	resp.Pagination.PerPage = perPage
	resp.Pagination.Total = total
	resp.Pagination.LastPage = int((total + int64(perPage) - 1) / int64(perPage))
	if resp.Pagination.LastPage < 1 {
		resp.Pagination.LastPage = 1
	}

	RenderJSON(w, r, http.StatusOK, resp)
}

// newsHandler returns a single article by id
func (s *Server) newsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid article id"), http.StatusBadRequest)
		return
	}

	article, err := s.store.GetArticle(r.Context(), id)
	if err != nil {
		RenderError(w, r, err, http.StatusNotFound)
		return
	}
	RenderJSON(w, r, http.StatusOK, article)
}

// trendingHandler returns the most recent articles from the last 24 hours,
// honoring the caller's preferred sources and categories
func (s *Server) trendingHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := intParam(q.Get("limit"), 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	req := db.ArticlesRequest{
		Since: time.Now().Add(-24 * time.Hour),
		Limit: limit,
	}

	if userID := q.Get("user_id"); userID != "" {
		pref, err := s.store.GetPreference(r.Context(), userID)
		if err != nil {
			RenderError(w, r, err, http.StatusInternalServerError)
			return
		}
		req.PreferredSources = pref.PreferredSources
		req.PreferredCategories = pref.PreferredCategories
	}

	articles, _, err := s.store.ListArticles(r.Context(), req)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if articles == nil {
		articles = []db.ArticleDetail{}
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"news": articles})
}

// categoriesHandler returns the active category taxonomy
func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.GetEnabledCategories(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if categories == nil {
		categories = []db.Category{}
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"categories": categories})
}

// sourcesHandler returns the active sources
func (s *Server) sourcesHandler(w http.ResponseWriter, r *http.Request) {
	sources, err := s.store.GetEnabledSources(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if sources == nil {
		sources = []db.Source{}
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"sources": sources})
}

// getPreferencesHandler returns preferences for a user along with the
// available sources and categories to pick from
func (s *Server) getPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	pref, err := s.store.GetPreference(r.Context(), userID)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	sources, err := s.store.GetEnabledSources(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	categories, err := s.store.GetEnabledCategories(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"preferences":          pref,
		"available_sources":    sources,
		"available_categories": categories,
	})
}

// updatePreferencesHandler replaces the preference record for a user
func (s *Server) updatePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")

	var pref db.UserPreference
	if err := json.NewDecoder(r.Body).Decode(&pref); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	pref.UserID = userID

	if err := s.store.UpsertPreference(r.Context(), &pref); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	updated, err := s.store.GetPreference(r.Context(), userID)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"preferences": updated})
}

// aggregateHandler triggers a manual aggregation run, either for one source
// or for all ready sources
func (s *Server) aggregateHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if slug := q.Get("source"); slug != "" {
		force := q.Get("force") == "true" || q.Get("force") == "1"
		result, err := s.aggregator.RunOne(r.Context(), slug, force)
		if err != nil {
			RenderError(w, r, err, http.StatusBadRequest)
			return
		}
		RenderJSON(w, r, http.StatusOK, map[string]interface{}{"results": []interface{}{result}})
		return
	}

	results, err := s.aggregator.RunAll(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"results": results})
}

// intParam parses an integer query parameter with a default
func intParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return val
}
