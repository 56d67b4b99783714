package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prasetiyohadi/go-gamestore/app/helpers"
	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/prasetiyohadi/go-gamestore/app/repositories"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type GameHandler struct {
	gameRepo  repositories.GameRepositoryImpl
	genreRepo repositories.GenreRepositoryImpl
	render    *render.Render
}

func NewGameHandler(gameRepo repositories.GameRepositoryImpl, genreRepo repositories.GenreRepositoryImpl, r *render.Render) *GameHandler {
	return &GameHandler{gameRepo, genreRepo, r}
}

func (h *GameHandler) Home(w http.ResponseWriter, r *http.Request) {
	featured, err := h.gameRepo.GetFeaturedGames(r.Context(), 8)
	if err != nil {
		logrus.Errorf("Home: failed to load featured games: %v", err)
		http.Error(w, "Failed to load games", http.StatusInternalServerError)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":    "Game Store",
		"featured": featured,
	})
	_ = h.render.HTML(w, http.StatusOK, "home", datas)
}

// Games lists the active catalog with optional genre filter and free-text
// name search, paginated.
func (h *GameHandler) Games(w http.ResponseWriter, r *http.Request) {
	genreSlug := r.URL.Query().Get("genre")
	query := r.URL.Query().Get("q")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit := 12
	offset := (page - 1) * limit

	var (
		games []models.Game
		total int64
		err   error
	)

	switch {
	case query != "":
		games, total, err = h.gameRepo.SearchGamesPaginated(r.Context(), query, limit, offset)
	case genreSlug != "":
		games, total, err = h.gameRepo.GetByGenreSlugPaginated(r.Context(), genreSlug, limit, offset)
	default:
		games, total, err = h.gameRepo.GetPaginated(r.Context(), limit, offset)
	}

	if err != nil {
		logrus.Errorf("Games: failed to load catalog: %v", err)
		http.Error(w, "Failed to load games", http.StatusInternalServerError)
		return
	}

	genres, err := h.genreRepo.GetAll(r.Context())
	if err != nil {
		logrus.Errorf("Games: failed to load genres: %v", err)
		http.Error(w, "Failed to load genres", http.StatusInternalServerError)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Games",
		"games":       games,
		"genres":      genres,
		"current":     page,
		"totalPages":  int((total + int64(limit) - 1) / int64(limit)),
		"genre":       genreSlug,
		"searchQuery": query,
	})
	_ = h.render.HTML(w, http.StatusOK, "games", datas)
}

func (h *GameHandler) GameDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameSlug := vars["slug"]

	if gameSlug == "" {
		http.NotFound(w, r)
		return
	}

	game, err := h.gameRepo.GetBySlug(r.Context(), gameSlug)
	if err != nil {
		logrus.Errorf("GameDetail: failed to load game %s: %v", gameSlug, err)
		http.Error(w, "Failed to load game", http.StatusInternalServerError)
		return
	}
	if game == nil {
		http.NotFound(w, r)
		return
	}

	datas := helpers.GetBaseData(r, map[string]interface{}{
		"Title": game.Name,
		"game":  game,
	})
	_ = h.render.HTML(w, http.StatusOK, "game", datas)
}
