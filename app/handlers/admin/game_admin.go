package admin

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prasetiyohadi/go-gamestore/app/helpers"
	"github.com/prasetiyohadi/go-gamestore/app/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type GameForm struct {
	Name            string `validate:"required"`
	Description     string
	BackgroundImage string
	Price           string `validate:"required"`
	Quantity        string `validate:"required,numeric"`
	Status          string `validate:"required,oneof=active inactive"`
	GenreIDs        []string
}

func (h *AdminHandler) GetGamesPage(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameRepo.GetGames(r.Context())
	if err != nil {
		logrus.Errorf("GetGamesPage: failed to load games: %v", err)
		http.Redirect(w, r, "/admin/dashboard?status=error&message="+url.QueryEscape("Failed to load games."), http.StatusSeeOther)
		return
	}

	datas := h.adminPageData(r, map[string]interface{}{
		"Title": "Game Management",
		"games": games,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/games/index", datas)
}

func (h *AdminHandler) AddGamePage(w http.ResponseWriter, r *http.Request) {
	genres, err := h.genreRepo.GetAll(r.Context())
	if err != nil {
		logrus.Errorf("AddGamePage: failed to load genres: %v", err)
	}

	datas := h.adminPageData(r, map[string]interface{}{
		"Title":      "Add Game",
		"FormAction": "/admin/games/add",
		"IsEdit":     false,
		"genres":     genres,
		"Errors":     map[string]string{},
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/games/form", datas)
}

func (h *AdminHandler) AddGamePost(w http.ResponseWriter, r *http.Request) {
	form, errs := h.parseGameForm(r)
	if len(errs) > 0 {
		h.renderGameForm(w, r, "/admin/games/add", false, form, errs)
		return
	}

	price, quantity, status, errs := h.convertGameForm(form)
	if len(errs) > 0 {
		h.renderGameForm(w, r, "/admin/games/add", false, form, errs)
		return
	}

	gameSlug := helpers.GenerateSlug(form.Name)
	exists, err := h.gameRepo.IsSlugExists(r.Context(), gameSlug)
	if err != nil {
		logrus.Errorf("AddGamePost: failed to check slug %s: %v", gameSlug, err)
		http.Redirect(w, r, "/admin/games?status=error&message="+url.QueryEscape("Failed to save game."), http.StatusSeeOther)
		return
	}
	if exists {
		h.renderGameForm(w, r, "/admin/games/add", false, form, map[string]string{"name": "A game with this name already exists."})
		return
	}

	genres, err := h.resolveGenres(r, form.GenreIDs)
	if err != nil {
		http.Redirect(w, r, "/admin/games?status=error&message="+url.QueryEscape("Failed to save game."), http.StatusSeeOther)
		return
	}

	game := &models.Game{
		ID:              uuid.New().String(),
		Name:            form.Name,
		Slug:            gameSlug,
		Description:     form.Description,
		BackgroundImage: form.BackgroundImage,
		Price:           price,
		Quantity:        quantity,
		Status:          status,
		Genres:          genres,
	}

	if err := h.gameRepo.CreateGame(r.Context(), game); err != nil {
		logrus.Errorf("AddGamePost: failed to create game %s: %v", form.Name, err)
		http.Redirect(w, r, "/admin/games?status=error&message="+url.QueryEscape("Failed to save game."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/games?status=success&message="+url.QueryEscape("Game created."), http.StatusSeeOther)
}

func (h *AdminHandler) EditGamePage(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	game, err := h.gameRepo.GetByID(r.Context(), gameID)
	if err != nil {
		logrus.Errorf("EditGamePage: failed to load game %s: %v", gameID, err)
		http.Redirect(w, r, "/admin/games?status=error&message="+url.QueryEscape("Failed to load game."), http.StatusSeeOther)
		return
	}
	if game == nil {
		http.Redirect(w, r, "/admin/games?status=error&message="+url.QueryEscape("Game not found."), http.StatusSeeOther)
		return
	}

	genres, err := h.genreRepo.GetAll(r.Context())
	if err != nil {
		logrus.Errorf("EditGamePage: failed to load genres: %v", err)
	}

	form := &GameForm{
		Name:            game.Name,
		Description:     game.Description,
		BackgroundImage: game.BackgroundImage,
		Price:           game.Price.String(),
		Quantity:        strconv.Itoa(game.Quantity),
		Status:          game.StatusLabel(),
	}
	for _, g := range game.Genres {
		form.GenreIDs = append(form.GenreIDs, g.ID)
	}

	datas := h.adminPageData(r, map[string]interface{}{
		"Title":      "Edit Game",
		"FormAction": "/admin/games/edit/" + game.ID,
		"IsEdit":     true,
		"GameData":   form,
		"genres":     genres,
		"Errors":     map[string]string{},
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/games/form", datas)
}

func (h *AdminHandler) EditGamePost(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	game, err := h.gameRepo.GetByID(r.Context(), gameID)
	if err != nil {
		logrus.Errorf("EditGamePost: failed to load game %s: %v", gameID, err)
		http.Redirect(w, r, "/admin/games?status=error&message="+url.QueryEscape("Failed to load game."), http.StatusSeeOther)
		return
	}
	if game == nil {
		http.Redirect(w, r, "/admin/games?status=error&message="+url.QueryEscape("Game not found."), http.StatusSeeOther)
		return
	}

	formAction := "/admin/games/edit/" + gameID

	form, errs := h.parseGameForm(r)
	if len(errs) > 0 {
		h.renderGameForm(w, r, formAction, true, form, errs)
		return
	}

	price, quantity, status, errs := h.convertGameForm(form)
	if len(errs) > 0 {
		h.renderGameForm(w, r, formAction, true, form, errs)
		return
	}

	if form.Name != game.Name {
		newSlug := helpers.GenerateSlug(form.Name)
		exists, err := h.gameRepo.IsSlugExists(r.Context(), newSlug)
		if err != nil {
			logrus.Errorf("EditGamePost: failed to check slug %s: %v", newSlug, err)
			http.Redirect(w, r, "/admin/games?status=error&message="+url.QueryEscape("Failed to save game."), http.StatusSeeOther)
			return
		}
		if exists {
			h.renderGameForm(w, r, formAction, true, form, map[string]string{"name": "A game with this name already exists."})
			return
		}
		game.Name = form.Name
		game.Slug = newSlug
	}

	genres, err := h.resolveGenres(r, form.GenreIDs)
	if err != nil {
		http.Redirect(w, r, "/admin/games?status=error&message="+url.QueryEscape("Failed to save game."), http.StatusSeeOther)
		return
	}

	game.Description = form.Description
	game.BackgroundImage = form.BackgroundImage
	game.Price = price
	game.Quantity = quantity
	game.Status = status
	game.Genres = genres

	if err := h.gameRepo.UpdateGame(r.Context(), game); err != nil {
		logrus.Errorf("EditGamePost: failed to update game %s: %v", gameID, err)
		http.Redirect(w, r, "/admin/games?status=error&message="+url.QueryEscape("Failed to save game."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/games?status=success&message="+url.QueryEscape("Game updated."), http.StatusSeeOther)
}

func (h *AdminHandler) parseGameForm(r *http.Request) (*GameForm, map[string]string) {
	if err := r.ParseForm(); err != nil {
		return &GameForm{}, map[string]string{"form": "Failed to read form."}
	}

	form := &GameForm{
		Name:            r.PostFormValue("name"),
		Description:     r.PostFormValue("description"),
		BackgroundImage: r.PostFormValue("background_image"),
		Price:           r.PostFormValue("price"),
		Quantity:        r.PostFormValue("quantity"),
		Status:          r.PostFormValue("status"),
		GenreIDs:        r.PostForm["genre_ids"],
	}

	if err := h.validator.Struct(form); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return form, helpers.FormatValidationErrors(validationErrs)
		}
		return form, map[string]string{"form": "Invalid form."}
	}
	return form, nil
}

func (h *AdminHandler) convertGameForm(form *GameForm) (decimal.Decimal, int, int, map[string]string) {
	errs := make(map[string]string)

	price, err := decimal.NewFromString(form.Price)
	if err != nil || price.IsNegative() {
		errs["price"] = "Price must be a non-negative number."
	}

	quantity, err := strconv.Atoi(form.Quantity)
	if err != nil || quantity < 0 {
		errs["quantity"] = "Quantity must be zero or more."
	}

	status := models.GameStatusInactive
	if form.Status == "active" {
		status = models.GameStatusActive
	}

	if len(errs) > 0 {
		return decimal.Zero, 0, 0, errs
	}
	return price, quantity, status, nil
}

func (h *AdminHandler) resolveGenres(r *http.Request, genreIDs []string) ([]models.Genre, error) {
	var genres []models.Genre
	for _, id := range genreIDs {
		genre, err := h.genreRepo.GetByID(r.Context(), id)
		if err != nil {
			logrus.Errorf("resolveGenres: failed to load genre %s: %v", id, err)
			return nil, err
		}
		if genre != nil {
			genres = append(genres, *genre)
		}
	}
	return genres, nil
}

func (h *AdminHandler) renderGameForm(w http.ResponseWriter, r *http.Request, action string, isEdit bool, form *GameForm, errs map[string]string) {
	genres, err := h.genreRepo.GetAll(r.Context())
	if err != nil {
		logrus.Errorf("renderGameForm: failed to load genres: %v", err)
	}

	title := "Add Game"
	if isEdit {
		title = "Edit Game"
	}

	datas := h.adminPageData(r, map[string]interface{}{
		"Title":      title,
		"FormAction": action,
		"IsEdit":     isEdit,
		"GameData":   form,
		"genres":     genres,
		"Errors":     errs,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/games/form", datas)
}
