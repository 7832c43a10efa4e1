package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prajwal000/Egharbari-sub001/apperr"
	"github.com/prajwal000/Egharbari-sub001/middleware"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/services"
)

type FavoriteController struct {
	favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favorites: favorites}
}

func (fc *FavoriteController) CreateFavorite(c echo.Context) error {
	session := middleware.SessionFrom(c)
	var req models.FavoriteRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err)
	}
	propertyID, err := services.ParseID(req.PropertyID, "property")
	if err != nil {
		return respondError(c, err)
	}
	added, err := fc.favorites.SetFavorite(c.Request().Context(), session.UserID, propertyID, true)
	if err != nil {
		return respondError(c, err)
	}
	if !added {
		return respondError(c, apperr.Conflict("Property already in favorites"))
	}
	return c.JSON(http.StatusCreated, message("Property added to favorites"))
}

func (fc *FavoriteController) GetFavorites(c echo.Context) error {
	session := middleware.SessionFrom(c)
	favorites, pagination, err := fc.favorites.List(c.Request().Context(), session.UserID, pageOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"favorites":  favorites,
		"pagination": pagination,
	})
}

// CheckFavorite answers false for anonymous callers without looking anything up.
func (fc *FavoriteController) CheckFavorite(c echo.Context) error {
	if middleware.SessionFrom(c) == nil {
		return c.JSON(http.StatusOK, map[string]bool{"isFavorite": false})
	}
	propertyID, err := services.ParseID(c.QueryParam("propertyId"), "property")
	if err != nil {
		return respondError(c, err)
	}
	ok, err := fc.favorites.IsFavorite(c.Request().Context(), middleware.SessionFrom(c), propertyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"isFavorite": ok})
}

// DeleteFavorite succeeds whether or not the favorite existed.
func (fc *FavoriteController) DeleteFavorite(c echo.Context) error {
	session := middleware.SessionFrom(c)
	propertyID, err := services.ParseID(c.QueryParam("propertyId"), "property")
	if err != nil {
		return respondError(c, err)
	}
	if _, err := fc.favorites.SetFavorite(c.Request().Context(), session.UserID, propertyID, false); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, message("Property removed from favorites"))
}
