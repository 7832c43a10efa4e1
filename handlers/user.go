package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prajwal000/Egharbari-sub001/middleware"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/services"
)

// UserController serves the admin account management routes.
type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (uc *UserController) List(c echo.Context) error {
	filter := models.UserFilter{
		Search:   c.QueryParam("search"),
		Role:     models.Role(c.QueryParam("role")),
		IsActive: queryBool(c, "isActive"),
	}
	users, pagination, err := uc.users.List(c.Request().Context(), middleware.SessionFrom(c), filter, pageOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"users":      users,
		"pagination": pagination,
	})
}

func (uc *UserController) Get(c echo.Context) error {
	id, err := idParam(c, "user")
	if err != nil {
		return respondError(c, err)
	}
	user, err := uc.users.Get(c.Request().Context(), middleware.SessionFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"user": user})
}

func (uc *UserController) Update(c echo.Context) error {
	id, err := idParam(c, "user")
	if err != nil {
		return respondError(c, err)
	}
	var req models.AdminUpdateUserRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err)
	}
	user, err := uc.users.AdminUpdate(c.Request().Context(), middleware.SessionFrom(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "User updated successfully",
		"user":    user,
	})
}

func (uc *UserController) Delete(c echo.Context) error {
	id, err := idParam(c, "user")
	if err != nil {
		return respondError(c, err)
	}
	if err := uc.users.Delete(c.Request().Context(), middleware.SessionFrom(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, message("User deleted successfully"))
}
