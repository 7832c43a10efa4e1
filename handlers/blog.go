package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prajwal000/Egharbari-sub001/middleware"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/services"
)

type BlogController struct {
	blogs *services.BlogService
}

func NewBlogController(blogs *services.BlogService) *BlogController {
	return &BlogController{blogs: blogs}
}

func (bc *BlogController) List(c echo.Context) error {
	filter := models.BlogFilter{
		Category: models.BlogCategory(c.QueryParam("category")),
		Tag:      c.QueryParam("tag"),
		Search:   c.QueryParam("search"),
	}
	blogs, pagination, err := bc.blogs.List(c.Request().Context(), middleware.SessionFrom(c), filter, c.QueryParam("all") == "true", pageOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"blogs":      blogs,
		"pagination": pagination,
	})
}

func (bc *BlogController) Get(c echo.Context) error {
	blog, err := bc.blogs.Get(c.Request().Context(), middleware.SessionFrom(c), c.Param("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"blog": blog})
}

func (bc *BlogController) Create(c echo.Context) error {
	var in models.BlogInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	blog, err := bc.blogs.Create(c.Request().Context(), middleware.SessionFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Blog created successfully",
		"blog":    blog,
	})
}

func (bc *BlogController) Update(c echo.Context) error {
	id, err := idParam(c, "blog")
	if err != nil {
		return respondError(c, err)
	}
	ctx := c.Request().Context()
	current, err := bc.blogs.Find(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	in := models.InputFromBlog(current)
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	blog, err := bc.blogs.Update(ctx, middleware.SessionFrom(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Blog updated successfully",
		"blog":    blog,
	})
}

func (bc *BlogController) Delete(c echo.Context) error {
	id, err := idParam(c, "blog")
	if err != nil {
		return respondError(c, err)
	}
	if err := bc.blogs.Delete(c.Request().Context(), middleware.SessionFrom(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, message("Blog deleted successfully"))
}
