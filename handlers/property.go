package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/prajwal000/Egharbari-sub001/middleware"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/services"
)

type PropertyController struct {
	properties *services.PropertyService
}

func NewPropertyController(properties *services.PropertyService) *PropertyController {
	return &PropertyController{properties: properties}
}

func queryFloat(c echo.Context, name string) *float64 {
	v, err := strconv.ParseFloat(c.QueryParam(name), 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(c echo.Context, name string) *int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return nil
	}
	return &v
}

func propertyFilterFrom(c echo.Context) models.PropertyFilter {
	return models.PropertyFilter{
		PropertyType: models.PropertyType(c.QueryParam("type")),
		Status:       models.PropertyStatus(c.QueryParam("status")),
		ListingType:  models.ListingType(c.QueryParam("listingType")),
		City:         c.QueryParam("city"),
		District:     c.QueryParam("district"),
		MinPrice:     queryFloat(c, "minPrice"),
		MaxPrice:     queryFloat(c, "maxPrice"),
		MinBedrooms:  queryInt(c, "bedrooms"),
		Featured:     queryBool(c, "featured"),
		Search:       c.QueryParam("search"),
		Sort:         c.QueryParam("sort"),
	}
}

// ListProperties returns active listings. Admins may pass all=true to
// include inactive ones.
func (pc *PropertyController) ListProperties(c echo.Context) error {
	filter := propertyFilterFrom(c)
	if !(middleware.SessionFrom(c).IsAdmin() && c.QueryParam("all") == "true") {
		active := true
		filter.Active = &active
	}
	properties, pagination, err := pc.properties.List(c.Request().Context(), filter, pageOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"properties": properties,
		"pagination": pagination,
	})
}

func (pc *PropertyController) Districts(c echo.Context) error {
	districts, err := pc.properties.Districts(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"districts": districts})
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	property, err := pc.properties.Get(c.Request().Context(), middleware.SessionFrom(c), c.Param("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"property": property})
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	var in models.PropertyInput
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	property, err := pc.properties.Create(c.Request().Context(), middleware.SessionFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Property created successfully",
		"property": property,
	})
}

// UpdateProperty applies a partial body over the stored listing.
func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	id, err := idParam(c, "property")
	if err != nil {
		return respondError(c, err)
	}
	ctx := c.Request().Context()
	current, err := pc.properties.Find(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	in := models.InputFromProperty(current)
	if err := bind(c, &in); err != nil {
		return respondError(c, err)
	}
	property, err := pc.properties.Update(ctx, middleware.SessionFrom(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Property updated successfully",
		"property": property,
	})
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	id, err := idParam(c, "property")
	if err != nil {
		return respondError(c, err)
	}
	if err := pc.properties.Delete(c.Request().Context(), middleware.SessionFrom(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, message("Property deleted successfully"))
}
