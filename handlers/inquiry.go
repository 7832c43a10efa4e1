package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prajwal000/Egharbari-sub001/middleware"
	"github.com/prajwal000/Egharbari-sub001/models"
	"github.com/prajwal000/Egharbari-sub001/services"
)

type InquiryController struct {
	inquiries *services.InquiryService
}

func NewInquiryController(inquiries *services.InquiryService) *InquiryController {
	return &InquiryController{inquiries: inquiries}
}

func (ic *InquiryController) Create(c echo.Context) error {
	var req models.CreateInquiryRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err)
	}
	inquiry, err := ic.inquiries.Create(c.Request().Context(), middleware.SessionFrom(c), req, c.RealIP())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Inquiry submitted successfully",
		"inquiry": inquiry,
	})
}

func (ic *InquiryController) List(c echo.Context) error {
	filter := models.InquiryFilter{
		Status: models.InquiryStatus(c.QueryParam("status")),
		Type:   models.InquiryType(c.QueryParam("type")),
		IsRead: queryBool(c, "isRead"),
		Search: c.QueryParam("search"),
	}
	inquiries, pagination, err := ic.inquiries.List(c.Request().Context(), middleware.SessionFrom(c), filter, pageOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"inquiries":  inquiries,
		"pagination": pagination,
	})
}

func (ic *InquiryController) ListPropertyInquiries(c echo.Context) error {
	inquiries, pagination, err := ic.inquiries.ListPropertyInquiries(c.Request().Context(), middleware.SessionFrom(c), pageOf(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"inquiries":  inquiries,
		"pagination": pagination,
	})
}

func (ic *InquiryController) Get(c echo.Context) error {
	id, err := idParam(c, "inquiry")
	if err != nil {
		return respondError(c, err)
	}
	inquiry, err := ic.inquiries.Get(c.Request().Context(), middleware.SessionFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"inquiry": inquiry})
}

func (ic *InquiryController) UpdateStatus(c echo.Context) error {
	id, err := idParam(c, "inquiry")
	if err != nil {
		return respondError(c, err)
	}
	var req models.UpdateInquiryStatusRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err)
	}
	inquiry, err := ic.inquiries.UpdateStatus(c.Request().Context(), middleware.SessionFrom(c), id, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Inquiry updated successfully",
		"inquiry": inquiry,
	})
}

func (ic *InquiryController) Reply(c echo.Context) error {
	id, err := idParam(c, "inquiry")
	if err != nil {
		return respondError(c, err)
	}
	var req models.ReplyRequest
	if err := bind(c, &req); err != nil {
		return respondError(c, err)
	}
	inquiry, err := ic.inquiries.Reply(c.Request().Context(), middleware.SessionFrom(c), id, req.Message)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Reply added successfully",
		"inquiry": inquiry,
	})
}

func (ic *InquiryController) Delete(c echo.Context) error {
	id, err := idParam(c, "inquiry")
	if err != nil {
		return respondError(c, err)
	}
	if err := ic.inquiries.Delete(c.Request().Context(), middleware.SessionFrom(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, message("Inquiry deleted successfully"))
}
