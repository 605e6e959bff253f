package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
	"github.com/artfoliopro/portfolio-api/internal/core/ports"
)

type EnquiryHandler struct {
	service ports.EnquiryService
}

func NewEnquiryHandler(service ports.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{service: service}
}

type createEnquiryRequest struct {
	ArtistID  string `json:"artist_id"  validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Message   string `json:"message"    validate:"required"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create handles POST /enquiries. The route is public; when a valid bearer
// token with role client accompanies the request the enquiry records that
// identity as the sending client.
//
// @Summary      Submit an enquiry to an artist
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Param        body  body      createEnquiryRequest  true  "Enquiry"
// @Success      201   {object}  domain.Enquiry
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /enquiries [post]
func (h *EnquiryHandler) Create(c echo.Context) error {
	var req createEnquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateEnquiryInput{
		ArtistID:  req.ArtistID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Message:   req.Message,
	}
	if identity := ctxOptionalIdentity(c); identity.Role == domain.RoleClient {
		input.ClientID = identity.UserID
	}

	enquiry, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, enquiry)
}

// List handles GET /enquiries — the calling artist's inbox, newest first.
//
// @Summary      List the caller's enquiries
// @Tags         enquiries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Enquiry
// @Failure      403  {object}  map[string]string
// @Router       /enquiries [get]
func (h *EnquiryHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	enquiries, err := h.service.ListForArtist(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enquiries)
}

// Get handles GET /enquiries/:id. Reading a pending enquiry moves it to read.
//
// @Summary      Get one enquiry
// @Tags         enquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Enquiry id"
// @Success      200  {object}  domain.Enquiry
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /enquiries/{id} [get]
func (h *EnquiryHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	enquiry, err := h.service.Get(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enquiry)
}

// SetStatus handles PUT /enquiries/:id/status.
//
// @Summary      Update an enquiry's status
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Enquiry id"
// @Param        body  body      setStatusRequest  true  "New status"
// @Success      200   {object}  domain.Enquiry
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /enquiries/{id}/status [put]
func (h *EnquiryHandler) SetStatus(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	enquiry, err := h.service.SetStatus(c.Request().Context(), identity, c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enquiry)
}
