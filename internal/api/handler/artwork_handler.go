package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/artfoliopro/portfolio-api/internal/core/ports"
)

// ArtworkHandler handles HTTP requests for catalog operations.
type ArtworkHandler struct {
	service ports.ArtworkService
}

func NewArtworkHandler(service ports.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{service: service}
}

// Create handles POST /artworks. The request is multipart: text fields plus
// an "image" file.
//
// @Summary      Publish an artwork
// @Tags         artworks
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true   "Title"
// @Param        category     formData  string  true   "Category name"
// @Param        description  formData  string  false  "Description"
// @Param        tags         formData  string  false  "Comma-separated tags"
// @Param        image        formData  file    true   "Artwork image"
// @Success      201  {object}  domain.Artwork
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /artworks [post]
func (h *ArtworkHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	upload, err := formUpload(c, "image")
	if err != nil {
		return err
	}
	defer upload.close()

	artwork, err := h.service.Create(c.Request().Context(), identity, ports.CreateArtworkInput{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Category:    strings.TrimSpace(c.FormValue("category")),
		Tags:        splitTags(c.FormValue("tags")),
		Image:       &upload.MediaUpload,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, artwork)
}

// List handles GET /artworks with optional category/artist filters and
// pagination (default limit 20, page 1).
//
// @Summary      List artworks
// @Tags         artworks
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        artist    query     string  false  "Filter by artist id"
// @Param        page      query     int     false  "Page (1-based)"
// @Param        limit     query     int     false  "Page size"
// @Success      200  {object}  listArtworksResponse
// @Router       /artworks [get]
func (h *ArtworkHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListArtworksInput{
		Category: c.QueryParam("category"),
		ArtistID: c.QueryParam("artist"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	data := make([]artworkSummaryResponse, 0, len(result.Items))
	for _, item := range result.Items {
		data = append(data, toArtworkSummary(item))
	}

	return c.JSON(http.StatusOK, listArtworksResponse{
		Data: data,
		Pagination: paginationResponse{
			Total: result.Total,
			Page:  result.Page,
			Limit: result.Limit,
			Pages: result.Pages,
		},
	})
}

// Get handles GET /artworks/:id.
//
// @Summary      Get one artwork with its artist's public profile
// @Tags         artworks
// @Produce      json
// @Param        id   path      string  true  "Artwork id"
// @Success      200  {object}  artworkDetailResponse
// @Failure      404  {object}  map[string]string
// @Router       /artworks/{id} [get]
func (h *ArtworkHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, artworkDetailResponse{
		Artwork: detail.Artwork,
		Artist:  detail.Artist,
	})
}

// Update handles PUT /artworks/:id. Only supplied fields change; only the
// owning artist may call it.
//
// @Summary      Update an artwork
// @Tags         artworks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Artwork id"
// @Param        body  body      updateArtworkRequest  true  "Fields to change"
// @Success      200   {object}  domain.Artwork
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /artworks/{id} [put]
func (h *ArtworkHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateArtworkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	artwork, err := h.service.Update(c.Request().Context(), identity, c.Param("id"), ports.ArtworkUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, artwork)
}

// Delete handles DELETE /artworks/:id.
//
// @Summary      Delete an artwork
// @Tags         artworks
// @Security     BearerAuth
// @Param        id  path  string  true  "Artwork id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /artworks/{id} [delete]
func (h *ArtworkHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListByArtist handles GET /artworks/artist/:userId — all of one artist's
// artworks, newest first, no pagination.
//
// @Summary      List one artist's artworks
// @Tags         artworks
// @Produce      json
// @Param        userId  path  string  true  "Artist id"
// @Success      200  {array}  domain.Artwork
// @Router       /artworks/artist/{userId} [get]
func (h *ArtworkHandler) ListByArtist(c echo.Context) error {
	artworks, err := h.service.ListByArtist(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artworks)
}

// splitTags turns a comma-separated form value into a clean tag list.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
