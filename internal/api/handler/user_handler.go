package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artfoliopro/portfolio-api/internal/core/domain"
	"github.com/artfoliopro/portfolio-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateProfileRequest struct {
	DisplayName       *string             `json:"display_name"`
	Location          *string             `json:"location"`
	Bio               *string             `json:"bio"`
	ProfessionalTitle *string             `json:"professional_title"`
	Website           *string             `json:"website"`
	SocialLinks       *domain.SocialLinks `json:"social_links"`
	Categories        []string            `json:"categories"`
}

type profileImageResponse struct {
	ProfileImage string       `json:"profile_image"`
	User         *domain.User `json:"user"`
}

type savedArtistsResponse struct {
	SavedArtists []string `json:"saved_artists"`
}

// GetProfile handles GET /user/profile.
//
// @Summary      Get the caller's profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /user/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /user/profile. Only supplied fields change.
//
// @Summary      Update the caller's profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /user/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), identity.UserID, ports.ProfileUpdate{
		DisplayName:       req.DisplayName,
		Location:          req.Location,
		Bio:               req.Bio,
		ProfessionalTitle: req.ProfessionalTitle,
		Website:           req.Website,
		SocialLinks:       req.SocialLinks,
		Categories:        req.Categories,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// SetProfileImage handles POST /user/profile-image (multipart field "profile_image").
//
// @Summary      Upload a profile image
// @Tags         user
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        profile_image  formData  file  true  "Image file"
// @Success      200  {object}  profileImageResponse
// @Failure      413  {object}  map[string]string
// @Failure      415  {object}  map[string]string
// @Router       /user/profile-image [post]
func (h *UserHandler) SetProfileImage(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	upload, err := formUpload(c, "profile_image")
	if err != nil {
		return err
	}
	defer upload.close()

	user, err := h.userService.SetProfileImage(c.Request().Context(), identity.UserID, upload.MediaUpload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileImageResponse{ProfileImage: user.ProfileImage, User: user})
}

// GetPublicProfile handles GET /user/:id.
//
// @Summary      Get a public profile
// @Tags         user
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /user/{id} [get]
func (h *UserHandler) GetPublicProfile(c echo.Context) error {
	user, err := h.userService.GetPublicProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ListArtists handles GET /user/artists/all.
//
// @Summary      List all artists
// @Tags         user
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /user/artists/all [get]
func (h *UserHandler) ListArtists(c echo.Context) error {
	artists, err := h.userService.ListArtists(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artists)
}

// SaveArtist handles POST /user/save-artist/:id.
//
// @Summary      Save an artist to the caller's list
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Artist id"
// @Success      200  {object}  savedArtistsResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /user/save-artist/{id} [post]
func (h *UserHandler) SaveArtist(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	saved, err := h.userService.SaveArtist(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, savedArtistsResponse{SavedArtists: saved})
}

// UnsaveArtist handles DELETE /user/save-artist/:id. Removing an artist that
// is not in the list is a no-op returning the unchanged list.
//
// @Summary      Remove an artist from the caller's list
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Artist id"
// @Success      200  {object}  savedArtistsResponse
// @Router       /user/save-artist/{id} [delete]
func (h *UserHandler) UnsaveArtist(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	saved, err := h.userService.UnsaveArtist(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, savedArtistsResponse{SavedArtists: saved})
}

// ListSavedArtists handles GET /user/saved-artists.
//
// @Summary      List the caller's saved artists
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /user/saved-artists [get]
func (h *UserHandler) ListSavedArtists(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	artists, err := h.userService.ListSavedArtists(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artists)
}
