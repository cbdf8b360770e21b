package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campusdining/campus-dining-api/internal/api/metrics"
	"github.com/campusdining/campus-dining-api/internal/core/ports"
)

// MenuHandler handles HTTP requests for catalog browsing and admin menu
// management.
type MenuHandler struct {
	service ports.MenuService
}

func NewMenuHandler(service ports.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// List handles GET /menu, the public catalog sorted by category then name.
// ?available=true filters to available items only.
//
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Param        available  query     bool  false  "Only return available items"
// @Success      200        {array}   menuItemResponse
// @Failure      500        {object}  errorResponse
// @Router       /menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	availableOnly, _ := strconv.ParseBool(c.QueryParam("available"))

	items, err := h.service.List(c.Request().Context(), availableOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuItemResponses(items))
}

// Get handles GET /menu/:id.
//
// @Summary      Get a menu item
// @Tags         menu
// @Produce      json
// @Param        id   path      string  true  "Menu item id"
// @Success      200  {object}  menuItemResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /menu/{id} [get]
func (h *MenuHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuItemResponse(item))
}

// Create handles POST /menu, a multipart form with the item fields and an
// optional imageFile part.
//
// @Summary      Create a menu item
// @Tags         menu
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name         formData  string  true   "Item name"
// @Param        description  formData  string  true   "Item description"
// @Param        price        formData  number  true   "Price"
// @Param        category     formData  string  true   "Entree|Side|Drink|Dessert|Special"
// @Param        imageFile    formData  file    false  "Item image"
// @Success      201  {object}  menuItemResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	rawPrice := c.FormValue("price")
	if rawPrice == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "price is required")
	}
	price, err := parsePrice(rawPrice)
	if err != nil {
		return err
	}

	req := createMenuItemRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		Category:    c.FormValue("category"),
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}
	if raw := c.FormValue("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "available must be a boolean")
		}
		input.Available = &available
	}

	image, closeImage, err := formImage(c)
	if err != nil {
		return err
	}
	defer closeImage()

	created, err := h.service.Create(c.Request().Context(), input, image)
	if err != nil {
		return err
	}

	metrics.MenuMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toMenuItemResponse(created))
}

// Update handles PUT /menu/:id, a partial multipart update. Only form fields
// that are present change the item; a new imageFile replaces the old asset.
//
// @Summary      Update a menu item
// @Tags         menu
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id         path      string  true   "Menu item id"
// @Param        imageFile  formData  file    false  "Replacement image"
// @Success      200  {object}  menuItemResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /menu/{id} [put]
func (h *MenuHandler) Update(c echo.Context) error {
	req, err := bindUpdateRequest(c)
	if err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	image, closeImage, err := formImage(c)
	if err != nil {
		return err
	}
	defer closeImage()

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available,
	}, image)
	if err != nil {
		return err
	}

	metrics.MenuMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toMenuItemResponse(updated))
}

// Delete handles DELETE /menu/:id, removing the record and its image asset.
//
// @Summary      Delete a menu item
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Menu item id"
// @Success      200  {object}  deleteMenuItemResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /menu/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.MenuMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, deleteMenuItemResponse{Message: "Menu item removed successfully."})
}

// bindUpdateRequest collects the present form fields into pointer-typed
// members; absent fields stay nil and keep their stored values. An empty
// value counts as absent too, so a cleared form input never blanks a
// stored field.
func bindUpdateRequest(c echo.Context) (updateMenuItemRequest, error) {
	var req updateMenuItemRequest

	values, err := c.FormParams()
	if err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}

	if v, ok := formField(values["name"]); ok {
		req.Name = &v
	}
	if v, ok := formField(values["description"]); ok {
		req.Description = &v
	}
	if v, ok := formField(values["category"]); ok {
		req.Category = &v
	}
	if v, ok := formField(values["price"]); ok {
		price, err := parsePrice(v)
		if err != nil {
			return req, err
		}
		req.Price = &price
	}
	if v, ok := formField(values["available"]); ok {
		available, err := strconv.ParseBool(v)
		if err != nil {
			return req, echo.NewHTTPError(http.StatusBadRequest, "available must be a boolean")
		}
		req.Available = &available
	}
	return req, nil
}

func formField(values []string) (string, bool) {
	if len(values) == 0 || values[0] == "" {
		return "", false
	}
	return values[0], true
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "price must be a number")
	}
	return price, nil
}

// formImage opens the optional imageFile part. The returned close func is
// always safe to defer.
func formImage(c echo.Context) (*ports.ImageUpload, func(), error) {
	fileHeader, err := c.FormFile("imageFile")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, func() {}, echo.NewHTTPError(http.StatusBadRequest, "invalid image upload")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, func() {}, echo.NewHTTPError(http.StatusBadRequest, "invalid image upload")
	}

	return &ports.ImageUpload{Filename: fileHeader.Filename, Reader: src}, func() { src.Close() }, nil
}
