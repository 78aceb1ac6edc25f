package api

import (
	"net/http"
	"strconv"

	resdto "rental-front/internal/handler/dto/response"
	"rental-front/internal/handler/httperr"
	"rental-front/internal/pkg/errs"
	"rental-front/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog queries.CatalogQueries
}

func NewCatalogHandler(catalog queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
	}
}

// @Summary List cars
// @Description List the full car catalog
// @Tags cars
// @Produce json
// @Success 200 {array} resdto.CarResponse
// @Failure 502 {object} httperr.Response
// @Router /cars [get]
func (h *CatalogHandler) ListCars(c *gin.Context) {
	cars, err := h.catalog.ListCars(c.Request.Context())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCars(cars))
}

// @Summary Get car
// @Description Get a single car by ID
// @Tags cars
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 404 {object} httperr.Response
// @Router /cars/{id} [get]
func (h *CatalogHandler) GetCar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrCarNotFound, msgCarNotFound, nil)
		return
	}

	found, err := h.catalog.GetCar(c.Request.Context(), id)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCar(*found))
}
