package api

import (
	"net/http"

	"rental-front/internal/domain/car"
	reqdto "rental-front/internal/handler/dto/request"
	resdto "rental-front/internal/handler/dto/response"
	"rental-front/internal/handler/httperr"
	"rental-front/internal/handler/middleware"
	"rental-front/internal/pkg/errs"
	"rental-front/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	search queries.SearchQueries
}

func NewSearchHandler(search queries.SearchQueries) *SearchHandler {
	return &SearchHandler{
		search: search,
	}
}

// @Summary Search available cars
// @Description Validate the date range and query availability
// @Tags search
// @Accept json
// @Produce json
// @Param request body reqdto.SearchRequest true "Date range"
// @Success 200 {object} resdto.SearchResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /search [post]
func (h *SearchHandler) Search(c *gin.Context) {
	visitorID, ok := middleware.GetVisitorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrStateFailed, msgGenericFailure, nil)
		return
	}

	var req reqdto.SearchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, msgMissingDates, nil)
		return
	}

	start, end := req.ParsedDates()
	view, err := h.search.Search(c.Request.Context(), visitorID, queries.SearchParams{
		StartDate: start,
		EndDate:   end,
		Order:     car.ParseSortOrder(c.Query("sort")),
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSearchView(view))
}

// @Summary Restore search results
// @Description Return the session-scoped search state without a new availability query
// @Tags search
// @Produce json
// @Param sort query string false "price-asc or price-desc"
// @Success 200 {object} resdto.SearchResponse
// @Router /search [get]
func (h *SearchHandler) Restore(c *gin.Context) {
	visitorID, ok := middleware.GetVisitorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrStateFailed, msgGenericFailure, nil)
		return
	}

	view, err := h.search.Restore(c.Request.Context(), visitorID, car.ParseSortOrder(c.Query("sort")))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSearchView(view))
}

// @Summary Change search dates
// @Description Store new dates without searching; the end date is clamped to the allowed range
// @Tags search
// @Accept json
// @Produce json
// @Param request body reqdto.ChangeDatesRequest true "Date range"
// @Success 200 {object} resdto.ChangeDatesResponse
// @Router /search/dates [put]
func (h *SearchHandler) ChangeDates(c *gin.Context) {
	visitorID, ok := middleware.GetVisitorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.ErrStateFailed, msgGenericFailure, nil)
		return
	}

	var req reqdto.ChangeDatesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, msgMissingDates, nil)
		return
	}

	start, end := req.ParsedDates()
	start, end, err := h.search.ChangeDates(c.Request.Context(), visitorID, start, end)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDates(start, end))
}
