//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"rental-front/internal/domain/car"
	"rental-front/internal/handler/api"
	resdto "rental-front/internal/handler/dto/response"
	"rental-front/internal/pkg/errs"
	"rental-front/internal/usecase/queries"
	"rental-front/tests/common/builder"
	"rental-front/tests/common/httptest"
	queriesmock "rental-front/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SearchHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockQ     *queriesmock.MockSearchQueries
	handler   *api.SearchHandler
	visitorID uuid.UUID
}

func (s *SearchHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQ = queriesmock.NewMockSearchQueries(s.mockCtrl)
	s.handler = api.NewSearchHandler(s.mockQ)
	s.visitorID = uuid.New()

	// Stand-in for the visitor middleware
	s.router.Use(func(c *gin.Context) {
		c.Set("visitor_id", s.visitorID.String())
	})
	s.router.POST("/search", s.handler.Search)
	s.router.GET("/search", s.handler.Restore)
	s.router.PUT("/search/dates", s.handler.ChangeDates)
}

func (s *SearchHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSearchHandlerSuite(t *testing.T) {
	suite.Run(t, new(SearchHandlerTestSuite))
}

func (s *SearchHandlerTestSuite) TestSearch() {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	s.Run("success: returns the searched view", func() {
		view := &queries.SearchView{
			StartDate: start,
			EndDate:   end,
			Days:      3,
			Order:     car.SortPriceAsc,
			Searched:  true,
			Cars: []queries.CarView{
				{Car: builder.NewCarBuilder().Build(), TotalPrice: 2850},
			},
		}
		s.mockQ.EXPECT().Search(gomock.Any(), s.visitorID, queries.SearchParams{
			StartDate: start,
			EndDate:   end,
			Order:     car.SortPriceAsc,
		}).Return(view, nil).Times(1)

		body := map[string]any{"startDate": "2026-09-01", "endDate": "2026-09-04"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/search", body)

		var response resdto.SearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Searched)
		s.Equal(3, response.Days)
		s.Require().Len(response.Cars, 1)
		s.Equal(int64(2850), response.Cars[0].TotalPrice)
	})

	s.Run("error: validation message is user facing", func() {
		s.mockQ.EXPECT().Search(gomock.Any(), s.visitorID, gomock.Any()).
			Return(nil, errs.ErrStartInPast).Times(1)

		body := map[string]any{"startDate": "2020-01-01", "endDate": "2020-01-04"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/search", body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Startdatum kan tidigast vara idag")
	})

	s.Run("error: unparsable dates read as missing", func() {
		s.mockQ.EXPECT().Search(gomock.Any(), s.visitorID, queries.SearchParams{Order: car.SortPriceAsc}).
			Return(nil, errs.ErrMissingDates).Times(1)

		body := map[string]any{"startDate": "not-a-date", "endDate": ""}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/search", body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Både start- och slutdatum")
	})
}

func (s *SearchHandlerTestSuite) TestRestore() {
	s.Run("passes the sort order through", func() {
		s.mockQ.EXPECT().Restore(gomock.Any(), s.visitorID, car.SortPriceDesc).
			Return(&queries.SearchView{Order: car.SortPriceDesc}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search?sort=price-desc", nil)

		var response resdto.SearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("price-desc", response.Sort)
		s.False(response.Searched)
	})
}

func (s *SearchHandlerTestSuite) TestChangeDates() {
	s.Run("returns the possibly clamped range", func() {
		start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		clamped := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		s.mockQ.EXPECT().ChangeDates(gomock.Any(), s.visitorID, start, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)).
			Return(start, clamped, nil).Times(1)

		body := map[string]any{"startDate": "2026-09-01", "endDate": "2026-09-20"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/search/dates", body)

		var response resdto.ChangeDatesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2026-09-15", response.EndDate)
	})
}
