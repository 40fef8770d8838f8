package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"budget-watch/internal/services"
	"budget-watch/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	echo          *echo.Echo
	ctrl          *gomock.Controller
	mockReportSvc *service_mocks.MockReportServiceInterface
	mockReport    *service_mocks.MockReportInterface
	handler       *ReportHandler
	userID        uuid.UUID
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockReportSvc = service_mocks.NewMockReportServiceInterface(s.ctrl)
	s.mockReport = service_mocks.NewMockReportInterface(s.ctrl)
	s.handler = NewReportHandler(s.mockReportSvc)
	s.userID = uuid.New()
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportHandlerTestSuite) TestGenerateReport_DetailedCSV() {
	content := []byte("date,description,merchant,category,amount\n2026-06-02,Rent,,Housing,-1200.00\n")
	from := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)

	s.mockReportSvc.EXPECT().
		GenerateReport(gomock.Any(), s.userID, "detailed", services.ReportOptions{From: from, To: to}).
		Return(s.mockReport, nil)
	s.mockReport.EXPECT().Generate().Return(content, nil)
	s.mockReport.EXPECT().Filename().Return("transactions_2026-06-01_2026-06-30.csv")
	s.mockReport.EXPECT().ContentType().Return("text/csv")

	c, rec := newRequestContext(s.echo, http.MethodGet, "/?from=2026-06-01&to=2026-06-30", "", s.userID)
	c.SetParamNames("type")
	c.SetParamValues("detailed")

	s.Require().NoError(s.handler.GenerateReport(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/csv", rec.Header().Get(echo.HeaderContentType))
	s.Equal(`attachment; filename="transactions_2026-06-01_2026-06-30.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
	s.Equal(content, rec.Body.Bytes())
}

func (s *ReportHandlerTestSuite) TestGenerateReport_TaxYear() {
	s.mockReportSvc.EXPECT().
		GenerateReport(gomock.Any(), s.userID, "TAX", services.ReportOptions{Year: 2024}).
		Return(s.mockReport, nil)
	s.mockReport.EXPECT().Generate().Return([]byte("TAX SUMMARY 2024\n"), nil)
	s.mockReport.EXPECT().Filename().Return("tax_summary_2024.txt")
	s.mockReport.EXPECT().ContentType().Return("text/plain; charset=utf-8")

	c, rec := newRequestContext(s.echo, http.MethodGet, "/?year=2024", "", s.userID)
	c.SetParamNames("type")
	c.SetParamValues("TAX")

	s.Require().NoError(s.handler.GenerateReport(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "2024")
}

func (s *ReportHandlerTestSuite) TestGenerateReport_UnknownType() {
	s.mockReportSvc.EXPECT().GenerateReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	c, rec := newRequestContext(s.echo, http.MethodGet, "/", "", s.userID)
	c.SetParamNames("type")
	c.SetParamValues("quarterly")

	s.Require().NoError(s.handler.GenerateReport(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("REPORT_001", responseErrorCode(s.T(), rec))
}

func (s *ReportHandlerTestSuite) TestGenerateReport_InvalidParameters() {
	testCases := []struct {
		name  string
		query string
	}{
		{"bad from", "/?from=June"},
		{"bad to", "/?to=2026-13-01"},
		{"bad year", "/?year=twenty"},
		{"year out of range", "/?year=42"},
	}

	s.mockReportSvc.EXPECT().GenerateReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := newRequestContext(s.echo, http.MethodGet, tc.query, "", s.userID)
			c.SetParamNames("type")
			c.SetParamValues("summary")

			s.Require().NoError(s.handler.GenerateReport(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("VALIDATION_005", responseErrorCode(s.T(), rec))
		})
	}
}

func (s *ReportHandlerTestSuite) TestGenerateReport_RangeRejectedByService() {
	s.mockReportSvc.EXPECT().
		GenerateReport(gomock.Any(), s.userID, "summary", gomock.Any()).
		Return(nil, services.ErrInvalidDateRange)

	c, rec := newRequestContext(s.echo, http.MethodGet, "/?from=2026-06-30&to=2026-06-01", "", s.userID)
	c.SetParamNames("type")
	c.SetParamValues("summary")

	s.Require().NoError(s.handler.GenerateReport(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ReportHandlerTestSuite) TestGenerateReport_RenderFailure() {
	s.mockReportSvc.EXPECT().GenerateReport(gomock.Any(), s.userID, "summary", gomock.Any()).Return(s.mockReport, nil)
	s.mockReport.EXPECT().Generate().Return(nil, errors.New("failed to write csv"))

	c, rec := newRequestContext(s.echo, http.MethodGet, "/", "", s.userID)
	c.SetParamNames("type")
	c.SetParamValues("summary")

	s.Require().NoError(s.handler.GenerateReport(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", responseErrorCode(s.T(), rec))
}
