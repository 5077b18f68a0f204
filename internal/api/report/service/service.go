package reportService

import (
	"mordomia/internal/api/report"
	bankRepository "mordomia/internal/api/bank/repository"
	financeRepository "mordomia/internal/api/finance/repository"
	goalRepository "mordomia/internal/api/goal/repository"
	"mordomia/pkg/gemini"
	"mordomia/pkg/s3"
	"mordomia/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const defaultDashboardMonths = 6

type IReportService interface {
	GetDashboard(ctx context.Context, query report.DashboardQuery) (report.Dashboard, error)
	GetMonthlyReport(ctx context.Context, query report.MonthQuery) (report.MonthlyReport, error)

	RenderMonthlyPDF(ctx context.Context, query report.MonthQuery) ([]byte, string, error)
	RenderMonthlyXLSX(ctx context.Context, query report.MonthQuery) ([]byte, string, error)
	ArchiveMonthlyPDF(ctx context.Context, query report.MonthQuery) (report.ArchiveResponse, error)
}

type reportService struct {
	log               *logrus.Logger
	financeRepository financeRepository.Repository
	bankRepository    bankRepository.Repository
	goalRepository    goalRepository.Repository
	gemini            gemini.IGemini
	s3                s3.ItfS3
	utils             utils.IUtils
}

// NewReportService builds the reporting service. gemini and s3 may be nil:
// reports then carry the rule-based assessment and archiving is refused.
func NewReportService(
	log *logrus.Logger,
	fr financeRepository.Repository,
	br bankRepository.Repository,
	gr goalRepository.Repository,
	gemini gemini.IGemini,
	s3 s3.ItfS3,
	utils utils.IUtils,
) IReportService {
	return &reportService{
		log:               log,
		financeRepository: fr,
		bankRepository:    br,
		goalRepository:    gr,
		gemini:            gemini,
		s3:                s3,
		utils:             utils,
	}
}
