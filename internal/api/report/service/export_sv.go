package reportService

import (
	"fmt"
	"mordomia/internal/api/report"
	contextPkg "mordomia/pkg/context"
	"mordomia/pkg/pdf"
	"mordomia/pkg/s3"
	"mordomia/pkg/spreadsheet"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func reportFilename(month, ext string) string {
	return fmt.Sprintf("mordomia-%s.%s", month, ext)
}

func (s *reportService) RenderMonthlyPDF(ctx context.Context, query report.MonthQuery) ([]byte, string, error) {
	r, err := s.GetMonthlyReport(ctx, query)
	if err != nil {
		return nil, "", err
	}

	out, err := pdf.RenderMonthlyReport(r)
	if err != nil {
		return nil, "", s.renderFailed(ctx, query, "pdf", err)
	}

	return out, reportFilename(query.Month, "pdf"), nil
}

func (s *reportService) RenderMonthlyXLSX(ctx context.Context, query report.MonthQuery) ([]byte, string, error) {
	r, err := s.GetMonthlyReport(ctx, query)
	if err != nil {
		return nil, "", err
	}

	out, err := spreadsheet.RenderMonthlyReport(r)
	if err != nil {
		return nil, "", s.renderFailed(ctx, query, "xlsx", err)
	}

	return out, reportFilename(query.Month, "xlsx"), nil
}

// ArchiveMonthlyPDF renders the month's PDF, stores it in object storage and
// returns a short-lived download link.
func (s *reportService) ArchiveMonthlyPDF(ctx context.Context, query report.MonthQuery) (report.ArchiveResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.s3 == nil {
		return report.ArchiveResponse{}, report.ErrArchiveUnavailable
	}

	out, _, err := s.RenderMonthlyPDF(ctx, query)
	if err != nil {
		return report.ArchiveResponse{}, err
	}

	key := s3.ReportKey(query.UserID, query.Month, "pdf")
	if _, err := s.s3.UploadBytes(key, out, pdf.ContentType); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        key,
			"error":      err.Error(),
		}).Error("failed to upload report")
		return report.ArchiveResponse{}, report.ErrArchiveReport
	}

	url, err := s.s3.PresignUrl(key)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"key":        key,
			"error":      err.Error(),
		}).Error("failed to presign report url")

		if delErr := s.s3.DeleteFile(key); delErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"key":        key,
				"error":      delErr.Error(),
			}).Warn("failed to remove orphaned report")
		}
		return report.ArchiveResponse{}, report.ErrArchiveReport
	}

	return report.ArchiveResponse{
		Key:       key,
		URL:       url,
		ExpiresIn: int(s3.PresignExpiry.Seconds()),
	}, nil
}

func (s *reportService) renderFailed(ctx context.Context, query report.MonthQuery, format string, err error) error {
	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"user_id":    query.UserID,
		"month":      query.Month,
		"format":     format,
		"error":      err.Error(),
	}).Error("failed to render report")
	return report.ErrRenderReport
}
