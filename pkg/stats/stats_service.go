package stats

import (
	"HomeStash-Backend/domain"
	"HomeStash-Backend/entities"
	"HomeStash-Backend/internal/utils"
	"HomeStash-Backend/pkg/item"
	"context"
	"fmt"
	"strings"
	"time"
)

type (
	// MailSender delivers the rendered expiry report. Production wiring uses
	// the SMTP helper in internal/utils/mailing.
	MailSender func(toEmail string, subject string, body string) error

	StatsService interface {
		GetInventoryStats(ctx context.Context) (domain.StatsResponse, error)
		SendExpiryReport(ctx context.Context, req domain.ExpiryReportRequest) (domain.ExpiryReportResponse, error)
	}

	statsService struct {
		statsRepository StatsRepository
		sendMail        MailSender
	}
)

func NewStatsService(statsRepository StatsRepository, sendMail MailSender) StatsService {
	return &statsService{
		statsRepository: statsRepository,
		sendMail:        sendMail,
	}
}

func (s *statsService) GetInventoryStats(ctx context.Context) (domain.StatsResponse, error) {
	snapshot, err := s.statsRepository.GetInventorySnapshot(ctx)
	if err != nil {
		return domain.StatsResponse{}, err
	}

	response := domain.StatsResponse{
		TotalItems:      snapshot.TotalItems,
		ItemsByCategory: snapshot.ItemsByCategory,
		LowStockItems:   toItemResponses(snapshot.LowStockItems),
		ExpiringSoon:    toItemResponses(snapshot.ExpiringSoon),
		RecentlyAdded:   toItemResponses(snapshot.RecentlyAdded),
		ItemsByLocation: snapshot.ItemsByLocation,
	}

	if response.ItemsByCategory == nil {
		response.ItemsByCategory = []domain.CategoryCount{}
	}
	if response.ItemsByLocation == nil {
		response.ItemsByLocation = []domain.LocationCount{}
	}

	return response, nil
}

func (s *statsService) SendExpiryReport(ctx context.Context, req domain.ExpiryReportRequest) (domain.ExpiryReportResponse, error) {
	recipient := req.Email
	if recipient == "" {
		recipient = utils.GetConfig("REPORT_EMAIL")
	}
	if recipient == "" {
		return domain.ExpiryReportResponse{}, domain.ErrNoReportRecipient
	}

	now := time.Now()
	items, err := s.statsRepository.GetExpiringItems(ctx, now, now.AddDate(0, 0, domain.ExpiringSoonDays), 0)
	if err != nil {
		return domain.ExpiryReportResponse{}, err
	}

	subject := fmt.Sprintf("Expiring items report: %d item(s) within %d days", len(items), domain.ExpiringSoonDays)
	if err := s.sendMail(recipient, subject, renderExpiryReport(items)); err != nil {
		return domain.ExpiryReportResponse{}, err
	}

	return domain.ExpiryReportResponse{
		Recipient: recipient,
		ItemCount: len(items),
	}, nil
}

func renderExpiryReport(items []*entities.Item) string {
	var b strings.Builder

	b.WriteString("<h2>Items expiring soon</h2>")
	if len(items) == 0 {
		b.WriteString("<p>Nothing expires in the next ")
		fmt.Fprintf(&b, "%d", domain.ExpiringSoonDays)
		b.WriteString(" days.</p>")
		return b.String()
	}

	b.WriteString("<table border=\"1\" cellpadding=\"4\"><tr><th>Name</th><th>Category</th><th>Quantity</th><th>Location</th><th>Expires</th></tr>")
	for _, it := range items {
		locationName := ""
		if it.StorageLocation != nil {
			locationName = fmt.Sprintf("%s (%s)", it.StorageLocation.Name, it.StorageLocation.Room)
		}
		expires := ""
		if it.ExpirationDate != nil {
			expires = it.ExpirationDate.Format("2006-01-02")
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>",
			it.Name, it.Category, it.Quantity, locationName, expires)
	}
	b.WriteString("</table>")

	return b.String()
}

func toItemResponses(items []*entities.Item) []domain.ItemResponse {
	response := make([]domain.ItemResponse, 0, len(items))
	for _, it := range items {
		response = append(response, item.ToItemResponse(it))
	}
	return response
}
