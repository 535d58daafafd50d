package stats

import (
	"HomeStash-Backend/domain"
	"HomeStash-Backend/entities"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsRepository struct {
	snapshot InventorySnapshot
	expiring []*entities.Item
}

func (f *fakeStatsRepository) GetInventorySnapshot(_ context.Context) (InventorySnapshot, error) {
	return f.snapshot, nil
}

func (f *fakeStatsRepository) GetExpiringItems(_ context.Context, _, _ time.Time, _ int) ([]*entities.Item, error) {
	return f.expiring, nil
}

func noMail(_ string, _ string, _ string) error { return nil }

func itemWithExpiry(name string, quantity int, daysFromNow int) *entities.Item {
	expiry := time.Now().AddDate(0, 0, daysFromNow)
	return &entities.Item{
		ID:       uuid.New(),
		Name:     name,
		Category: "Food",
		Quantity: quantity,
		StorageLocation: &entities.StorageLocation{
			ID:   uuid.New(),
			Name: "Kitchen Pantry",
			Room: "Kitchen",
		},
		ExpirationDate: &expiry,
	}
}

func TestGetInventoryStatsMapsSnapshot(t *testing.T) {
	repo := &fakeStatsRepository{
		snapshot: InventorySnapshot{
			TotalItems: 12,
			ItemsByCategory: []domain.CategoryCount{
				{Category: "Food", Count: 8},
				{Category: "Tools", Count: 4},
			},
			LowStockItems: []*entities.Item{itemWithExpiry("Olive Oil", 2, 90)},
			ExpiringSoon:  []*entities.Item{itemWithExpiry("Milk", 1, 3)},
			RecentlyAdded: []*entities.Item{itemWithExpiry("Pasta", 4, 300)},
			ItemsByLocation: []domain.LocationCount{
				{ID: uuid.New(), Name: "Kitchen Pantry", Room: "Kitchen", Count: 8},
			},
		},
	}
	service := NewStatsService(repo, noMail)

	res, err := service.GetInventoryStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.TotalItems)
	require.Len(t, res.LowStockItems, 1)
	assert.Equal(t, "Olive Oil", res.LowStockItems[0].Name)
	require.NotNil(t, res.LowStockItems[0].StorageLocation)
	assert.Equal(t, "Kitchen", res.LowStockItems[0].StorageLocation.Room)
	require.Len(t, res.ExpiringSoon, 1)
	assert.Equal(t, "Milk", res.ExpiringSoon[0].Name)
	require.Len(t, res.ItemsByLocation, 1)
	assert.Equal(t, int64(8), res.ItemsByLocation[0].Count)
}

func TestGetInventoryStatsEmptyDatabase(t *testing.T) {
	service := NewStatsService(&fakeStatsRepository{}, noMail)

	res, err := service.GetInventoryStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.TotalItems)
	assert.NotNil(t, res.ItemsByCategory)
	assert.NotNil(t, res.ItemsByLocation)
	assert.Empty(t, res.LowStockItems)
	assert.Empty(t, res.ExpiringSoon)
	assert.Empty(t, res.RecentlyAdded)
}

func TestSendExpiryReportWithoutRecipient(t *testing.T) {
	service := NewStatsService(&fakeStatsRepository{}, noMail)

	_, err := service.SendExpiryReport(context.Background(), domain.ExpiryReportRequest{})
	assert.ErrorIs(t, err, domain.ErrNoReportRecipient)
}

func TestSendExpiryReportRendersItems(t *testing.T) {
	repo := &fakeStatsRepository{
		expiring: []*entities.Item{
			itemWithExpiry("Milk", 1, 3),
			itemWithExpiry("Yogurt", 2, 10),
		},
	}

	var gotTo, gotSubject, gotBody string
	mailer := func(to, subject, body string) error {
		gotTo, gotSubject, gotBody = to, subject, body
		return nil
	}
	service := NewStatsService(repo, mailer)

	res, err := service.SendExpiryReport(context.Background(), domain.ExpiryReportRequest{
		Email: "householder@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "householder@example.com", res.Recipient)
	assert.Equal(t, 2, res.ItemCount)
	assert.Equal(t, "householder@example.com", gotTo)
	assert.Contains(t, gotSubject, "2 item(s)")
	assert.Contains(t, gotBody, "Milk")
	assert.Contains(t, gotBody, "Yogurt")
	assert.Contains(t, gotBody, "Kitchen Pantry (Kitchen)")
}

func TestRenderExpiryReportEmpty(t *testing.T) {
	body := renderExpiryReport(nil)
	assert.True(t, strings.Contains(body, "Nothing expires"))
}
