package domain

import (
	"errors"

	"github.com/google/uuid"
)

const (
	// LowStockThreshold marks an item as low stock when its quantity is at
	// or below this value.
	LowStockThreshold = 2

	// ExpiringSoonDays is the lookahead window for the expiring-soon bucket.
	ExpiringSoonDays = 30

	LowStockLimit      = 10
	ExpiringSoonLimit  = 10
	RecentlyAddedLimit = 5
)

var (
	MessageSuccessGetStats     = "inventory statistics retrieved successfully"
	MessageSuccessExpiryReport = "expiry report sent successfully"

	MessageFailedGetStats     = "failed to retrieve inventory statistics"
	MessageFailedExpiryReport = "failed to send expiry report"

	ErrNoReportRecipient = errors.New("no report recipient configured")
)

type (
	CategoryCount struct {
		Category string `json:"category"`
		Count    int64  `json:"count"`
	}

	LocationCount struct {
		ID    uuid.UUID `json:"id"`
		Name  string    `json:"name"`
		Room  string    `json:"room"`
		Count int64     `json:"count"`
	}

	StatsResponse struct {
		TotalItems      int64           `json:"total_items"`
		ItemsByCategory []CategoryCount `json:"items_by_category"`
		LowStockItems   []ItemResponse  `json:"low_stock_items"`
		ExpiringSoon    []ItemResponse  `json:"expiring_soon"`
		RecentlyAdded   []ItemResponse  `json:"recently_added"`
		ItemsByLocation []LocationCount `json:"items_by_location"`
	}

	ExpiryReportRequest struct {
		Email string `json:"email" validate:"omitempty,email"`
	}

	ExpiryReportResponse struct {
		Recipient string `json:"recipient"`
		ItemCount int    `json:"item_count"`
	}
)
