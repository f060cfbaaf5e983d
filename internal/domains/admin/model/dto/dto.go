package dto

import checkoutDto "frontdesk/internal/domains/checkout/model/dto"

type DashboardResponse struct {
	CheckedInGuests int                            `json:"checkedInGuests"`
	TotalCheckouts  int                            `json:"totalCheckouts"`
	TodayCheckouts  int                            `json:"todayCheckouts"`
	RecentCheckouts []checkoutDto.CheckoutResponse `json:"recentCheckouts"`
}
