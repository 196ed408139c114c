package models

type DashboardStats struct {
	TotalProperties int `json:"total_properties"`
	TotalClients    int `json:"total_clients"`
	ActiveDeals     int `json:"active_deals"`
}

type RecentDeal struct {
	Client   string `json:"client"`
	Property string `json:"property"`
	Amount   string `json:"amount"`
}

type NewProperty struct {
	Address string   `json:"address"`
	Type    string   `json:"type"`
	Price   *float64 `json:"price"`
}

type DashboardData struct {
	Stats         DashboardStats `json:"stats"`
	RecentDeals   []RecentDeal   `json:"recent_deals"`
	NewProperties []NewProperty  `json:"new_properties"`
}
