package dto

// SummaryResponse contadores do dashboard de estoque.
type SummaryResponse struct {
	TotalItems      int `json:"total_items"`
	ItemsInStock    int `json:"items_in_stock"`
	ItemsLow        int `json:"items_low"`
	ItemsCritical   int `json:"items_critical"`
	MovementsToday  int `json:"movements_today"`
	TotalCategories int `json:"total_categories"`
}
