package dto

type CategoryRequest struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Color string  `json:"color"`
	Icon  *string `json:"icon"`
}

type CategoryResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Color     string  `json:"color"`
	Icon      *string `json:"icon"`
	CreatedAt string  `json:"created_at"`
}
