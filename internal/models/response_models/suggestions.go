package response_models

type CategoryOption struct {
	ID   int64  `gorm:"column:id" json:"id"`
	Name string `gorm:"column:name" json:"name"`
}

type SearchSuggestions struct {
	Locations  []string         `json:"locations"`
	Categories []CategoryOption `json:"categories"`
}
