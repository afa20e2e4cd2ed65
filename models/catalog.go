package models

// Farm is a produce seller record from the static catalog.
type Farm struct {
	FarmID                  string  `json:"id"`
	Name                    string  `json:"name"`
	Slug                    string  `json:"slug"`
	Description             string  `json:"description"`
	Image                   string  `json:"image"`
	Location                string  `json:"location"`
	Address                 string  `json:"address"`
	Phone                   string  `json:"phone"`
	Email                   string  `json:"email"`
	Rating                  float64 `json:"rating"`
	ReviewCount             int     `json:"reviewCount"`
	Story                   string  `json:"story,omitempty"`
	GrowingMethods          string  `json:"growingMethods,omitempty"`
	SustainabilityPractices string  `json:"sustainabilityPractices,omitempty"`
}

// Product is a catalog item sold by one farm.
type Product struct {
	ProductID   string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	FarmID      string  `json:"farmId"` // farm slug
	Image       string  `json:"image"`
}
