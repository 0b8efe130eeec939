package entities

import "time"

// Calculation is one cost-estimation run. Rows are only ever inserted.
type Calculation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"index" json:"userId"`
	Crop            string    `json:"crop"`
	Area            float64   `json:"area"`
	WaterResources  string    `json:"waterResources"`
	SoilType        string    `json:"soilType"`
	EstimatedCost   float64   `json:"estimatedCost"`
	FertilizerNeeds string    `json:"fertilizerNeeds"`
	WaterNeeds      string    `json:"waterNeeds"`
	CreatedAt       time.Time `gorm:"index" json:"createdAt"`
}
