package entities

import "time"

type Location struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	Province       string   `json:"province"`
	District       string   `json:"district"`
	City           string   `gorm:"index" json:"city"`
	Latitude       string   `json:"latitude"`
	Longitude      string   `json:"longitude"`
	AreaSize       string   `json:"areaSize"`  // free text as entered, e.g. "12.5 acres"
	AreaValue      *float64 `json:"areaValue"` // parsed from AreaSize on write; nil when no number
	AreaUnit       string   `json:"areaUnit"`
	SoilType       string   `json:"soilType"`
	IrrigationType string   `json:"irrigationType"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Crop struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	LocationID    uint    `gorm:"index" json:"locationId"`
	CropType      string  `json:"cropType"`
	AllocatedArea float64 `json:"allocatedArea"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
