package entities

import "time"

type Plant struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"index" json:"name"`
	Description     string     `json:"description"`
	Climate         string     `json:"climate"`
	SoilPh          string     `json:"soilPh"`
	LandPreparation string     `json:"landPreparation"`
	Fertilizers     StringList `gorm:"serializer:json" json:"fertilizers"`
	ImageURL        string     `json:"imageUrl"`
	Date            string     `json:"date"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
