package entities

import "time"

type Disease struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	PlantID             uint       `gorm:"index" json:"plantId"`
	Name                string     `json:"name"`
	CausalAgent         string     `json:"causalAgent"`
	DiseaseTransmission string     `json:"diseaseTransmission"`
	DiseaseSymptoms     string     `json:"diseaseSymptoms"`
	Control             string     `json:"control"`
	Fertilizers         StringList `gorm:"serializer:json" json:"fertilizers"`
	ImageURL            string     `json:"imageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
