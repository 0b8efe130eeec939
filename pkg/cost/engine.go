package cost

import (
	"fmt"
	"math"
	"strings"

	"agri/pkg/apperrors"
)

type WaterLevel string

const (
	WaterAbundant WaterLevel = "Abundant"
	WaterModerate WaterLevel = "Moderate"
	WaterScarce   WaterLevel = "Scarce"
	WaterLimited  WaterLevel = "Limited"
)

var WaterLevels = []WaterLevel{WaterAbundant, WaterModerate, WaterScarce, WaterLimited}

type SoilType string

const (
	SoilFertile           SoilType = "Fertile"
	SoilModeratelyFertile SoilType = "Moderately Fertile"
	SoilPoor              SoilType = "Poor"
	SoilSandy             SoilType = "Sandy"
	SoilRich              SoilType = "Rich"
)

var SoilTypes = []SoilType{SoilFertile, SoilModeratelyFertile, SoilPoor, SoilSandy, SoilRich}

func ParseWaterLevel(s string) (WaterLevel, error) {
	for _, w := range WaterLevels {
		if strings.EqualFold(strings.TrimSpace(s), string(w)) {
			return w, nil
		}
	}
	return "", apperrors.Invalid("waterResources", "%q is not one of Abundant, Moderate, Scarce, Limited", s)
}

func ParseSoilType(s string) (SoilType, error) {
	for _, st := range SoilTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", apperrors.Invalid("soilType", "%q is not one of Fertile, Moderately Fertile, Poor, Sandy, Rich", s)
}

type Request struct {
	Crop           string
	Area           float64 // acres
	WaterResources string
	SoilType       string
}

type Estimate struct {
	Crop            string     `json:"crop"`
	Area            float64    `json:"area"`
	WaterResources  WaterLevel `json:"waterResources"`
	SoilType        SoilType   `json:"soilType"`
	EstimatedCost   float64    `json:"estimatedCost"`
	FertilizerKg    float64    `json:"fertilizerKg"`
	WaterM3         float64    `json:"waterM3"`
	FertilizerNeeds string     `json:"fertilizerNeeds"`
	WaterNeeds      string     `json:"waterNeeds"`
}

// Validate checks the request shape without looking at any table.
func (r Request) Validate() (WaterLevel, SoilType, error) {
	if strings.TrimSpace(r.Crop) == "" {
		return "", "", apperrors.Invalid("crop", "is required")
	}
	if math.IsNaN(r.Area) || math.IsInf(r.Area, 0) || r.Area <= 0 {
		return "", "", apperrors.Invalid("area", "must be greater than zero")
	}
	w, err := ParseWaterLevel(r.WaterResources)
	if err != nil {
		return "", "", err
	}
	s, err := ParseSoilType(r.SoilType)
	if err != nil {
		return "", "", err
	}
	return w, s, nil
}

// Calculate is pure: same table and request, same estimate.
func Calculate(t *Table, r Request) (Estimate, error) {
	w, s, err := r.Validate()
	if err != nil {
		return Estimate{}, err
	}
	rate, ok := t.Rate(r.Crop)
	if !ok {
		return Estimate{}, apperrors.Invalid("crop", "no cost rate for %q", r.Crop)
	}
	f, ok := t.Factor(w, s)
	if !ok {
		return Estimate{}, apperrors.Invalid("soilType", "no factor for %s water on %s soil", w, s)
	}

	cost := round2(r.Area * rate.BaseCostPerAcre * f.Cost)
	fertKg := round2(r.Area * rate.FertilizerKgPerAcre * f.Fertilizer)
	waterM3 := round2(r.Area * rate.WaterM3PerAcre * f.Water)

	fert := rate.Fertilizer
	if fert == "" {
		fert = "balanced NPK"
	}
	return Estimate{
		Crop:            strings.TrimSpace(r.Crop),
		Area:            r.Area,
		WaterResources:  w,
		SoilType:        s,
		EstimatedCost:   math.Max(cost, 0),
		FertilizerKg:    fertKg,
		WaterM3:         waterM3,
		FertilizerNeeds: fmt.Sprintf("%.2f kg %s", fertKg, fert),
		WaterNeeds:      fmt.Sprintf("%.2f m3 (%s)", waterM3, waterAdvice(w)),
	}, nil
}

func waterAdvice(w WaterLevel) string {
	switch w {
	case WaterAbundant:
		return "rain-fed or scheduled irrigation is sufficient"
	case WaterModerate:
		return "irrigate at critical growth stages"
	case WaterScarce:
		return "supplemental irrigation required; prefer drip"
	default:
		return "store water and use drip or mulching"
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
