package cost

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	CropsSheet   = "Crops"
	FactorsSheet = "Factors"
	defaultCrop  = "*"
)

// CropRate holds per-acre coefficients for one crop.
type CropRate struct {
	Crop                string  `json:"crop"`
	BaseCostPerAcre     float64 `json:"baseCostPerAcre"`
	FertilizerKgPerAcre float64 `json:"fertilizerKgPerAcre"`
	WaterM3PerAcre      float64 `json:"waterM3PerAcre"`
	Fertilizer          string  `json:"fertilizer"`
}

// Factor scales a CropRate for one (water, soil) combination.
type Factor struct {
	Cost       float64 `json:"cost"`
	Fertilizer float64 `json:"fertilizer"`
	Water      float64 `json:"water"`
}

type factorKey struct {
	Water WaterLevel
	Soil  SoilType
}

// Table is the coefficient data behind Calculate. Crop keys are lower-case.
type Table struct {
	crops   map[string]CropRate
	factors map[factorKey]Factor
}

func NewTable() *Table {
	return &Table{crops: map[string]CropRate{}, factors: map[factorKey]Factor{}}
}

func (t *Table) SetRate(r CropRate) {
	t.crops[strings.ToLower(strings.TrimSpace(r.Crop))] = r
}

func (t *Table) SetFactor(w WaterLevel, s SoilType, f Factor) {
	t.factors[factorKey{w, s}] = f
}

// Rate looks the crop up case-insensitively and falls back to the "*" row.
func (t *Table) Rate(crop string) (CropRate, bool) {
	if r, ok := t.crops[strings.ToLower(strings.TrimSpace(crop))]; ok {
		return r, true
	}
	r, ok := t.crops[defaultCrop]
	return r, ok
}

func (t *Table) Factor(w WaterLevel, s SoilType) (Factor, bool) {
	f, ok := t.factors[factorKey{w, s}]
	return f, ok
}

// Crops returns the configured rates sorted by crop name.
func (t *Table) Crops() []CropRate {
	out := make([]CropRate, 0, len(t.crops))
	for _, r := range t.crops {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Crop < out[j].Crop })
	return out
}

var (
	waterCost = map[WaterLevel]float64{WaterAbundant: 1.00, WaterModerate: 1.10, WaterLimited: 1.20, WaterScarce: 1.35}
	waterUse  = map[WaterLevel]float64{WaterAbundant: 1.00, WaterModerate: 0.95, WaterLimited: 0.90, WaterScarce: 0.85}
	soilCost  = map[SoilType]float64{SoilRich: 0.90, SoilFertile: 0.95, SoilModeratelyFertile: 1.00, SoilSandy: 1.15, SoilPoor: 1.20}
	soilFert  = map[SoilType]float64{SoilRich: 0.70, SoilFertile: 0.85, SoilModeratelyFertile: 1.00, SoilSandy: 1.25, SoilPoor: 1.35}
	soilWater = map[SoilType]float64{SoilRich: 0.95, SoilFertile: 1.00, SoilModeratelyFertile: 1.00, SoilSandy: 1.20, SoilPoor: 1.05}
)

// DefaultTable is the built-in coefficient set (costs in rupees per acre).
func DefaultTable() *Table {
	t := NewTable()
	for _, r := range []CropRate{
		{Crop: "Rice", BaseCostPerAcre: 45000, FertilizerKgPerAcre: 100, WaterM3PerAcre: 6000, Fertilizer: "Urea"},
		{Crop: "Maize", BaseCostPerAcre: 35000, FertilizerKgPerAcre: 80, WaterM3PerAcre: 2500, Fertilizer: "Urea"},
		{Crop: "Tomato", BaseCostPerAcre: 120000, FertilizerKgPerAcre: 120, WaterM3PerAcre: 2000, Fertilizer: "NPK 15-15-15"},
		{Crop: "Potato", BaseCostPerAcre: 150000, FertilizerKgPerAcre: 150, WaterM3PerAcre: 2200, Fertilizer: "NPK 10-20-20"},
		{Crop: "Chili", BaseCostPerAcre: 90000, FertilizerKgPerAcre: 110, WaterM3PerAcre: 2400, Fertilizer: "NPK 15-15-15"},
		{Crop: "Onion", BaseCostPerAcre: 100000, FertilizerKgPerAcre: 90, WaterM3PerAcre: 2100, Fertilizer: "Ammonium sulphate"},
		{Crop: defaultCrop, BaseCostPerAcre: 50000, FertilizerKgPerAcre: 90, WaterM3PerAcre: 3000, Fertilizer: "balanced NPK"},
	} {
		t.SetRate(r)
	}
	for _, w := range WaterLevels {
		for _, s := range SoilTypes {
			t.SetFactor(w, s, Factor{
				Cost:       round4(waterCost[w] * soilCost[s]),
				Fertilizer: round4(soilFert[s]),
				Water:      round4(waterUse[w] * soilWater[s]),
			})
		}
	}
	return t
}

func round4(v float64) float64 { return math.Round(v*1e4) / 1e4 }

// LoadFromFiles starts from DefaultTable and overlays rows from the given
// sources. Empty paths are skipped. The workbook may carry a Crops sheet,
// a Factors sheet, or both.
func LoadFromFiles(cropsCSV, factorsCSV, xlsx string) (*Table, error) {
	t := DefaultTable()
	if cropsCSV != "" {
		rows, err := readCSV(cropsCSV)
		if err != nil {
			return nil, fmt.Errorf("crops csv: %w", err)
		}
		if err := t.applyCropRows(rows); err != nil {
			return nil, fmt.Errorf("crops csv %s: %w", cropsCSV, err)
		}
	}
	if factorsCSV != "" {
		rows, err := readCSV(factorsCSV)
		if err != nil {
			return nil, fmt.Errorf("factors csv: %w", err)
		}
		if err := t.applyFactorRows(rows); err != nil {
			return nil, fmt.Errorf("factors csv %s: %w", factorsCSV, err)
		}
	}
	if xlsx != "" {
		if err := t.loadWorkbook(xlsx); err != nil {
			return nil, fmt.Errorf("cost workbook %s: %w", xlsx, err)
		}
	}
	return t, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func (t *Table) loadWorkbook(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	found := false
	for _, name := range x.GetSheetList() {
		switch {
		case strings.EqualFold(name, CropsSheet):
			rows, err := x.GetRows(name)
			if err != nil {
				return err
			}
			if err := t.applyCropRows(rows); err != nil {
				return fmt.Errorf("sheet %s: %w", name, err)
			}
			found = true
		case strings.EqualFold(name, FactorsSheet):
			rows, err := x.GetRows(name)
			if err != nil {
				return err
			}
			if err := t.applyFactorRows(rows); err != nil {
				return fmt.Errorf("sheet %s: %w", name, err)
			}
			found = true
		}
	}
	if !found {
		return fmt.Errorf("no %s or %s sheet", CropsSheet, FactorsSheet)
	}
	return nil
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

type header map[string]int

func newHeader(row []string) header {
	h := header{}
	for i, c := range row {
		h[norm(c)] = i
	}
	return h
}

func (h header) find(keys ...string) int {
	for _, k := range keys {
		if idx, ok := h[norm(k)]; ok {
			return idx
		}
	}
	return -1
}

func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func parseCoef(rec []string, idx int, what string, def float64) (float64, error) {
	s := cell(rec, idx)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", what, s, err)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s %q: must be a non-negative number", what, s)
	}
	return v, nil
}

func (t *Table) applyCropRows(rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	h := newHeader(rows[0])
	cCrop := h.find("Crop", "CropName", "Plant", "Name")
	cCost := h.find("BaseCostPerAcre", "CostPerAcre", "BaseCost", "Cost")
	cFert := h.find("FertilizerKgPerAcre", "FertilizerKg", "Fertilizer_kg_per_acre")
	cWater := h.find("WaterM3PerAcre", "WaterM3", "Water_m3_per_acre", "Water")
	cType := h.find("Fertilizer", "FertilizerType", "FertilizerName")
	if cCrop == -1 || cCost == -1 {
		return fmt.Errorf("missing required columns; found headers %v, need at least Crop, BaseCostPerAcre", rows[0])
	}
	for i, rec := range rows[1:] {
		name := cell(rec, cCrop)
		if name == "" {
			continue
		}
		prev := t.crops[strings.ToLower(name)]
		r := CropRate{Crop: name, Fertilizer: prev.Fertilizer}
		var err error
		if r.BaseCostPerAcre, err = parseCoef(rec, cCost, "base cost", prev.BaseCostPerAcre); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if r.FertilizerKgPerAcre, err = parseCoef(rec, cFert, "fertilizer kg", prev.FertilizerKgPerAcre); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if r.WaterM3PerAcre, err = parseCoef(rec, cWater, "water m3", prev.WaterM3PerAcre); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if v := cell(rec, cType); v != "" {
			r.Fertilizer = v
		}
		t.SetRate(r)
	}
	return nil
}

func (t *Table) applyFactorRows(rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	h := newHeader(rows[0])
	cWater := h.find("WaterResources", "Water", "WaterLevel")
	cSoil := h.find("SoilType", "Soil")
	cCost := h.find("CostMultiplier", "Cost", "CostFactor")
	cFert := h.find("FertilizerMultiplier", "Fertilizer", "FertilizerFactor")
	cUse := h.find("WaterMultiplier", "WaterUse", "WaterFactor")
	if cWater == -1 || cSoil == -1 || cCost == -1 {
		return fmt.Errorf("missing required columns; found headers %v, need at least WaterResources, SoilType, CostMultiplier", rows[0])
	}
	for i, rec := range rows[1:] {
		if cell(rec, cWater) == "" && cell(rec, cSoil) == "" {
			continue
		}
		w, err := ParseWaterLevel(cell(rec, cWater))
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		s, err := ParseSoilType(cell(rec, cSoil))
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		prev, ok := t.Factor(w, s)
		if !ok {
			prev = Factor{Cost: 1, Fertilizer: 1, Water: 1}
		}
		var f Factor
		if f.Cost, err = parseCoef(rec, cCost, "cost multiplier", prev.Cost); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if f.Fertilizer, err = parseCoef(rec, cFert, "fertilizer multiplier", prev.Fertilizer); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if f.Water, err = parseCoef(rec, cUse, "water multiplier", prev.Water); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		t.SetFactor(w, s, f)
	}
	return nil
}

// WriteWorkbook writes the table as a workbook that LoadFromFiles reads back.
func (t *Table) WriteWorkbook(w io.Writer) error {
	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName(x.GetSheetName(0), CropsSheet); err != nil {
		return err
	}
	cropRows := [][]any{{"Crop", "BaseCostPerAcre", "FertilizerKgPerAcre", "WaterM3PerAcre", "Fertilizer"}}
	for _, r := range t.Crops() {
		cropRows = append(cropRows, []any{r.Crop, r.BaseCostPerAcre, r.FertilizerKgPerAcre, r.WaterM3PerAcre, r.Fertilizer})
	}
	if err := writeRows(x, CropsSheet, cropRows); err != nil {
		return err
	}

	if _, err := x.NewSheet(FactorsSheet); err != nil {
		return err
	}
	factorRows := [][]any{{"WaterResources", "SoilType", "CostMultiplier", "FertilizerMultiplier", "WaterMultiplier"}}
	for _, wl := range WaterLevels {
		for _, s := range SoilTypes {
			if f, ok := t.Factor(wl, s); ok {
				factorRows = append(factorRows, []any{string(wl), string(s), f.Cost, f.Fertilizer, f.Water})
			}
		}
	}
	if err := writeRows(x, FactorsSheet, factorRows); err != nil {
		return err
	}
	return x.Write(w)
}

func writeRows(x *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := x.SetSheetRow(sheet, addr, &r); err != nil {
			return err
		}
	}
	return nil
}
