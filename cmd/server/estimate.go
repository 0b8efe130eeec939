package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"agri/pkg/cost"
)

var estimateReq cost.Request

// estimateCmd runs the engine against the configured table without
// touching the database.
var estimateCmd = &cobra.Command{
	Use:     "estimate",
	Short:   "Print a cost estimate as JSON",
	Example: `  agri estimate --crop Rice --area 2 --water Scarce --soil Sandy`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := cost.LoadFromFiles(cfg.CostCropsCSV, cfg.CostFactorsCSV, cfg.CostXLSX)
		if err != nil {
			return err
		}
		est, err := cost.Calculate(table, estimateReq)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(est)
	},
}

func init() {
	f := estimateCmd.Flags()
	f.StringVar(&estimateReq.Crop, "crop", "", "crop name")
	f.Float64Var(&estimateReq.Area, "area", 0, "area in acres")
	f.StringVar(&estimateReq.WaterResources, "water", string(cost.WaterModerate), "Abundant|Moderate|Scarce|Limited")
	f.StringVar(&estimateReq.SoilType, "soil", string(cost.SoilModeratelyFertile), "Fertile|Moderately Fertile|Poor|Sandy|Rich")
	_ = estimateCmd.MarkFlagRequired("crop")
	_ = estimateCmd.MarkFlagRequired("area")
}
