package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agri/entities"
	"agri/pkg/listing"
	"agri/pkg/report"

	calcCtrlImp "agri/pkg/calculation/controllerImp"
	locationCtrlImp "agri/pkg/location/controllerImp"
	plantCtrlImp "agri/pkg/plant/controllerImp"
)

var (
	exportOut   string
	exportQuery string
	exportUser  string
)

var exportCmd = &cobra.Command{
	Use:       "export plants|locations|calculations|cost-table",
	Short:     "Write a dataset to an xlsx file",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"plants", "locations", "calculations", "cost-table"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfg, logger)
		if err != nil {
			return err
		}
		defer a.close()

		var buf bytes.Buffer
		if err := a.export(cmd.Context(), args[0], &buf); err != nil {
			return err
		}
		if err := os.WriteFile(exportOut, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOut, err)
		}
		logger.Info("exported", zap.String("dataset", args[0]), zap.String("out", exportOut), zap.Int("bytes", buf.Len()))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "export.xlsx", "output file")
	exportCmd.Flags().StringVarP(&exportQuery, "query", "q", "", "search filter (plants, locations)")
	exportCmd.Flags().StringVar(&exportUser, "user", "", "only this user's calculations")
}

func (a *app) export(ctx context.Context, dataset string, buf *bytes.Buffer) error {
	q := listing.Params{Query: exportQuery}
	switch dataset {
	case "plants":
		rows, _, err := a.plants.List(ctx, q)
		if err != nil {
			return err
		}
		return report.Write(buf, "Plant Report", plantCtrlImp.ReportColumns, rows)
	case "locations":
		rows, _, err := a.locations.List(ctx, q)
		if err != nil {
			return err
		}
		return report.Write(buf, "Location Report", locationCtrlImp.ReportColumns, rows)
	case "calculations":
		var rows []entities.Calculation
		var err error
		if exportUser != "" {
			rows, err = a.calculations.History(ctx, exportUser)
		} else {
			rows, err = a.calculations.All(ctx)
		}
		if err != nil {
			return err
		}
		return report.Write(buf, "Cost History", calcCtrlImp.ReportColumns, rows)
	case "cost-table":
		return a.table.WriteWorkbook(buf)
	}
	return fmt.Errorf("unknown dataset %q", dataset)
}
