package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agri/config"
	"agri/database"
	"agri/pkg/cost"
	"agri/pkg/metrics"
	"agri/pkg/middleware"
	"agri/pkg/relation"
	"agri/router"

	calcCtrlImp "agri/pkg/calculation/controllerImp"
	calcRepoImp "agri/pkg/calculation/repositoryImp"
	calcService "agri/pkg/calculation/service"
	calcSvcImp "agri/pkg/calculation/serviceImp"

	cropCtrlImp "agri/pkg/crop/controllerImp"
	cropRepoImp "agri/pkg/crop/repositoryImp"
	cropSvcImp "agri/pkg/crop/serviceImp"

	diseaseCtrlImp "agri/pkg/disease/controllerImp"
	diseaseRepoImp "agri/pkg/disease/repositoryImp"
	diseaseSvcImp "agri/pkg/disease/serviceImp"

	healthCtrlImp "agri/pkg/health/controllerImp"

	locationCtrlImp "agri/pkg/location/controllerImp"
	locationRepoImp "agri/pkg/location/repositoryImp"
	locationService "agri/pkg/location/service"
	locationSvcImp "agri/pkg/location/serviceImp"

	plantCtrlImp "agri/pkg/plant/controllerImp"
	plantRepoImp "agri/pkg/plant/repositoryImp"
	plantService "agri/pkg/plant/service"
	plantSvcImp "agri/pkg/plant/serviceImp"

	userCtrlImp "agri/pkg/user/controllerImp"
	userRepoImp "agri/pkg/user/repositoryImp"
	userSvcImp "agri/pkg/user/serviceImp"
)

// app holds the wired services. serve and export share it.
type app struct {
	cfg     config.AppConfig
	log     *zap.Logger
	db      *gorm.DB
	table   *cost.Table
	metrics *metrics.Metrics

	plants       plantService.PlantService
	locations    locationService.LocationService
	calculations calcService.CalculationService
	ctl          router.Controllers
}

func newApp(cfg config.AppConfig, log *zap.Logger) (*app, error) {
	table, err := cost.LoadFromFiles(cfg.CostCropsCSV, cfg.CostFactorsCSV, cfg.CostXLSX)
	if err != nil {
		return nil, fmt.Errorf("cost table: %w", err)
	}
	log.Info("cost table loaded", zap.Int("crops", len(table.Crops())))

	db, err := database.OpenSQLite(cfg.DBPath, log)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	rel := relation.New(db)
	plantRepo := plantRepoImp.New(db)

	plants := plantSvcImp.NewPlantService(plantRepo, rel, cfg.DeletePolicy, log, m)
	diseases := diseaseSvcImp.NewDiseaseService(diseaseRepoImp.New(db), rel, log, m)
	locations := locationSvcImp.NewLocationService(locationRepoImp.New(db), rel, cfg.DeletePolicy, log, m)
	crops := cropSvcImp.NewCropService(cropRepoImp.New(db), rel, cfg.EnforceAreaCap, log, m)
	users := userSvcImp.NewUserService(userRepoImp.New(db), log, m)
	calcs := calcSvcImp.NewCalculationService(calcRepoImp.New(db), table, plantRepo,
		calcSvcImp.Options{StrictCropNames: cfg.StrictCropNames}, log, m)

	return &app{
		cfg: cfg, log: log, db: db, table: table, metrics: m,
		plants: plants, locations: locations, calculations: calcs,
		ctl: router.Controllers{
			Plant:       plantCtrlImp.New(plants, cfg.PageSize),
			Disease:     diseaseCtrlImp.New(diseases, cfg.PageSize),
			Location:    locationCtrlImp.New(locations, cfg.PageSize),
			Crop:        cropCtrlImp.New(crops),
			User:        userCtrlImp.New(users, cfg.PageSize),
			Calculation: calcCtrlImp.New(calcs),
			Health:      healthCtrlImp.NewHealthCtrl(db, table),
			Metrics:     m.Handler(),
		},
	}, nil
}

func (a *app) echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(a.log))
	e.Use(a.metrics.Middleware())
	e.Use(echoMiddleware.ContextTimeout(a.cfg.RequestTimeout))
	return router.New(e, a.ctl, a.cfg.RequireUserID)
}

func (a *app) close() error { return database.Close(a.db) }
