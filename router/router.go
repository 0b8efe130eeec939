package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	calcCtrl "agri/pkg/calculation/controller"
	cropCtrl "agri/pkg/crop/controller"
	diseaseCtrl "agri/pkg/disease/controller"
	locationCtrl "agri/pkg/location/controller"
	"agri/pkg/middleware"
	plantCtrl "agri/pkg/plant/controller"
	userCtrl "agri/pkg/user/controller"
)

type Controllers struct {
	Plant       plantCtrl.PlantController
	Disease     diseaseCtrl.DiseaseController
	Location    locationCtrl.LocationController
	Crop        cropCtrl.CropController
	User        userCtrl.UserController
	Calculation calcCtrl.CalculationController
	Health      interface{ Health(echo.Context) error }
	Metrics     http.Handler
}

// New registers every route on e. Paths keep the casing existing clients
// already call ("/Plant", "/api/costCalculator").
func New(e *echo.Echo, ctl Controllers, requireIdentity bool) *echo.Echo {
	e.Use(middleware.Identity())

	e.GET("/health", ctl.Health.Health)
	e.GET("/whoami", middleware.WhoAmI)
	if ctl.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(ctl.Metrics))
	}

	plants := e.Group("/Plant")
	plants.GET("", ctl.Plant.List)
	plants.GET("/", ctl.Plant.List)
	plants.GET("/report", ctl.Plant.Report)
	plants.GET("/:id", ctl.Plant.Get)
	plants.POST("/add", ctl.Plant.Create)
	plants.PUT("/update/:id", ctl.Plant.Update)
	plants.DELETE("/delete/:id", ctl.Plant.Delete)

	diseases := e.Group("/api/diseases")
	diseases.GET("", ctl.Disease.List)
	diseases.POST("", ctl.Disease.Create)
	diseases.GET("/plant/:plantId", ctl.Disease.ListByPlant)
	diseases.GET("/:id", ctl.Disease.Get)
	diseases.PUT("/:id", ctl.Disease.Update)
	diseases.DELETE("/:id", ctl.Disease.Delete)

	locations := e.Group("/Location")
	locations.GET("", ctl.Location.List)
	locations.GET("/", ctl.Location.List)
	locations.GET("/report", ctl.Location.Report)
	locations.GET("/:id", ctl.Location.Get)
	locations.GET("/:id/allocation", ctl.Location.Allocation)
	locations.POST("/add", ctl.Location.Create)
	locations.PUT("/update/:id", ctl.Location.Update)
	locations.DELETE("/delete/:id", ctl.Location.Delete)

	crops := e.Group("/api/crops")
	crops.POST("", ctl.Crop.Create)
	crops.GET("/location/:locationId", ctl.Crop.ListByLocation)
	crops.GET("/:id", ctl.Crop.Get)
	crops.PUT("/:id", ctl.Crop.Update)
	crops.DELETE("/:id", ctl.Crop.Delete)

	e.GET("/users", ctl.User.List)
	e.GET("/users/:id", ctl.User.Get)
	e.GET("/user/:email", ctl.User.GetByEmail)
	e.POST("/new-user", ctl.User.Create)
	e.PUT("/update-user/:id", ctl.User.Update)
	e.DELETE("/delete-user/:id", ctl.User.Delete)

	calc := e.Group("/api/costCalculator", middleware.RequireIdentity(requireIdentity))
	calc.POST("/calculate", ctl.Calculation.Calculate)
	calc.GET("/userCalculations", ctl.Calculation.UserCalculations)
	calc.GET("/report", ctl.Calculation.Report)
	calc.GET("/:id", ctl.Calculation.Get)

	return e
}
