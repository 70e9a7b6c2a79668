package main

import (
	"fmt"
	nethttp "net/http"
	"os"
	"strconv"

	"logistics/cmd"
	httpserver "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/catalogrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/returnrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/truckrepo"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	mustMigrateDB(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	if configs.DispatchJobEnabled {
		jobManager := jobs.NewJobManager(
			app.CreateDispatchTrucksCommandHandler(),
			configs.DispatchJobSpec,
			slog.Default(),
		)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting scheduled jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		BoxVolume:          floatEnvVariable("BOX_VOLUME_M3", services.DefaultBoxVolume),
		DispatchJobEnabled: boolEnvVariable("DISPATCH_JOB_ENABLED"),
		DispatchJobSpec:    goDotEnvVariable("DISPATCH_JOB_SPEC"),
	}
	if config.DispatchJobSpec == "" {
		config.DispatchJobSpec = "*/10 * * * * *"
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func floatEnvVariable(key string, fallback float64) float64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func boolEnvVariable(key string) bool {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return false
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&catalogrepo.ProductDTO{},
		&catalogrepo.ManufacturerDTO{},
		&catalogrepo.DistributionCenterDTO{},
		&catalogrepo.BranchDTO{},
		&truckrepo.TruckDTO{},
		&shipmentrepo.ShipmentDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&returnrepo.ReturnDTO{},
		&returnrepo.ReturnLineDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	// Cross-package references live in separate repo packages, so GORM tags
	// cannot express them. Added here so stale references fail at the
	// database level too.
	constraints := []string{
		`DO $$ BEGIN
			ALTER TABLE orders ADD CONSTRAINT fk_orders_shipment
				FOREIGN KEY (shipment_id) REFERENCES shipments (id);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		`DO $$ BEGIN
			ALTER TABLE shipments ADD CONSTRAINT fk_shipments_truck
				FOREIGN KEY (truck_id) REFERENCES trucks (id);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		`DO $$ BEGIN
			ALTER TABLE returns ADD CONSTRAINT fk_returns_order
				FOREIGN KEY (order_id) REFERENCES orders (id);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		`DO $$ BEGIN
			ALTER TABLE returns ADD CONSTRAINT fk_returns_shipment
				FOREIGN KEY (shipment_id) REFERENCES shipments (id);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	}
	for _, constraint := range constraints {
		if err := gormDB.Exec(constraint).Error; err != nil {
			log.Fatalf("Error adding constraint: %v", err)
		}
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(httpserver.ServerHandlers{
		CreateOrder:              app.CreateCreateOrderCommandHandler(),
		UpdateOrderItems:         app.CreateUpdateOrderItemsCommandHandler(),
		DeleteOrder:              app.CreateDeleteOrderCommandHandler(),
		CreateShipment:           app.CreateCreateShipmentCommandHandler(),
		CreateShipmentWithOrders: app.CreateCreateShipmentWithOrdersCommandHandler(),
		CreateLinehaulShipment:   app.CreateCreateLinehaulShipmentCommandHandler(),
		AssignTruck:              app.CreateAssignTruckCommandHandler(),
		AutoAssignTruck:          app.CreateAutoAssignTruckCommandHandler(),
		AddOrdersToShipment:      app.CreateAddOrdersToShipmentCommandHandler(),
		StartShipment:            app.CreateStartShipmentCommandHandler(),
		CompleteShipment:         app.CreateCompleteShipmentCommandHandler(),
		ReceiveShipment:          app.CreateReceiveShipmentCommandHandler(),
		DeleteShipment:           app.CreateDeleteShipmentCommandHandler(),
		CreateReturn:             app.CreateCreateReturnCommandHandler(),

		PreviewVolume:        app.CreatePreviewVolumeQueryHandler(),
		GetAllShipments:      app.CreateGetAllShipmentsQueryHandler(),
		GetShipmentByID:      app.CreateGetShipmentByIDQueryHandler(),
		GetUncompletedOrders: app.CreateGetUncompletedOrdersQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
