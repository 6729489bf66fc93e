package routes

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "controle_abastecimento/docs" // swag generated
	"controle_abastecimento/internal/adapter/http/handlers"
	"controle_abastecimento/internal/adapter/persistence/memory"
	"controle_abastecimento/internal/adapter/persistence/repository"
	"controle_abastecimento/internal/adapter/report/pdf"
	"controle_abastecimento/internal/adapter/report/spreadsheet"
	"controle_abastecimento/internal/adapter/report/text"
	"controle_abastecimento/internal/config"
	"controle_abastecimento/internal/infrastructure/database"
	"controle_abastecimento/internal/usecase"
	"controle_abastecimento/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const startupTimeout = 30 * time.Second

// Run will start the server
func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if err := getRoutes(ctx, cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// stores is the record store, one repository per collection.
type stores struct {
	responsibles interfaces.IResponsibleRepository
	vehicles     interfaces.IVehicleRepository
	records      interfaces.IFuelRecordRepository
}

func newStores(ctx context.Context, cfg *config.Config) (stores, error) {
	switch cfg.DataBackend {
	case config.BackendMemory:
		log.Printf("[routes] using in-memory record store")
		return stores{
			responsibles: memory.NewResponsibleRepository(),
			vehicles:     memory.NewVehicleRepository(),
			records:      memory.NewFuelRecordRepository(),
		}, nil
	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return stores{}, err
		}
		if cfg.CreateTables {
			if err := database.EnsureTables(ctx, ddb, cfg.ResponsiblesTable, cfg.VehiclesTable, cfg.FuelRecordsTable); err != nil {
				return stores{}, err
			}
		}
		log.Printf("[routes] using dynamodb record store region=%s endpoint=%s", cfg.AWSRegion, cfg.DynamoDBEndpoint)
		return stores{
			responsibles: repository.NewResponsibleDynamoRepository(ddb, cfg.ResponsiblesTable),
			vehicles:     repository.NewVehicleDynamoRepository(ddb, cfg.VehiclesTable),
			records:      repository.NewFuelRecordDynamoRepository(ddb, cfg.FuelRecordsTable),
		}, nil
	default:
		return stores{}, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
	}
}

func getRoutes(ctx context.Context, cfg *config.Config) error {
	s, err := newStores(ctx, cfg)
	if err != nil {
		return err
	}
	loc := cfg.Location()

	responsibleUseCase := usecase.NewResponsibleUseCase(s.responsibles)
	vehicleUseCase := usecase.NewVehicleUseCase(s.vehicles)
	fuelRecordUseCase := usecase.NewFuelRecordUseCase(s.records, s.responsibles, s.vehicles)
	dashboardUseCase := usecase.NewDashboardUseCase(s.records, s.responsibles, s.vehicles, loc)
	reportUseCase := usecase.NewReportUseCase(s.records, s.responsibles, s.vehicles, loc,
		text.New(), spreadsheet.New(), pdf.New())

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRegistryRoutes(v1, handlers.NewResponsibleHandler(responsibleUseCase), handlers.NewVehicleHandler(vehicleUseCase))
	addFuelRecordRoutes(v1, handlers.NewFuelRecordHandler(fuelRecordUseCase))
	addAnalysisRoutes(v1, handlers.NewDashboardHandler(dashboardUseCase, loc), handlers.NewReportHandler(reportUseCase))
	return nil
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
