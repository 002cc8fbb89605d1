package main

import (
	"log"
	"net/http"

	"linktic/internal/client"
	"linktic/internal/config"
	"linktic/internal/domain/model"
	"linktic/internal/handler"
	"linktic/internal/infra/db"
	infraRepo "linktic/internal/infra/repository"
	"linktic/internal/middleware"
	"linktic/internal/obs"
	"linktic/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	//.envは任意（本番は環境変数のみ）
	_ = godotenv.Load()

	cfg, err := config.LoadInventario()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := obs.NewLogger("inventario-service")

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.Inventario{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	//Repository（GORM実装）生成
	invRepo := infraRepo.NewInventarioGormRepository(gormDB)

	//producto-apiクライアント（シングルトンにせず明示的に組み立てて注入する）
	httpClient := &http.Client{Timeout: cfg.ClientTimeout}
	productoClient, err := client.NewProductoClient(
		cfg.ProductoServiceURL,
		cfg.ProductoServiceAPIKey,
		cfg.ValidateExists,
		httpClient,
		logger,
	)
	if err != nil {
		log.Fatalf("producto client: %v", err)
	}

	//Usecase生成
	invUC := usecase.NewInventarioUsecase(productoClient, invRepo, logger)

	//Handler生成
	invH := handler.NewInventarioHandler(invUC)
	healthH := handler.NewHealthHandler("inventario-service", gormDB, productoClient)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.APIKeyAuth(cfg.APIKey))

	invH.RegisterRoutes(e)
	healthH.RegisterRoutes(e)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
