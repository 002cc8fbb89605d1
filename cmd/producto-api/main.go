package main

import (
	"log"

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

	cfg, err := config.LoadProducto()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := obs.NewLogger("producto-service")

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.Producto{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	//Repository（GORM実装）生成
	productoRepo := infraRepo.NewProductoGormRepository(gormDB)

	//Usecase生成
	productoUC := usecase.NewProductoUsecase(productoRepo, logger)

	//Handler生成
	productoH := handler.NewProductoHandler(productoUC)
	healthH := handler.NewHealthHandler("producto-service", gormDB, nil)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.APIKeyAuth(cfg.APIKey))

	productoH.RegisterRoutes(e)
	healthH.RegisterRoutes(e)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
