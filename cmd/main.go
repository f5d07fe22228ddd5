package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/neluchetraru/prop-track/internal/app"
	"github.com/neluchetraru/prop-track/internal/config"
	"github.com/neluchetraru/prop-track/internal/controllers"
	"github.com/neluchetraru/prop-track/internal/middleware"
	"github.com/neluchetraru/prop-track/internal/repositories"
	"github.com/neluchetraru/prop-track/internal/routes"
	"github.com/neluchetraru/prop-track/internal/services"
	"github.com/neluchetraru/prop-track/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (DB pool, schema)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize app: ", err)
	}
	defer application.Close()

	// 3) Repositories & services
	propRepo := repositories.NewPropertyRepository(application.DB)
	propSvc := services.NewPropertyService(propRepo)

	// 4) Controllers
	healthCtrl := controllers.NewHealthController(application)
	propCtrl := controllers.NewPropertyController(propSvc)

	// 5) Router
	router := mux.NewRouter()
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)

	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.RSAPublicKey))
	protected.HandleFunc(routes.PropertiesBase, propCtrl.ListPropertiesHandler).Methods(http.MethodGet)
	protected.HandleFunc(routes.PropertiesBase, propCtrl.CreatePropertyHandler).Methods(http.MethodPost)
	protected.HandleFunc(routes.PropertyByID, propCtrl.GetPropertyHandler).Methods(http.MethodGet)
	protected.HandleFunc(routes.PropertyByID, propCtrl.UpdatePropertyHandler).Methods(http.MethodPut)
	protected.HandleFunc(routes.PropertyByID, propCtrl.DeletePropertyHandler).Methods(http.MethodDelete)

	// 6) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORSAllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
