package routes

import (
	_ "gestion_despacho/docs" // This will be auto-generated
	"gestion_despacho/internal/adapter/http/handlers"
	repository2 "gestion_despacho/internal/adapter/persistence/repository"
	"gestion_despacho/internal/infrastructure/database"
	"gestion_despacho/internal/infrastructure/payments"
	"gestion_despacho/internal/usecase"
	"gestion_despacho/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	clientRepo := repository2.NewClientDynamoRepository(ddb)
	jobRepo := repository2.NewJobDynamoRepository(ddb)
	stepRepo := repository2.NewStepDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	budgetRepo := repository2.NewBudgetVersionDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	// All usecases share one lock table so payments, step edits and status
	// changes on the same job serialize against each other.
	locks := usecase.NewJobLocks()

	clientUseCase := usecase.NewClientUseCase(clientRepo, jobRepo)
	jobUseCase := usecase.NewJobUseCase(jobRepo, stepRepo, paymentRepo, clientRepo, locks)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, stepRepo, jobRepo, clientRepo, paymentGateway, locks)
	budgetUseCase := usecase.NewBudgetVersionUseCase(budgetRepo, jobRepo, stepRepo, locks)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	jobHandler := handlers.NewJobHandler(jobUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	budgetHandler := handlers.NewBudgetVersionHandler(budgetUseCase)

	// Rutas públicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGestionRoutes(v1, clientHandler, jobHandler, paymentHandler, budgetHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
