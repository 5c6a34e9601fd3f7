package routes

import (
	"gestion_despacho/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients  = "/clients"
	PathJobs     = "/jobs"
	PathSteps    = "/steps"
	PathPayments = "/payments"
	PathBudgets  = "/budgets"
)

func addGestionRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	jobHandler *handlers.JobHandler,
	paymentHandler *handlers.PaymentHandler,
	budgetHandler *handlers.BudgetVersionHandler,
) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("/:client_id", clientHandler.GetClient)
		clients.DELETE("/:client_id", clientHandler.DeleteClient)
		clients.POST("/:client_id/recalculate-debt", clientHandler.RecalculateDebt)
		clients.GET("/:client_id/jobs", jobHandler.ListJobsByClient)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.DELETE("/:job_id", jobHandler.DeleteJob)
		jobs.PATCH("/:job_id/status", jobHandler.TransitionJobStatus)
		jobs.GET("/:job_id/steps", jobHandler.ListSteps)
		jobs.POST("/:job_id/steps", jobHandler.AddStep)
		jobs.POST("/:job_id/payments", paymentHandler.RegisterPayment)
		jobs.GET("/:job_id/payments", paymentHandler.ListPaymentsByJob)
		jobs.POST("/:job_id/budgets", budgetHandler.CreateVersion)
		jobs.GET("/:job_id/budgets", budgetHandler.ListVersionsByJob)
	}

	steps := rg.Group(PathSteps)
	{
		steps.PATCH("/:step_id/cost", jobHandler.UpdateStepCost)
		steps.PATCH("/:step_id/status", jobHandler.TransitionStepStatus)
		steps.DELETE("/:step_id", jobHandler.DeleteStep)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetPayment)
		payments.DELETE("/:payment_id", paymentHandler.DeletePayment)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("/:budget_id", budgetHandler.GetVersion)
		budgets.PATCH("/:budget_id/send", budgetHandler.SendVersion)
		budgets.PATCH("/:budget_id/approve", budgetHandler.ApproveVersion)
		budgets.PATCH("/:budget_id/reject", budgetHandler.RejectVersion)
		budgets.DELETE("/:budget_id", budgetHandler.DeleteVersion)
	}
}
