package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/davortega/bodega-equipos/internal/application/auth"
	"github.com/davortega/bodega-equipos/internal/application/ledger"
	"github.com/davortega/bodega-equipos/internal/application/reports"
	"github.com/davortega/bodega-equipos/internal/application/usecase"
	"github.com/davortega/bodega-equipos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	EquipmentUC *usecase.EquipmentUseCase
	LedgerUC    *ledger.StockLedgerUseCase
	LoanUC      *usecase.LoanQueryUseCase
	MovementUC  *usecase.MovementQueryUseCase
	ReportUC    *reports.MovementReportUseCase
	CustodianUC *usecase.CustodianUseCase
	BranchUC    *usecase.BranchUseCase
	UserUC      *usecase.UserUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Equipment (protegido)
	equipment := protected.Group("/equipment")
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC)
	equipment.Post("/", equipmentHandler.Create)
	equipment.Get("/", equipmentHandler.List)
	equipment.Get("/:id", equipmentHandler.GetByID)
	equipment.Put("/:id", equipmentHandler.Update)
	equipment.Delete("/:id", equipmentHandler.Delete)

	// Operaciones de stock (protegido)
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	inventory := protected.Group("/inventory")
	inventory.Post("/:id/income", ledgerHandler.RegisterIncome)
	inventory.Post("/:id/outcome", ledgerHandler.RegisterOutcome)

	// Loans (protegido): consultas + devolución
	loans := protected.Group("/loans")
	loanHandler := NewLoanHandler(deps.LoanUC)
	loans.Get("/", loanHandler.List)
	loans.Get("/:id", loanHandler.GetByID)
	loans.Post("/:id/return", ledgerHandler.RegisterReturn)

	// Movements (protegido): historial + reporte PDF
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC, deps.ReportUC)
	movements.Get("/", movementHandler.List)
	movements.Get("/report", movementHandler.Report)

	// Custodians (protegido)
	custodians := protected.Group("/custodians")
	custodianHandler := NewCustodianHandler(deps.CustodianUC)
	custodians.Post("/", custodianHandler.Create)
	custodians.Get("/", custodianHandler.List)
	custodians.Get("/:id", custodianHandler.GetByID)
	custodians.Put("/:id", custodianHandler.Update)
	custodians.Delete("/:id", custodianHandler.Delete)

	// Branches (protegido)
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Post("/", branchHandler.Create)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", branchHandler.Update)
	branches.Delete("/:id", branchHandler.Delete)

	// Users (solo SUPER_ADMIN)
	users := protected.Group("/users", RequireRole(entity.RoleSuperAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
