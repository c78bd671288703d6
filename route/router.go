package route

import (
	"time"

	"restaurant/auth"
	"restaurant/config"
	"restaurant/controller"
	"restaurant/events"
	"restaurant/logger"
	"restaurant/repository"
	"restaurant/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewEngine returns a gin engine with recovery, request logging and CORS installed.
func NewEngine(cfg config.Server, log *logger.Logger) *gin.Engine {
	if cfg.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), log.GinMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", logger.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", logger.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	return router
}

type Services struct {
	Auth         *service.AuthService
	Customers    *service.CustomerService
	Staff        *service.StaffService
	Tables       *service.TableService
	MenuItems    *service.MenuItemService
	Orders       *service.OrderService
	OrderItems   *service.OrderItemService
	Payments     *service.PaymentService
	Reservations *service.ReservationService
	Reviews      *service.ReviewService
	Schedules    *service.StaffScheduleService
	VipRequests  *service.VipRequestService
	Reports      *service.ReportService
}

// NewServices wires every service against one store.
func NewServices(store *repository.Store, publisher events.Publisher, issuer *auth.TokenIssuer, log *logger.Logger) *Services {
	return &Services{
		Auth:         service.NewAuthService(store, issuer, log),
		Customers:    service.NewCustomerService(store.Customers, log),
		Staff:        service.NewStaffService(store.Staff, log),
		Tables:       service.NewTableService(store.Tables, log),
		MenuItems:    service.NewMenuItemService(store.MenuItems, store.OrderItems, log),
		Orders:       service.NewOrderService(store, publisher, log),
		OrderItems:   service.NewOrderItemService(store, log),
		Payments:     service.NewPaymentService(store, publisher, log),
		Reservations: service.NewReservationService(store, log),
		Reviews:      service.NewReviewService(store, log),
		Schedules:    service.NewStaffScheduleService(store, log),
		VipRequests:  service.NewVipRequestService(store, publisher, log),
		Reports:      service.NewReportService(store.Orders, log),
	}
}

func NewControllers(s *Services, log *logger.Logger) Controllers {
	return Controllers{
		Auth:         controller.NewAuthController(s.Auth, log),
		Customers:    controller.NewCustomerController(s.Customers, log),
		Staff:        controller.NewStaffController(s.Staff, log),
		Tables:       controller.NewTableController(s.Tables, log),
		MenuItems:    controller.NewMenuItemController(s.MenuItems, log),
		Orders:       controller.NewOrderController(s.Orders, s.OrderItems, log),
		OrderItems:   controller.NewOrderItemController(s.OrderItems, log),
		Payments:     controller.NewPaymentController(s.Payments, log),
		Reservations: controller.NewReservationController(s.Reservations, log),
		Reviews:      controller.NewReviewController(s.Reviews, log),
		Schedules:    controller.NewStaffScheduleController(s.Schedules, log),
		VipRequests:  controller.NewVipRequestController(s.VipRequests, log),
		Reports:      controller.NewReportController(s.Reports, log),
	}
}
