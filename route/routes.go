package route

import (
	"net/http"

	"restaurant/auth"
	"restaurant/controller"
	"restaurant/utils"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth         *controller.AuthController
	Customers    *controller.CustomerController
	Staff        *controller.StaffController
	Tables       *controller.TableController
	MenuItems    *controller.MenuItemController
	Orders       *controller.OrderController
	OrderItems   *controller.OrderItemController
	Payments     *controller.PaymentController
	Reservations *controller.ReservationController
	Reviews      *controller.ReviewController
	Schedules    *controller.StaffScheduleController
	VipRequests  *controller.VipRequestController
	Reports      *controller.ReportController
}

// RegisterRoutes mounts every endpoint. Reads of the menu and tables, login,
// refresh and customer registration are public; everything else needs a token.
func RegisterRoutes(router *gin.Engine, issuer *auth.TokenIssuer, h Controllers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "ok"})
	})

	router.POST("/auth/login", h.Auth.Login)
	router.POST("/auth/refresh", h.Auth.Refresh)
	router.POST("/customers", h.Customers.Create)

	menu := router.Group("/menu-items")
	{
		menu.GET("", h.MenuItems.List)
		menu.GET("/available", h.MenuItems.ListAvailable)
		menu.GET("/type/:type", h.MenuItems.ListByType)
		menu.GET("/:id", h.MenuItems.Get)
	}
	tables := router.Group("/tables")
	{
		tables.GET("", h.Tables.List)
		tables.GET("/available", h.Tables.ListAvailable)
		tables.GET("/available/size/:size", h.Tables.ListAvailableBySize)
		tables.GET("/occupied", h.Tables.ListOccupied)
		tables.GET("/size/:size", h.Tables.ListBySize)
		tables.GET("/:id", h.Tables.Get)
	}

	private := router.Group("")
	private.Use(utils.AuthMiddleware(issuer))
	staffOnly := private.Group("", utils.RequireStaff())
	adminOnly := private.Group("", utils.RequireAdmin())

	private.GET("/auth/me", h.Auth.Me)

	customers := private.Group("/customers")
	{
		customers.GET("", h.Customers.List)
		customers.GET("/count", h.Customers.Count)
		customers.GET("/search", h.Customers.Search)
		customers.GET("/username/:username", h.Customers.GetByUsername)
		customers.GET("/email/:email", h.Customers.GetByEmail)
		customers.GET("/:id", h.Customers.Get)
		customers.PATCH("/:id", h.Customers.Update)
		customers.DELETE("/:id", h.Customers.Delete)
	}

	staff := private.Group("/staff")
	{
		staff.GET("", h.Staff.List)
		staff.GET("/count", h.Staff.Count)
		staff.GET("/search", h.Staff.Search)
		staff.GET("/role/:role", h.Staff.ListByRole)
		staff.GET("/username/:username", h.Staff.GetByUsername)
		staff.GET("/email/:email", h.Staff.GetByEmail)
		staff.GET("/:id", h.Staff.Get)
	}
	adminOnly.POST("/staff", h.Staff.Create)
	adminOnly.PATCH("/staff/:id", h.Staff.Update)
	adminOnly.DELETE("/staff/:id", h.Staff.Delete)

	adminOnly.POST("/tables", h.Tables.Create)
	adminOnly.DELETE("/tables/:id", h.Tables.Delete)
	private.PATCH("/tables/:id", h.Tables.Update)
	private.PATCH("/tables/:id/status", h.Tables.SetOccupied)

	adminOnly.POST("/menu-items", h.MenuItems.Create)
	adminOnly.POST("/menu-items/import", h.MenuItems.Import)
	adminOnly.PATCH("/menu-items/:id", h.MenuItems.Update)
	adminOnly.DELETE("/menu-items/:id", h.MenuItems.Delete)

	orders := private.Group("/orders")
	{
		orders.GET("", h.Orders.List)
		orders.GET("/customer/:customer_id", h.Orders.ListByCustomer)
		orders.GET("/status/:status", h.Orders.ListByStatus)
		orders.GET("/table/:table_id", h.Orders.ListByTable)
		orders.GET("/:id", h.Orders.Get)
		orders.GET("/:id/items", h.Orders.ListItems)
		orders.POST("", h.Orders.Create)
		orders.PATCH("/:id", h.Orders.Update)
	}
	staffOnly.DELETE("/orders/:id", h.Orders.Delete)

	orderItems := private.Group("/order-items")
	{
		orderItems.GET("", h.OrderItems.List)
		orderItems.GET("/order/:order_id", h.OrderItems.ListByOrder)
		orderItems.GET("/:id", h.OrderItems.Get)
		orderItems.POST("", h.OrderItems.Create)
		orderItems.PATCH("/:id", h.OrderItems.Update)
		orderItems.DELETE("/:id", h.OrderItems.Delete)
	}

	payments := private.Group("/payments")
	{
		payments.GET("", h.Payments.List)
		payments.GET("/order/:order_id", h.Payments.ListByOrder)
		payments.GET("/status/:status", h.Payments.ListByStatus)
		payments.GET("/transaction/:transaction_id", h.Payments.ListByTransaction)
		payments.GET("/:id", h.Payments.Get)
		payments.POST("", h.Payments.Create)
		payments.PATCH("/:id/method", h.Payments.UpdateMethod)
	}
	staffOnly.PATCH("/payments/:id/status", h.Payments.UpdateStatus)
	staffOnly.DELETE("/payments/:id", h.Payments.Delete)

	reservations := private.Group("/reservations")
	{
		reservations.GET("", h.Reservations.List)
		reservations.GET("/customer/:customer_id", h.Reservations.ListByCustomer)
		reservations.GET("/table/:table_id", h.Reservations.ListByTable)
		reservations.GET("/status/:status", h.Reservations.ListByStatus)
		reservations.GET("/date/:date", h.Reservations.ListByDate)
		reservations.GET("/:id", h.Reservations.Get)
		reservations.POST("", h.Reservations.Create)
		reservations.PATCH("/:id", h.Reservations.Update)
		reservations.DELETE("/:id", h.Reservations.Delete)
	}

	reviews := private.Group("/reviews")
	{
		reviews.GET("", h.Reviews.List)
		reviews.GET("/customer/:customer_id", h.Reviews.ListByCustomer)
		reviews.GET("/order/:order_id", h.Reviews.ListByOrder)
		reviews.GET("/rating/:rating", h.Reviews.ListByRating)
		reviews.GET("/:id", h.Reviews.Get)
		reviews.POST("", h.Reviews.Create)
		reviews.PATCH("/:id", h.Reviews.Update)
		reviews.DELETE("/:id", h.Reviews.Delete)
	}

	private.GET("/staff-schedules", h.Schedules.List)
	private.GET("/staff-schedules/:id", h.Schedules.Get)
	adminOnly.POST("/staff-schedules", h.Schedules.Create)
	adminOnly.PATCH("/staff-schedules/:id", h.Schedules.Update)
	adminOnly.DELETE("/staff-schedules/:id", h.Schedules.Delete)

	vip := private.Group("/vip-requests")
	{
		vip.GET("", h.VipRequests.List)
		vip.GET("/customer/:customer_id", h.VipRequests.ListByCustomer)
		vip.GET("/:id", h.VipRequests.Get)
		vip.POST("", h.VipRequests.Create)
		vip.DELETE("/:id", h.VipRequests.Delete)
	}
	staffOnly.POST("/vip-requests/:id/approve", h.VipRequests.Approve)
	staffOnly.POST("/vip-requests/:id/reject", h.VipRequests.Reject)

	staffOnly.GET("/reports/sales.xlsx", h.Reports.Sales)
}
