package http

import (
	"net/http"

	"vet-clinic-management/internal/delivery/http/handler"
	"vet-clinic-management/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	appointmentHandler  *handler.AppointmentHandler
	scheduleHandler     *handler.ScheduleHandler
	availabilityHandler *handler.AvailabilityHandler
	inventoryHandler    *handler.InventoryHandler
	petRecordHandler    *handler.PetRecordHandler
	vetHandler          *handler.VetHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	scheduleHandler *handler.ScheduleHandler,
	availabilityHandler *handler.AvailabilityHandler,
	inventoryHandler *handler.InventoryHandler,
	petRecordHandler *handler.PetRecordHandler,
	vetHandler *handler.VetHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		appointmentHandler:  appointmentHandler,
		scheduleHandler:     scheduleHandler,
		availabilityHandler: availabilityHandler,
		inventoryHandler:    inventoryHandler,
		petRecordHandler:    petRecordHandler,
		vetHandler:          vetHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Public booking surface: the slot grid, the vet picker and booking
	// itself work without an account (walk-in and phone bookings)
	api.HandleFunc("/appointments", r.appointmentHandler.Book).Methods(http.MethodPost)
	api.HandleFunc("/appointments/slots/{date}", r.appointmentHandler.DaySlots).Methods(http.MethodGet)
	api.HandleFunc("/vets/names", r.vetHandler.ActiveNames).Methods(http.MethodGet)

	// Owner routes (protected - owner only)
	owner := api.PathPrefix("/my").Subrouter()
	owner.Use(r.authMiddleware.Authenticate)
	owner.Use(middleware.RequireOwner)
	owner.HandleFunc("/appointments", r.appointmentHandler.ListMine).Methods(http.MethodGet)
	owner.HandleFunc("/pets", r.petRecordHandler.Create).Methods(http.MethodPost)
	owner.HandleFunc("/pets", r.petRecordHandler.ListMine).Methods(http.MethodGet)

	// Shared protected routes: owners reach their own resources, staff and
	// vets reach all of them (ownership is enforced in the usecases)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/pets/{id}", r.petRecordHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/pets/{id}", r.petRecordHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/pets/{id}", r.petRecordHandler.Delete).Methods(http.MethodDelete)

	// Clinic routes (protected - staff or vet)
	clinic := api.PathPrefix("/clinic").Subrouter()
	clinic.Use(r.authMiddleware.Authenticate)
	clinic.Use(middleware.RequireClinicStaff)
	clinic.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	clinic.HandleFunc("/appointments/{id}/payment", r.appointmentHandler.UpdatePayment).Methods(http.MethodPatch)
	clinic.HandleFunc("/pets", r.petRecordHandler.ListAll).Methods(http.MethodGet)
	clinic.HandleFunc("/schedules", r.scheduleHandler.List).Methods(http.MethodGet)
	clinic.HandleFunc("/schedules/{id}", r.scheduleHandler.Get).Methods(http.MethodGet)
	clinic.HandleFunc("/availability", r.availabilityHandler.List).Methods(http.MethodGet)
	clinic.HandleFunc("/availability/{name}", r.availabilityHandler.GetByVeterinarian).Methods(http.MethodGet)
	clinic.HandleFunc("/availability/{name}/slots/{date}", r.availabilityHandler.VetDaySlots).Methods(http.MethodGet)
	clinic.HandleFunc("/inventory", r.inventoryHandler.GetAll).Methods(http.MethodGet)
	clinic.HandleFunc("/inventory/low-stock", r.inventoryHandler.GetLowStock).Methods(http.MethodGet)
	clinic.HandleFunc("/inventory/expired", r.inventoryHandler.GetExpired).Methods(http.MethodGet)
	clinic.HandleFunc("/inventory/{id}", r.inventoryHandler.GetByID).Methods(http.MethodGet)

	// Vet self-service
	vet := api.PathPrefix("/vet").Subrouter()
	vet.Use(r.authMiddleware.Authenticate)
	vet.Use(middleware.RequireVet)
	vet.HandleFunc("/profile", r.vetHandler.UpdateSelf).Methods(http.MethodPut)

	// Staff routes (protected - staff only)
	staff := api.PathPrefix("/staff").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)

	// Veterinarian management
	staff.HandleFunc("/vets", r.vetHandler.Register).Methods(http.MethodPost)
	staff.HandleFunc("/vets", r.vetHandler.GetAll).Methods(http.MethodGet)
	staff.HandleFunc("/vets/{id}", r.vetHandler.Get).Methods(http.MethodGet)
	staff.HandleFunc("/vets/{id}", r.vetHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/vets/{id}", r.vetHandler.Delete).Methods(http.MethodDelete)

	// Schedule management
	staff.HandleFunc("/schedules", r.scheduleHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/schedules/{id}", r.scheduleHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/schedules/{id}", r.scheduleHandler.Delete).Methods(http.MethodDelete)

	// Availability templates
	staff.HandleFunc("/availability", r.availabilityHandler.Upsert).Methods(http.MethodPut)
	staff.HandleFunc("/availability/{name}", r.availabilityHandler.Delete).Methods(http.MethodDelete)

	// Inventory management
	staff.HandleFunc("/inventory", r.inventoryHandler.Create).Methods(http.MethodPost)
	staff.HandleFunc("/inventory/{id}", r.inventoryHandler.Update).Methods(http.MethodPut)
	staff.HandleFunc("/inventory/{id}", r.inventoryHandler.Delete).Methods(http.MethodDelete)

	// Appointment removal and audit trail
	staff.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	staff.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)
	staff.HandleFunc("/audit-logs/{id}", r.auditLogHandler.Get).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
