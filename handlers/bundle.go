package handlers

import (
	userRepoPkg "stilrandevu/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// User endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	DeleteUserHandler       gin.HandlerFunc
	RevokeTokenHandler      gin.HandlerFunc

	// Provider endpoints
	ListProvidersHandler       gin.HandlerFunc
	NearbyProvidersHandler     gin.HandlerFunc
	GetProviderByIDHandler     gin.HandlerFunc
	RegisterProviderHandler    gin.HandlerFunc
	UpdateProviderHandler      gin.HandlerFunc
	DeleteProviderHandler      gin.HandlerFunc
	AddServiceHandler          gin.HandlerFunc
	RemoveServiceHandler       gin.HandlerFunc
	UploadProviderImageHandler gin.HandlerFunc

	// Booking endpoints
	InitiateSessionHandler gin.HandlerFunc
	ToggleServiceHandler   gin.HandlerFunc
	ChooseSlotHandler      gin.HandlerFunc
	ConfirmBookingHandler  gin.HandlerFunc
	CancelSessionHandler   gin.HandlerFunc

	// Appointment endpoints
	ListMyAppointmentsHandler       gin.HandlerFunc
	ListIncomingAppointmentsHandler gin.HandlerFunc
	CompleteAppointmentHandler      gin.HandlerFunc
	CancelAppointmentHandler        gin.HandlerFunc
	RateAppointmentHandler          gin.HandlerFunc

	// Favorite endpoints
	ToggleFavoriteHandler gin.HandlerFunc
	ListFavoritesHandler  gin.HandlerFunc
}

// Handlers are the concrete handler groups the bundle is built from.
type Handlers struct {
	User        *UserHandler
	Provider    *ProviderHandler
	Booking     *BookingHandler
	Appointment *AppointmentHandler
	Favorite    *FavoriteHandler
	Rating      *RatingHandler
	Storage     *StorageHandler
}

// NewHandlerBundle wires the handler groups into a flat bundle.
func NewHandlerBundle(h Handlers, userRepo userRepoPkg.UserRepository) *HandlerBundle {
	return &HandlerBundle{
		UserRepo: userRepo,

		RegisterUserHandler:     h.User.RegisterUserHandler,
		AuthenticateUserHandler: h.User.AuthenticateUserHandler,
		GetProfileHandler:       h.User.GetProfileHandler,
		UpdateProfileHandler:    h.User.UpdateProfileHandler,
		DeleteUserHandler:       h.User.DeleteUserHandler,
		RevokeTokenHandler:      h.User.RevokeTokenHandler,

		ListProvidersHandler:       h.Provider.ListProvidersHandler,
		NearbyProvidersHandler:     h.Provider.NearbyProvidersHandler,
		GetProviderByIDHandler:     h.Provider.GetProviderByIDHandler,
		RegisterProviderHandler:    h.Provider.RegisterProviderHandler,
		UpdateProviderHandler:      h.Provider.UpdateProviderHandler,
		DeleteProviderHandler:      h.Provider.DeleteProviderHandler,
		AddServiceHandler:          h.Provider.AddServiceHandler,
		RemoveServiceHandler:       h.Provider.RemoveServiceHandler,
		UploadProviderImageHandler: h.Storage.UploadProviderImageHandler,

		InitiateSessionHandler: h.Booking.InitiateSessionHandler,
		ToggleServiceHandler:   h.Booking.ToggleServiceHandler,
		ChooseSlotHandler:      h.Booking.ChooseSlotHandler,
		ConfirmBookingHandler:  h.Booking.ConfirmBookingHandler,
		CancelSessionHandler:   h.Booking.CancelSessionHandler,

		ListMyAppointmentsHandler:       h.Appointment.ListMyAppointmentsHandler,
		ListIncomingAppointmentsHandler: h.Appointment.ListIncomingAppointmentsHandler,
		CompleteAppointmentHandler:      h.Appointment.CompleteAppointmentHandler,
		CancelAppointmentHandler:        h.Appointment.CancelAppointmentHandler,
		RateAppointmentHandler:          h.Rating.RateAppointmentHandler,

		ToggleFavoriteHandler: h.Favorite.ToggleFavoriteHandler,
		ListFavoritesHandler:  h.Favorite.ListFavoritesHandler,
	}
}
