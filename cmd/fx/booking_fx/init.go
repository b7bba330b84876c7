package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/repositories"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/services"
)

var Module = fx.Provide(
	provideBookingService, provideBookingRepo)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	trekRepo repositories.TrekRepository,
	mailer services.BookingMailer,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, trekRepo, mailer)
}
