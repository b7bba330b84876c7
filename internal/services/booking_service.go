package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/response_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/repositories"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/utils"
)

const departureDateLayout = "2006-01-02"

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, req request_models.CreateBookingRequest) (*response_models.BookingResponse, error)
	UpdateStatus(ctx context.Context, req request_models.UpdateBookingStatusRequest) error
	DeleteBooking(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*response_models.BookingResponse, error)
	List(ctx context.Context, page, pageSize int) ([]response_models.BookingResponse, error)
	ListByTrek(ctx context.Context, trekID uuid.UUID, page, pageSize int) ([]response_models.BookingResponse, error)
}

// BookingMailer sends the confirmation mail after a successful booking.
// Failures are logged, never surfaced: the booking is already persisted.
type BookingMailer interface {
	SendBookingConfirmation(booking *db_models.Booking, trekName string) error
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	trekRepo    repositories.TrekRepository
	mailer      BookingMailer
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	trekRepo repositories.TrekRepository,
	mailer BookingMailer,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
		trekRepo:    trekRepo,
		mailer:      mailer,
	}
}

// CreateBooking validates the public booking form and persists the
// booking. The total price is always recomputed here from the stored
// trek price, never trusted from the client.
func (b *BookingService) CreateBooking(ctx context.Context, req request_models.CreateBookingRequest) (*response_models.BookingResponse, error) {
	if req.TravelersCount < 1 {
		return nil, fmt.Errorf("%w: travelers count must be at least 1", utils.ErrInvalidBooking)
	}

	departure, err := time.Parse(departureDateLayout, req.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("%w: departure date must be YYYY-MM-DD", utils.ErrInvalidBooking)
	}
	if departure.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, fmt.Errorf("%w: departure date is in the past", utils.ErrInvalidBooking)
	}

	trek, err := b.trekRepo.GetByID(ctx, req.TrekID)
	if err != nil {
		logrus.WithError(err).Error("fetching trek for booking")
		return nil, utils.ErrDatabaseError
	}
	if trek == nil {
		return nil, utils.ErrTrekNotFound
	}
	if !trek.IsPublished {
		return nil, utils.ErrTrekUnavailable
	}

	booking := &db_models.Booking{
		TrekID:          trek.ID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Country:         req.Country,
		SpecialRequests: req.SpecialRequests,
		DepartureDate:   departure,
		TravelersCount:  req.TravelersCount,
		TotalPrice:      trek.Price * float64(req.TravelersCount),
		BookingStatus:   db_models.BookingStatusPending,
		PaymentStatus:   db_models.PaymentStatusPending,
	}

	if _, err := b.bookingRepo.Insert(ctx, booking); err != nil {
		logrus.WithError(err).Error("creating booking")
		return nil, utils.ErrDatabaseError
	}

	if err := b.mailer.SendBookingConfirmation(booking, trek.Name); err != nil {
		logrus.WithError(err).WithField("booking_id", booking.ID).Warn("confirmation mail failed")
	}

	resp := toBookingResponse(booking, trek.Name)
	return &resp, nil
}

func (b *BookingService) UpdateStatus(ctx context.Context, req request_models.UpdateBookingStatusRequest) error {
	// Status strings are free-form on purpose: the observed set
	// (pending/confirmed/cancelled/completed) is not known to be
	// exhaustive, so nothing is rejected here.
	err := b.bookingRepo.UpdateStatus(ctx, req.ID, req.BookingStatus, req.PaymentStatus)
	if err != nil {
		if isNotFound(err) {
			return utils.ErrBookingNotFound
		}
		logrus.WithError(err).Error("updating booking status")
		return utils.ErrDatabaseError
	}
	return nil
}

func (b *BookingService) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	existing, err := b.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrBookingNotFound
	}

	if err := b.bookingRepo.Delete(ctx, id); err != nil {
		logrus.WithError(err).Error("deleting booking")
		return utils.ErrDatabaseError
	}
	return nil
}

func (b *BookingService) GetByID(ctx context.Context, id uuid.UUID) (*response_models.BookingResponse, error) {
	booking, err := b.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}

	resp := toBookingResponse(booking, booking.Trek.Name)
	return &resp, nil
}

func (b *BookingService) List(ctx context.Context, page, pageSize int) ([]response_models.BookingResponse, error) {
	bookings, err := b.bookingRepo.List(ctx, page, pageSize)
	if err != nil {
		logrus.WithError(err).Error("listing bookings")
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, toBookingResponse(&bookings[i], bookings[i].Trek.Name))
	}
	return responses, nil
}

func (b *BookingService) ListByTrek(ctx context.Context, trekID uuid.UUID, page, pageSize int) ([]response_models.BookingResponse, error) {
	bookings, err := b.bookingRepo.ListByTrek(ctx, trekID, page, pageSize)
	if err != nil {
		logrus.WithError(err).Error("listing bookings by trek")
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, toBookingResponse(&bookings[i], ""))
	}
	return responses, nil
}

func toBookingResponse(booking *db_models.Booking, trekName string) response_models.BookingResponse {
	return response_models.BookingResponse{
		ID:             booking.ID.String(),
		TrekID:         booking.TrekID.String(),
		TrekName:       trekName,
		CustomerName:   booking.CustomerName,
		CustomerEmail:  booking.CustomerEmail,
		CustomerPhone:  booking.CustomerPhone,
		Country:        booking.Country,
		DepartureDate:  booking.DepartureDate.Format(departureDateLayout),
		TravelersCount: booking.TravelersCount,
		TotalPrice:     booking.TotalPrice,
		BookingStatus:  booking.BookingStatus,
		PaymentStatus:  booking.PaymentStatus,
		CreatedAt:      booking.CreatedAt,
	}
}
