package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/request_models"
	"github.com/sujan03nepal/apex-trek-platform-sub000/pkg/utils"
)

type fakeTrekRepo struct {
	treks map[uuid.UUID]*db_models.Trek
}

func (f *fakeTrekRepo) Insert(ctx context.Context, trek *db_models.Trek) (uuid.UUID, error) {
	if trek.ID == uuid.Nil {
		trek.ID = uuid.New()
	}
	f.treks[trek.ID] = trek
	return trek.ID, nil
}

func (f *fakeTrekRepo) Update(ctx context.Context, trek *db_models.Trek) error {
	f.treks[trek.ID] = trek
	return nil
}

func (f *fakeTrekRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.treks, id)
	return nil
}

func (f *fakeTrekRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Trek, error) {
	return f.treks[id], nil
}

func (f *fakeTrekRepo) GetBySlug(ctx context.Context, slug string) (*db_models.Trek, error) {
	for _, trek := range f.treks {
		if trek.Slug == slug {
			return trek, nil
		}
	}
	return nil, nil
}

func (f *fakeTrekRepo) ListPublished(ctx context.Context) ([]db_models.Trek, error) {
	var out []db_models.Trek
	for _, trek := range f.treks {
		if trek.IsPublished {
			out = append(out, *trek)
		}
	}
	return out, nil
}

func (f *fakeTrekRepo) ListAll(ctx context.Context, page, pageSize int) ([]db_models.Trek, error) {
	var out []db_models.Trek
	for _, trek := range f.treks {
		out = append(out, *trek)
	}
	return out, nil
}

func (f *fakeTrekRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for _, trek := range f.treks {
		if trek.Slug == slug && trek.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*db_models.Booking
	inserts  int
}

func (f *fakeBookingRepo) Insert(ctx context.Context, booking *db_models.Booking) (uuid.UUID, error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	f.bookings[booking.ID] = booking
	f.inserts++
	return booking.ID, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, bookingStatus, paymentStatus string) error {
	booking, ok := f.bookings[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if bookingStatus != "" {
		booking.BookingStatus = bookingStatus
	}
	if paymentStatus != "" {
		booking.PaymentStatus = paymentStatus
	}
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) List(ctx context.Context, page, pageSize int) ([]db_models.Booking, error) {
	var out []db_models.Booking
	for _, booking := range f.bookings {
		out = append(out, *booking)
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByTrek(ctx context.Context, trekID uuid.UUID, page, pageSize int) ([]db_models.Booking, error) {
	var out []db_models.Booking
	for _, booking := range f.bookings {
		if booking.TrekID == trekID {
			out = append(out, *booking)
		}
	}
	return out, nil
}

type recordingMailer struct {
	sent int
}

func (m *recordingMailer) SendBookingConfirmation(booking *db_models.Booking, trekName string) error {
	m.sent++
	return nil
}

func newBookingFixture(t *testing.T, published bool) (BookingServiceInterface, *fakeBookingRepo, *recordingMailer, uuid.UUID) {
	t.Helper()

	trekRepo := &fakeTrekRepo{treks: map[uuid.UUID]*db_models.Trek{}}
	trek := &db_models.Trek{
		Name:        "Manaslu Circuit",
		Slug:        "manaslu-circuit",
		Price:       1300,
		IsPublished: published,
	}
	trekID, _ := trekRepo.Insert(context.Background(), trek)

	bookingRepo := &fakeBookingRepo{bookings: map[uuid.UUID]*db_models.Booking{}}
	mailer := &recordingMailer{}
	return NewBookingService(bookingRepo, trekRepo, mailer), bookingRepo, mailer, trekID
}

func futureDate() string {
	return time.Now().AddDate(0, 1, 0).Format(departureDateLayout)
}

func TestCreateBookingComputesTotalPrice(t *testing.T) {
	for _, travelers := range []int{1, 2, 10} {
		svc, _, mailer, trekID := newBookingFixture(t, true)

		resp, err := svc.CreateBooking(context.Background(), request_models.CreateBookingRequest{
			TrekID:         trekID,
			CustomerName:   "Asha Gurung",
			CustomerEmail:  "asha@example.com",
			DepartureDate:  futureDate(),
			TravelersCount: travelers,
		})
		if err != nil {
			t.Fatalf("travelers=%d: %v", travelers, err)
		}

		want := 1300 * float64(travelers)
		if resp.TotalPrice != want {
			t.Fatalf("travelers=%d: total price %.2f, want %.2f", travelers, resp.TotalPrice, want)
		}
		if resp.BookingStatus != db_models.BookingStatusPending {
			t.Fatalf("new booking status %q, want pending", resp.BookingStatus)
		}
		if mailer.sent != 1 {
			t.Fatalf("confirmation mail sent %d times", mailer.sent)
		}
	}
}

func TestCreateBookingRejectsZeroTravelers(t *testing.T) {
	svc, repo, _, trekID := newBookingFixture(t, true)

	_, err := svc.CreateBooking(context.Background(), request_models.CreateBookingRequest{
		TrekID:         trekID,
		CustomerName:   "Asha Gurung",
		DepartureDate:  futureDate(),
		TravelersCount: 0,
	})
	if !errors.Is(err, utils.ErrInvalidBooking) {
		t.Fatalf("expected ErrInvalidBooking, got %v", err)
	}
	if repo.inserts != 0 {
		t.Fatalf("booking was persisted despite validation failure")
	}
}

func TestCreateBookingRejectsBadDepartureDate(t *testing.T) {
	svc, repo, _, trekID := newBookingFixture(t, true)

	for _, date := range []string{"", "next tuesday", "2026/05/01", "2020-01-01"} {
		_, err := svc.CreateBooking(context.Background(), request_models.CreateBookingRequest{
			TrekID:         trekID,
			CustomerName:   "Asha Gurung",
			DepartureDate:  date,
			TravelersCount: 2,
		})
		if !errors.Is(err, utils.ErrInvalidBooking) {
			t.Fatalf("date %q: expected ErrInvalidBooking, got %v", date, err)
		}
	}
	if repo.inserts != 0 {
		t.Fatalf("booking was persisted despite invalid date")
	}
}

func TestCreateBookingRejectsUnpublishedTrek(t *testing.T) {
	svc, _, _, trekID := newBookingFixture(t, false)

	_, err := svc.CreateBooking(context.Background(), request_models.CreateBookingRequest{
		TrekID:         trekID,
		CustomerName:   "Asha Gurung",
		DepartureDate:  futureDate(),
		TravelersCount: 2,
	})
	if !errors.Is(err, utils.ErrTrekUnavailable) {
		t.Fatalf("expected ErrTrekUnavailable, got %v", err)
	}
}

func TestCreateBookingRejectsUnknownTrek(t *testing.T) {
	svc, _, _, _ := newBookingFixture(t, true)

	_, err := svc.CreateBooking(context.Background(), request_models.CreateBookingRequest{
		TrekID:         uuid.New(),
		CustomerName:   "Asha Gurung",
		DepartureDate:  futureDate(),
		TravelersCount: 2,
	})
	if !errors.Is(err, utils.ErrTrekNotFound) {
		t.Fatalf("expected ErrTrekNotFound, got %v", err)
	}
}

func TestDeleteBookingRemovesOnlyTarget(t *testing.T) {
	svc, repo, _, trekID := newBookingFixture(t, true)

	first, err := svc.CreateBooking(context.Background(), request_models.CreateBookingRequest{
		TrekID:         trekID,
		CustomerName:   "Asha Gurung",
		DepartureDate:  futureDate(),
		TravelersCount: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.CreateBooking(context.Background(), request_models.CreateBookingRequest{
		TrekID:         trekID,
		CustomerName:   "Tom Weber",
		DepartureDate:  futureDate(),
		TravelersCount: 4,
	})
	if err != nil {
		t.Fatal(err)
	}

	firstID, _ := uuid.Parse(first.ID)
	if err := svc.DeleteBooking(context.Background(), firstID); err != nil {
		t.Fatal(err)
	}

	if len(repo.bookings) != 1 {
		t.Fatalf("expected 1 booking left, got %d", len(repo.bookings))
	}
	secondID, _ := uuid.Parse(second.ID)
	if _, ok := repo.bookings[secondID]; !ok {
		t.Fatalf("wrong booking deleted")
	}

	if err := svc.DeleteBooking(context.Background(), firstID); !errors.Is(err, utils.ErrBookingNotFound) {
		t.Fatalf("deleting twice should report not found, got %v", err)
	}
}
