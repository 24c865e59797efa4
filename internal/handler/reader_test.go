package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/testutil"
)

func TestReaderRoutes_RequireUserCookie(t *testing.T) {
	s := newTestServer(t)
	library := testutil.SeedLibrary(t, s.db, "Desk", "Pune", "411001")

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/addresses"},
		{http.MethodGet, "/api/wallet"},
		{http.MethodPost, "/api/wallet/deposit"},
		{http.MethodGet, "/api/rentals"},
		{http.MethodPost, "/api/rentals"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := s.do(t, p.method, p.path, nil)
			expectStatus(t, w, http.StatusUnauthorized)

			w = s.do(t, p.method, p.path, nil, s.libraryCookie(t, library))
			expectStatus(t, w, http.StatusForbidden)
		})
	}
}

func TestAddresses_Lifecycle(t *testing.T) {
	s := newTestServer(t)
	user := testutil.SeedUser(t, s.db, "ada@example.com", 0)
	cookie := s.userCookie(t, user)

	w := s.do(t, http.MethodPost, "/api/addresses", CreateAddressRequest{Line1: "1 Main St", City: "Pune", PostalCode: "411001"}, cookie)
	expectStatus(t, w, http.StatusCreated)
	home := decodeData[Address](t, w)
	if !home.IsDefault {
		t.Fatalf("expected the first address to become default")
	}

	w = s.do(t, http.MethodPost, "/api/addresses", CreateAddressRequest{Label: "Work", Line1: "2 Side St", City: "Pune", PostalCode: "411002"}, cookie)
	expectStatus(t, w, http.StatusCreated)
	work := decodeData[Address](t, w)
	if work.IsDefault {
		t.Fatalf("expected the second address not to be default")
	}

	w = s.do(t, http.MethodPost, "/api/addresses/"+work.ID.String()+"/default", nil, cookie)
	expectStatus(t, w, http.StatusOK)

	city := "Mumbai"
	w = s.do(t, http.MethodPatch, "/api/addresses/"+home.ID.String(), UpdateAddressRequest{City: &city}, cookie)
	expectStatus(t, w, http.StatusOK)
	if got := decodeData[Address](t, w); got.City != "Mumbai" || got.IsDefault {
		t.Fatalf("unexpected updated address: %+v", got)
	}

	w = s.do(t, http.MethodPatch, "/api/addresses/"+home.ID.String(), UpdateAddressRequest{}, cookie)
	expectStatus(t, w, http.StatusBadRequest)
	if code := decodeError(t, w).Code; code != "NO_FIELDS_TO_UPDATE" {
		t.Fatalf("expected NO_FIELDS_TO_UPDATE, got %q", code)
	}

	w = s.do(t, http.MethodDelete, "/api/addresses/"+work.ID.String(), nil, cookie)
	expectStatus(t, w, http.StatusNoContent)

	w = s.do(t, http.MethodGet, "/api/addresses", nil, cookie)
	expectStatus(t, w, http.StatusOK)
	list := decodeData[[]Address](t, w)
	if len(list) != 1 || list[0].ID != home.ID || !list[0].IsDefault {
		t.Fatalf("expected home to be the only, default address, got %+v", list)
	}
}

func TestAddresses_ScopedToOwner(t *testing.T) {
	s := newTestServer(t)
	owner := testutil.SeedUser(t, s.db, "owner@example.com", 0)
	other := testutil.SeedUser(t, s.db, "other@example.com", 0)

	w := s.do(t, http.MethodPost, "/api/addresses", CreateAddressRequest{Line1: "1 Main St", City: "Pune", PostalCode: "411001"}, s.userCookie(t, owner))
	expectStatus(t, w, http.StatusCreated)
	address := decodeData[Address](t, w)

	w = s.do(t, http.MethodDelete, "/api/addresses/"+address.ID.String(), nil, s.userCookie(t, other))
	expectStatus(t, w, http.StatusNotFound)
	if code := decodeError(t, w).Code; code != "ADDRESS_NOT_FOUND" {
		t.Fatalf("expected ADDRESS_NOT_FOUND, got %q", code)
	}

	w = s.do(t, http.MethodDelete, "/api/addresses/not-a-uuid", nil, s.userCookie(t, owner))
	expectStatus(t, w, http.StatusBadRequest)
}

func TestWallet_Deposit(t *testing.T) {
	s := newTestServer(t)
	user := testutil.SeedUser(t, s.db, "ada@example.com", 100)
	cookie := s.userCookie(t, user)

	w := s.do(t, http.MethodPost, "/api/wallet/deposit", DepositRequest{Amount: 250.5}, cookie)
	expectStatus(t, w, http.StatusOK)
	if got := decodeData[Wallet](t, w); got.Balance != 350.5 {
		t.Fatalf("expected balance 350.5, got %v", got.Balance)
	}

	w = s.do(t, http.MethodGet, "/api/wallet", nil, cookie)
	expectStatus(t, w, http.StatusOK)
	if got := decodeData[Wallet](t, w); got.Balance != 350.5 {
		t.Fatalf("expected balance 350.5, got %v", got.Balance)
	}

	for _, amount := range []float64{0, -5, 100001} {
		w = s.do(t, http.MethodPost, "/api/wallet/deposit", DepositRequest{Amount: amount}, cookie)
		expectStatus(t, w, http.StatusBadRequest)
	}
}

func TestWallet_UnknownUser(t *testing.T) {
	s := newTestServer(t)
	ghost := model.User{ID: uuid.New(), Name: "Ghost", Email: "ghost@example.com"}

	w := s.do(t, http.MethodGet, "/api/wallet", nil, s.userCookie(t, ghost))
	expectStatus(t, w, http.StatusNotFound)
}

func seedRentable(t *testing.T, s *testServer, balance float64, available int) (model.User, model.Library, model.Book) {
	t.Helper()

	user := testutil.SeedUser(t, s.db, "reader@example.com", balance)
	library := testutil.SeedLibrary(t, s.db, "Central", "Pune", "411001")
	genre := testutil.SeedGenre(t, s.db, "Fiction")
	book := testutil.SeedBook(t, s.db, testutil.BookSeed{Title: "Dune", Price: 40, Deposit: 300, Genre: genre})
	testutil.SeedStock(t, s.db, library, book, 2, available)

	return user, library, book
}

func TestRentals_Create(t *testing.T) {
	s := newTestServer(t)
	user, library, book := seedRentable(t, s, 500, 1)
	cookie := s.userCookie(t, user)

	w := s.do(t, http.MethodPost, "/api/rentals", CreateRentalRequest{BookID: book.ID, LibraryID: library.ID, Weeks: 3}, cookie)
	expectStatus(t, w, http.StatusCreated)

	rental := decodeData[Rental](t, w)
	if rental.RentAmount != 120 || rental.DepositAmount != 300 || rental.Weeks != 3 {
		t.Fatalf("unexpected rental: %+v", rental)
	}

	w = s.do(t, http.MethodGet, "/api/wallet", nil, cookie)
	if got := decodeData[Wallet](t, w); got.Balance != 200 {
		t.Fatalf("expected deposit to be held, balance=%v", got.Balance)
	}

	w = s.do(t, http.MethodPost, "/api/rentals", CreateRentalRequest{BookID: book.ID, LibraryID: library.ID, Weeks: 1}, cookie)
	expectStatus(t, w, http.StatusBadRequest)
	if code := decodeError(t, w).Code; code != "INSUFFICIENT_DEPOSIT" {
		t.Fatalf("expected INSUFFICIENT_DEPOSIT, got %q", code)
	}

	w = s.do(t, http.MethodGet, "/api/rentals", nil, cookie)
	expectStatus(t, w, http.StatusOK)
	list := decodeData[[]Rental](t, w)
	if len(list) != 1 || list[0].Book == nil || list[0].Book.Title != "Dune" {
		t.Fatalf("unexpected rentals: %+v", list)
	}
}

func TestRentals_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		available int
		weeks     int
		unknown   bool
		status    int
		code      string
	}{
		{"out of stock", 0, 1, false, http.StatusConflict, "OUT_OF_STOCK"},
		{"unknown book", 1, 1, true, http.StatusNotFound, "BOOK_NOT_FOUND"},
		{"too many weeks", 1, 13, false, http.StatusBadRequest, "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			user, library, book := seedRentable(t, s, 500, tt.available)

			bookID := book.ID
			if tt.unknown {
				bookID = uuid.New()
			}

			w := s.do(t, http.MethodPost, "/api/rentals", CreateRentalRequest{BookID: bookID, LibraryID: library.ID, Weeks: tt.weeks}, s.userCookie(t, user))
			expectStatus(t, w, tt.status)
			if code := decodeError(t, w).Code; code != tt.code {
				t.Fatalf("expected %s, got %q", tt.code, code)
			}
		})
	}
}
