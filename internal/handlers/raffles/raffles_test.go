package raffles

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/nftperks/raffleport/internal/domain"
	"github.com/nftperks/raffleport/internal/dto"
	"github.com/nftperks/raffleport/internal/service/ledgerservice"
	"github.com/nftperks/raffleport/internal/service/raffleservice"
	"github.com/nftperks/raffleport/internal/service/validationservice"
	"github.com/nftperks/raffleport/pkg/auth"
)

const testWallet = "0x1111111111111111111111111111111111111111"

func NewMock(t *testing.T) (*RaffleHandler, *MockValidationService, *MockLedgerService, *MockRaffleService) {
	ctrl := gomock.NewController(t)
	validation := NewMockValidationService(ctrl)
	ledger := NewMockLedgerService(ctrl)
	raffles := NewMockRaffleService(ctrl)
	handler := New(validation, ledger, raffles)
	defer ctrl.Finish()
	return handler, validation, ledger, raffles
}

func newRequest(method, target, raffleID, body string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(r.Context(), auth.WalletKey, testWallet)
	if raffleID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", raffleID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func sampleRaffle() *domain.Raffle {
	return &domain.Raffle{
		ID:                7,
		Title:             "Genesis NFT Raffle",
		PointsPerTicket:   75,
		MaxTicketsPerUser: 10,
		EndDate:           time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		Status:            domain.StatusActive,
		PrizeTokenAddress: "0x1af96a33ee18dc85a0071eb4d6b0a57449f57b5f",
	}
}

func TestListActiveHandler(t *testing.T) {
	handler, _, _, raffles := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				raffles.EXPECT().ListActive(gomock.Any()).
					Return([]domain.Raffle{*sampleRaffle()}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "Empty list",
			prepareMock: func() {
				raffles.EXPECT().ListActive(gomock.Any()).Return([]domain.Raffle{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				raffles.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodGet, "/api/raffles", "", "")
			w := httptest.NewRecorder()

			handler.ListActive(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.RaffleResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
				if tt.expectedLen > 0 {
					assert.Equal(t, int64(7), body[0].ID)
					assert.Equal(t, "ACTIVE", body[0].Status)
				}
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, _, _, raffles := NewMock(t)

	tests := []struct {
		name          string
		raffleID      string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:     "Successful retrieval",
			raffleID: "7",
			prepareMock: func() {
				raffles.EXPECT().Get(gomock.Any(), int64(7)).Return(sampleRaffle(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid raffle id",
			raffleID:      "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid raffle id",
		},
		{
			name:          "Non-positive raffle id",
			raffleID:      "0",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid raffle id",
		},
		{
			name:     "Raffle not found",
			raffleID: "99",
			prepareMock: func() {
				raffles.EXPECT().Get(gomock.Any(), int64(99)).
					Return(nil, raffleservice.ErrRaffleNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Raffle not found",
		},
		{
			name:     "Internal server error",
			raffleID: "7",
			prepareMock: func() {
				raffles.EXPECT().Get(gomock.Any(), int64(7)).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodGet, "/api/raffles/"+tt.raffleID, tt.raffleID, "")
			w := httptest.NewRecorder()

			handler.Get(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.RaffleResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(7), body.ID)
				assert.Equal(t, int64(75), body.PointsPerTicket)
			}
		})
	}
}

func TestValidateHandler(t *testing.T) {
	handler, validation, _, _ := NewMock(t)

	tests := []struct {
		name          string
		raffleID      string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.ValidationResponseDTO
	}{
		{
			name:     "Legal purchase",
			raffleID: "7",
			body:     `{"ticket_count":4}`,
			prepareMock: func() {
				validation.EXPECT().
					Validate(gomock.Any(), int64(7), 4, testWallet).
					Return(&validationservice.ValidationResult{
						TotalCost:        300,
						RemainingPoints:  200,
						RemainingTickets: 6,
						CurrentTickets:   0,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ValidationResponseDTO{
				TotalCost:        300,
				RemainingPoints:  200,
				RemainingTickets: 6,
			},
		},
		{
			name:          "Invalid request body",
			raffleID:      "7",
			body:          `{"ticket_count":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:     "Invalid ticket count",
			raffleID: "7",
			body:     `{"ticket_count":0}`,
			prepareMock: func() {
				validation.EXPECT().
					Validate(gomock.Any(), int64(7), 0, testWallet).
					Return(nil, validationservice.ErrInvalidTicketCount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Raffle not found",
			raffleID: "99",
			body:     `{"ticket_count":4}`,
			prepareMock: func() {
				validation.EXPECT().
					Validate(gomock.Any(), int64(99), 4, testWallet).
					Return(nil, validationservice.ErrRaffleNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "Raffle ended",
			raffleID: "7",
			body:     `{"ticket_count":4}`,
			prepareMock: func() {
				validation.EXPECT().
					Validate(gomock.Any(), int64(7), 4, testWallet).
					Return(nil, &validationservice.RaffleEndedError{EndedAgo: 2 * time.Hour})
			},
			expectedCode: http.StatusGone,
		},
		{
			name:     "Insufficient points",
			raffleID: "7",
			body:     `{"ticket_count":4}`,
			prepareMock: func() {
				validation.EXPECT().
					Validate(gomock.Any(), int64(7), 4, testWallet).
					Return(nil, &validationservice.InsufficientPointsError{Required: 300, Available: 250})
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:     "Per-user cap exhausted",
			raffleID: "7",
			body:     `{"ticket_count":4}`,
			prepareMock: func() {
				validation.EXPECT().
					Validate(gomock.Any(), int64(7), 4, testWallet).
					Return(nil, validationservice.ErrNoRemainingTickets)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:     "Internal server error",
			raffleID: "7",
			body:     `{"ticket_count":4}`,
			prepareMock: func() {
				validation.EXPECT().
					Validate(gomock.Any(), int64(7), 4, testWallet).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/raffles/"+tt.raffleID+"/validate", tt.raffleID, tt.body)
			w := httptest.NewRecorder()

			handler.Validate(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.ValidationResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestPurchaseHandler(t *testing.T) {
	handler, _, ledger, _ := NewMock(t)

	tests := []struct {
		name          string
		raffleID      string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.PurchaseResponseDTO
	}{
		{
			name:     "Successful purchase",
			raffleID: "7",
			body:     `{"ticket_count":4,"points_to_deduct":300}`,
			prepareMock: func() {
				ledger.EXPECT().
					Purchase(gomock.Any(), testWallet, int64(7), 4, int64(300)).
					Return(&ledgerservice.PurchaseResult{
						EntryID:          17,
						TicketsPurchased: 4,
						TotalTickets:     4,
						PointsSpent:      300,
						RemainingPoints:  200,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.PurchaseResponseDTO{
				EntryID:          17,
				TicketsPurchased: 4,
				TotalTickets:     4,
				PointsSpent:      300,
				RemainingPoints:  200,
			},
		},
		{
			name:          "Invalid request body",
			raffleID:      "7",
			body:          `{"ticket_count":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Invalid raffle id",
			raffleID:      "-3",
			body:          `{"ticket_count":4,"points_to_deduct":300}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid raffle id",
		},
		{
			name:     "Cost mismatch",
			raffleID: "7",
			body:     `{"ticket_count":4,"points_to_deduct":250}`,
			prepareMock: func() {
				ledger.EXPECT().
					Purchase(gomock.Any(), testWallet, int64(7), 4, int64(250)).
					Return(nil, ledgerservice.ErrCostMismatch)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:     "Raffle ended",
			raffleID: "7",
			body:     `{"ticket_count":4,"points_to_deduct":300}`,
			prepareMock: func() {
				ledger.EXPECT().
					Purchase(gomock.Any(), testWallet, int64(7), 4, int64(300)).
					Return(nil, validationservice.ErrRaffleEnded)
			},
			expectedCode: http.StatusGone,
		},
		{
			name:     "Balance shrank under the lock",
			raffleID: "7",
			body:     `{"ticket_count":4,"points_to_deduct":300}`,
			prepareMock: func() {
				ledger.EXPECT().
					Purchase(gomock.Any(), testWallet, int64(7), 4, int64(300)).
					Return(nil, &validationservice.InsufficientPointsError{Required: 300, Available: 100})
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:     "User not found",
			raffleID: "7",
			body:     `{"ticket_count":4,"points_to_deduct":300}`,
			prepareMock: func() {
				ledger.EXPECT().
					Purchase(gomock.Any(), testWallet, int64(7), 4, int64(300)).
					Return(nil, validationservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "Internal server error",
			raffleID: "7",
			body:     `{"ticket_count":4,"points_to_deduct":300}`,
			prepareMock: func() {
				ledger.EXPECT().
					Purchase(gomock.Any(), testWallet, int64(7), 4, int64(300)).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := newRequest(http.MethodPost, "/api/raffles/"+tt.raffleID+"/purchase", tt.raffleID, tt.body)
			w := httptest.NewRecorder()

			handler.Purchase(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.PurchaseResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
