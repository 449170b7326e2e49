package validationservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nftperks/raffleport/internal/cache"
	"github.com/nftperks/raffleport/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time { return f.now }

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

const testWallet = "0x1111111111111111111111111111111111111111"

func NewMock(t *testing.T) (*Service, *MockRaffleRepo, *MockBalanceRepo, *MockEntryRepo, *cache.BalanceCache) {
	ctrl := gomock.NewController(t)
	raffleRepo := NewMockRaffleRepo(ctrl)
	balanceRepo := NewMockBalanceRepo(ctrl)
	entryRepo := NewMockEntryRepo(ctrl)
	clock := fakeClock{now: testNow}
	balanceCache := cache.NewBalanceCache(clock, time.Minute)
	service := New(raffleRepo, balanceRepo, entryRepo, balanceCache, clock)
	defer ctrl.Finish()
	return service, raffleRepo, balanceRepo, entryRepo, balanceCache
}

func activeRaffle(pointsPerTicket int64, maxTickets int) *domain.Raffle {
	return &domain.Raffle{
		ID:                7,
		Title:             "Genesis NFT Raffle",
		PointsPerTicket:   pointsPerTicket,
		MaxTicketsPerUser: maxTickets,
		EndDate:           testNow.Add(24 * time.Hour),
		Status:            domain.StatusActive,
	}
}

func TestValidate_InputErrors(t *testing.T) {
	service, _, _, _, _ := NewMock(t)

	tests := []struct {
		name        string
		ticketCount int
		wallet      string
		expected    error
	}{
		{name: "Zero tickets", ticketCount: 0, wallet: testWallet, expected: ErrInvalidTicketCount},
		{name: "Negative tickets", ticketCount: -3, wallet: testWallet, expected: ErrInvalidTicketCount},
		{name: "Malformed wallet", ticketCount: 1, wallet: "not-a-wallet", expected: ErrInvalidWallet},
		{name: "Wallet without 0x prefix", ticketCount: 1, wallet: "1111111111111111111111111111111111111111xx", expected: ErrInvalidWallet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Validate(context.Background(), 7, tt.ticketCount, tt.wallet)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		ticketCount int
		prepareMock func(raffleRepo *MockRaffleRepo, balanceRepo *MockBalanceRepo, entryRepo *MockEntryRepo)
		check       func(t *testing.T, result *ValidationResult, err error)
	}{
		{
			name:        "Affordable purchase within limits",
			ticketCount: 4,
			prepareMock: func(raffleRepo *MockRaffleRepo, balanceRepo *MockBalanceRepo, entryRepo *MockEntryRepo) {
				raffleRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(activeRaffle(75, 10), nil)
				balanceRepo.EXPECT().GetByWallet(gomock.Any(), testWallet).Return(&domain.UserBalance{WalletAddress: testWallet, Points: 500}, nil)
				entryRepo.EXPECT().SumTickets(gomock.Any(), int64(7), testWallet).Return(0, nil)
			},
			check: func(t *testing.T, result *ValidationResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(300), result.TotalCost)
				assert.Equal(t, int64(200), result.RemainingPoints)
				assert.Equal(t, 6, result.RemainingTickets)
				assert.Equal(t, 0, result.CurrentTickets)
			},
		},
		{
			name:        "Raffle does not exist",
			ticketCount: 1,
			prepareMock: func(raffleRepo *MockRaffleRepo, balanceRepo *MockBalanceRepo, entryRepo *MockEntryRepo) {
				raffleRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, nil)
				balanceRepo.EXPECT().GetByWallet(gomock.Any(), testWallet).Return(&domain.UserBalance{WalletAddress: testWallet, Points: 500}, nil)
				entryRepo.EXPECT().SumTickets(gomock.Any(), int64(7), testWallet).Return(0, nil)
			},
			check: func(t *testing.T, result *ValidationResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrRaffleNotFound)
			},
		},
		{
			name:        "Raffle already ended",
			ticketCount: 1,
			prepareMock: func(raffleRepo *MockRaffleRepo, balanceRepo *MockBalanceRepo, entryRepo *MockEntryRepo) {
				ended := activeRaffle(75, 10)
				ended.EndDate = testNow.Add(-2 * time.Hour)
				raffleRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(ended, nil)
				balanceRepo.EXPECT().GetByWallet(gomock.Any(), testWallet).Return(&domain.UserBalance{WalletAddress: testWallet, Points: 500}, nil)
				entryRepo.EXPECT().SumTickets(gomock.Any(), int64(7), testWallet).Return(0, nil)
			},
			check: func(t *testing.T, result *ValidationResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrRaffleEnded)
				var endedErr *RaffleEndedError
				assert.ErrorAs(t, err, &endedErr)
				assert.Equal(t, 2*time.Hour, endedErr.EndedAgo)
			},
		},
		{
			name:        "User has no balance record",
			ticketCount: 1,
			prepareMock: func(raffleRepo *MockRaffleRepo, balanceRepo *MockBalanceRepo, entryRepo *MockEntryRepo) {
				raffleRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(activeRaffle(75, 10), nil)
				balanceRepo.EXPECT().GetByWallet(gomock.Any(), testWallet).Return(nil, nil)
				entryRepo.EXPECT().SumTickets(gomock.Any(), int64(7), testWallet).Return(0, nil)
			},
			check: func(t *testing.T, result *ValidationResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
		{
			name:        "Insufficient points reports exact shortage",
			ticketCount: 1,
			prepareMock: func(raffleRepo *MockRaffleRepo, balanceRepo *MockBalanceRepo, entryRepo *MockEntryRepo) {
				raffleRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(activeRaffle(100, 10), nil)
				balanceRepo.EXPECT().GetByWallet(gomock.Any(), testWallet).Return(&domain.UserBalance{WalletAddress: testWallet, Points: 50}, nil)
				entryRepo.EXPECT().SumTickets(gomock.Any(), int64(7), testWallet).Return(0, nil)
			},
			check: func(t *testing.T, result *ValidationResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrInsufficientPoints)
				var insufficient *InsufficientPointsError
				assert.ErrorAs(t, err, &insufficient)
				assert.Equal(t, int64(100), insufficient.Required)
				assert.Equal(t, int64(50), insufficient.Available)
				assert.Equal(t, int64(50), insufficient.Shortage())
			},
		},
		{
			name:        "Ticket limit already reached",
			ticketCount: 1,
			prepareMock: func(raffleRepo *MockRaffleRepo, balanceRepo *MockBalanceRepo, entryRepo *MockEntryRepo) {
				raffleRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(activeRaffle(75, 5), nil)
				balanceRepo.EXPECT().GetByWallet(gomock.Any(), testWallet).Return(&domain.UserBalance{WalletAddress: testWallet, Points: 5000}, nil)
				entryRepo.EXPECT().SumTickets(gomock.Any(), int64(7), testWallet).Return(5, nil)
			},
			check: func(t *testing.T, result *ValidationResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrNoRemainingTickets)
			},
		},
		{
			name:        "Request exceeds remaining allowance",
			ticketCount: 3,
			prepareMock: func(raffleRepo *MockRaffleRepo, balanceRepo *MockBalanceRepo, entryRepo *MockEntryRepo) {
				raffleRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(activeRaffle(75, 5), nil)
				balanceRepo.EXPECT().GetByWallet(gomock.Any(), testWallet).Return(&domain.UserBalance{WalletAddress: testWallet, Points: 5000}, nil)
				entryRepo.EXPECT().SumTickets(gomock.Any(), int64(7), testWallet).Return(4, nil)
			},
			check: func(t *testing.T, result *ValidationResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrMaxTicketsExceeded)
				var exceeded *MaxTicketsExceededError
				assert.ErrorAs(t, err, &exceeded)
				assert.Equal(t, 1, exceeded.Remaining())
				assert.Equal(t, 3, exceeded.Requested)
			},
		},
		{
			name:        "Read failure propagates",
			ticketCount: 1,
			prepareMock: func(raffleRepo *MockRaffleRepo, balanceRepo *MockBalanceRepo, entryRepo *MockEntryRepo) {
				raffleRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, errors.New("database error"))
				balanceRepo.EXPECT().GetByWallet(gomock.Any(), testWallet).Return(&domain.UserBalance{WalletAddress: testWallet, Points: 500}, nil).AnyTimes()
				entryRepo.EXPECT().SumTickets(gomock.Any(), int64(7), testWallet).Return(0, nil).AnyTimes()
			},
			check: func(t *testing.T, result *ValidationResult, err error) {
				assert.Nil(t, result)
				assert.EqualError(t, err, "database error")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, raffleRepo, balanceRepo, entryRepo, _ := NewMock(t)
			tt.prepareMock(raffleRepo, balanceRepo, entryRepo)

			result, err := service.Validate(context.Background(), 7, tt.ticketCount, testWallet)
			tt.check(t, result, err)
		})
	}
}

func TestValidate_UsesCachedBalance(t *testing.T) {
	service, raffleRepo, _, entryRepo, balanceCache := NewMock(t)

	balanceCache.Set(testWallet, 500)
	raffleRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(activeRaffle(75, 10), nil)
	entryRepo.EXPECT().SumTickets(gomock.Any(), int64(7), testWallet).Return(0, nil)
	// No GetByWallet expectation: a cache hit must not touch the repo.

	result, err := service.Validate(context.Background(), 7, 2, testWallet)
	assert.NoError(t, err)
	assert.Equal(t, int64(150), result.TotalCost)
	assert.Equal(t, int64(350), result.RemainingPoints)
}

func TestValidate_PopulatesCacheOnMiss(t *testing.T) {
	service, raffleRepo, balanceRepo, entryRepo, balanceCache := NewMock(t)

	raffleRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(activeRaffle(75, 10), nil)
	balanceRepo.EXPECT().GetByWallet(gomock.Any(), testWallet).Return(&domain.UserBalance{WalletAddress: testWallet, Points: 500}, nil)
	entryRepo.EXPECT().SumTickets(gomock.Any(), int64(7), testWallet).Return(0, nil)

	_, err := service.Validate(context.Background(), 7, 2, testWallet)
	assert.NoError(t, err)

	points, ok := balanceCache.Get(testWallet)
	assert.True(t, ok)
	assert.Equal(t, int64(500), points)
}

func TestCheckPurchase_RuleOrder(t *testing.T) {
	// An ended raffle with an underfunded, over-limit user must fail on the
	// ended check first; the remaining rules are ordered the same way.
	ended := activeRaffle(100, 1)
	ended.EndDate = testNow.Add(-time.Hour)
	poor := &domain.UserBalance{WalletAddress: testWallet, Points: 0}

	_, _, err := CheckPurchase(ended, poor, 5, 3, testNow)
	assert.ErrorIs(t, err, ErrRaffleEnded)

	live := activeRaffle(100, 1)
	_, _, err = CheckPurchase(live, poor, 5, 3, testNow)
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	rich := &domain.UserBalance{WalletAddress: testWallet, Points: 10000}
	_, _, err = CheckPurchase(live, rich, 5, 3, testNow)
	assert.ErrorIs(t, err, ErrNoRemainingTickets)
}

func TestCheckPurchase_EndDateBoundary(t *testing.T) {
	raffle := activeRaffle(75, 10)
	raffle.EndDate = testNow
	user := &domain.UserBalance{WalletAddress: testWallet, Points: 500}

	// A raffle is over at the exact end instant, not one tick later.
	_, _, err := CheckPurchase(raffle, user, 0, 1, testNow)
	assert.ErrorIs(t, err, ErrRaffleEnded)

	_, _, err = CheckPurchase(raffle, user, 0, 1, testNow.Add(-time.Nanosecond))
	assert.NoError(t, err)
}

func TestCheckPurchase_ExactBalance(t *testing.T) {
	raffle := activeRaffle(125, 10)
	user := &domain.UserBalance{WalletAddress: testWallet, Points: 500}

	cost, remaining, err := CheckPurchase(raffle, user, 0, 4, testNow)
	assert.NoError(t, err)
	assert.Equal(t, int64(500), cost)
	assert.Equal(t, 10, remaining)
}
