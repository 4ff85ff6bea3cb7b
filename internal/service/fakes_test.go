package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/vietanh2810/instruments-rental-api/internal/domain"
	"github.com/vietanh2810/instruments-rental-api/internal/repository"
)

var errBoom = errors.New("boom")

type fakeUserRepo struct {
	users  map[string]domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := r.users[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.Email] = user
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return domain.User{}, repository.ErrUserNotFound
}

type fakeCreditsRepo struct {
	mu       sync.Mutex
	balances map[uint]int
	err      error
}

func newFakeCreditsRepo() *fakeCreditsRepo {
	return &fakeCreditsRepo{balances: map[uint]int{}}
}

func (r *fakeCreditsRepo) balance(userID uint) int {
	b, ok := r.balances[userID]
	if !ok {
		b = domain.DefaultCreditsBalance
		r.balances[userID] = b
	}
	return b
}

func (r *fakeCreditsRepo) Balance(_ context.Context, userID uint) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return r.balance(userID), nil
}

func (r *fakeCreditsRepo) Add(_ context.Context, userID uint, amount int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	r.balances[userID] = r.balance(userID) + amount
	return r.balances[userID], nil
}

func (r *fakeCreditsRepo) Deduct(_ context.Context, userID uint, amount int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	b := r.balance(userID)
	if b < amount {
		return b, &domain.InsufficientCreditsError{Needed: amount, Available: b}
	}
	r.balances[userID] = b - amount
	return r.balances[userID], nil
}

type fakeInstrumentRepo struct {
	instruments []domain.Instrument
	seeded      int
}

func (r *fakeInstrumentRepo) Seed(_ context.Context, instruments []domain.Instrument) error {
	r.seeded++
	r.instruments = instruments
	return nil
}

func (r *fakeInstrumentRepo) FindAll(_ context.Context) ([]domain.Instrument, error) {
	return r.instruments, nil
}

func (r *fakeInstrumentRepo) FindByCategory(_ context.Context, category string) (domain.Instrument, error) {
	for _, instrument := range r.instruments {
		if strings.EqualFold(instrument.Category, category) {
			return instrument, nil
		}
	}
	return domain.Instrument{}, domain.ErrInstrumentNotFound
}

func seededInstruments() *fakeInstrumentRepo {
	return &fakeInstrumentRepo{instruments: domain.Catalog}
}
