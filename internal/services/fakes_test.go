package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"petsoft/internal/models/db_models"
	"petsoft/pkg/utils"
)

// memoryAccounts is an in-memory AccountRepository.
type memoryAccounts struct {
	mu        sync.Mutex
	byEmail   map[string]*db_models.Account
	updates   int
	findErr   error
	updateErr error
}

func newMemoryAccounts(accounts ...*db_models.Account) *memoryAccounts {
	m := &memoryAccounts{byEmail: map[string]*db_models.Account{}}
	for _, a := range accounts {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		m.byEmail[a.Email] = a
	}
	return m
}

func (m *memoryAccounts) Insert(_ context.Context, account *db_models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[account.Email]; ok {
		return utils.ErrEmailAlreadyExists
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	copied := *account
	m.byEmail[account.Email] = &copied
	return nil
}

func (m *memoryAccounts) FindById(_ context.Context, id string) (*db_models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, a := range m.byEmail {
		if a.ID.String() == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memoryAccounts) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	a, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (m *memoryAccounts) UpdateAccessByEmail(_ context.Context, email string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	if m.updateErr != nil {
		return 0, m.updateErr
	}
	a, ok := m.byEmail[email]
	if !ok {
		return 0, nil
	}
	a.HasAccess = true
	return 1, nil
}

func (m *memoryAccounts) hasAccess(email string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byEmail[email]
	return ok && a.HasAccess
}

// memoryPets is an in-memory PetRepository.
type memoryPets struct {
	mu   sync.Mutex
	pets map[uuid.UUID]*db_models.Pet
	err  error
}

func newMemoryPets() *memoryPets {
	return &memoryPets{pets: map[uuid.UUID]*db_models.Pet{}}
}

func (m *memoryPets) Insert(_ context.Context, pet *db_models.Pet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if pet.ID == uuid.Nil {
		pet.ID = uuid.New()
	}
	copied := *pet
	m.pets[pet.ID] = &copied
	return nil
}

func (m *memoryPets) FindById(_ context.Context, id uuid.UUID) (*db_models.Pet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.pets[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (m *memoryPets) ListByAccount(_ context.Context, accountID uuid.UUID) ([]db_models.Pet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []db_models.Pet
	for _, p := range m.pets {
		if p.AccountID == accountID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memoryPets) Update(_ context.Context, pet *db_models.Pet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pets[pet.ID]; !ok {
		return errors.New("update of unknown pet")
	}
	copied := *pet
	m.pets[pet.ID] = &copied
	return nil
}

func (m *memoryPets) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pets, id)
	return nil
}
