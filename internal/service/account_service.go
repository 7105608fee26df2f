package service

import (
	"strings"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/websocket"
	"github.com/google/uuid"
)

// AccountService handles account-related business logic
type AccountService struct {
	accountRepo    domain.AccountRepository
	eventPublisher websocket.EventPublisher
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo domain.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// SetEventPublisher sets the WebSocket event publisher
func (s *AccountService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *AccountService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// CreateAccountInput holds the input for creating an account
type CreateAccountInput struct {
	Name           string
	Role           domain.AccountRole
	InitialBalance *int64
}

// CreateAccount creates a new account
func (s *AccountService) CreateAccount(input CreateAccountInput) (*domain.Account, error) {
	// Validate name
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	// Validate role
	if !domain.ValidAccountRole(input.Role) {
		return nil, domain.ErrInvalidAccountRole
	}

	account := &domain.Account{
		Name:           name,
		Role:           input.Role,
		InitialBalance: input.InitialBalance,
	}

	created, err := s.accountRepo.Create(account)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.AccountCreated(created))

	return created, nil
}

// GetAccounts retrieves all accounts, optionally including archived ones
func (s *AccountService) GetAccounts(includeArchived bool) ([]*domain.Account, error) {
	return s.accountRepo.GetAll(includeArchived)
}

// GetAccountByID retrieves an account by ID
func (s *AccountService) GetAccountByID(id uuid.UUID) (*domain.Account, error) {
	return s.accountRepo.GetByID(id)
}

// UpdateAccount updates an account's name (only name is editable; the role
// and initial balance are fixed because overview history depends on them)
func (s *AccountService) UpdateAccount(id uuid.UUID, name string) (*domain.Account, error) {
	// Validate name
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	updated, err := s.accountRepo.Update(id, name)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.AccountUpdated(updated))

	return updated, nil
}

// ArchiveAccount soft-deletes an account. Its transactions keep feeding
// the overview history.
func (s *AccountService) ArchiveAccount(id uuid.UUID) error {
	if err := s.accountRepo.Archive(id); err != nil {
		return err
	}

	s.publishEvent(websocket.AccountArchived(DeletedPayload{ID: id}))

	return nil
}
