package service

import (
	"strings"
	"testing"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/testutil"
	"github.com/google/uuid"
)

func TestCreateAccount_Success_Operational(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	initialBalance := int64(1000000)
	account, err := accountService.CreateAccount(CreateAccountInput{
		Name:           "Main Checking",
		Role:           domain.AccountRoleOperational,
		InitialBalance: &initialBalance,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if account.Name != "Main Checking" {
		t.Errorf("Expected name 'Main Checking', got %s", account.Name)
	}
	if account.Role != domain.AccountRoleOperational {
		t.Errorf("Expected role operational, got %s", account.Role)
	}
	if account.InitialBalance == nil || *account.InitialBalance != 1000000 {
		t.Errorf("Expected initial balance 1000000, got %v", account.InitialBalance)
	}
}

func TestCreateAccount_Success_Savings(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	account, err := accountService.CreateAccount(CreateAccountInput{
		Name: "Emergency Fund",
		Role: domain.AccountRoleSavings,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if account.Role != domain.AccountRoleSavings {
		t.Errorf("Expected role savings, got %s", account.Role)
	}
	if account.InitialBalance != nil {
		t.Errorf("Expected nil initial balance, got %v", *account.InitialBalance)
	}
}

func TestCreateAccount_EmptyName(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	_, err := accountService.CreateAccount(CreateAccountInput{
		Name: "",
		Role: domain.AccountRoleOperational,
	})
	if err != domain.ErrNameRequired {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
}

func TestCreateAccount_NameTooLong(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	_, err := accountService.CreateAccount(CreateAccountInput{
		Name: strings.Repeat("a", 256),
		Role: domain.AccountRoleOperational,
	})
	if err != domain.ErrNameTooLong {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}
}

func TestCreateAccount_InvalidRole(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	_, err := accountService.CreateAccount(CreateAccountInput{
		Name: "Main Checking",
		Role: "credit",
	})
	if err != domain.ErrInvalidAccountRole {
		t.Errorf("Expected ErrInvalidAccountRole, got %v", err)
	}
}

func TestCreateAccount_PublishesEvent(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)
	mockPublisher := testutil.NewMockEventPublisher()
	accountService.SetEventPublisher(mockPublisher)

	_, err := accountService.CreateAccount(CreateAccountInput{
		Name: "Main Checking",
		Role: domain.AccountRoleOperational,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(mockPublisher.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(mockPublisher.Events))
	}
	if mockPublisher.Events[0].Type != "account.created" {
		t.Errorf("Expected event type account.created, got %s", mockPublisher.Events[0].Type)
	}
}

func TestGetAccounts_ExcludesArchived(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	activeID := uuid.New()
	accountRepo.AddAccount(&domain.Account{ID: activeID, Name: "Active", Role: domain.AccountRoleOperational})

	archivedID := uuid.New()
	accountRepo.AddAccount(&domain.Account{ID: archivedID, Name: "Closed", Role: domain.AccountRoleOperational})
	if err := accountRepo.Archive(archivedID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	accounts, err := accountService.GetAccounts(false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(accounts) != 1 {
		t.Fatalf("Expected 1 account, got %d", len(accounts))
	}
	if accounts[0].ID != activeID {
		t.Errorf("Expected account %s, got %s", activeID, accounts[0].ID)
	}
}

func TestGetAccountByID_NotFound(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	_, err := accountService.GetAccountByID(uuid.New())
	if err != domain.ErrAccountNotFound {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
}

func TestUpdateAccount_Success(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)
	mockPublisher := testutil.NewMockEventPublisher()
	accountService.SetEventPublisher(mockPublisher)

	accountID := uuid.New()
	accountRepo.AddAccount(&domain.Account{ID: accountID, Name: "Main", Role: domain.AccountRoleOperational})

	updated, err := accountService.UpdateAccount(accountID, "Main Checking")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Name != "Main Checking" {
		t.Errorf("Expected name 'Main Checking', got %s", updated.Name)
	}
	if len(mockPublisher.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(mockPublisher.Events))
	}
	if mockPublisher.Events[0].Type != "account.updated" {
		t.Errorf("Expected event type account.updated, got %s", mockPublisher.Events[0].Type)
	}
}

func TestUpdateAccount_NotFound(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	_, err := accountService.UpdateAccount(uuid.New(), "Main Checking")
	if err != domain.ErrAccountNotFound {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
}

func TestUpdateAccount_EmptyName(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	accountID := uuid.New()
	accountRepo.AddAccount(&domain.Account{ID: accountID, Name: "Main", Role: domain.AccountRoleOperational})

	_, err := accountService.UpdateAccount(accountID, "   ")
	if err != domain.ErrNameRequired {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
}

func TestArchiveAccount_Success(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)
	mockPublisher := testutil.NewMockEventPublisher()
	accountService.SetEventPublisher(mockPublisher)

	accountID := uuid.New()
	accountRepo.AddAccount(&domain.Account{ID: accountID, Name: "Old", Role: domain.AccountRoleSavings})

	if err := accountService.ArchiveAccount(accountID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(mockPublisher.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(mockPublisher.Events))
	}
	if mockPublisher.Events[0].Type != "account.archived" {
		t.Errorf("Expected event type account.archived, got %s", mockPublisher.Events[0].Type)
	}
}

func TestArchiveAccount_NotFound(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	err := accountService.ArchiveAccount(uuid.New())
	if err != domain.ErrAccountNotFound {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
}
