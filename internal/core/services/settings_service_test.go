package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/ledger_engine_app/internal/apperrors"
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

// Ensure MockSettingsRepository implements portsrepo.SettingsRepositoryFacade
var _ portsrepo.SettingsRepositoryFacade = (*MockSettingsRepository)(nil)

func (m *MockSettingsRepository) FindCompanyEventSetting(ctx context.Context, companyID string, eventType domain.EventType) (*domain.CompanyEventSetting, error) {
	args := m.Called(ctx, companyID, eventType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyEventSetting), args.Error(1)
}

func (m *MockSettingsRepository) FindDefaultAccountRule(ctx context.Context, companyID string, eventType domain.EventType, entryType domain.EntryType) (*domain.DefaultAccountRule, error) {
	args := m.Called(ctx, companyID, eventType, entryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DefaultAccountRule), args.Error(1)
}

func (m *MockSettingsRepository) UpsertCompanyEventSetting(ctx context.Context, setting domain.CompanyEventSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func (m *MockSettingsRepository) UpsertDefaultAccountRule(ctx context.Context, rule domain.DefaultAccountRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

// --- Test Suite ---
type SettingsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSettingsRepository
	service  portssvc.SettingsSvcFacade
	ctx      context.Context
}

func (s *SettingsServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockSettingsRepository)
	s.service = services.NewSettingsService(s.mockRepo, services.SystemDefaults{
		DebitAccountCode:  "9998",
		CreditAccountCode: "9999",
	})
	s.ctx = context.Background()
}

func (s *SettingsServiceTestSuite) TestGetCompanyEventSetting_ConfiguredRow() {
	configured := &domain.CompanyEventSetting{
		CompanyID: "ACME",
		EventType: domain.ExpenseApproved,
		IsEnabled: false,
		AutoPost:  true,
	}
	s.mockRepo.On("FindCompanyEventSetting", s.ctx, "ACME", domain.ExpenseApproved).Return(configured, nil)

	setting, err := s.service.GetCompanyEventSetting(s.ctx, "ACME", domain.ExpenseApproved)

	s.Require().NoError(err)
	s.False(setting.IsEnabled)
	s.True(setting.AutoPost)
}

func (s *SettingsServiceTestSuite) TestGetCompanyEventSetting_MissingRowDefaultsToEnabledDraft() {
	s.mockRepo.On("FindCompanyEventSetting", s.ctx, "NEWCO", domain.ExpenseApproved).Return(nil, apperrors.ErrNotFound)

	setting, err := s.service.GetCompanyEventSetting(s.ctx, "NEWCO", domain.ExpenseApproved)

	s.Require().NoError(err)
	s.True(setting.IsEnabled, "unconfigured companies must not silently drop postings")
	s.False(setting.AutoPost, "unconfigured companies must not silently auto-post")
}

func (s *SettingsServiceTestSuite) TestApplyDefaultAccounts_ExplicitCodeWins() {
	spec := domain.JournalSpec{
		CompanyID: "ACME",
		Lines: []domain.JournalLineSpec{
			{AccountCode: "5100", EntryType: domain.Debit, Amount: decimal.NewFromInt(100)},
			{AccountCode: "2100", EntryType: domain.Credit, Amount: decimal.NewFromInt(100)},
		},
	}

	resolved, err := s.service.ApplyDefaultAccounts(s.ctx, spec, domain.ExpenseApproved)

	s.Require().NoError(err)
	s.Equal("5100", resolved.Lines[0].AccountCode)
	s.Equal("2100", resolved.Lines[1].AccountCode)
	// No lookups at all when every line is explicit.
	s.mockRepo.AssertNotCalled(s.T(), "FindDefaultAccountRule", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *SettingsServiceTestSuite) TestApplyDefaultAccounts_ConfiguredRuleSecondTier() {
	spec := domain.JournalSpec{
		CompanyID: "ACME",
		Lines: []domain.JournalLineSpec{
			{AccountCode: "5100", EntryType: domain.Debit, Amount: decimal.NewFromInt(100)},
			{EntryType: domain.Credit, Amount: decimal.NewFromInt(100)},
		},
	}
	rule := &domain.DefaultAccountRule{
		CompanyID:   "ACME",
		EventType:   domain.ExpenseApproved,
		EntryType:   domain.Credit,
		AccountCode: "2150",
	}
	s.mockRepo.On("FindDefaultAccountRule", s.ctx, "ACME", domain.ExpenseApproved, domain.Credit).Return(rule, nil)

	resolved, err := s.service.ApplyDefaultAccounts(s.ctx, spec, domain.ExpenseApproved)

	s.Require().NoError(err)
	s.Equal("2150", resolved.Lines[1].AccountCode)
}

func (s *SettingsServiceTestSuite) TestApplyDefaultAccounts_SystemDefaultLastTier() {
	spec := domain.JournalSpec{
		CompanyID: "ACME",
		Lines: []domain.JournalLineSpec{
			{EntryType: domain.Debit, Amount: decimal.NewFromInt(100)},
			{EntryType: domain.Credit, Amount: decimal.NewFromInt(100)},
		},
	}
	s.mockRepo.On("FindDefaultAccountRule", s.ctx, "ACME", domain.ExpenseApproved, domain.Debit).Return(nil, apperrors.ErrNotFound)
	s.mockRepo.On("FindDefaultAccountRule", s.ctx, "ACME", domain.ExpenseApproved, domain.Credit).Return(nil, apperrors.ErrNotFound)

	resolved, err := s.service.ApplyDefaultAccounts(s.ctx, spec, domain.ExpenseApproved)

	s.Require().NoError(err)
	s.Equal("9998", resolved.Lines[0].AccountCode)
	s.Equal("9999", resolved.Lines[1].AccountCode)
}

func (s *SettingsServiceTestSuite) TestApplyDefaultAccounts_DoesNotMutateInput() {
	spec := domain.JournalSpec{
		CompanyID: "ACME",
		Lines: []domain.JournalLineSpec{
			{EntryType: domain.Debit, Amount: decimal.NewFromInt(100)},
		},
	}
	s.mockRepo.On("FindDefaultAccountRule", s.ctx, "ACME", domain.ExpenseApproved, domain.Debit).Return(nil, apperrors.ErrNotFound)

	_, err := s.service.ApplyDefaultAccounts(s.ctx, spec, domain.ExpenseApproved)

	s.Require().NoError(err)
	s.Empty(spec.Lines[0].AccountCode, "input spec must stay untouched")
}

func (s *SettingsServiceTestSuite) TestApplyDefaultAccounts_RepositoryErrorPropagates() {
	spec := domain.JournalSpec{
		CompanyID: "ACME",
		Lines: []domain.JournalLineSpec{
			{EntryType: domain.Debit, Amount: decimal.NewFromInt(100)},
		},
	}
	s.mockRepo.On("FindDefaultAccountRule", s.ctx, "ACME", domain.ExpenseApproved, domain.Debit).
		Return(nil, errors.New("connection reset"))

	_, err := s.service.ApplyDefaultAccounts(s.ctx, spec, domain.ExpenseApproved)

	s.Require().Error(err)
	s.Contains(err.Error(), "default account rule")
}

func (s *SettingsServiceTestSuite) TestUpsertCompanyEventSetting_Validation() {
	err := s.service.UpsertCompanyEventSetting(s.ctx, domain.CompanyEventSetting{
		CompanyID: "ACME",
		EventType: domain.EventType("NOT_A_THING"),
	})
	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))

	err = s.service.UpsertCompanyEventSetting(s.ctx, domain.CompanyEventSetting{
		EventType: domain.ExpenseApproved,
	})
	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *SettingsServiceTestSuite) TestUpsertCompanyEventSetting_StampsTimestamps() {
	var saved domain.CompanyEventSetting
	s.mockRepo.On("UpsertCompanyEventSetting", s.ctx, mock.AnythingOfType("domain.CompanyEventSetting")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.CompanyEventSetting)
		}).
		Return(nil)

	err := s.service.UpsertCompanyEventSetting(s.ctx, domain.CompanyEventSetting{
		CompanyID: "ACME",
		EventType: domain.ExpenseApproved,
		IsEnabled: true,
	})

	s.Require().NoError(err)
	s.WithinDuration(time.Now().UTC(), saved.LastUpdatedAt, 5*time.Second)
	s.False(saved.CreatedAt.IsZero())
}

func (s *SettingsServiceTestSuite) TestUpsertDefaultAccountRule_Validation() {
	base := domain.DefaultAccountRule{
		CompanyID:   "ACME",
		EventType:   domain.ExpenseApproved,
		EntryType:   domain.Debit,
		AccountCode: "5100",
	}

	missingCode := base
	missingCode.AccountCode = ""
	err := s.service.UpsertDefaultAccountRule(s.ctx, missingCode)
	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))

	badEntryType := base
	badEntryType.EntryType = domain.EntryType("SIDEWAYS")
	err = s.service.UpsertDefaultAccountRule(s.ctx, badEntryType)
	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))

	s.mockRepo.On("UpsertDefaultAccountRule", s.ctx, mock.AnythingOfType("domain.DefaultAccountRule")).Return(nil)
	s.NoError(s.service.UpsertDefaultAccountRule(s.ctx, base))
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
