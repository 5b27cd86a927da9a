package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/ledger_engine_app/internal/apperrors"
	"github.com/SscSPs/ledger_engine_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_engine_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine_app/internal/core/services"
	"github.com/SscSPs/ledger_engine_app/internal/dto"
	"github.com/SscSPs/ledger_engine_app/internal/handlers"
	"github.com/SscSPs/ledger_engine_app/internal/platform/config"
	"github.com/SscSPs/ledger_engine_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EventService ---
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) ProcessEvent(ctx context.Context, eventID string) dto.ProcessEventResult {
	args := m.Called(ctx, eventID)
	return args.Get(0).(dto.ProcessEventResult)
}
func (m *MockEventService) CreateAndProcessEvent(ctx context.Context, req dto.CreateEventRequest, createdBy string) dto.CreateEventResult {
	args := m.Called(ctx, req, createdBy)
	return args.Get(0).(dto.CreateEventResult)
}
func (m *MockEventService) RetryEvent(ctx context.Context, eventID string) dto.ProcessEventResult {
	args := m.Called(ctx, eventID)
	return args.Get(0).(dto.ProcessEventResult)
}
func (m *MockEventService) CancelEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}
func (m *MockEventService) GetEvent(ctx context.Context, eventID string) (*domain.AccountingEvent, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingEvent), args.Error(1)
}
func (m *MockEventService) GetEventJournalEntryIDs(ctx context.Context, eventID string) ([]string, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockEventService) CheckDuplicateEvent(ctx context.Context, eventType domain.EventType, sourceDocType, sourceDocID string) (bool, error) {
	args := m.Called(ctx, eventType, sourceDocType, sourceDocID)
	return args.Bool(0), args.Error(1)
}
func (m *MockEventService) ListEvents(ctx context.Context, params dto.ListEventsParams) (*dto.ListEventsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEventsResponse), args.Error(1)
}

var _ portssvc.EventSvcFacade = (*MockEventService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) GetJournalEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, journalEntryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) GetJournalEntriesByEventID(ctx context.Context, eventID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetCompanyEventSetting(ctx context.Context, companyID string, eventType domain.EventType) (domain.CompanyEventSetting, error) {
	args := m.Called(ctx, companyID, eventType)
	return args.Get(0).(domain.CompanyEventSetting), args.Error(1)
}
func (m *MockSettingsService) ApplyDefaultAccounts(ctx context.Context, spec domain.JournalSpec, eventType domain.EventType) (domain.JournalSpec, error) {
	args := m.Called(ctx, spec, eventType)
	return args.Get(0).(domain.JournalSpec), args.Error(1)
}
func (m *MockSettingsService) UpsertCompanyEventSetting(ctx context.Context, setting domain.CompanyEventSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}
func (m *MockSettingsService) UpsertDefaultAccountRule(ctx context.Context, rule domain.DefaultAccountRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

// --- Test Suite ---
type EventHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockEvent   *MockEventService
	mockJournal *MockJournalService
	tokenSecret string
}

// generateTestToken mints a service token the real auth middleware accepts.
func (suite *EventHandlerTestSuite) generateTestToken(callerID string) string {
	token, err := utils.GenerateServiceToken(callerID, suite.tokenSecret, time.Hour, "ledger-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.tokenSecret = "test-secret-key-that-is-long-enough"

	suite.mockEvent = new(MockEventService)
	suite.mockJournal = new(MockJournalService)

	// Production mode keeps swagger out of the test router; the real auth
	// middleware runs so the token path is exercised end to end.
	cfg := &config.Config{
		ServiceTokenSecret: suite.tokenSecret,
		IsProduction:       true,
	}
	container := &portssvc.ServiceContainer{
		Event:    suite.mockEvent,
		Journal:  suite.mockJournal,
		Settings: new(MockSettingsService),
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *EventHandlerTestSuite) doRequest(method, url, callerID string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if callerID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(callerID))
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validCreateRequest() dto.CreateEventRequest {
	return dto.CreateEventRequest{
		EventType:         domain.ExpenseApproved,
		EventDate:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		AffectedCompanies: []string{"OPCO"},
		EventData:         json.RawMessage(`{"companyID":"OPCO","amount":"100.00","expenseAccountCode":"6100","description":"Office supplies"}`),
	}
}

// --- Test Cases ---

func (suite *EventHandlerTestSuite) TestCreateEvent_Success() {
	callerID := "svc-billing"
	expected := dto.CreateEventResult{
		Success:         true,
		EventID:         "evt-1",
		JournalEntryIDs: []string{"je-1"},
	}

	suite.mockEvent.On("CreateAndProcessEvent",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateEventRequest) bool {
			return req.EventType == domain.ExpenseApproved && len(req.AffectedCompanies) == 1
		}),
		callerID,
	).Return(expected).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/events", callerID, validCreateRequest())

	suite.Equal(http.StatusOK, w.Code)
	var result dto.CreateEventResult
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.True(result.Success)
	suite.Equal("evt-1", result.EventID)
	suite.Equal([]string{"je-1"}, result.JournalEntryIDs)

	suite.mockEvent.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestCreateEvent_ProcessingFailureStillHTTP200() {
	callerID := "svc-billing"
	failed := dto.CreateEventResult{
		Success: false,
		EventID: "evt-1",
		Error:   "amount must be positive",
	}
	suite.mockEvent.On("CreateAndProcessEvent", mock.Anything, mock.Anything, callerID).
		Return(failed).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/events", callerID, validCreateRequest())

	suite.Equal(http.StatusOK, w.Code)
	var result dto.CreateEventResult
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.False(result.Success)
	suite.Equal("amount must be positive", result.Error)
}

func (suite *EventHandlerTestSuite) TestCreateEvent_MissingTokenIsUnauthorized() {
	w := suite.doRequest(http.MethodPost, "/api/v1/events", "", validCreateRequest())

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEvent.AssertNotCalled(suite.T(), "CreateAndProcessEvent")
}

func (suite *EventHandlerTestSuite) TestCreateEvent_UnknownEventTypeFailsBinding() {
	req := validCreateRequest()
	req.EventType = "NOT_A_REAL_TYPE"

	w := suite.doRequest(http.MethodPost, "/api/v1/events", "svc-billing", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEvent.AssertNotCalled(suite.T(), "CreateAndProcessEvent")
}

func (suite *EventHandlerTestSuite) TestCreateEvent_DedupeRefusesDuplicate() {
	callerID := "svc-billing"
	req := validCreateRequest()
	req.SourceDocumentType = "EXPENSE"
	req.SourceDocumentID = "exp-42"

	suite.mockEvent.On("CheckDuplicateEvent", mock.Anything, domain.ExpenseApproved, "EXPENSE", "exp-42").
		Return(true, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/events?dedupe=true", callerID, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockEvent.AssertNotCalled(suite.T(), "CreateAndProcessEvent")
	suite.mockEvent.AssertExpectations(suite.T())
}

func (suite *EventHandlerTestSuite) TestGetEvent_NotFound() {
	suite.mockEvent.On("GetEvent", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/events/missing", "svc-ops", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EventHandlerTestSuite) TestCancelEvent_ConflictWhenProcessed() {
	suite.mockEvent.On("CancelEvent", mock.Anything, "evt-1").
		Return(services.ErrCannotCancel).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/events/evt-1/cancel", "svc-ops", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *EventHandlerTestSuite) TestGetEventJournalIDs_Success() {
	suite.mockEvent.On("GetEventJournalEntryIDs", mock.Anything, "evt-1").
		Return([]string{"je-1", "je-2"}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/events/evt-1/journal-ids", "svc-ops", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.EventJournalsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("evt-1", body.EventID)
	suite.Equal([]string{"je-1", "je-2"}, body.JournalEntryIDs)
	suite.mockJournal.AssertNotCalled(suite.T(), "GetJournalEntriesByEventID")
}

// --- Run Test Suite ---
func TestEventHandler(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}
