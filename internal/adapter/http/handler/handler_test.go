package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tagpay/internal/core/domain"
	"tagpay/internal/core/ports"
	"tagpay/internal/core/ports/mocks"
	"tagpay/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type handlerTestDeps struct {
	router  *gin.Engine
	session *mocks.MockSessionService
	ledger  *mocks.MockLedgerService
	tokens  *mocks.MockTokenService
	ctrl    *gomock.Controller
}

func setupRouter(t *testing.T) *handlerTestDeps {
	ctrl := gomock.NewController(t)
	d := &handlerTestDeps{
		session: mocks.NewMockSessionService(ctrl),
		ledger:  mocks.NewMockLedgerService(ctrl),
		tokens:  mocks.NewMockTokenService(ctrl),
		ctrl:    ctrl,
	}
	d.router = SetupRouter(RouterDeps{
		SessionSvc:     d.session,
		LedgerSvc:      d.ledger,
		TokenSvc:       d.tokens,
		OperatorID:     "terminal-1",
		OperatorSecret: "hunter2",
		Logger:         zerolog.Nop(),
	})
	return d
}

// authed builds a request carrying a token the mock will accept.
func (d *handlerTestDeps) authed(method, path string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer good_token")
	d.tokens.EXPECT().Validate("good_token").Return("terminal-1", nil)
	return req
}

func handlerRecord() *domain.TagRecord {
	return &domain.TagRecord{
		ID:           "tag-1",
		Balance:      10000,
		PinHash:      "hash",
		LastUpdated:  time.UnixMilli(1700000000000).UTC(),
		Transactions: []string{},
	}
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.ErrorCode
}

// ==================== Auth ====================

func TestLogin_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	expiry := time.Now().Add(12 * time.Hour)
	d.tokens.EXPECT().Generate("terminal-1").Return("tok", expiry, nil)

	body, _ := json.Marshal(gin.H{"operator_id": "terminal-1", "secret": "hunter2"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "tok", data["token"])
}

func TestLogin_WrongSecret(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	body, _ := json.Marshal(gin.H{"operator_id": "terminal-1", "secret": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperror.CodeInvalidCredentials, errorCode(t, w))
}

func TestLogin_MissingFields(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTags_RequireAuth(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tags/scan", nil)
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperror.CodeInvalidToken, errorCode(t, w))
}

// ==================== Tags ====================

func TestScan_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.session.EXPECT().Scan(gomock.Any()).Return(handlerRecord(), nil)

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodPost, "/api/v1/tags/scan", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "tag-1", data["id"])
	assert.Equal(t, "100.00", data["balance"])
}

func TestScan_TagAbsent(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.session.EXPECT().Scan(gomock.Any()).Return(nil, apperror.ErrTagAbsent())

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodPost, "/api/v1/tags/scan", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeTagAbsent, errorCode(t, w))
}

func TestInitialize_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.session.EXPECT().
		InitializeTag(gomock.Any(), int64(10000), "1234", false).
		Return(handlerRecord(), nil)

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodPost, "/api/v1/tags/initialize",
		gin.H{"balance": "100.00", "pin": "1234"}))

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "100.00", data["balance"])
}

func TestInitialize_AlreadyInitialized(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.session.EXPECT().
		InitializeTag(gomock.Any(), int64(10000), "1234", false).
		Return(nil, apperror.ErrTagAlreadyInitialized())

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodPost, "/api/v1/tags/initialize",
		gin.H{"balance": "100.00", "pin": "1234"}))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apperror.CodeTagInitialized, errorCode(t, w))
}

func TestInitialize_BadPinShape(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodPost, "/api/v1/tags/initialize",
		gin.H{"balance": "100.00", "pin": "12ab"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInitialize_BadBalance(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodPost, "/api/v1/tags/initialize",
		gin.H{"balance": "100.005", "pin": "1234"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCharge_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	rec := handlerRecord()
	updated := rec.Clone()
	updated.Balance = 7000
	txn := &domain.Transaction{
		ID:        uuid.New(),
		TagID:     "tag-1",
		Recipient: "merchant-a",
		Amount:    3000,
		Timestamp: time.UnixMilli(1700000000000).UTC(),
		Hash:      "tx-hash-1",
		Status:    domain.TransactionStatusConfirmed,
	}

	d.session.EXPECT().Scan(gomock.Any()).Return(rec, nil)
	d.session.EXPECT().
		ChargeTag(gomock.Any(), ports.ChargeRequest{
			Record:    rec,
			Amount:    3000,
			Recipient: "merchant-a",
			Pin:       "1234",
		}).
		Return(&ports.ChargeResult{Record: updated, Transaction: txn}, nil)

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodPost, "/api/v1/tags/charge",
		gin.H{"amount": "30.00", "recipient": "merchant-a", "pin": "1234"}))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	record := data["record"].(map[string]any)
	transaction := data["transaction"].(map[string]any)
	assert.Equal(t, "70.00", record["balance"])
	assert.Equal(t, "30.00", transaction["amount"])
	assert.Equal(t, "CONFIRMED", transaction["status"])
}

func TestCharge_WrongPin(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.session.EXPECT().Scan(gomock.Any()).Return(handlerRecord(), nil)
	d.session.EXPECT().ChargeTag(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrWrongPin())

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodPost, "/api/v1/tags/charge",
		gin.H{"amount": "30.00", "recipient": "merchant-a", "pin": "0000"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperror.CodeWrongPin, errorCode(t, w))
}

func TestCharge_InsufficientFunds(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.session.EXPECT().Scan(gomock.Any()).Return(handlerRecord(), nil)
	d.session.EXPECT().ChargeTag(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrInsufficientFunds())

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodPost, "/api/v1/tags/charge",
		gin.H{"amount": "9999.00", "recipient": "merchant-a", "pin": "1234"}))

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, apperror.CodeInsufficientFunds, errorCode(t, w))
}

func TestCharge_BadAmount(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodPost, "/api/v1/tags/charge",
		gin.H{"amount": "ten", "recipient": "merchant-a", "pin": "1234"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoad_Success(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	rec := handlerRecord()
	updated := rec.Clone()
	updated.Balance = 15000

	d.session.EXPECT().Scan(gomock.Any()).Return(rec, nil)
	d.session.EXPECT().LoadTag(gomock.Any(), rec, int64(5000)).Return(updated, nil)

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodPost, "/api/v1/tags/load",
		gin.H{"amount": "50.00"}))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "150.00", data["balance"])
}

// ==================== Ledger ====================

func TestLedgerList(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	syncedAt := time.UnixMilli(1700000100000).UTC()
	d.ledger.EXPECT().All(gomock.Any()).Return([]domain.Transaction{
		{
			ID:        uuid.New(),
			TagID:     "tag-1",
			Recipient: "merchant-a",
			Amount:    3000,
			Timestamp: time.UnixMilli(1700000000000).UTC(),
			Hash:      "h1",
			Status:    domain.TransactionStatusConfirmed,
			SyncedAt:  &syncedAt,
		},
	}, nil)

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodGet, "/api/v1/ledger/transactions", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(1), data["total"])
	items := data["items"].([]any)
	first := items[0].(map[string]any)
	assert.Equal(t, "30.00", first["amount"])
	assert.NotEmpty(t, first["synced_at"])
}

func TestConnectivity_Toggle(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.session.EXPECT().SetConnectivity(true)
	d.session.EXPECT().Online().Return(true)

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodPut, "/api/v1/ledger/connectivity",
		gin.H{"online": true}))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["online"])
}

func TestConnectivity_MissingFlag(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodPut, "/api/v1/ledger/connectivity", gin.H{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSync(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	d.session.EXPECT().Sync(gomock.Any()).Return(int64(2), nil)

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodPost, "/api/v1/ledger/sync", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(2), data["confirmed"])
}

func TestFail_Disabled(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	id := uuid.NewString()
	d.ledger.EXPECT().Fail(gomock.Any(), id).Return(apperror.ErrFailedStateDisabled())

	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, d.authed(http.MethodPost, "/api/v1/ledger/transactions/"+id+"/fail", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apperror.CodeFailedDisabled, errorCode(t, w))
}

// ==================== Health ====================

func TestHealth_NoDependencies(t *testing.T) {
	d := setupRouter(t)
	defer d.ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
