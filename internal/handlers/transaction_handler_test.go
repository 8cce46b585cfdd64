package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "wealthwise/internal/errors"
	"wealthwise/internal/models"
	"wealthwise/internal/pagination"
	"wealthwise/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn   func(userID, accountID string, amount int64, kind models.TransactionKind, categoryID, date, note string) (*models.Transaction, error)
	getUserTransactionsFn func(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getTransactionByIDFn  func(userID, transactionID string) (*models.Transaction, error)
	deleteTransactionFn   func(userID, transactionID string) error
	exportCSVFn           func(userID string) (string, error)
}

func (m *mockTransactionService) CreateTransaction(userID, accountID string, amount int64, kind models.TransactionKind, categoryID, date, note string) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(userID, accountID, amount, kind, categoryID, date, note)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getUserTransactionsFn != nil {
		return m.getUserTransactionsFn(userID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(userID, transactionID)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(userID, transactionID string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(userID, transactionID)
	}
	return nil
}

func (m *mockTransactionService) ExportCSV(userID string) (string, error) {
	if m.exportCSVFn != nil {
		return m.exportCSVFn(userID)
	}
	return "", nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/transactions", handler.CreateTransaction)
	auth.GET("/transactions", handler.GetUserTransactions)
	auth.GET("/transactions/export", handler.ExportTransactions)
	auth.GET("/transactions/:id", handler.GetTransactionByID)
	auth.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

const testAccountID = "0190a7b2-4f3e-7000-8000-000000000002"

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(userID, accountID string, amount int64, kind models.TransactionKind, categoryID, date, note string) (*models.Transaction, error) {
				return &models.Transaction{
					Base:      models.Base{ID: "0190a7b2-4f3e-7000-8000-00000000000a"},
					UserID:    userID,
					AccountID: accountID,
					Amount:    amount,
					Kind:      kind,
					Category:  categoryID,
					Date:      date,
					Note:      note,
				}, nil
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"account_id":"`+testAccountID+`","kind":"expense","category":"food","amount":250,"date":"2024-05-01","note":"午餐"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["amount"].(float64) != 250 {
			t.Errorf("expected amount 250, got %v", tx["amount"])
		}
		if tx["category"] != "food" {
			t.Errorf("expected category food, got %v", tx["category"])
		}
	})

	t.Run("returns 400 on invalid kind", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"account_id":"`+testAccountID+`","kind":"transfer","category":"food","amount":250}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"account_id":"`+testAccountID+`","kind":"expense","category":"food","amount":250,"date":"05/01/2024"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when account missing", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(_, _ string, _ int64, _ models.TransactionKind, _, _, _ string) (*models.Transaction, error) {
				return nil, apperrors.ErrAccountNotFound
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"account_id":"`+testAccountID+`","kind":"expense","category":"food","amount":250}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ACCOUNT_NOT_FOUND")
	})
}

func TestTransactionHandler_GetUserTransactions(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		var gotFilter services.TransactionFilter
		svc := &mockTransactionService{
			getUserTransactionsFn: func(_ string, _ pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
				gotFilter = filter
				resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
				return &resp, nil
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?kind=expense&month=2024-05&category=food", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotFilter.Kind == nil || *gotFilter.Kind != models.TransactionKindExpense {
			t.Error("expected kind filter to be passed")
		}
		if gotFilter.Month == nil || *gotFilter.Month != "2024-05" {
			t.Error("expected month filter to be passed")
		}
		if gotFilter.Category == nil || *gotFilter.Category != "food" {
			t.Error("expected category filter to be passed")
		}
	})

	t.Run("returns 400 on bad month", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?month=May2024", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockTransactionService{
			deleteTransactionFn: func(_, _ string) error {
				return apperrors.ErrTransactionNotFound
			},
		}
		handler := NewTransactionHandler(svc, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "DELETE", "/transactions/0190a7b2-4f3e-7000-8000-00000000000a", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed id", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{}, &mockAuditService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "DELETE", "/transactions/not-a-uuid", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_ExportTransactions(t *testing.T) {
	svc := &mockTransactionService{
		exportCSVFn: func(_ string) (string, error) {
			return "日期,分類,類型,帳戶,備註,金額\n2024-05-01,交通,支出,薪資帳戶,,120", nil
		},
	}
	handler := NewTransactionHandler(svc, &mockAuditService{})
	r := setupTransactionRouter(handler)

	rec := doRequest(r, "GET", "/transactions/export", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected text/csv content type, got %s", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "transactions.csv") {
		t.Errorf("expected attachment disposition, got %s", cd)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "\ufeff") {
		t.Error("expected UTF-8 BOM prefix")
	}
	if !strings.Contains(body, "2024-05-01,交通,支出,薪資帳戶,,120") {
		t.Errorf("expected CSV row in body, got: %s", body)
	}
}
