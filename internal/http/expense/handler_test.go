package expense_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rhasan/estatedesk/internal/expense"
	expensehttp "github.com/rhasan/estatedesk/internal/http/expense"
)

func newTestRouter(t *testing.T) (*expense.MockRepository, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := expense.NewMockRepository(ctrl)

	r := chi.NewRouter()
	r.Route("/expenses", expensehttp.NewHandler(expense.NewService(repo)).Routes)

	return repo, r
}

func expenseBody(price int64) string {
	return fmt.Sprintf(
		`{"vendor_id":%q,"project_id":%q,"item_id":%q,"quantity":10,"price":%d}`,
		uuid.New(), uuid.New(), uuid.New(), price,
	)
}

// Input rejections come back as client errors; a failing store must not.
func TestHandler_CreateStatusCodes(t *testing.T) {
	t.Run("ValidationFailure", func(t *testing.T) {
		_, router := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/expenses/", strings.NewReader(expenseBody(0)))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		repo, router := newTestRouter(t)

		repo.EXPECT().
			CreateExpense(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodPost, "/expenses/", strings.NewReader(expenseBody(50_000)))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
