package opcost_test

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

	opcosthttp "github.com/rhasan/estatedesk/internal/http/opcost"
	"github.com/rhasan/estatedesk/internal/opcost"
)

func newTestRouter(t *testing.T) (*opcost.MockRepository, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := opcost.NewMockRepository(ctrl)

	r := chi.NewRouter()
	r.Route("/operating-costs", opcosthttp.NewHandler(opcost.NewService(repo)).Routes)

	return repo, r
}

func costBody(amount int64) string {
	return fmt.Sprintf(`{"item_id":%q,"amount":%d}`, uuid.New(), amount)
}

// Input rejections come back as client errors; a failing store must not.
func TestHandler_CreateStatusCodes(t *testing.T) {
	t.Run("ValidationFailure", func(t *testing.T) {
		_, router := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/operating-costs/", strings.NewReader(costBody(0)))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		repo, router := newTestRouter(t)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodPost, "/operating-costs/", strings.NewReader(costBody(45_000)))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
