package sale_test

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

	salehttp "github.com/rhasan/estatedesk/internal/http/sale"
	"github.com/rhasan/estatedesk/internal/sale"
)

func newTestRouter(t *testing.T) (*sale.MockRepository, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := sale.NewMockRepository(ctrl)

	r := chi.NewRouter()
	r.Route("/sales", salehttp.NewHandler(sale.NewService(repo)).Routes)

	return repo, r
}

func saleBody(basePrice int64) string {
	return fmt.Sprintf(
		`{"project_id":%q,"flat_id":%q,"customer_id":%q,"base_price":%d}`,
		uuid.New(), uuid.New(), uuid.New(), basePrice,
	)
}

// Input rejections come back as client errors; a failing store must not.
func TestHandler_CreateStatusCodes(t *testing.T) {
	t.Run("ValidationFailure", func(t *testing.T) {
		_, router := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/sales/", strings.NewReader(saleBody(0)))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		repo, router := newTestRouter(t)

		repo.EXPECT().
			CreateSale(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodPost, "/sales/", strings.NewReader(saleBody(5_000_000)))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
