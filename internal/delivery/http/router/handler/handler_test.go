package handler

import (
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"directory/internal/delivery/http/validator"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/infra/persistence/memory"
	"directory/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// handlerFixtures holds a fully wired handler set backed by fresh
// in-memory repositories, plus the echo instance used to build contexts.
type handlerFixtures struct {
	echo           *echo.Echo
	healthHandler  *HealthHandler
	addressHandler *AddressHandler
	personHandler  *PersonHandler
	ageHandler     *AgeHandler
	jobHandler     *JobHandler
}

func createTestHandlers(t *testing.T) handlerFixtures {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	logger := slog.Default()

	return handlerFixtures{
		echo: e,
		healthHandler: NewHealthHandler(HealthHandlerParams{
			HealthUC: impl.NewHealthService(),
			Logger:   logger,
		}),
		addressHandler: NewAddressHandler(AddressHandlerParams{
			AddressUC: impl.NewAddressService(memory.NewAddressRepository()),
			Logger:    logger,
		}),
		personHandler: NewPersonHandler(PersonHandlerParams{
			PersonUC: impl.NewPersonService(memory.NewPersonRepository()),
			Logger:   logger,
		}),
		ageHandler: NewAgeHandler(AgeHandlerParams{
			AgeUC:  impl.NewAgeService(memory.NewAgeRepository()),
			Logger: logger,
		}),
		jobHandler: NewJobHandler(JobHandlerParams{
			JobUC:  impl.NewJobService(memory.NewJobRepository()),
			Logger: logger,
		}),
	}
}

// request builds an echo context for a JSON request and returns it with
// the response recorder.
func (f handlerFixtures) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var value T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &value))

	return value
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.Response {
	t.Helper()

	return decodeBody[domainerrors.Response](t, rec)
}
