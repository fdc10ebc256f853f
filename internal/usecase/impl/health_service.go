package impl

import (
	"context"
	"net"
	"net/http"
	"os"
	"time"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/usecase"
)

// timestampLayout renders UTC instants as ISO-8601 with a trailing "Z".
const timestampLayout = "2006-01-02T15:04:05.000000Z"

type healthService struct{}

// NewHealthService creates a new health service instance
func NewHealthService() usecase.HealthUsecase {
	return &healthService{}
}

// Check builds a status record. Host resolution is the only thing that
// can fail; a failure surfaces to the caller of this one request.
func (s *healthService) Check(ctx context.Context, echo, pathEcho *string) (*entity.Health, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, domainerrors.ErrHostResolutionFailed.WrapMessage("hostname lookup")
	}

	addrs, err := net.DefaultResolver.LookupHost(ctx, hostname)
	if err != nil || len(addrs) == 0 {
		return nil, domainerrors.ErrHostResolutionFailed.WrapMessage("address lookup")
	}

	return &entity.Health{
		Status:        http.StatusOK,
		StatusMessage: "OK",
		Timestamp:     time.Now().UTC().Format(timestampLayout),
		IPAddress:     addrs[0],
		Echo:          echo,
		PathEcho:      pathEcho,
	}, nil
}
