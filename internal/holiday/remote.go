package holiday

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// errNotToday is returned when the remote service is asked about a date it
// cannot answer for; the lookup endpoint only knows about "today".
var errNotToday = errors.New("remote holiday service only answers for today")

// RemoteSource queries an "is today a public holiday" web service.
// The endpoint answers 200 when today is a holiday and 204 when it is not;
// anything else is treated as a source failure.
type RemoteSource struct {
	client *resty.Client
	url    string
}

func NewRemoteSource(url string, timeout time.Duration) *RemoteSource {
	client := resty.New().
		SetTimeout(timeout)

	return &RemoteSource{
		client: client,
		url:    url,
	}
}

func (s *RemoteSource) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	if !sameDay(date, time.Now()) {
		return false, errNotToday
	}

	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return false, fmt.Errorf("holiday service request failed: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return true, nil
	case http.StatusNoContent:
		return false, nil
	default:
		return false, fmt.Errorf("holiday service returned unexpected status: %d", resp.StatusCode())
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
