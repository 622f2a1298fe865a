package metrics

import (
	"time"

	apperrors "github.com/target/movie-gallery/internal/errors"
	"github.com/target/movie-gallery/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess     = "success"
	ResultSoftFailure = "soft_failure"
	ResultError       = "error"
)

// FetchMetric captures one round trip to the remote movie service.
type FetchMetric struct {
	Result   string
	Status   int
	Duration time.Duration
	Err      error
}

// EmitMovieFetch emits the request counter and latency for a movie service call.
func EmitMovieFetch(sink statsd.Sink, in FetchMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{"result": in.Result}
	if in.Status > 0 {
		tags["status_class"] = statusClass(in.Status)
	}
	if in.Err != nil {
		code := string(apperrors.GetCode(in.Err))
		if code == "" {
			code = string(apperrors.ErrCodeInternal)
		}
		tags["error_code"] = code
	}

	sink.Count("movieapi.request", 1, tags)
	if in.Duration > 0 {
		sink.Timing("movieapi.request.duration", in.Duration, CloneTags(tags))
	}
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
