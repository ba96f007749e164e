package middleware

import (
	"log/slog"
	"unicode"

	deliverycontext "rolodex/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength caps client-supplied request IDs.
const maxRequestIDLength = 64

// RequestIDMiddleware tags every request with an ID and a request-scoped
// logger carrying it. A client-supplied X-Request-Id is kept when it is
// printable ASCII within the length cap; anything else is replaced.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware builds the middleware around the process logger.
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process assigns the request ID, reflects it into the response header and
// plants the tagged logger into the request context for the layers below.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := sanitizeRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// sanitizeRequestID returns the candidate when it is usable as-is, empty
// otherwise.
func sanitizeRequestID(candidate string) string {
	if candidate == "" || len(candidate) > maxRequestIDLength {
		return ""
	}

	for _, r := range candidate {
		if r > unicode.MaxASCII || !unicode.IsPrint(r) {
			return ""
		}
	}

	return candidate
}
