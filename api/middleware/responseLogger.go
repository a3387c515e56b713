package middleware

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("api/middleware")

const (
	prefixDurationTooLong = "[too long]"
	prefixBadRequest      = "[bad request]"
	prefixInternalError   = "[internal error]"
	maxLoggedBodyLength   = 200
	notAvailable          = "n/a"
)

type printRequestHandler func(title string, path string, duration time.Duration, status int, request string, response string)

type responseLoggerMiddleware struct {
	thresholdDurationForLoggingRequest time.Duration
	printRequestFunc                   printRequestHandler
}

// NewResponseLoggerMiddleware returns a new instance of responseLoggerMiddleware
func NewResponseLoggerMiddleware(thresholdDurationForLoggingRequest time.Duration) *responseLoggerMiddleware {
	rlm := &responseLoggerMiddleware{
		thresholdDurationForLoggingRequest: thresholdDurationForLoggingRequest,
	}
	rlm.printRequestFunc = rlm.printRequest

	return rlm
}

// MiddlewareHandlerFunc logs the transfer request and its response when the status is not OK
// or when the handling took longer than the configured threshold
func (rlm *responseLoggerMiddleware) MiddlewareHandlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		request := readRequestBody(c)

		bw := &bodyWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = bw

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		shouldLogRequest := latency > rlm.thresholdDurationForLoggingRequest || status != http.StatusOK
		if !shouldLogRequest {
			return
		}

		response := removeWhitespacesFromString(bw.body.String())
		rlm.printRequestFunc(computeLogTitle(status), c.Request.RequestURI, latency, status, request, response)
	}
}

// readRequestBody copies the request body and puts it back so the handlers can still bind it
func readRequestBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return notAvailable
	}

	buff, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Debug("cannot read request body", "path", c.Request.RequestURI, "error", err)
		return notAvailable
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(buff))
	if len(buff) == 0 {
		return notAvailable
	}

	return removeWhitespacesFromString(string(buff))
}

func computeLogTitle(status int) string {
	logPrefix := prefixDurationTooLong
	switch status {
	case http.StatusOK:
	case http.StatusBadRequest:
		logPrefix = prefixBadRequest
	case http.StatusInternalServerError:
		logPrefix = prefixInternalError
	default:
		logPrefix = fmt.Sprintf("http code %d", status)
	}

	return fmt.Sprintf("%s api request", logPrefix)
}

func (rlm *responseLoggerMiddleware) printRequest(title string, path string, duration time.Duration, status int, request string, response string) {
	log.Debug(title,
		"path", path,
		"duration", duration,
		"status", status,
		"request", truncate(request),
		"response", truncate(response),
	)
}

func truncate(str string) string {
	if len(str) > maxLoggedBodyLength {
		return str[:maxLoggedBodyLength] + "..."
	}

	return str
}

func removeWhitespacesFromString(str string) string {
	var b strings.Builder
	b.Grow(len(str))
	for _, ch := range str {
		if !unicode.IsSpace(ch) {
			b.WriteRune(ch)
		}
	}

	return b.String()
}

// IsInterfaceNil returns true if there is no value under the interface
func (rlm *responseLoggerMiddleware) IsInterfaceNil() bool {
	return rlm == nil
}

type bodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write writes the data both in the response and in the local buffer
func (w bodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}
