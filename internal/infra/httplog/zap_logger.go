package httplog

import (
	"go.uber.org/zap"

	"go-weather/pkg/http"
	"go-weather/pkg/msg"
)

// ZapLogger writes outbound HTTP events as structured log entries.
// Bodies are only emitted at debug level.
type ZapLogger struct {
	logger   *zap.Logger
	upstream string
}

var _ http.HTTPLogger = (*ZapLogger)(nil)

// New returns a logger tagging every entry with the upstream name.
func New(logger *zap.Logger, upstream string) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapLogger{logger: logger, upstream: upstream}
}

func (l *ZapLogger) LogRequest(method, url string) {
	l.logger.Debug(msg.GetMessage("http.request", l.upstream, method, url),
		zap.String("upstream", l.upstream),
		zap.String("method", method),
		zap.String("url", url),
	)
}

func (l *ZapLogger) LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency int64) {
	fields := []zap.Field{
		zap.String("upstream", l.upstream),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	}
	l.logger.Info(msg.GetMessage("http.response", l.upstream, method, url, httpStatus, latency), fields...)

	if ce := l.logger.Check(zap.DebugLevel, msg.GetMessage("http.response-body", l.upstream)); ce != nil {
		ce.Write(append(fields, zap.String("response_body", responseBody))...)
	}
}

func (l *ZapLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error) {
	l.logger.Warn(msg.GetMessage("http.response-error", l.upstream, method, url, httpStatus, latency, err),
		zap.String("upstream", l.upstream),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response_body", responseBody),
		zap.Error(err),
	)
}
