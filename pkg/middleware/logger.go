package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLogger writes one zap line per request. 5xx log at error,
// 4xx at warn, the rest at info.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	log = log.Named("http")
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogRoutePath: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			switch {
			case v.Status >= 500:
				level = zapcore.ErrorLevel
			case v.Status >= 400:
				level = zapcore.WarnLevel
			}
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.String("route", v.RoutePath),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
				zap.String("remote_ip", v.RemoteIP),
			}
			if uid := UserID(c); uid != "" {
				fields = append(fields, zap.String("user_id", uid))
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			if ce := log.Check(level, "request"); ce != nil {
				ce.Write(fields...)
			}
			return nil
		},
	})
}
