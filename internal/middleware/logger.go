package middleware

import (
	"net/http"

	logger "github.com/chi-middleware/logrus-logger"
	log "github.com/sirupsen/logrus"
)

// Logger logs every request through the shared logrus instance.
func Logger(next http.Handler) http.Handler {
	return logger.Logger("router", log.StandardLogger())(next)
}
