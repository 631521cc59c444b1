package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

// @title Emergency Dispatch API
// @version 1.0
// @description Emergency reporting and dispatch service: classification, responder assignment and status timeline.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := Execute(); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
