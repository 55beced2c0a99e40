package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TrackTime logs how long funcName has been running since start. Use with defer.
func TrackTime(funcName string, start time.Time) {
	log.WithField("took_ms", time.Since(start).Milliseconds()).Debugf("%s finished", funcName)
}
