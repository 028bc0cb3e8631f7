package logginghelper

import (
	"github.com/Egor213/UniLog/internal/domain"
	log "github.com/sirupsen/logrus"
)

func LogReceived(tenantId int64, channel string, level domain.Level) {
	log.WithFields(log.Fields{
		"tenant":  tenantId,
		"channel": channel,
		"level":   level.String(),
	}).Debug("Received entry via HTTP")
}

func LogSaved(tenantId int64, channel string, level domain.Level, stored bool) {
	log.WithFields(log.Fields{
		"tenant":  tenantId,
		"channel": channel,
		"level":   level.String(),
		"stored":  stored,
	}).Debug("Entry handled")
}

func LogError(tenantId int64, channel string, err error) {
	log.WithFields(log.Fields{
		"tenant":  tenantId,
		"channel": channel,
		"error":   err,
	}).Error("Request failed")
}
