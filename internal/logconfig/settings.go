package logconfig

import (
	log "github.com/sirupsen/logrus"
)

// ConfigDebugLogger reports callers and debug level entries. Used when
// SATS_DEBUG is set.
func ConfigDebugLogger() {
	log.SetReportCaller(true)
	log.SetLevel(log.DebugLevel)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
}

func ConfigInfoLogger() {
	log.SetReportCaller(false)
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

// Configure picks the logger preset for the debug flag
func Configure(debug bool) {
	if debug {
		ConfigDebugLogger()
		return
	}
	ConfigInfoLogger()
}
