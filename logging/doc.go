// Package logging wraps [log/slog] behind a single process-wide logger.
//
// Call Init once at startup (or rely on the lazy stderr default) and
// retrieve the logger anywhere with GetLogger. Level, destination and
// format are decided in one place instead of per subsystem.
//
//	if err := logging.Init(logging.Config{Level: "debug", Format: "json"}); err != nil {
//	    log.Fatal(err)
//	}
//	logging.Info("store opened", "dir", dir)
package logging
