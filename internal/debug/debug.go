package debug

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
)

var debug = func(string, ...any) {}

func init() {
	debugLevel, err := strconv.ParseInt(os.Getenv("PANE_DEBUG"), 10, 0)
	if err != nil {
		return
	}
	if debugLevel > 0 {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			Level:  log.DebugLevel,
			Prefix: "pane",
		})
		debug = logger.Debugf
	}
}

func Printf(str string, args ...any) {
	debug(str, args...)
}
