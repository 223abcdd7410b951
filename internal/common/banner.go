package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the application startup banner to stderr.
func PrintBanner(config *Config, logger *Logger) {
	version := GetVersion()
	serverURL := config.Server.BaseURL

	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 70
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	art := []string{
		` __        __        _ _   _     ____  _`,
		` \ \      / /__  __ _| | |_| |__ |  _ \| | __ _ _   _`,
		`  \ \ /\ / / _ \/ _' | | __| '_ \| |_) | |/ _' | | | |`,
		`   \ V  V /  __/ (_| | | |_| | | |  __/| | (_| | |_| |`,
		`    \_/\_/ \___|\__,_|_|\__|_| |_|_|   |_|\__,_|\__, |`,
		`                                                |___/`,
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)
	fmt.Fprintf(os.Stderr, "\n")
	for _, line := range art {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", textColor, line, banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  %sversion%s  %s\n", banner.ColorCyan, banner.ColorReset, version)
	fmt.Fprintf(os.Stderr, "  %sserver%s   %s\n", banner.ColorCyan, banner.ColorReset, serverURL)
	fmt.Fprintf(os.Stderr, "  %senv%s      %s\n", banner.ColorCyan, banner.ColorReset, config.Environment)
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "%s\n", hr)

	logger.Debug().Str("version", version).Str("server", serverURL).Msg("banner printed")
}
