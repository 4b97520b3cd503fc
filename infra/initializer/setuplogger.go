package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/parcels/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// SetupLogger builds the process logger and installs it as the slog default.
func SetupLogger(cfg *config.Log) *slog.Logger {
	logger := newLogger(os.Stdout, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg *config.Log) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{Format: "text"}
	}

	// Define color styles for different log levels
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	levelStyle := func(label string, color lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(label).
			Bold(true).
			Padding(0, 1).
			Foreground(color)
	}
	styles.Levels[log.ErrorLevel] = levelStyle("ERROR", errorTxtColor)
	styles.Levels[log.WarnLevel] = levelStyle("WARN", warnTxtColor)
	styles.Levels[log.InfoLevel] = levelStyle("INFO", infoTxtColor)
	styles.Levels[log.DebugLevel] = levelStyle("DEBUG", debugTxtColor)

	// Highlight the keys operators grep for.
	for key, color := range map[string]lipgloss.AdaptiveColor{
		"error":       errorTxtColor,
		"run_id":      infoTxtColor,
		"parcel_id":   infoTxtColor,
		"rate":        warnTxtColor,
		"provider":    debugTxtColor,
		"component":   debugTxtColor,
		"session_id":  debugTxtColor,
		"trigger":     debugTxtColor,
		"duration":    debugTxtColor,
		"parcel_type": debugTxtColor,
	} {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}

	formattersMap := map[string]log.Formatter{
		"json":   log.JSONFormatter,
		"text":   log.TextFormatter,
		"logfmt": log.LogfmtFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	return slog.New(logger)
}
