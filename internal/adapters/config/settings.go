package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes environment overrides, e.g. SCAFFOLD_GANTT_PIXELS_PER_DAY.
const EnvPrefix = "SCAFFOLD"

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// SettingsLoader implements ports.SettingsLoader on top of viper.
type SettingsLoader struct {
	Logger ports.Logger
}

// NewSettingsLoader creates a new SettingsLoader with the given logger.
func NewSettingsLoader(logger ports.Logger) *SettingsLoader {
	return &SettingsLoader{Logger: logger}
}

// Discover walks up from cwd and returns the first scaffold.yaml it finds.
// It returns an empty path when no settings file exists.
func (l *SettingsLoader) Discover(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve directory"), "cwd", cwd)
	}

	for {
		candidate := filepath.Join(dir, domain.SettingsFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load reads settings from path. An empty path yields the defaults with
// environment overrides applied.
func (l *SettingsLoader) Load(path string) (*domain.Settings, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
		}
		l.Logger.Debug("loaded settings from " + path)
	}

	settings, err := decodeSettings(v)
	if err != nil {
		if path != "" {
			return nil, zerr.With(err, "path", path)
		}
		return nil, err
	}
	return settings, nil
}

func newViper() *viper.Viper {
	d := domain.DefaultSettings()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("gantt.pixels_per_day", d.Gantt.PixelsPerDay)
	v.SetDefault("gantt.row_height", d.Gantt.RowHeight)
	v.SetDefault("gantt.bar_height", d.Gantt.BarHeight)
	v.SetDefault("gantt.min_canvas_width", d.Gantt.MinCanvasWidth)
	v.SetDefault("gantt.min_canvas_height", d.Gantt.MinCanvasHeight)
	v.SetDefault("gantt.canvas_margin", d.Gantt.CanvasMargin)

	v.SetDefault("calendar.first_weekday", strings.ToLower(d.Calendar.FirstWeekday.String()))
	v.SetDefault("calendar.cell_width", d.Calendar.CellWidth)
	v.SetDefault("calendar.lane_height", d.Calendar.LaneHeight)
	v.SetDefault("calendar.lane_gap", d.Calendar.LaneGap)
	v.SetDefault("calendar.header_height", d.Calendar.HeaderHeight)
	v.SetDefault("calendar.min_week_height", d.Calendar.MinWeekHeight)

	v.SetDefault("connectors.offset", d.Connectors.Offset)
	v.SetDefault("connectors.margin", d.Connectors.Margin)
	v.SetDefault("connectors.arrow_size", d.Connectors.ArrowSize)

	v.SetDefault("palette", []string{})
	v.SetDefault("output.format", string(d.Output.Format))

	return v
}

func decodeSettings(v *viper.Viper) (*domain.Settings, error) {
	weekday, err := ParseWeekday(v.GetString("calendar.first_weekday"))
	if err != nil {
		return nil, err
	}
	format, err := domain.ParseFormat(v.GetString("output.format"))
	if err != nil {
		return nil, err
	}

	s := &domain.Settings{
		Gantt: domain.GanttSettings{
			PixelsPerDay:    v.GetFloat64("gantt.pixels_per_day"),
			RowHeight:       v.GetFloat64("gantt.row_height"),
			BarHeight:       v.GetFloat64("gantt.bar_height"),
			MinCanvasWidth:  v.GetFloat64("gantt.min_canvas_width"),
			MinCanvasHeight: v.GetFloat64("gantt.min_canvas_height"),
			CanvasMargin:    v.GetFloat64("gantt.canvas_margin"),
		},
		Calendar: domain.CalendarSettings{
			FirstWeekday:  weekday,
			CellWidth:     v.GetFloat64("calendar.cell_width"),
			LaneHeight:    v.GetFloat64("calendar.lane_height"),
			LaneGap:       v.GetFloat64("calendar.lane_gap"),
			HeaderHeight:  v.GetFloat64("calendar.header_height"),
			MinWeekHeight: v.GetFloat64("calendar.min_week_height"),
		},
		Connectors: domain.ConnectorSettings{
			Offset:    v.GetFloat64("connectors.offset"),
			Margin:    v.GetFloat64("connectors.margin"),
			ArrowSize: v.GetFloat64("connectors.arrow_size"),
		},
		Palette: v.GetStringSlice("palette"),
		Output:  domain.OutputSettings{Format: format},
	}

	if err := validateSettings(s); err != nil {
		return nil, err
	}
	return s, nil
}

func validateSettings(s *domain.Settings) error {
	positive := []struct {
		key   string
		value float64
	}{
		{"gantt.pixels_per_day", s.Gantt.PixelsPerDay},
		{"gantt.row_height", s.Gantt.RowHeight},
		{"gantt.bar_height", s.Gantt.BarHeight},
		{"calendar.cell_width", s.Calendar.CellWidth},
		{"calendar.lane_height", s.Calendar.LaneHeight},
		{"connectors.arrow_size", s.Connectors.ArrowSize},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return invalidSetting(p.key, p.value, "must be positive")
		}
	}

	nonNegative := []struct {
		key   string
		value float64
	}{
		{"gantt.min_canvas_width", s.Gantt.MinCanvasWidth},
		{"gantt.min_canvas_height", s.Gantt.MinCanvasHeight},
		{"gantt.canvas_margin", s.Gantt.CanvasMargin},
		{"calendar.lane_gap", s.Calendar.LaneGap},
		{"calendar.header_height", s.Calendar.HeaderHeight},
		{"calendar.min_week_height", s.Calendar.MinWeekHeight},
		{"connectors.offset", s.Connectors.Offset},
		{"connectors.margin", s.Connectors.Margin},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return invalidSetting(p.key, p.value, "must not be negative")
		}
	}

	if s.Gantt.BarHeight > s.Gantt.RowHeight {
		return invalidSetting("gantt.bar_height", s.Gantt.BarHeight, "must not exceed gantt.row_height")
	}
	if s.Calendar.LaneGap >= s.Calendar.LaneHeight {
		return invalidSetting("calendar.lane_gap", s.Calendar.LaneGap, "must be smaller than calendar.lane_height")
	}

	for i, c := range s.Palette {
		if !hexColorPattern.MatchString(c) {
			return zerr.With(zerr.With(zerr.With(domain.ErrInvalidSettings, "key", "palette"), "index", i), "value", c)
		}
	}

	return nil
}

func invalidSetting(key string, value float64, reason string) error {
	err := zerr.With(domain.ErrInvalidSettings, "key", key)
	err = zerr.With(err, "value", value)
	return zerr.With(err, "reason", reason)
}

// ParseWeekday accepts an English weekday name, its three-letter
// abbreviation, or a number from 0 (Sunday) to 6.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 0 && n <= 6 {
			return time.Weekday(n), nil
		}
		return 0, zerr.With(domain.ErrInvalidWeekday, "value", s)
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return 0, zerr.With(domain.ErrInvalidWeekday, "value", s)
}
