package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/moodnote-ai/moodnote/app/core/srv"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr     string        `toml:"addr"`
	Log      Log           `toml:"log"`
	Store    StoreConfig   `toml:"store"`
	Postgres PGConfig      `toml:"postgres"`
	AI       srv.AIConfig  `toml:"ai"`
	Journal  JournalConfig `toml:"journal"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("MOODNOTE_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Store.FromENV()
	c.Postgres.FromENV()
	c.AI.FromENV()
	c.Journal.FromENV()
}

type StoreConfig struct {
	// Driver is "postgres" or "memory". Empty means postgres when a DSN is
	// configured, memory otherwise.
	Driver string `toml:"driver"`
}

func (s *StoreConfig) FromENV() {
	s.Driver = os.Getenv("MOODNOTE_STORE_DRIVER")
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("MOODNOTE_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

// JournalConfig tunes trend analysis and the daily reminder.
type JournalConfig struct {
	// TrendWindowDays is the default daily trend window, defaults to 30.
	TrendWindowDays int `toml:"trend_window_days"`
	// MoodCurveWindowDays is the default mood curve window, defaults to 7.
	MoodCurveWindowDays int `toml:"mood_curve_window_days"`
}

func (j *JournalConfig) FromENV() {
	if v := os.Getenv("MOODNOTE_TREND_WINDOW_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			j.TrendWindowDays = days
		}
	}
	if v := os.Getenv("MOODNOTE_MOOD_CURVE_WINDOW_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			j.MoodCurveWindowDays = days
		}
	}
}

func (j JournalConfig) TrendWindow() int {
	if j.TrendWindowDays <= 0 {
		return 30
	}
	return j.TrendWindowDays
}

func (j JournalConfig) MoodCurveWindow() int {
	if j.MoodCurveWindowDays <= 0 {
		return 7
	}
	return j.MoodCurveWindowDays
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("MOODNOTE_LOG_LEVEL")
	l.Path = os.Getenv("MOODNOTE_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
