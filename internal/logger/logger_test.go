package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Setenv("DEBUG", "")

	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestParseLevelDebugOverride(t *testing.T) {
	t.Setenv("DEBUG", "1")
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("error"))
}

func TestZerologAdapterWritesComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("Aggregator", "scan finished", map[string]interface{}{"files": 2})
	log.Error("Plotter", errors.New("boom"), nil)

	out := buf.String()
	require.Contains(t, out, `"component":"Aggregator"`)
	require.Contains(t, out, `"files":2`)
	require.Contains(t, out, `"error":"boom"`)
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Aggregator", "hidden", nil)
	log.Info("Aggregator", "hidden", nil)
	assert.Empty(t, buf.String())

	log.Warning("Aggregator", "shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestScopedLoggerTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	log := For(NewZerolog(&buf, zerolog.DebugLevel), "PlotService")
	assert.Equal(t, "PlotService", log.Component())

	log.Info("plot finished", map[string]interface{}{"tracks": 3})
	log.Error(errors.New("disk full"), map[string]interface{}{"dir": "/data"})

	out := buf.String()
	assert.Contains(t, out, `"component":"PlotService"`)
	assert.Contains(t, out, `"app":"trackplot"`)
	assert.Contains(t, out, `"tracks":3`)
	assert.Contains(t, out, `"message":"folder failed"`)
}

func TestErrorMessageNamesSubject(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Error("Aggregator", errors.New("bad row"), map[string]interface{}{"file": "a.csv"})
	assert.Contains(t, buf.String(), `"message":"track file failed"`)

	buf.Reset()
	log.Error("Aggregator", errors.New("bad"), nil)
	assert.Contains(t, buf.String(), `"message":"operation failed"`)
	assert.Equal(t, zerolog.InfoLevel, log.Level())
}

func TestScopedNilBaseDiscards(t *testing.T) {
	log := For(nil, "Dispatcher")
	assert.NotPanics(t, func() {
		log.Debug("ignored", nil)
		log.Warning("ignored", nil)
		log.Error(errors.New("ignored"), nil)
	})
}
