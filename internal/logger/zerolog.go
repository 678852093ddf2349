package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// AppName is attached to every record
const AppName = "trackplot"

type ZerologAdapter struct {
	logger zerolog.Logger
}

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("app", AppName).
		Logger()

	return &ZerologAdapter{logger: logger}
}

// NewConsoleLogger writes human readable lines to stderr, with the
// component shown before the message
func NewConsoleLogger(level zerolog.Level) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{
		Out:           os.Stderr,
		TimeFormat:    time.TimeOnly,
		PartsOrder:    []string{zerolog.TimestampFieldName, zerolog.LevelFieldName, "component", zerolog.MessageFieldName},
		FieldsExclude: []string{"app", "component"},
	}
	return NewZerolog(consoleWriter, level)
}

// Level returns the minimum level written
func (z *ZerologAdapter) Level() zerolog.Level {
	return z.logger.GetLevel()
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	write(z.logger.Debug(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	write(z.logger.Info(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	write(z.logger.Warn(), component, fields).Msg(message)
}

// Error logs err; a "file" or "dir" field names what the failure was about
func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	message := "operation failed"
	if _, ok := fields["file"]; ok {
		message = "track file failed"
	} else if _, ok := fields["dir"]; ok {
		message = "folder failed"
	}
	write(z.logger.Error().Err(err), component, fields).Msg(message)
}

func write(e *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	return e.Str("component", component).Fields(fields)
}
