// Package logger construye el logger estructurado de la aplicación sobre
// zerolog. Se instancia una vez en main y viaja por inyección; ningún paquete
// usa el logger global directamente.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config parámetros de construcción del logger.
type Config struct {
	Env   string // development escribe consola legible; el resto, JSON por línea
	Level string // trace, debug, info, warn, error (default info)
}

// Logger envuelve zerolog con una superficie mínima para los consumidores.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según el entorno. Fuera de development la salida es
// JSON a stdout, lista para un recolector de logs.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// Las dependencias que loggean vía zerolog global usan la misma salida.
	log.Logger = zl

	return &Logger{zl: zl}
}

// parseLevel traduce el nivel textual de la config; desconocido o vacío cae a info.
func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Eventos por nivel, delegados a zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un contexto para derivar un sublogger con campos fijos
// (por ejemplo el nombre del componente).
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger subyacente cuando se necesita la API completa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
