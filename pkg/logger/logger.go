package logger

import (
	"context"
	"fmt"
	"sync"

	l "github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

type emitFunc func(ctx context.Context, eventName string, data ...interface{})

// CustomLogger implements wails' logger but also emits every log line to the frontend
type CustomLogger struct {
	prefix string
	level  l.LogLevel
	base   l.Logger
	emit   emitFunc

	mu  sync.RWMutex
	ctx context.Context
}

// NewCustomLogger creates a new custom logger with the given prefix that writes through base
func NewCustomLogger(prefix string, level l.LogLevel, base l.Logger) *CustomLogger {
	if base == nil {
		base = l.NewDefaultLogger()
	}
	return &CustomLogger{
		prefix: "[" + prefix + "] ",
		level:  level,
		base:   base,
		emit:   runtime.EventsEmit,
	}
}

// SetContext attaches the wails runtime context. Messages are only forwarded to the frontend
// once a context is attached.
func (c *CustomLogger) SetContext(ctx context.Context) {
	c.mu.Lock()
	c.ctx = ctx
	c.mu.Unlock()
}

func (c *CustomLogger) forward(level string, message string) {
	c.mu.RLock()
	ctx := c.ctx
	c.mu.RUnlock()
	if ctx == nil {
		return
	}
	c.emit(ctx, "log:"+level, fmt.Sprintf("%s:%s", c.prefix, message))
}

func (c *CustomLogger) enabled(level l.LogLevel) bool {
	return level >= c.level
}

// Print writes unconditionally
func (c *CustomLogger) Print(message string) {
	c.base.Print(c.prefix + message)
	c.forward("print", message)
}

// Trace level message. Trace is not forwarded: wails' event bus traces from inside
// EventsEmit while holding its lock, so forwarding would emit re-entrantly.
func (c *CustomLogger) Trace(message string) {
	if !c.enabled(l.TRACE) {
		return
	}
	c.base.Trace(c.prefix + message)
}

// Debug level message
func (c *CustomLogger) Debug(message string) {
	if !c.enabled(l.DEBUG) {
		return
	}
	c.base.Debug(c.prefix + message)
	c.forward("debug", message)
}

// Debugf - formatted message
func (c *CustomLogger) Debugf(message string, args ...interface{}) {
	c.Debug(fmt.Sprintf(message, args...))
}

// Info level message
func (c *CustomLogger) Info(message string) {
	if !c.enabled(l.INFO) {
		return
	}
	c.base.Info(c.prefix + message)
	c.forward("info", message)
}

// Infof - formatted message
func (c *CustomLogger) Infof(message string, args ...interface{}) {
	c.Info(fmt.Sprintf(message, args...))
}

// Warning level message
func (c *CustomLogger) Warning(message string) {
	if !c.enabled(l.WARNING) {
		return
	}
	c.base.Warning(c.prefix + message)
	c.forward("warn", message)
}

// Warningf - formatted message
func (c *CustomLogger) Warningf(message string, args ...interface{}) {
	c.Warning(fmt.Sprintf(message, args...))
}

// Error level message
func (c *CustomLogger) Error(message string) {
	if !c.enabled(l.ERROR) {
		return
	}
	c.base.Error(c.prefix + message)
	c.forward("error", message)
}

// Errorf - formatted message
func (c *CustomLogger) Errorf(message string, args ...interface{}) {
	c.Error(fmt.Sprintf(message, args...))
}

// Fatal is always written. The frontend is notified before the base logger exits the process.
func (c *CustomLogger) Fatal(message string) {
	c.forward("fatal", message)
	c.base.Fatal(c.prefix + message)
}

// Fatalf - formatted message
func (c *CustomLogger) Fatalf(message string, args ...interface{}) {
	c.Fatal(fmt.Sprintf(message, args...))
}
