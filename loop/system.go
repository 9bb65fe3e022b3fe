package loop

import (
	"context"
	"reflect"
	"time"
)

// Frame is handed to every system the loop executes.
type Frame struct {
	Context   context.Context
	Now       time.Time
	DeltaTime float64 // seconds since the previous frame, 0 on the first
	Ticked    bool    // true when the fixed interval elapsed on this frame
}

// System is a unit of per-frame or per-tick behavior.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a function to System.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) { f(frame) }

// Named wraps fn so it shows up under name in Stats.
func Named(name string, fn func(frame *Frame)) System {
	return namedSystem{name: name, fn: fn}
}

type namedSystem struct {
	name string
	fn   func(frame *Frame)
}

func (s namedSystem) Execute(frame *Frame) { s.fn(frame) }
func (s namedSystem) Name() string         { return s.name }

func systemName(system System) string {
	if n, ok := system.(interface{ Name() string }); ok {
		return n.Name()
	}
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}
