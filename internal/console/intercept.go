// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package console

var (
	_ Console = &interceptor{}
	_ Console = &capture{}
)

// interceptor forwards every call to the sink before handing the original arguments to native.
type interceptor struct {
	native Console
	sink   Sink
}

// Intercept wraps native so that every call is captured by sink first and then reaches
// native with its arguments unchanged. When native is missing the interception is skipped
// and native is returned as is.
func Intercept(native Console, sink Sink) Console {
	if native == nil || sink == nil {
		return native
	}

	return &interceptor{native: native, sink: sink}
}

func (c *interceptor) Log(args ...any) {
	c.sink.Log(Data(args))
	c.native.Log(args...)
}

func (c *interceptor) Debug(args ...any) {
	c.sink.Debug(Data(args))
	c.native.Debug(args...)
}

func (c *interceptor) Info(args ...any) {
	c.sink.Info(Data(args))
	c.native.Info(args...)
}

func (c *interceptor) Warn(args ...any) {
	c.sink.Warn(Data(args))
	c.native.Warn(args...)
}

func (c *interceptor) Error(args ...any) {
	c.sink.Error(Data(args))
	c.native.Error(args...)
}

// capture only feeds the sink.
type capture struct {
	sink Sink
}

// Capture returns a console whose calls only reach sink.
func Capture(sink Sink) Console {
	return &capture{sink: sink}
}

func (c *capture) Log(args ...any)   { c.sink.Log(Data(args)) }
func (c *capture) Debug(args ...any) { c.sink.Debug(Data(args)) }
func (c *capture) Info(args ...any)  { c.sink.Info(Data(args)) }
func (c *capture) Warn(args ...any)  { c.sink.Warn(Data(args)) }
func (c *capture) Error(args ...any) { c.sink.Error(Data(args)) }
