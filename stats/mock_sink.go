// Mock of the Sink interface declared in sink.go.

package stats

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockSink is a mock of the Sink interface, in the shape mockgen would
// generate for it. Hand-maintained here rather than regenerated, since
// Sink is small and stable enough not to be worth a go:generate step yet.
type MockSink struct {
	ctrl     *gomock.Controller
	recorder *MockSinkMockRecorder
}

// MockSinkMockRecorder is the recorder for MockSink's EXPECT() calls.
type MockSinkMockRecorder struct {
	mock *MockSink
}

// NewMockSink creates a new mock instance.
func NewMockSink(ctrl *gomock.Controller) *MockSink {
	mock := &MockSink{ctrl: ctrl}
	mock.recorder = &MockSinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSink) EXPECT() *MockSinkMockRecorder {
	return m.recorder
}

// DumpHeader mocks base method.
func (m *MockSink) DumpHeader() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DumpHeader")
	ret0, _ := ret[0].(error)
	return ret0
}

// DumpHeader indicates an expected call of DumpHeader.
func (mr *MockSinkMockRecorder) DumpHeader() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DumpHeader", reflect.TypeOf((*MockSink)(nil).DumpHeader))
}

// DumpPeriodic mocks base method.
func (m *MockSink) DumpPeriodic(cycle, totalUserInsnsCommitted uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DumpPeriodic", cycle, totalUserInsnsCommitted)
	ret0, _ := ret[0].(error)
	return ret0
}

// DumpPeriodic indicates an expected call of DumpPeriodic.
func (mr *MockSinkMockRecorder) DumpPeriodic(cycle, totalUserInsnsCommitted interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DumpPeriodic", reflect.TypeOf((*MockSink)(nil).DumpPeriodic), cycle, totalUserInsnsCommitted)
}
