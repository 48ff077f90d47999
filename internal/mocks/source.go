package mocks

import (
	"github.com/brettbedarf/fme"
	"github.com/stretchr/testify/mock"
)

// MockCommandSource implements fme.CommandSource for testing across packages
type MockCommandSource struct {
	mock.Mock
}

func (m *MockCommandSource) Next() (fme.Command, bool) {
	args := m.Called()

	// Handle function return types (for scripted sources)
	if fn, ok := args.Get(0).(func() fme.Command); ok {
		return fn(), args.Bool(1)
	}

	if args.Get(0) == nil {
		return fme.Command{}, args.Bool(1)
	}
	return args.Get(0).(fme.Command), args.Bool(1)
}

// Script queues cmds to be returned in order, followed by end of input
func (m *MockCommandSource) Script(cmds ...fme.Command) *MockCommandSource {
	for _, cmd := range cmds {
		m.On("Next").Return(cmd, true).Once()
	}
	m.On("Next").Return(nil, false)
	return m
}

var _ fme.CommandSource = (*MockCommandSource)(nil)

// MockFailingSource is a MockCommandSource that also reports a read error
type MockFailingSource struct {
	MockCommandSource
}

func (m *MockFailingSource) Err() error {
	args := m.Called()
	return args.Error(0)
}
