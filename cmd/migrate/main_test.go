package main

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMigrator struct {
	mock.Mock
}

func (m *mockMigrator) Up() error   { return m.Called().Error(0) }
func (m *mockMigrator) Down() error { return m.Called().Error(0) }

func (m *mockMigrator) Force(version int) error {
	return m.Called(version).Error(0)
}

func (m *mockMigrator) Version() (uint, bool, error) {
	args := m.Called()
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func TestParseCommand(t *testing.T) {
	testCases := []struct {
		args    []string
		want    command
		wantErr bool
	}{
		{args: []string{"up"}, want: command{name: "up"}},
		{args: []string{"down"}, want: command{name: "down"}},
		{args: []string{"version"}, want: command{name: "version"}},
		{args: []string{"force", "2"}, want: command{name: "force", version: 2}},
		{args: nil, wantErr: true},
		{args: []string{"force"}, wantErr: true},
		{args: []string{"force", "x"}, wantErr: true},
		{args: []string{"up", "extra"}, wantErr: true},
		{args: []string{"drop"}, wantErr: true},
	}

	for _, tc := range testCases {
		cmd, err := parseCommand(tc.args)
		if tc.wantErr {
			assert.Error(t, err, "args=%v", tc.args)
			continue
		}
		require.NoError(t, err, "args=%v", tc.args)
		assert.Equal(t, tc.want, cmd)
	}
}

func TestRun(t *testing.T) {
	t.Run("up without changes is not an error", func(t *testing.T) {
		m := new(mockMigrator)
		m.On("Up").Return(migrate.ErrNoChange)
		m.On("Version").Return(uint(2), false, nil)

		assert.NoError(t, run(m, command{name: "up"}))
		m.AssertExpectations(t)
	})

	t.Run("down failure", func(t *testing.T) {
		m := new(mockMigrator)
		m.On("Down").Return(errors.New("dirty database"))

		assert.Error(t, run(m, command{name: "down"}))
		m.AssertNotCalled(t, "Version")
	})

	t.Run("force", func(t *testing.T) {
		m := new(mockMigrator)
		m.On("Force", 1).Return(nil)
		m.On("Version").Return(uint(1), false, nil)

		assert.NoError(t, run(m, command{name: "force", version: 1}))
		m.AssertExpectations(t)
	})

	t.Run("fresh database has no version", func(t *testing.T) {
		m := new(mockMigrator)
		m.On("Version").Return(uint(0), false, migrate.ErrNilVersion)

		assert.NoError(t, run(m, command{name: "version"}))
	})
}
