package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		want    zap.AtomicLevel
		wantErr bool
	}{
		"debug":   {want: zap.NewAtomicLevelAt(zap.DebugLevel)},
		"":        {want: zap.NewAtomicLevelAt(zap.InfoLevel)},
		"INFO":    {want: zap.NewAtomicLevelAt(zap.InfoLevel)},
		"warning": {want: zap.NewAtomicLevelAt(zap.WarnLevel)},
		"error":   {want: zap.NewAtomicLevelAt(zap.ErrorLevel)},
		"loud":    {wantErr: true},
	}

	for in, tt := range tests {
		got, err := ParseLevel(in)
		if tt.wantErr {
			assert.Error(t, err, in)
			continue
		}
		require.NoError(t, err, in)
		assert.Equal(t, tt.want.Level(), got, in)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	l, sync, err := New("debug")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))
	sync()

	_, _, err = New("nope")
	assert.Error(t, err)
}
