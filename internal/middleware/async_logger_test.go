//go:build !integration

package middleware

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/guttosm/drone-fulfillment/internal/domain/model"
	"github.com/guttosm/drone-fulfillment/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAsyncLogger_NilService(t *testing.T) {
	assert.Nil(t, NewAsyncLogger(nil, DefaultAsyncLoggerConfig()))

	var al *AsyncLogger
	assert.False(t, al.Log(&model.LogEntry{}))
	assert.NotPanics(t, al.Stop)
}

func TestAsyncLogger_StopFlushesBatches(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	var written int64
	svc.On("CreateLogs", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			atomic.AddInt64(&written, int64(len(args.Get(1).([]*model.LogEntry))))
		}).
		Return(nil)

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 2, BatchSize: 50, FlushInterval: time.Hour})
	require.NotNil(t, al)

	for i := 0; i < 5; i++ {
		require.True(t, al.Log(&model.LogEntry{Message: "HTTP request"}))
	}
	al.Stop()

	assert.Equal(t, int64(5), atomic.LoadInt64(&written))
	enqueued, dropped, ok, failed := al.Stats()
	assert.Equal(t, int64(5), enqueued)
	assert.Zero(t, dropped)
	assert.Equal(t, int64(5), ok)
	assert.Zero(t, failed)

	assert.False(t, al.Log(&model.LogEntry{}), "entries after Stop are dropped")
	assert.NotPanics(t, al.Stop)
}

func TestAsyncLogger_FlushesFullBatch(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	flushed := make(chan int, 4)
	svc.On("CreateLogs", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { flushed <- len(args.Get(1).([]*model.LogEntry)) }).
		Return(nil)

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, BatchSize: 2, FlushInterval: time.Hour})
	defer al.Stop()

	al.Log(&model.LogEntry{})
	al.Log(&model.LogEntry{})

	select {
	case n := <-flushed:
		assert.Equal(t, 2, n)
	case <-time.After(2 * time.Second):
		t.Fatal("full batch was not written")
	}
}

func TestAsyncLogger_CountsFailures(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	svc.On("CreateLogs", mock.Anything, mock.Anything).Return(errors.New("mongo down"))

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 4, NumWorkers: 1, BatchSize: 10, FlushInterval: time.Hour})
	al.Log(&model.LogEntry{})
	al.Log(&model.LogEntry{})
	al.Stop()

	_, _, written, failed := al.Stats()
	assert.Zero(t, written)
	assert.Equal(t, int64(2), failed)
}

func TestAsyncLogger_DropsWhenFull(t *testing.T) {
	// no workers, so the buffer never drains
	al := &AsyncLogger{
		entryCh: make(chan *model.LogEntry, 1),
		stopCh:  make(chan struct{}),
	}

	assert.True(t, al.Log(&model.LogEntry{}))
	assert.False(t, al.Log(&model.LogEntry{}))

	_, dropped, _, _ := al.Stats()
	assert.Equal(t, int64(1), dropped)
}

func TestGlobalAsyncLogger(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	svc.On("CreateLogs", mock.Anything, mock.Anything).Return(nil)

	InitAsyncLogger(svc, DefaultAsyncLoggerConfig())
	first := GetAsyncLogger()
	require.NotNil(t, first)

	InitAsyncLogger(svc, DefaultAsyncLoggerConfig())
	assert.NotSame(t, first, GetAsyncLogger())
	assert.False(t, first.Log(&model.LogEntry{}), "replaced logger is stopped")

	StopAsyncLogger()
	assert.Nil(t, GetAsyncLogger())
	assert.NotPanics(t, StopAsyncLogger)
}
