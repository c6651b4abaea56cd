package ratelimit

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	fixedUUID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func testOpts() *Opts {
	return &Opts{
		TimeProvider: func() time.Time { return fixedTime },
		UuidProvider: func() uuid.UUID { return fixedUUID },
	}
}

func TestCheck_UnderLimit(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	window := 10 * time.Minute
	windowStart := fixedTime.Add(-window).Unix()

	mock.ExpectZCount("ratelimit:post:u1",
		strconv.FormatInt(windowStart, 10),
		strconv.FormatInt(fixedTime.Unix(), 10)).SetVal(1)

	limiter := NewRedisLimiter(redisMock, 2, window, testOpts())
	status, err := limiter.Check(context.Background(), "post", "u1")

	require.NoError(t, err)
	assert.False(t, status.Exceeded)
	assert.Equal(t, int64(1), status.Remaining())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheck_ThirdSubmissionIsLimited(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	window := 10 * time.Minute
	windowStart := fixedTime.Add(-window).Unix()
	min := strconv.FormatInt(windowStart, 10)
	max := strconv.FormatInt(fixedTime.Unix(), 10)

	mock.ExpectZCount("ratelimit:post:u1", min, max).SetVal(2)
	mock.ExpectZRangeByScoreWithScores("ratelimit:post:u1", &redis.ZRangeBy{Min: min, Max: max, Count: 1}).
		SetVal([]redis.Z{{Score: float64(fixedTime.Add(-4 * time.Minute).Unix()), Member: "x"}})

	limiter := NewRedisLimiter(redisMock, 2, window, testOpts())
	status, err := limiter.Check(context.Background(), "post", "u1")

	require.NoError(t, err)
	assert.True(t, status.Exceeded)
	assert.Equal(t, 6*time.Minute, status.RetryAfter)
	assert.Zero(t, status.Remaining())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecord_Pipeline(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	mock.MatchExpectationsInOrder(false)
	window := 10 * time.Minute
	windowStart := fixedTime.Add(-window).Unix()
	key := "ratelimit:comment:u9"

	mock.ExpectTxPipeline()
	mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(windowStart, 10)).SetVal(0)
	mock.ExpectZAdd(key, &redis.Z{
		Score:  float64(fixedTime.Unix()),
		Member: strconv.FormatInt(fixedTime.Unix(), 10) + ":" + fixedUUID.String(),
	}).SetVal(1)
	mock.ExpectExpire(key, window).SetVal(true)
	mock.ExpectTxPipelineExec()

	limiter := NewRedisLimiter(redisMock, 2, window, testOpts())
	require.NoError(t, limiter.Record(context.Background(), "comment", "u9"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheck_RedisError(t *testing.T) {
	redisMock, mock := redismock.NewClientMock()
	window := time.Minute
	mock.ExpectZCount("ratelimit:post:u1",
		strconv.FormatInt(fixedTime.Add(-window).Unix(), 10),
		strconv.FormatInt(fixedTime.Unix(), 10)).SetErr(errors.New("connection refused"))

	_, err := NewRedisLimiter(redisMock, 2, window, testOpts()).Check(context.Background(), "post", "u1")
	assert.ErrorContains(t, err, "connection refused")
}
