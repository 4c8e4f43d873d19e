package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background(), "")
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), "abc")
	assert.Equal(t, "abc", id)
	assert.Equal(t, "abc", GetCorrelationID(ctx))
}

func TestForContext(t *testing.T) {
	ctx, _ := WithCorrelationID(context.Background(), "abc")
	ctx = WithRunID(ctx, "run-1")

	entry := ForContext(ctx)
	assert.Equal(t, "abc", entry.Data["correlation_id"])
	assert.Equal(t, "run-1", entry.Data["run_id"])

	assert.Empty(t, ForContext(context.Background()).Data)
}
