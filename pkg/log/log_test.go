package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	incoming := uuid.New().String()

	ctx, id := WithCorrelationID(context.Background(), incoming)
	assert.Equal(t, incoming, id)
	assert.Equal(t, incoming, GetCorrelationID(ctx))

	ctx, id = WithCorrelationID(context.Background(), "not-a-uuid")
	assert.NotEqual(t, "not-a-uuid", id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, GetCorrelationID(ctx))
}

func TestGetCorrelationID_Empty(t *testing.T) {
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestKeepField(t *testing.T) {
	assert.True(t, keepField("evaluation_id"))
	assert.True(t, keepField("user_email"))
	assert.False(t, keepField("remote_addr"))
}
