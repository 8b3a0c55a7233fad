package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetails(t *testing.T) {
	driverErr := errors.New("server selection timeout")

	wrapped := wrap("find", "rooms", driverErr)
	assert.Equal(t, "server selection timeout", Details(wrapped))
	assert.Equal(t, "server selection timeout", Details(fmt.Errorf("list rooms: %w", wrapped)))
	assert.Equal(t, "plain failure", Details(errors.New("plain failure")))
}
