package dummyjson

import (
	"context"
	"errors"
	"testing"
	"time"

	config "github.com/avatarctic/admin-dashboard/configs"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestPostJSON_UnencodableBodyIsNotANetworkError(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	c := NewClient(&config.UpstreamConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}, logger)

	err := c.postJSON(context.Background(), "login", "/auth/login", make(chan int), nil)
	require.Error(t, err)

	var ne *NetworkError
	require.False(t, errors.As(err, &ne), "encode failures are local, not transport")
}
