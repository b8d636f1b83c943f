package discord

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func restError(status int) error {
	return &discordgo.RESTError{Response: &http.Response{StatusCode: status}}
}

func TestIsClientError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "missing permissions", err: restError(http.StatusForbidden), want: true},
		{name: "unknown channel", err: restError(http.StatusNotFound), want: true},
		{name: "wrapped", err: fmt.Errorf("failed to send message to channel 1: %w", restError(http.StatusForbidden)), want: true},
		{name: "rate limited", err: restError(http.StatusTooManyRequests), want: false},
		{name: "server error", err: restError(http.StatusBadGateway), want: false},
		{name: "no response", err: &discordgo.RESTError{}, want: false},
		{name: "transport error", err: errors.New("dial tcp: connection refused"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsClientError(tt.err))
		})
	}
}
