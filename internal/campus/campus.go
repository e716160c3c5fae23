// Package campus holds the outbound clients for the two university APIs the
// program depends on: the public events calendar and the persons/registration
// APIs behind an API key.
package campus

import (
	"net/http"
	"time"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/clock"
	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/config"
)

type Client struct {
	cfg  *config.Config
	http *http.Client
	clk  clock.Clock
}

func New(cfg *config.Config, clk clock.Clock) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 10 * time.Second},
		clk:  clk,
	}
}
