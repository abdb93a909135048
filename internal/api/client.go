package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"freefire-bot/internal/constants"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// Client performs the GET requests described by a SourceDescriptor. Any
// transport-level failure (connect error, timeout, non-2xx, bad JSON)
// surfaces as a plain error; folding those into absence is the caller's job.
type Client struct {
	client    *fasthttp.Client
	userAgent string
	logger    zerolog.Logger
}

func NewClient(logger zerolog.Logger) *Client {
	return &Client{
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		userAgent: constants.UserAgent,
		logger:    logger,
	}
}

func (c *Client) FetchAccount(ctx context.Context, src SourceDescriptor, uid, region string) (*RawAccountPayload, error) {
	url, err := src.BuildURL(uid, region, EndpointAccount)
	if err != nil {
		return nil, err
	}
	return doRequest[RawAccountPayload](ctx, c, url)
}

func (c *Client) FetchStats(ctx context.Context, src SourceDescriptor, uid, region string) (*RawStatsPayload, error) {
	url, err := src.BuildURL(uid, region, EndpointPlayerStats)
	if err != nil {
		return nil, err
	}
	return doRequest[RawStatsPayload](ctx, c, url)
}

func (c *Client) FetchGuild(ctx context.Context, src SourceDescriptor, guildID, region string) (*RawGuildPayload, error) {
	url, err := src.BuildURL(guildID, region, EndpointGuildInfo)
	if err != nil {
		return nil, err
	}
	return doRequest[RawGuildPayload](ctx, c, url)
}

func (c *Client) SearchByNickname(ctx context.Context, src SourceDescriptor, nickname string) (*SearchPayload, error) {
	url, err := src.BuildURL(nickname, "", EndpointSearch)
	if err != nil {
		return nil, err
	}
	return doRequest[SearchPayload](ctx, c, url)
}

func doRequest[T any](ctx context.Context, c *Client, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(c.userAgent)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode upstream body: %w", err)
	}
	return &result, nil
}
