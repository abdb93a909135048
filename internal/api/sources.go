package api

import (
	"fmt"
	"net/url"
	"sort"
)

type QueryKind string

const (
	QueryByUID      QueryKind = "uid"
	QueryByNickname QueryKind = "nickname"
	QueryByGuildID  QueryKind = "guildID"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

const (
	EndpointAccount     = "account"
	EndpointPlayerStats = "playerStats"
	EndpointGuildInfo   = "guildInfo"
	EndpointSearch      = "search"
)

// SourceDescriptor describes one upstream stats provider: where it lives,
// which endpoints it exposes and how trustworthy it is. Descriptors are
// defined at process start and read-only afterwards.
type SourceDescriptor struct {
	Name        string
	BaseURL     string
	QueryKind   QueryKind
	Endpoints   map[string]string
	Reliability int
	Format      Format
}

// BuildURL assembles the request URL for one endpoint. Player endpoints
// address the identifier as uid, guild lookups as guildID and nickname
// search as nickname, all against the same GET base.
func (d SourceDescriptor) BuildURL(identifier, region, endpoint string) (string, error) {
	path, ok := d.Endpoints[endpoint]
	if !ok {
		return "", fmt.Errorf("source %s: unknown endpoint %q", d.Name, endpoint)
	}

	param := "uid"
	switch endpoint {
	case EndpointGuildInfo:
		param = "guildID"
	case EndpointSearch:
		param = "nickname"
	}

	q := url.Values{}
	q.Set(param, identifier)
	if region != "" {
		q.Set("region", region)
	}
	return d.BaseURL + path + "?" + q.Encode(), nil
}

func (d SourceDescriptor) HasEndpoint(endpoint string) bool {
	_, ok := d.Endpoints[endpoint]
	return ok
}

// Registry is the static, ordered list of upstream sources. Entry 0 is the
// primary; callers iterate in order and fall through on transport failure.
type Registry struct {
	sources []SourceDescriptor
}

func NewRegistry(sources ...SourceDescriptor) *Registry {
	if len(sources) == 0 {
		sources = defaultSources()
	}
	ordered := make([]SourceDescriptor, len(sources))
	copy(ordered, sources)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Reliability > ordered[j].Reliability
	})
	return &Registry{sources: ordered}
}

func (r *Registry) Sources() []SourceDescriptor {
	return r.sources
}

// SourcesWith returns the sources exposing the given endpoint, in priority order.
func (r *Registry) SourcesWith(endpoint string) []SourceDescriptor {
	var out []SourceDescriptor
	for _, src := range r.sources {
		if src.HasEndpoint(endpoint) {
			out = append(out, src)
		}
	}
	return out
}

func defaultSources() []SourceDescriptor {
	return []SourceDescriptor{
		{
			Name:      "ff-community",
			BaseURL:   "https://ff-community-api.vercel.app",
			QueryKind: QueryByUID,
			Endpoints: map[string]string{
				EndpointAccount:     "/api/v1/account",
				EndpointPlayerStats: "/api/v1/playerstats",
				EndpointGuildInfo:   "/api/v1/guildinfo",
				EndpointSearch:      "/api/v1/search",
			},
			Reliability: 90,
			Format:      FormatJSON,
		},
		{
			Name:      "ff-mirror",
			BaseURL:   "https://freefire-api.onrender.com",
			QueryKind: QueryByUID,
			Endpoints: map[string]string{
				EndpointAccount:     "/account",
				EndpointPlayerStats: "/stats",
				EndpointGuildInfo:   "/guild",
			},
			Reliability: 60,
			Format:      FormatJSON,
		},
	}
}
