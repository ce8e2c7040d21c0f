package threecommas

import (
	"context"
	"net/http"
	"strconv"
)

// Family names an endpoint group that shares a path prefix.
type Family string

// Endpoint families.
const (
	FamilyAccounts    Family = "accounts"
	FamilyBots        Family = "bots"
	FamilyDeals       Family = "deals"
	FamilyGridBots    Family = "grid_bots"
	FamilyMarketplace Family = "marketplace"
	FamilyUsers       Family = "users"
)

const apiPrefix = "/public/api/ver1/"

// Prefix returns the path prefix of the family.
func (f Family) Prefix() string {
	return apiPrefix + string(f)
}

// defaultEncodings lists the body encoding per family. Bot and grid bot
// payloads carry nested arrays (pairs, strategy_list) and go out as JSON;
// the remaining families send multipart forms.
func defaultEncodings() map[Family]BodyEncoding {
	return map[Family]BodyEncoding{
		FamilyAccounts:    BodyMultipart,
		FamilyBots:        BodyJSON,
		FamilyDeals:       BodyMultipart,
		FamilyGridBots:    BodyJSON,
		FamilyMarketplace: BodyMultipart,
		FamilyUsers:       BodyMultipart,
	}
}

// Service binds a Client to one endpoint family: every request path is the
// family prefix followed by the request suffix.
type Service struct {
	client   *Client
	family   Family
	prefix   string
	encoding BodyEncoding
}

func (c *Client) service(f Family) *Service {
	return &Service{
		client:   c,
		family:   f,
		prefix:   f.Prefix(),
		encoding: c.encodings[f],
	}
}

// Prefix returns the path prefix shared by the service's endpoints.
func (s *Service) Prefix() string {
	return s.prefix
}

// BodyEncoding returns the encoding used for request payloads.
func (s *Service) BodyEncoding() BodyEncoding {
	return s.encoding
}

// Do dispatches req under the service prefix. It is the escape hatch for
// endpoints without a typed method.
func (s *Service) Do(ctx context.Context, req Request, dst any) error {
	return s.client.dispatch(ctx, string(s.family), s.prefix, req, dst)
}

func (s *Service) get(ctx context.Context, path string, query Params, dst any) error {
	return s.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, dst)
}

func (s *Service) send(ctx context.Context, method, path string, body Params, dst any) error {
	return s.Do(ctx, Request{Method: method, Path: path, Body: NewBody(s.encoding, body)}, dst)
}

func idPath(id int64, action string) string {
	p := "/" + strconv.FormatInt(id, 10)
	if action != "" {
		p += "/" + action
	}
	return p
}

// Ptr returns a pointer to v. It is a convenience for optional fields.
func Ptr[T any](v T) *T {
	return &v
}

func addNonZero[T comparable](p Params, key string, v T) Params {
	var zero T
	if v == zero {
		return p
	}
	return p.Add(key, v)
}

func addPtr[T any](p Params, key string, v *T) Params {
	if v == nil {
		return p
	}
	return p.Add(key, *v)
}

// nonNil turns a nil slice into an empty one so a required list is sent as
// empty instead of being rejected as nil.
func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

func addSlice[T any](p Params, key string, v []T) Params {
	if len(v) == 0 {
		return p
	}
	return p.Add(key, v)
}
