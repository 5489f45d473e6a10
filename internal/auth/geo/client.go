package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/domain"
	"github.com/souvikghost/Souvik-Tech-Agency/pkg/constant"
)

const DefaultTimeout = 3 * time.Second

// Client resolves IP addresses against an ipapi.co-compatible lookup
// service. Lookups are best-effort: any transport or decode failure yields
// the unknown record, never an error.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type lookupResponse struct {
	City        string   `json:"city"`
	Region      string   `json:"region"`
	CountryName string   `json:"country_name"`
	CountryCode string   `json:"country_code"`
	Postal      string   `json:"postal"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Timezone    string   `json:"timezone"`
	Org         string   `json:"org"`
	Error       bool     `json:"error"`
}

func (c *Client) Resolve(ctx context.Context, ip string) domain.GeoInfo {
	if isLocal(ip) {
		return Localhost()
	}

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Warn("geo lookup request build failed", "ip", ip, "error", err)
		return Unknown()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("geo lookup failed", "ip", ip, "error", err)
		return Unknown()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("geo lookup returned non-200", "ip", ip, "status", resp.StatusCode)
		return Unknown()
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn("geo lookup decode failed", "ip", ip, "error", err)
		return Unknown()
	}
	if body.Error {
		return Unknown()
	}

	return domain.GeoInfo{
		Country:     orUnknown(body.CountryName),
		CountryCode: orUnknown(body.CountryCode),
		Region:      orUnknown(body.Region),
		City:        orUnknown(body.City),
		Timezone:    orUnknown(body.Timezone),
		Org:         orUnknown(body.Org),
		Postal:      orUnknown(body.Postal),
		Latitude:    body.Latitude,
		Longitude:   body.Longitude,
	}
}

func isLocal(ip string) bool {
	return ip == "" || ip == constant.UnknownValue || ip == "::1" || ip == "127.0.0.1"
}

// Unknown is the fallback record used whenever a lookup cannot complete.
func Unknown() domain.GeoInfo {
	return domain.GeoInfo{
		Country:     constant.UnknownValue,
		CountryCode: constant.UnknownValue,
		Region:      constant.UnknownValue,
		City:        constant.UnknownValue,
		Timezone:    constant.UnknownValue,
		Org:         constant.UnknownValue,
		Postal:      constant.UnknownValue,
	}
}

// Localhost is the fixed record stored for loopback and unresolved
// addresses, which never hit the external service.
func Localhost() domain.GeoInfo {
	return domain.GeoInfo{
		Country:     "localhost",
		CountryCode: "localhost",
		Region:      "localhost",
		City:        "localhost",
		Timezone:    constant.UnknownValue,
		Org:         "localhost",
		Postal:      constant.UnknownValue,
	}
}

func orUnknown(v string) string {
	if v == "" {
		return constant.UnknownValue
	}
	return v
}
