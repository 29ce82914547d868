package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"BharatYield/internal/logger"
)

const forecastDays = 5

var ErrUnknownLocation = errors.New("unknown location")

type Current struct {
	TemperatureC    float64 `json:"temperature_c"`
	HumidityPercent float64 `json:"humidity_percent"`
	WindSpeedKmh    float64 `json:"wind_speed_kmh"`
	PrecipitationMM float64 `json:"precipitation_mm"`
	Condition       string  `json:"condition"`
}

type Day struct {
	Date            string  `json:"date"`
	Weekday         string  `json:"weekday"`
	HighC           float64 `json:"high_c"`
	LowC            float64 `json:"low_c"`
	PrecipitationMM float64 `json:"precipitation_mm"`
	Condition       string  `json:"condition"`
}

type Report struct {
	Location string  `json:"location"`
	Current  Current `json:"current"`
	Forecast []Day   `json:"forecast"`
	Fallback bool    `json:"fallback"`
}

// FallbackReport is served when the provider cannot be reached.
func FallbackReport(location string) *Report {
	return &Report{Location: location, Current: Current{Condition: "unavailable"}, Forecast: []Day{}, Fallback: true}
}

func condition(precipitation float64) string {
	if precipitation > 0 {
		return "rainy"
	}
	return "sunny"
}

type openMeteoResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		Humidity      float64 `json:"relative_humidity_2m"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		Precipitation float64 `json:"precipitation"`
	} `json:"current"`
	Daily struct {
		Time             []string  `json:"time"`
		TemperatureMax   []float64 `json:"temperature_2m_max"`
		TemperatureMin   []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Cache      Cache
	TTL        time.Duration
	Log        *zap.Logger
}

func NewClient(baseURL string, cache Cache, ttl time.Duration, log *zap.Logger) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Cache:      cache,
		TTL:        ttl,
		Log:        logger.OrNop(log),
	}
}

// Fetch returns current conditions and a five day forecast for a known
// location, served from cache when possible.
func (c *Client) Fetch(ctx context.Context, location string) (*Report, error) {
	coords, ok := Lookup(location)
	if !ok {
		return nil, ErrUnknownLocation
	}
	log := logger.OrNop(c.Log)

	if c.Cache != nil {
		if b, err := c.Cache.Get(ctx, location); err == nil {
			var rep Report
			if err := json.Unmarshal(b, &rep); err == nil {
				return &rep, nil
			}
		} else if !errors.Is(err, ErrCacheMiss) {
			log.Warn("weather cache read failed", zap.Error(err))
		}
	}

	rep, err := c.fetchRemote(ctx, location, coords)
	if err != nil {
		return nil, err
	}

	if c.Cache != nil {
		if b, err := json.Marshal(rep); err == nil {
			if err := c.Cache.Set(ctx, location, b, c.TTL); err != nil {
				log.Warn("weather cache write failed", zap.Error(err))
			}
		}
	}
	return rep, nil
}

func (c *Client) fetchRemote(ctx context.Context, location string, coords Coordinates) (*Report, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	q.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,precipitation")
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum")
	q.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("weather provider returned %d: %s", res.StatusCode, body)
	}

	var data openMeteoResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	rep := &Report{
		Location: location,
		Current: Current{
			TemperatureC:    data.Current.Temperature,
			HumidityPercent: data.Current.Humidity,
			WindSpeedKmh:    data.Current.WindSpeed,
			PrecipitationMM: data.Current.Precipitation,
			Condition:       condition(data.Current.Precipitation),
		},
		Forecast: make([]Day, 0, forecastDays),
	}
	d := data.Daily
	for i := 0; i < len(d.Time) && i < forecastDays; i++ {
		if i >= len(d.TemperatureMax) || i >= len(d.TemperatureMin) || i >= len(d.PrecipitationSum) {
			break
		}
		day := Day{
			Date:            d.Time[i],
			HighC:           d.TemperatureMax[i],
			LowC:            d.TemperatureMin[i],
			PrecipitationMM: d.PrecipitationSum[i],
			Condition:       condition(d.PrecipitationSum[i]),
		}
		if t, err := time.Parse("2006-01-02", d.Time[i]); err == nil {
			day.Weekday = t.Format("Mon")
		}
		rep.Forecast = append(rep.Forecast, day)
	}
	return rep, nil
}
