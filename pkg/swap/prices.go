// Package swap converts amounts between currencies using a USD price feed.
package swap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/avast/retry-go/v4"
	json "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// DefaultPriceFeedURL serves the feed the calculator was built against.
const DefaultPriceFeedURL = "https://interview.switcheo.com/prices.json"

// PriceRecord is one entry of the feed: the USD price of Currency at Date.
type PriceRecord struct {
	Currency string    `json:"currency"`
	Price    float64   `json:"price"`
	Date     time.Time `json:"date"`
}

const priceFeedSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["currency", "date", "price"],
		"properties": {
			"currency": {"type": "string", "minLength": 1},
			"date": {"type": "string", "format": "date-time"},
			"price": {"type": "number", "minimum": 0}
		}
	}
}`

var feedSchema = mustCompileFeedSchema()

// formats such as date-time are only asserted when AssertFormat is set
func mustCompileFeedSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource("prices.schema.json", bytes.NewReader([]byte(priceFeedSchema))); err != nil {
		panic(err)
	}
	return compiler.MustCompile("prices.schema.json")
}

// ParsePrices validates a raw feed document and decodes it.
func ParsePrices(data []byte) ([]PriceRecord, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "price feed is not valid json")
	}
	if err := feedSchema.Validate(doc); err != nil {
		return nil, errors.Wrap(err, "price feed failed validation")
	}
	var records []PriceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "unable to decode price feed")
	}
	return records, nil
}

// FetchOption tunes FetchPrices.
type FetchOption func(*fetchOptions)

type fetchOptions struct {
	client   *http.Client
	attempts uint
	delay    time.Duration
}

func WithHTTPClient(c *http.Client) FetchOption {
	return func(o *fetchOptions) {
		o.client = c
	}
}

func WithRetry(attempts uint, delay time.Duration) FetchOption {
	return func(o *fetchOptions) {
		o.attempts = attempts
		o.delay = delay
	}
}

// FetchPrices downloads and validates the feed at url. Transport failures and
// 5xx responses are retried with exponential backoff; any other failure is
// returned immediately.
func FetchPrices(ctx context.Context, url string, opts ...FetchOption) ([]PriceRecord, error) {
	o := &fetchOptions{
		client:   &http.Client{Timeout: 10 * time.Second},
		attempts: 3,
		delay:    500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(o)
	}

	var body []byte
	err := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return retry.Unrecoverable(err)
		}
		resp, err := o.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 500 {
			return fmt.Errorf("price feed returned %s", resp.Status)
		}
		if resp.StatusCode != http.StatusOK {
			return retry.Unrecoverable(fmt.Errorf("price feed returned %s", resp.Status))
		}
		body, err = io.ReadAll(resp.Body)
		return err
	},
		retry.Context(ctx),
		retry.Attempts(o.attempts),
		retry.Delay(o.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().Err(err).Uint("attempt", n+1).Msg("retrying price feed")
		}))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to fetch prices from %s", url)
	}
	return ParsePrices(body)
}

// Table holds the latest known USD price for each currency.
type Table struct {
	prices map[string]PriceRecord
}

// LatestPrices builds a Table keeping, for every currency, the record with
// the latest date. Equal dates keep the record seen first.
func LatestPrices(records []PriceRecord) *Table {
	t := &Table{prices: make(map[string]PriceRecord)}
	for _, r := range records {
		if cur, ok := t.prices[r.Currency]; !ok || r.Date.After(cur.Date) {
			t.prices[r.Currency] = r
		}
	}
	return t
}

// Currencies returns the known currencies in sorted order.
func (t *Table) Currencies() []string {
	c := make([]string, 0, len(t.prices))
	for k := range t.prices {
		c = append(c, k)
	}
	sort.Strings(c)
	return c
}

// Price returns the latest record for currency.
func (t *Table) Price(currency string) (PriceRecord, bool) {
	p, ok := t.prices[currency]
	return p, ok
}
