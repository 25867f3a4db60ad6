// Package client — клиент API deal-desk для терминального UI: поиск по
// каталогу с кэшем выдачи и отправка собранной сделки. Рассчитан на
// однопоточное использование из цикла интерфейса.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"dealdesk/internal/domain"
	"dealdesk/pkg/rest"
	"dealdesk/pkg/ttlcache"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	DefaultTTL    = 5 * time.Minute
	SweepInterval = time.Minute

	msgSearchFailed     = "Search failed"
	msgCreateDealFailed = "Failed to create deal"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *ttlcache.Cache[[]rest.Product]

	loading   bool
	lastError string
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		cache:      ttlcache.New[[]rest.Product](DefaultTTL),
	}
}

// CacheKey — чистая функция ключа кэша: категория плюс нормализованный
// запрос.
func CacheKey(category domain.Category, query string) string {
	return category.String() + ":" + strings.ToLower(strings.TrimSpace(query))
}

// Search ищет товары категории. Пустой запрос не ходит в сеть, попадание в
// кэш тоже. Сетевая ошибка оседает в Err(), выдача деградирует до пустой.
func (c *Client) Search(ctx context.Context, category domain.Category, query string) []rest.Product {
	if strings.TrimSpace(query) == "" {
		return []rest.Product{}
	}

	key := CacheKey(category, query)

	if cached, ok := c.cache.Get(key); ok {
		return cached
	}

	c.loading = true
	c.lastError = ""

	defer func() { c.loading = false }()

	endpoint := fmt.Sprintf("%s/api/catalog/%s/search?q=%s", c.baseURL, category, url.QueryEscape(query))

	var products []rest.Product

	if err := c.get(ctx, endpoint, &products); err != nil {
		c.lastError = err.Error()
		return []rest.Product{}
	}

	c.cache.SetDefault(key, products)

	return products
}

// CreateDeal отправляет сделку. При неуспешном статусе возвращает nil и
// сохраняет сообщение сервера (или общее) в Err().
func (c *Client) CreateDeal(ctx context.Context, request rest.DealRequest) *rest.DealResult {
	c.loading = true
	c.lastError = ""

	defer func() { c.loading = false }()

	b, err := json.Marshal(request)
	if err != nil {
		c.lastError = err.Error()
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/deals", strings.NewReader(string(b)))
	if err != nil {
		c.lastError = err.Error()
		return nil
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.lastError = msgCreateDealFailed
		return nil
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.lastError = msgCreateDealFailed
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		var restErr rest.Error

		if err := json.Unmarshal(respBytes, &restErr); err == nil && restErr.Message != "" {
			c.lastError = restErr.Message
		} else {
			c.lastError = msgCreateDealFailed
		}

		return nil
	}

	var result rest.DealResult

	if err := json.Unmarshal(respBytes, &result); err != nil {
		c.lastError = msgCreateDealFailed
		return nil
	}

	return &result
}

// Loading — флаг "идёт запрос" для привязки интерфейса.
func (c *Client) Loading() bool {
	return c.loading
}

// Err — последняя ошибка, пустая строка если её нет.
func (c *Client) Err() string {
	return c.lastError
}

func (c *Client) ClearError() {
	c.lastError = ""
}

func (c *Client) ClearCache() {
	c.cache.Clear()
}

func (c *Client) get(ctx context.Context, endpoint string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", msgSearchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %s", msgSearchFailed, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
