// Package bitrix — клиент вебхука Bitrix24 CRM. Один исходящий вызов на
// обращение, без ретраев; секрет вебхука зашит в базовом URL.
package bitrix

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"dealdesk/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	MessageHealthOK         = "Bitrix24 API is healthy"
	MessageUnknownError     = "Unknown Bitrix24 error"
	MessageConnectionFailed = "Failed to connect to Bitrix24"
)

type Client struct {
	webhookURL string
	httpClient *http.Client
}

func NewClient(webhookURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		webhookURL: strings.TrimSuffix(webhookURL, "/"),
		httpClient: httpClient,
	}
}

// call делает один POST на метод вебхука и декодирует result в dest.
// Ошибка конверта Битрикса (поле error) превращается в UpstreamFailure.
func (c *Client) call(ctx context.Context, method string, request any, dest any) error {
	start := time.Now()

	err := c.doCall(ctx, method, request, dest)

	observeCall(method, time.Since(start), err)

	return err
}

func (c *Client) doCall(ctx context.Context, method string, request any, dest any) error {
	body := io.Reader(http.NoBody)

	if request != nil {
		b, err := json.Marshal(request)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}

		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL+"/"+method, body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure.NewInternalServerError(
			fmt.Errorf("httpClient.Do: %w", err).Error(),
			failure.WithCode(errcodes.UpstreamFailure),
			failure.WithDescription(MessageConnectionFailed),
		)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("io.ReadAll: %w", err)
	}

	var env envelope

	if err := json.Unmarshal(respBytes, &env); err != nil {
		return upstreamError(fmt.Errorf("json.Unmarshal: %w", err), MessageUnknownError)
	}

	if env.Error != "" {
		message := env.ErrorDescription
		if message == "" {
			message = MessageUnknownError
		}

		return failure.NewInternalServerError(
			fmt.Sprintf("bitrix %s: %s", method, env.Error),
			failure.WithCode(errcodes.UpstreamFailure),
			failure.WithDescription(message),
		)
	}

	if resp.StatusCode != http.StatusOK {
		return upstreamError(fmt.Errorf("bitrix %s: status %d", method, resp.StatusCode), MessageUnknownError)
	}

	if dest != nil {
		if err := json.Unmarshal(respBytes, dest); err != nil {
			return upstreamError(fmt.Errorf("json.Unmarshal result: %w", err), MessageUnknownError)
		}
	}

	return nil
}

func upstreamError(err error, description string) error {
	return failure.NewInternalServerError(
		err.Error(),
		failure.WithCode(errcodes.UpstreamFailure),
		failure.WithDescription(description),
	)
}
