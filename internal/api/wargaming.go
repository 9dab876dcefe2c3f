package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"wot-tracker/internal/config"

	"github.com/valyala/fasthttp"
)

// WargamingClient talks to the Wargaming public API. All methods return the
// typed "data" payload of the response envelope; an envelope with status
// "error" becomes a Go error carrying the API's message.
type WargamingClient struct {
	appID   string
	baseURL string
	client  *fasthttp.Client
}

func NewWargamingClient(cfg *config.Config) *WargamingClient {
	return &WargamingClient{
		appID:   cfg.WGAppID,
		baseURL: cfg.WGBaseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// AccountList resolves a nickname search to account candidates.
func (c *WargamingClient) AccountList(ctx context.Context, search string) ([]AccountListEntry, error) {
	u := fmt.Sprintf("%s/wot/account/list/?application_id=%s&search=%s",
		c.baseURL, c.appID, url.QueryEscape(search))
	return doRequest[[]AccountListEntry](ctx, c, u)
}

// AccountInfo fetches account-level statistics. The API keys the data map by
// the requested account id.
func (c *WargamingClient) AccountInfo(ctx context.Context, accountID int64) (*AccountInfo, error) {
	u := fmt.Sprintf("%s/wot/account/info/?application_id=%s&account_id=%d",
		c.baseURL, c.appID, accountID)
	data, err := doRequest[map[string]*AccountInfo](ctx, c, u)
	if err != nil {
		return nil, err
	}
	info := data[fmt.Sprint(accountID)]
	if info == nil {
		return nil, fmt.Errorf("account %d not found", accountID)
	}
	return info, nil
}

// AccountTanks fetches the per-vehicle battle counts for an account.
func (c *WargamingClient) AccountTanks(ctx context.Context, accountID int64) ([]AccountTank, error) {
	u := fmt.Sprintf("%s/wot/account/tanks/?application_id=%s&account_id=%d",
		c.baseURL, c.appID, accountID)
	data, err := doRequest[map[string][]AccountTank](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return data[fmt.Sprint(accountID)], nil
}

func doRequest[T any](ctx context.Context, client *WargamingClient, url string) (T, error) {
	var zero T

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return zero, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return zero, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return zero, fmt.Errorf("API error: %d", resp.StatusCode())
	}

	var envelope struct {
		Status string          `json:"status"`
		Error  *APIError       `json:"error"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return zero, err
	}
	if envelope.Status != "ok" {
		if envelope.Error != nil {
			return zero, envelope.Error
		}
		return zero, fmt.Errorf("API status %q", envelope.Status)
	}

	var result T
	if err := json.Unmarshal(envelope.Data, &result); err != nil {
		return zero, err
	}
	return result, nil
}

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wargaming api: %s (code %d)", e.Message, e.Code)
}

type AccountListEntry struct {
	Nickname  string `json:"nickname"`
	AccountID int64  `json:"account_id"`
}

type AccountInfo struct {
	Nickname       string `json:"nickname"`
	AccountID      int64  `json:"account_id"`
	ClanID         int64  `json:"clan_id"`
	GlobalRating   int    `json:"global_rating"`
	LastBattleTime int64  `json:"last_battle_time"`
	Statistics     struct {
		All struct {
			Battles              int     `json:"battles"`
			Wins                 int     `json:"wins"`
			Losses               int     `json:"losses"`
			Draws                int     `json:"draws"`
			DamageDealt          int64   `json:"damage_dealt"`
			DamageReceived       int64   `json:"damage_received"`
			XP                   int64   `json:"xp"`
			Frags                int     `json:"frags"`
			MaxFrags             int     `json:"max_frags"`
			Spotted              int     `json:"spotted"`
			SurvivedBattles      int     `json:"survived_battles"`
			HitsPercents         float64 `json:"hits_percents"`
			AvgDamageBlocked     float64 `json:"avg_damage_blocked"`
			CapturePoints        int     `json:"capture_points"`
			DroppedCapturePoints int     `json:"dropped_capture_points"`
		} `json:"all"`
	} `json:"statistics"`
}

type AccountTank struct {
	TankID        int64 `json:"tank_id"`
	MarkOfMastery int   `json:"mark_of_mastery"`
	Statistics    struct {
		Battles int `json:"battles"`
		Wins    int `json:"wins"`
	} `json:"statistics"`
}
