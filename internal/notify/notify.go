// Package notify delivers wager confirmations and settlement summaries to
// the bot gateway, which renders and forwards them to users. Delivery is
// best-effort: a failure is logged and retried a few times, and never rolls
// back the transaction that produced the event.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/zinlatt/betmart/internal/config"
	"github.com/zinlatt/betmart/internal/service/settlementservice"
	"github.com/zinlatt/betmart/pkg/clients"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type Service struct {
	url        string
	client     clients.HTTPClientI
	workerPool WorkerPoolI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:        cfg.NotifyAddress,
		client:     client,
		workerPool: NewWorkerPool(10),
	}
}

type WagerConfirmation struct {
	ExternalID int64    `json:"externalId"`
	Session    string   `json:"session"`
	Numbers    []string `json:"numbers"`
	FaceTotal  int64    `json:"faceTotal"`
	Debited    int64    `json:"debited"`
	NewBalance int64    `json:"newBalance"`
}

type settlementNotice struct {
	ExternalID  int64    `json:"externalId"`
	GameType    string   `json:"gameType"`
	Session     string   `json:"session"`
	WinNumber   string   `json:"winNumber"`
	WinNumbers  []string `json:"winNumbers"`
	LoseNumbers []string `json:"loseNumbers"`
	TotalPayout int64    `json:"totalPayout"`
}

// WagerAccepted queues one confirmation message.
func (s *Service) WagerAccepted(confirmation WagerConfirmation) {
	err := s.workerPool.AddTask(context.Background(), func() error {
		return s.post("/notify/wager", confirmation)
	})
	if err != nil {
		zap.L().Error("can't queue wager confirmation", zap.Error(err))
	}
}

// SettlementPublished fans one notice per account out through the pool.
func (s *Service) SettlementPublished(gameType, session, winNumber string, summaries []settlementservice.AccountSummary) {
	var g errgroup.Group
	for _, summary := range summaries {
		notice := settlementNotice{
			ExternalID:  summary.ExternalID,
			GameType:    gameType,
			Session:     session,
			WinNumber:   winNumber,
			WinNumbers:  summary.WinNumbers,
			LoseNumbers: summary.LoseNumbers,
			TotalPayout: summary.TotalPayout,
		}
		g.Go(func() error {
			return s.workerPool.AddTask(context.Background(), func() error {
				return s.post("/notify/settlement", notice)
			})
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("can't queue settlement notices", zap.Error(err))
	}
}

func (s *Service) post(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("can't marshal notification: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequest(http.MethodPost, s.url+path, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.client.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode < http.StatusMultipleChoices {
				return nil
			}
			lastErr = fmt.Errorf("gateway returned status %d", resp.StatusCode)
		} else {
			lastErr = err
		}

		if attempt < maxRetries {
			time.Sleep(retryInterval * time.Duration(attempt))
		}
	}

	zap.L().Warn("notification dropped after retries",
		zap.String("path", path),
		zap.Error(lastErr),
	)
	return lastErr
}

func (s *Service) Close() {
	s.workerPool.Close()
}
