// Package health — проба живости Битрикса одним вызовом crm.status.list.
package health

import (
	"context"

	"git.appkode.ru/pub/go/failure"

	"dealdesk/internal/domain/entity"
	"dealdesk/internal/infrastructure/bitrix"
)

type statusLister interface {
	StatusList(ctx context.Context) error
}

type Service struct {
	bitrix statusLister
}

func NewService(bitrix statusLister) *Service {
	return &Service{bitrix: bitrix}
}

// Check никогда не возвращает ошибку: любой исход укладывается в статус.
func (s *Service) Check(ctx context.Context) entity.HealthStatus {
	if err := s.bitrix.StatusList(ctx); err != nil {
		message := failure.Description(err)
		if message == "" {
			message = bitrix.MessageConnectionFailed
		}

		return entity.HealthStatus{OK: false, Message: message}
	}

	return entity.HealthStatus{OK: true, Message: bitrix.MessageHealthOK}
}
