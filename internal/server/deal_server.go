package server

import (
	"context"
	"fmt"
	"net/http"

	"dealdesk/internal/domain/entity"
	"dealdesk/internal/domain/service/deal"
	"dealdesk/pkg/errcodes"
	"dealdesk/pkg/httpx/reply"
	"dealdesk/pkg/httpx/req"
	"dealdesk/pkg/rest"
)

type dealService interface {
	CreateDeal(ctx context.Context, request deal.Request) (entity.DealSummary, error)
}

type DealServer struct {
	dealService dealService
}

func NewDealServer(dealService dealService) DealServer {
	return DealServer{
		dealService: dealService,
	}
}

func (s DealServer) postDeal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.DealRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	summary, err := s.dealService.CreateDeal(ctx, newDomainDealRequest(request))
	if err != nil {
		// Частичный успех: сделка уже существует в Битриксе, отдаём её id,
		// чтобы вызывающий мог повторить прикрепление строк.
		if pending, ok := deal.IsRowsPending(err); ok {
			reply.JSON(ctx, w, http.StatusInternalServerError, rest.Error{
				OK:      false,
				Code:    rest.ErrorCode(errcodes.RowsPending),
				Message: "Deal created, product rows pending",
				DealID:  pending.DealID,
			})

			return nil
		}

		return fmt.Errorf("dealService.CreateDeal: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDealResult(summary))

	return nil
}
