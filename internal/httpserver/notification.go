package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"notification-enricher/internal/enrich"
	"notification-enricher/internal/middleware"
	"notification-enricher/internal/model"
	pkgErrors "notification-enricher/pkg/errors"
	"notification-enricher/pkg/response"

	"github.com/gin-gonic/gin"
)

var enrichErrorMapping = response.ErrorMapping{
	enrich.ErrInvalidRawRecord: pkgErrors.NewHTTPError(400, "raw record has no id", http.StatusBadRequest),
}

type enrichBatchReq struct {
	Records []model.RawSubscriptionRecord `json:"records" binding:"required"`
}

// enrichOne handles single-record enrichment
// @Summary Enrich one notification record
// @Description Classify one raw subscription record and project it into the flat UI-ready shape
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param record body model.RawSubscriptionRecord true "Raw subscription record"
// @Success 200 {object} response.Resp{data=model.NotificationRecord}
// @Failure 400 {object} response.Resp "Record has no id or malformed body"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Router /notifications/enrich [post]
func (srv *HTTPServer) enrichOne(c *gin.Context) {
	ctx := c.Request.Context()

	var raw model.RawSubscriptionRecord
	if err := c.ShouldBindJSON(&raw); err != nil {
		srv.logger.Warnf(ctx, "internal.httpserver.enrichOne.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewValidationError(response.ValidationErrorCode, "body", "invalid request body"))
		return
	}

	rec, err := srv.enrichUC.Enrich(ctx, raw)
	if err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.enrichOne.Enrich: %v", err)
		response.ErrorWithMap(c, err, enrichErrorMapping)
		return
	}

	response.OK(c, rec)
}

// enrichBatch handles batch enrichment
// @Summary Enrich a batch of notification records
// @Description Enrich records independently, preserving input order
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param records body enrichBatchReq true "Raw subscription records"
// @Success 200 {object} response.Resp{data=[]model.NotificationRecord}
// @Failure 400 {object} response.Resp "A record has no id or malformed body"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Router /notifications/enrich-batch [post]
func (srv *HTTPServer) enrichBatch(c *gin.Context) {
	ctx := c.Request.Context()

	var req enrichBatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		srv.logger.Warnf(ctx, "internal.httpserver.enrichBatch.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewValidationError(response.ValidationErrorCode, "body", "invalid request body"))
		return
	}

	// Reject records without identity up front so the caller sees every
	// offending index, not just the first.
	collector := pkgErrors.NewValidationErrorCollector()
	for i, raw := range req.Records {
		if raw.ID == "" {
			collector.Add(pkgErrors.NewValidationError(response.ValidationErrorCode, fmt.Sprintf("records[%d].id", i), "id is required"))
		}
	}
	if collector.HasError() {
		response.Error(c, collector)
		return
	}

	srv.logger.Infof(ctx, "internal.httpserver.enrichBatch: %d records from user %s", len(req.Records), middleware.UserIDFromContext(ctx))

	recs, err := srv.enrichUC.EnrichBatch(ctx, req.Records)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Client went away mid-batch; nothing left to answer.
			c.Abort()
			return
		}
		srv.logger.Errorf(ctx, "internal.httpserver.enrichBatch.EnrichBatch: %v", err)
		response.ErrorWithMap(c, err, enrichErrorMapping)
		return
	}

	response.OK(c, recs)
}

// notificationTypes lists the classification table
// @Summary List notification types
// @Description Expose the classification table keyed by entity code
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Resp{data=map[string]model.TypeDescriptor}
// @Failure 401 {object} response.Resp "Unauthorized"
// @Router /notification-types [get]
func (srv *HTTPServer) notificationTypes(c *gin.Context) {
	response.OK(c, srv.enrichUC.Types(c.Request.Context()))
}
