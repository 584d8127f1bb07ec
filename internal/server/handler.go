package server

import (
	"context"

	snowflakev1 "github.com/driftlab/snowflaked/api/gen/go/snowflake/v1"
	"github.com/driftlab/snowflaked/internal/common/errors"
	"github.com/driftlab/snowflaked/internal/generator"
	"github.com/driftlab/snowflaked/internal/observability"
)

type Handler struct {
	snowflakev1.UnimplementedSnowflakeServiceServer
	gen     *generator.Generator
	metrics *observability.Metrics
}

func NewHandler(gen *generator.Generator, metrics *observability.Metrics) *Handler {
	return &Handler{
		gen:     gen,
		metrics: metrics,
	}
}

func (h *Handler) GetId(ctx context.Context, req *snowflakev1.GetIdRequest) (*snowflakev1.GetIdResponse, error) {
	id, err := h.gen.Generate()
	if err != nil {
		if h.metrics != nil && errors.IsClockMovedBackwards(err) {
			h.metrics.RecordClockBackwards()
		}
		return nil, errors.ToGRPCError(err)
	}

	if h.metrics != nil {
		h.metrics.RecordIDIssued()
	}
	return &snowflakev1.GetIdResponse{Id: id}, nil
}

func (h *Handler) GetWorkerId(ctx context.Context, req *snowflakev1.GetWorkerIdRequest) (*snowflakev1.GetWorkerIdResponse, error) {
	return &snowflakev1.GetWorkerIdResponse{WorkerId: h.gen.WorkerID()}, nil
}

func (h *Handler) GetTimestamp(ctx context.Context, req *snowflakev1.GetTimestampRequest) (*snowflakev1.GetTimestampResponse, error) {
	return &snowflakev1.GetTimestampResponse{TimestampMs: h.gen.Timestamp()}, nil
}

func (h *Handler) GetDatacenterId(ctx context.Context, req *snowflakev1.GetDatacenterIdRequest) (*snowflakev1.GetDatacenterIdResponse, error) {
	return &snowflakev1.GetDatacenterIdResponse{DatacenterId: h.gen.DatacenterID()}, nil
}
