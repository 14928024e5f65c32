package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCErrorResponse переводит ошибку usecase в статус gRPC.
func GRPCErrorResponse(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	var validationErr *e.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return status.Error(codes.InvalidArgument, validationErr.Error())
	case errors.Is(err, e.ErrProductNotFound),
		errors.Is(err, e.ErrCategoryNotFound),
		errors.Is(err, e.ErrRestaurantNotFound),
		errors.Is(err, e.ErrOrderNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, e.ErrStatusBadRequest),
		errors.Is(err, e.ErrMissingFields),
		errors.Is(err, e.ErrInvalidCoordinates):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, e.ErrBackendUnavailable):
		return status.Error(codes.Unavailable, e.ErrBackendUnavailable.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}

// unaryInterceptor логирует вызов и приводит ошибку обработчика к статусу gRPC.
func unaryInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		resp, err := handler(ctx, req)
		if err != nil {
			log.Errorf(err, "%s failed after %s", info.FullMethod, time.Since(start))
			return nil, GRPCErrorResponse(err)
		}

		log.Debugf("%s done in %s", info.FullMethod, time.Since(start))
		return resp, nil
	}
}
