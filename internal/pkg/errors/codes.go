package errors

import "google.golang.org/grpc/codes"

var (
	ErrStationNotFound = New(
		"STATION_NOT_FOUND",
		"station not found",
		codes.NotFound,
	)

	ErrLineNotFound = New(
		"LINE_NOT_FOUND",
		"line not found",
		codes.NotFound,
	)

	ErrTrainTypeNotFound = New(
		"TRAIN_TYPE_NOT_FOUND",
		"train type not found",
		codes.NotFound,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"internal server error",
		codes.Internal,
	)
)
