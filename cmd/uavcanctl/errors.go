package main

import (
	"errors"

	"github.com/canflux/uavcan/internal/codecerr"
	"github.com/canflux/uavcan/internal/metrics"
)

// classifyCodecErr maps a codecerr sentinel to its metrics label.
func classifyCodecErr(err error) string {
	switch {
	case errors.Is(err, codecerr.ErrStructureExhausted):
		return metrics.ErrStructureExhausted
	case errors.Is(err, codecerr.ErrNotFinished):
		return metrics.ErrNotFinished
	case errors.Is(err, codecerr.ErrLengthOverflow):
		return metrics.ErrLengthOverflow
	case errors.Is(err, codecerr.ErrWrongTypeId):
		return metrics.ErrWrongTypeId
	default:
		return "other"
	}
}
