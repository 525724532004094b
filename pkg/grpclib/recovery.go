package grpclib

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RecoveryHandlerFunc converts a recovered panic into an Internal status
func RecoveryHandlerFunc(p interface{}) error {
	return status.Error(codes.Internal, fmt.Sprintf("panic: %v", p))
}
