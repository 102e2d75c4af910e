package grpc

import (
	mrwerror "github.com/msto63/mRW/foundation/core/error"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ErrorCodeTrailer carries the foundation error code next to the gRPC status
const ErrorCodeTrailer = "x-mrw-error-code"

// StatusCode maps a foundation error code to a gRPC status code
func StatusCode(code mrwerror.Code) codes.Code {
	switch {
	case code == mrwerror.CodeNotFound:
		return codes.NotFound
	case code.IsValidation():
		return codes.InvalidArgument
	case code == mrwerror.CodeTimeout:
		return codes.DeadlineExceeded
	case code == mrwerror.CodeRateLimited:
		return codes.ResourceExhausted
	case code == mrwerror.CodeServiceUnavailable, code == mrwerror.CodeConnectionFailed:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

func foundationCode(err error) string {
	if e, ok := mrwerror.As(err); ok && e.Code() != "" {
		return string(e.Code())
	}
	return ""
}

// ToStatus converts err into a gRPC status error
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(StatusCode(mrwerror.GetCode(err)), err.Error())
}

// FromStatus converts a gRPC error back into a foundation error. The code
// comes from the trailer when present, otherwise from the status code.
func FromStatus(err error, trailer metadata.MD) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	code := mrwerror.CodeInternal
	if v := trailer.Get(ErrorCodeTrailer); len(v) > 0 && mrwerror.Code(v[0]).IsValid() {
		code = mrwerror.Code(v[0])
	} else {
		switch st.Code() {
		case codes.InvalidArgument:
			code = mrwerror.CodeInvalidInput
		case codes.NotFound:
			code = mrwerror.CodeNotFound
		case codes.DeadlineExceeded:
			code = mrwerror.CodeTimeout
		case codes.ResourceExhausted:
			code = mrwerror.CodeRateLimited
		case codes.Unavailable:
			code = mrwerror.CodeServiceUnavailable
		}
	}
	return mrwerror.New(st.Message()).
		WithCode(code).
		WithDetail("grpc_code", st.Code().String())
}
