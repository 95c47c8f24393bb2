package errors

import (
	"encoding/json"

	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Keys of the google.protobuf.Struct detail attached to status errors
const (
	detailCodeKey = "code"
	detailMetaKey = "meta"
)

// ToGRPCError converts an error to a gRPC status error. Metadata travels as a
// google.protobuf.Struct detail so clients can read ids and field errors.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(contextCode(err).GRPCCode(), err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) == 0 {
		return st.Err()
	}

	detail, detailErr := metaDetail(customErr.Code, customErr.Meta)
	if detailErr != nil {
		return st.Err()
	}
	if withDetail, detailErr := st.WithDetails(detail); detailErr == nil {
		st = withDetail
	}
	return st.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		s, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		if meta := s.GetFields()[detailMetaKey].GetStructValue(); meta != nil {
			customErr.Meta = meta.AsMap()
		}
		break
	}

	return customErr
}

// metaDetail encodes metadata through JSON so typed values such as
// map[string][]string survive the trip into a Struct
func metaDetail(code Code, meta map[string]any) (*structpb.Struct, error) {
	raw, err := json.Marshal(map[string]any{
		detailCodeKey: code,
		detailMetaKey: meta,
	})
	if err != nil {
		return nil, err
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}
