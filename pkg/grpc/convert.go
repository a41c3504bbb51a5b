package grpc

import (
	"encoding/json"
	"fmt"

	z "github.com/Oudwins/zog"
	"google.golang.org/protobuf/types/known/structpb"
)

func okReply(fields map[string]any) (*structpb.Struct, error) {
	return reply(true, "OK", fields)
}

func failReply(message string) (*structpb.Struct, error) {
	return reply(false, message, nil)
}

func reply(success bool, message string, fields map[string]any) (*structpb.Struct, error) {
	out := map[string]any{
		"success": success,
		"message": message,
	}
	for k, v := range fields {
		plain, err := plainValue(v)
		if err != nil {
			return nil, err
		}
		out[k] = plain
	}
	return structpb.NewStruct(out)
}

// plainValue turns a Go value into the map/slice/scalar shape structpb
// accepts, following its JSON encoding.
func plainValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode reply: %w", err)
	}
	var plain any
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, fmt.Errorf("encode reply: %w", err)
	}
	return plain, nil
}

// decode copies a request Struct into dst by its json tags.
func decode(in *structpb.Struct, dst any) error {
	data, err := json.Marshal(in.AsMap())
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func validationMessage(issues any) string {
	return fmt.Sprintf("validation error: %v", issues)
}

func validatePatientID(patientID *string) z.ZogIssueList {
	var patientIDValidator = z.String().Trim().Min(1).Required()
	return patientIDValidator.Validate(patientID)
}
