package server

import (
	"encoding/json"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/msto63/mRW/foundation/core/errors"
	"github.com/msto63/mRW/internal/history"
	"github.com/msto63/mRW/internal/tools"
)

// ToolList is the ListTools response
type ToolList struct {
	Tools      []*tools.Tool    `json:"tools"`
	Categories []tools.Category `json:"categories"`
}

// HistoryList is the ListHistory response
type HistoryList struct {
	Entries []*history.Entry `json:"entries"`
}

// toStruct encodes v through its JSON form
func toStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleTools, "encode", err)
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(data, s); err != nil {
		return nil, errors.OperationFailed(errors.ModuleTools, "encode", err)
	}
	return s, nil
}

// fromStruct decodes s into v through its JSON form
func fromStruct(s *structpb.Struct, v interface{}) error {
	data, err := protojson.Marshal(s)
	if err != nil {
		return errors.OperationFailed(errors.ModuleTools, "decode", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.OperationFailed(errors.ModuleTools, "decode", err)
	}
	return nil
}

// resultToStruct encodes a result with normalised field values
func resultToStruct(res *tools.Result) (*structpb.Struct, error) {
	fields := make([]interface{}, len(res.Fields))
	for i, f := range res.Fields {
		fields[i] = map[string]interface{}{
			"key":   f.Key,
			"label": f.Label,
			"value": tools.Normalize(f.Value),
		}
	}
	s, err := structpb.NewStruct(map[string]interface{}{
		"tool":    res.Tool,
		"summary": res.Summary,
		"fields":  fields,
	})
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleTools, "encode_result", err)
	}
	return s, nil
}

// stringField returns a string member of s, formatting numbers and bools
func stringField(s *structpb.Struct, name string) string {
	v, ok := s.GetFields()[name]
	if !ok {
		return ""
	}
	return valueString(v)
}

func valueString(v *structpb.Value) string {
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(k.NumberValue, 'f', -1, 64)
	case *structpb.Value_BoolValue:
		return strconv.FormatBool(k.BoolValue)
	default:
		return ""
	}
}

// paramsField reads a {"name": value} member as tool parameters
func paramsField(s *structpb.Struct, name string) tools.Params {
	p := tools.Params{}
	for k, v := range s.GetFields()[name].GetStructValue().GetFields() {
		p[k] = valueString(v)
	}
	return p
}
