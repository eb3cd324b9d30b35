package dto

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// ExecuteArgs are the loosely typed arguments of an execution request.
// Agents send numbers as floats or strings, and arrays as lists or
// comma separated strings.
type ExecuteArgs struct {
	AlgorithmType string `json:"algorithm_type" mapstructure:"algorithm_type"`
	Array         []int  `json:"array" mapstructure:"array"`
	SearchTarget  *int   `json:"search_target,omitempty" mapstructure:"search_target"`
}

// AnalyzeArgs are the arguments of a complexity analysis.
type AnalyzeArgs struct {
	AlgorithmType string `json:"algorithm_type" mapstructure:"algorithm_type"`
	ArraySize     int    `json:"array_size" mapstructure:"array_size"`
}

// AskArgs are the arguments of an assistant query.
type AskArgs struct {
	Query   string `json:"user_query" mapstructure:"user_query"`
	Context string `json:"context,omitempty" mapstructure:"context"`
}

// HistoryArgs select a page of execution history.
type HistoryArgs struct {
	AlgorithmType string `json:"algorithm_type,omitempty" mapstructure:"algorithm_type"`
	Limit         int    `json:"limit,omitempty" mapstructure:"limit"`
}

// Decode converts a generic argument map into one of the typed argument structs.
func Decode(args map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
