package compiler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aretw0/statenav/internal/dto"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Parser is responsible for converting raw bytes into a graph definition.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a YAML (or JSON) document into a GraphFile.
// Unknown keys are rejected so typos surface early.
func (p *Parser) Parse(data []byte) (*dto.GraphFile, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse graph: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("failed to parse graph: empty document")
	}

	var file dto.GraphFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			singleToSliceHook,
			targetHook,
		),
		ErrorUnused: true,
		Result:      &file,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode graph: %w", err)
	}

	// Basic validation
	if len(file.States) == 0 {
		return nil, fmt.Errorf("graph has no states")
	}
	return &file, nil
}

// singleToSliceHook lets a scalar stand in for a one-element list ("to: Main").
func singleToSliceHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Slice || from.Kind() == reflect.Slice {
		return data, nil
	}
	if from.Kind() != reflect.String {
		return data, nil
	}
	return []any{data}, nil
}

// targetHook turns "previous", "current" and state names into Targets.
func targetHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(dto.Target{}) || from.Kind() != reflect.String {
		return data, nil
	}
	name := data.(string)
	switch strings.ToLower(name) {
	case string(dto.TargetPrevious):
		return dto.Target{Kind: dto.TargetPrevious}, nil
	case string(dto.TargetCurrent):
		return dto.Target{Kind: dto.TargetCurrent}, nil
	case "":
		return nil, fmt.Errorf("empty transition target")
	}
	return dto.Target{Kind: dto.TargetState, Name: name}, nil
}
