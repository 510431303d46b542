package agent

import (
	"encoding/json"
	"fmt"
)

// Generator vendors recognized in an agent's generator_ref.
const (
	VendorGRPC   = "grpc"
	VendorOpenAI = "openai"
	VendorMock   = "mock"
)

// DecodeGeneratorRef converts an agent's stored generator_ref into a
// typed config.
func DecodeGeneratorRef(ref map[string]any) (GeneratorConfig, error) {
	var cfg GeneratorConfig
	data, err := json.Marshal(ref)
	if err != nil {
		return cfg, fmt.Errorf("failed to encode generator_ref: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode generator_ref: %w", err)
	}
	if cfg.Vendor == "" {
		return cfg, fmt.Errorf("generator_ref missing vendor")
	}
	return cfg, nil
}

// NewGenerator builds the TextGenerator an agent's generator_ref names.
func NewGenerator(cfg GeneratorConfig) (TextGenerator, error) {
	switch cfg.Vendor {
	case VendorGRPC:
		if cfg.Address == "" {
			return nil, fmt.Errorf("grpc generator requires an address")
		}
		return NewGRPCGenerator(cfg.Address)
	case VendorOpenAI:
		return NewOpenAIGenerator(cfg)
	case VendorMock:
		return NewMockGenerator(), nil
	default:
		return nil, fmt.Errorf("unknown generator vendor %q", cfg.Vendor)
	}
}
