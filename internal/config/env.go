package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// binding maps one environment variable to a dotted config key.
type binding struct {
	env string
	key string
}

// Later bindings win, so the ALGOTRACE_ names override the generic ones.
var bindings = []binding{
	{"HOST", "server.host"},
	{"PORT", "server.port"},
	{"REDIS_URL", "history.redis_addr"},
	{"GEMINI_API_KEY", "assistant.api_key"},

	{"ALGOTRACE_SERVER_HOST", "server.host"},
	{"ALGOTRACE_SERVER_PORT", "server.port"},
	{"ALGOTRACE_CORS_ORIGINS", "server.cors_origins"},
	{"ALGOTRACE_MAX_INPUT_SIZE", "engine.max_input_size"},
	{"ALGOTRACE_HISTORY_DRIVER", "history.driver"},
	{"ALGOTRACE_SQLITE_PATH", "history.sqlite_path"},
	{"ALGOTRACE_REDIS_ADDR", "history.redis_addr"},
	{"ALGOTRACE_REDIS_PREFIX", "history.redis_prefix"},
	{"ALGOTRACE_REDIS_TTL", "history.redis_ttl"},
	{"ALGOTRACE_ASSISTANT_API_KEY", "assistant.api_key"},
	{"ALGOTRACE_ASSISTANT_MODEL", "assistant.model"},
	{"ALGOTRACE_LOG_LEVEL", "log.level"},
}

type lookupFunc func(string) (string, bool)

// applyEnv decodes the set variables over cfg. Values are strings; the
// decoder converts them to the field types.
func applyEnv(cfg *Config, lookup lookupFunc) error {
	overlay := map[string]any{}
	for _, b := range bindings {
		v, ok := lookup(b.env)
		if !ok || v == "" {
			continue
		}
		section, field, _ := strings.Cut(b.key, ".")
		m, _ := overlay[section].(map[string]any)
		if m == nil {
			m = map[string]any{}
			overlay[section] = m
		}
		m[field] = v
	}

	if frontend, ok := lookup("FRONTEND_URL"); ok && frontend != "" {
		server, _ := overlay["server"].(map[string]any)
		if server == nil {
			server = map[string]any{}
			overlay["server"] = server
		}
		if _, explicit := server["cors_origins"]; !explicit {
			server["cors_origins"] = frontend + "," + DefaultFrontendOrigin
		}
	}

	if server, ok := overlay["server"].(map[string]any); ok {
		if _, ok := server["cors_origins"]; ok {
			// The decoder writes slices element-wise; start from empty.
			cfg.Server.CORSOrigins = nil
		}
	}

	if len(overlay) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		Result: cfg,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(overlay); err != nil {
		return fmt.Errorf("invalid environment configuration: %w", err)
	}
	return nil
}
