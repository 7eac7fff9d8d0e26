package juggle

import "gopkg.in/yaml.v3"

// Config is the declarative schema configuration for a set of record
// types.
//
//	records:
//	  user:
//	    enabled: true
//	    fields:
//	      born_at: date
//	      age: integer
//	      active: bool
type Config struct {
	Records map[string]RecordConfig `yaml:"records"`
}

// RecordConfig declares one record type's schema.
type RecordConfig struct {
	Enabled *bool             `yaml:"enabled"` // nil means enabled
	Fields  map[string]string `yaml:"fields"`
}

// ParseConfig decodes YAML configuration, normalizing and validating
// every type token. Unknown tokens are rejected here, per the
// declarative-surface rule (see ScanSchema).
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}

	for _, rc := range cfg.Records {
		for name, token := range rc.Fields {
			if !IsValidType(Normalize(token)) {
				return nil, newConfigError(ErrInvalidSchema, Type(token), name)
			}
		}
	}
	return &cfg, nil
}

// LoadConfig parses YAML configuration and registers a shared schema for
// every declared record type, replacing any existing registration.
func LoadConfig(data []byte) error {
	cfg, err := ParseConfig(data)
	if err != nil {
		return err
	}

	for recordType, rc := range cfg.Records {
		fields := make(map[string]Type, len(rc.Fields))
		for name, token := range rc.Fields {
			fields[name] = Normalize(token)
		}

		s := NewSchema(fields)
		if rc.Enabled != nil {
			s.SetEnabled(*rc.Enabled)
		}
		Register(recordType, s)
	}
	return nil
}
