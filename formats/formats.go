package formats

import (
	"os"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/lilellia/fluidpath/atomicfile"
	"github.com/lilellia/fluidpath/fserr"
)

// ReadJSON parses the JSON file at path into v.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fserr.New("read_json", path, err)
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		return fserr.WithKind("read_json", path, fserr.IOFailure, err)
	}
	return nil
}

// WriteJSON atomically writes v as indented JSON to path.
func WriteJSON(path string, v any) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fserr.WithKind("write_json", path, fserr.IOFailure, err)
	}
	return atomicfile.WriteFile(path, data, 0o644)
}

// ReadYAML parses the YAML file at path into v.
func ReadYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fserr.New("read_yaml", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fserr.WithKind("read_yaml", path, fserr.IOFailure, err)
	}
	return nil
}

// WriteYAML atomically writes v as YAML to path.
func WriteYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fserr.WithKind("write_yaml", path, fserr.IOFailure, err)
	}
	return atomicfile.WriteFile(path, data, 0o644)
}

// ReadTOML parses the TOML file at path into v.
func ReadTOML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fserr.New("read_toml", path, err)
	}
	if err := toml.Unmarshal(data, v); err != nil {
		return fserr.WithKind("read_toml", path, fserr.IOFailure, err)
	}
	return nil
}

// WriteTOML atomically writes v as TOML to path.
func WriteTOML(path string, v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fserr.WithKind("write_toml", path, fserr.IOFailure, err)
	}
	return atomicfile.WriteFile(path, data, 0o644)
}
