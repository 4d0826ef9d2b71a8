package codegen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// ConfigFileName is the config file looked up in the generation root when
// none is given explicitly.
const ConfigFileName = "accessor-gen.yaml"

// FileConfig is the YAML form of the generator configuration.
//
//	filter: Arity == 0
//	init: true
//	registryFile: accessors_gen.go
//	fileSuffix: _acc_gen.go
//	unexported: false
type FileConfig struct {
	Filter       string `yaml:"filter"`
	Init         *bool  `yaml:"init"`
	RegistryFile string `yaml:"registryFile"`
	FileSuffix   string `yaml:"fileSuffix"`
	Unexported   *bool  `yaml:"unexported"`
}

// LoadFileConfig reads a config file. If path is empty, ConfigFileName in
// dir is tried and its absence is not an error.
func LoadFileConfig(path, dir string) (*FileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, ConfigFileName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	fc := &FileConfig{}
	if err := yaml.UnmarshalWithOptions(data, fc, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return fc, nil
}

// Apply fills the fields of cfg the file sets and cfg leaves at their zero
// value, so command line settings take precedence.
func (fc *FileConfig) Apply(cfg *CodegenConfig) error {
	if fc == nil {
		return nil
	}
	if cfg.FileSuffix == "" {
		cfg.FileSuffix = fc.FileSuffix
	}
	if cfg.RegistryFile == "" {
		cfg.RegistryFile = fc.RegistryFile
	}
	if !cfg.Init && fc.Init != nil {
		cfg.Init = *fc.Init
	}
	if !cfg.Unexported && fc.Unexported != nil {
		cfg.Unexported = *fc.Unexported
	}
	if cfg.Filter == nil && fc.Filter != "" {
		f, err := CompileFilter(fc.Filter)
		if err != nil {
			return err
		}
		cfg.Filter = f
	}
	return nil
}
