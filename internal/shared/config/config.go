package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/ini.v1"

	"echoprobe/internal/shared/types"
)

const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = 12345
	DefaultPayloadLength  = 20
	DefaultReadBufferSize = 1024
)

// Default returns the compiled-in configuration used when no ini file exists.
func Default() *types.Config {
	return &types.Config{
		ClientConf: types.ClientConf{
			Host:           DefaultHost,
			Port:           DefaultPort,
			PayloadLength:  DefaultPayloadLength,
			ReadBufferSize: DefaultReadBufferSize,
		},
		LogConf: types.LogConf{Level: "info"},
	}
}

// LoadIni overlays the ini file onto cfg. Keys absent from the file keep the
// values already in cfg, so callers usually pass Default().
// A missing file is not an error; env overrides are applied either way.
func LoadIni(cfg *types.Config, fileName string) error {
	iniFile, err := ini.Load(fileName)
	switch {
	case err == nil:
		if err := iniFile.MapTo(cfg); err != nil {
			return fmt.Errorf("failed to map %s: %w", fileName, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// 没有配置文件时使用默认值
	default:
		return err
	}

	overrideFromEnvString(&cfg.ClientConf.Host, "ECHOPROBE_HOST")
	overrideFromEnvInt(&cfg.ClientConf.Port, "ECHOPROBE_PORT")
	overrideFromEnvInt(&cfg.ClientConf.PayloadLength, "ECHOPROBE_PAYLOAD_LENGTH")
	return nil
}

// Validate rejects values the runner cannot work with.
func Validate(cfg *types.Config) error {
	c := cfg.ClientConf
	if c.Host == "" {
		return fmt.Errorf("client.host must not be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("client.port %d out of range 1-65535", c.Port)
	}
	if c.PayloadLength < 0 {
		return fmt.Errorf("client.payload_length must be >= 0, got %d", c.PayloadLength)
	}
	if c.ReadBufferSize <= 0 {
		return fmt.Errorf("client.read_buffer_size must be > 0, got %d", c.ReadBufferSize)
	}
	if c.DialTimeout < 0 || c.ReadTimeout < 0 {
		return fmt.Errorf("client timeouts must not be negative")
	}
	return nil
}

func overrideFromEnvString(target *string, envName string) {
	if envValue := os.Getenv(envName); envValue != "" {
		*target = envValue
	}
}

func overrideFromEnvInt(target *int, envName string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		if intValue, err := strconv.Atoi(envValue); err == nil {
			*target = intValue
		}
	}
}
