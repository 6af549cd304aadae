package envstruct_test

import (
	"errors"
	"testing"

	"github.com/mkarvo/fitsoul/internal/envstruct"
)

func lookupFromMap(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}
}

func TestPopulate(t *testing.T) {
	type config struct {
		Addr       string `env:"TEST_ADDR" envDefault:"localhost:8080"`
		APIKey     string `env:"TEST_API_KEY" envDefault:""`
		TimeoutSec int    `env:"TEST_TIMEOUT_SEC" envDefault:"30"`
		Verbose    bool   `env:"TEST_VERBOSE" envDefault:"false"`
	}

	tests := []struct {
		name string
		env  map[string]string
		want config
	}{
		{
			name: "all defaults",
			env:  map[string]string{},
			want: config{Addr: "localhost:8080", APIKey: "", TimeoutSec: 30, Verbose: false},
		},
		{
			name: "environment overrides defaults",
			env: map[string]string{
				"TEST_ADDR":        "0.0.0.0:9000",
				"TEST_API_KEY":     "secret",
				"TEST_TIMEOUT_SEC": "5",
				"TEST_VERBOSE":     "true",
			},
			want: config{Addr: "0.0.0.0:9000", APIKey: "secret", TimeoutSec: 5, Verbose: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg config
			if err := envstruct.Populate(&cfg, lookupFromMap(tt.env)); err != nil {
				t.Fatalf("Populate() error = %v", err)
			}
			if cfg != tt.want {
				t.Errorf("Populate() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestPopulateMissingWithoutDefault(t *testing.T) {
	type config struct {
		Required string `env:"TEST_REQUIRED"`
	}

	var cfg config
	err := envstruct.Populate(&cfg, lookupFromMap(nil))
	if !errors.Is(err, envstruct.ErrEnvNotSet) {
		t.Errorf("Populate() error = %v, want ErrEnvNotSet", err)
	}
}

func TestPopulateInvalidValues(t *testing.T) {
	type intConfig struct {
		Num int `env:"TEST_NUM" envDefault:"nope"`
	}
	var ic intConfig
	if err := envstruct.Populate(&ic, lookupFromMap(nil)); err == nil {
		t.Error("Populate() expected error for non-numeric int value")
	}

	var notAStruct string
	err := envstruct.Populate(&notAStruct, lookupFromMap(nil))
	if !errors.Is(err, envstruct.ErrInvalidValue) {
		t.Errorf("Populate() error = %v, want ErrInvalidValue", err)
	}
}
