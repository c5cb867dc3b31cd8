package config

import (
	"testing"

	toml "github.com/pelletier/go-toml/v2"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "defaults valid", opts: DefaultOptions()},
		{name: "zero workers", opts: Options{Workers: 0, LogLevel: "info"}, wantErr: true},
		{name: "too many workers", opts: Options{Workers: 1000, LogLevel: "info"}, wantErr: true},
		{name: "empty level allowed", opts: Options{Workers: 1}},
		{name: "unknown level", opts: Options{Workers: 1, LogLevel: "verbose"}, wantErr: true},
		{name: "disabled level", opts: Options{Workers: 1, LogLevel: "disabled"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.opts)
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error for %+v", tc.opts)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestTemplateRoundTrips(t *testing.T) {
	tmpl, err := Template()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var opts Options
	if err := toml.Unmarshal([]byte(tmpl), &opts); err != nil {
		t.Fatalf("template is not valid toml: %v", err)
	}
	if opts != DefaultOptions() {
		t.Fatalf("template decoded to %+v, want %+v", opts, DefaultOptions())
	}
	if err := Validate(opts); err != nil {
		t.Fatalf("template options must validate: %v", err)
	}
}
