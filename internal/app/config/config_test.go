package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPAddress_Set(t *testing.T) {
	type fields struct {
		Scheme string
		Host   string
		Port   int
	}
	tests := []struct {
		name      string
		fields    fields
		flagValue string
		wantErr   bool
	}{
		{
			name: "set http address success",
			fields: fields{
				Scheme: "http://",
				Host:   "localhost",
				Port:   8080,
			},
			flagValue: "http://localhost:8080",
			wantErr:   false,
		},
		{
			name: "set http address success with trailing slash",
			fields: fields{
				Scheme: "http://",
				Host:   "localhost",
				Port:   8080,
			},
			flagValue: "http://localhost:8080/",
			wantErr:   false,
		},
		{
			name:      "set http address fail - missing port",
			flagValue: "http://localhost8080/",
			wantErr:   true,
		},
		{
			name:      "set http address fail - missing scheme",
			flagValue: "http:/localhost:8080/",
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HTTPAddress{}
			if err := h.Set(tt.flagValue); (err != nil) != tt.wantErr {
				t.Errorf("Set() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				correctAddress := HTTPAddress{
					Scheme: tt.fields.Scheme,
					Host:   tt.fields.Host,
					Port:   tt.fields.Port,
				}
				assert.Equal(t, correctAddress, h)
			}
		})
	}
}

func TestHTTPAddress_String(t *testing.T) {
	tests := []struct {
		name    string
		address HTTPAddress
		want    string
	}{
		{
			name:    "craft http address string",
			address: HTTPAddress{Scheme: "http://", Host: "localhost", Port: 8080},
			want:    "http://localhost:8080/",
		},
		{
			name:    "craft https address string",
			address: HTTPAddress{Scheme: "https://", Host: "127.0.0.1", Port: 8089},
			want:    "https://127.0.0.1:8089/",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.address.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name      string
		flagValue string
		wantErr   bool
	}{
		{
			name:      "set net address success",
			flagValue: "localhost:8080",
			wantErr:   false,
		},
		{
			name:      "set net address success with trailing slash",
			flagValue: "localhost:8080/",
			wantErr:   false,
		},
		{
			name:      "set net address fail - missing port",
			flagValue: "localhost8080/",
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &NetAddress{}
			if err := n.Set(tt.flagValue); (err != nil) != tt.wantErr {
				t.Errorf("Set() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name    string
		address NetAddress
		want    string
	}{
		{
			name:    "craft net address string",
			address: NetAddress{Host: "localhost", Port: 8080},
			want:    "localhost:8080",
		},
		{
			name:    "craft net address string with ip",
			address: NetAddress{Host: "127.0.0.1", Port: 8089},
			want:    "127.0.0.1:8089",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.address.String())
		})
	}
}

func TestSanitize(t *testing.T) {
	cfg := Config{HostedOn: "http://localhost:8083"}
	cfg.Sanitize()
	assert.Equal(t, "http://localhost:8083/", cfg.HostedOn)
	cfg.Sanitize()
	assert.Equal(t, "http://localhost:8083/", cfg.HostedOn)
}

func TestParseFlags(t *testing.T) {
	test := struct {
		flags           []string
		wantAddress     string
		wantBaseAddress string
	}{
		flags: []string{
			"lel", "-a=localhost:8083", "-b=http://localhost:8083",
		},
		wantAddress:     "localhost:8083",
		wantBaseAddress: "http://localhost:8083/",
	}
	os.Args = test.flags
	ParseFlags()
	assert.Equal(t, test.wantAddress, argsConfig.Address.String())
	assert.Equal(t, test.wantBaseAddress, argsConfig.HostedOn.String())
}
