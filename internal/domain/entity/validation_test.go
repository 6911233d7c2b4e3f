package entity

import (
	"errors"
	"net"
	"strings"
	"testing"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{
			name:    "valid Amharic text",
			text:    "ሰላም ዓለም። ዛሬ ጥሩ ቀን ነው።",
			wantErr: false,
		},
		{
			name:    "valid short text",
			text:    "ሰላም",
			wantErr: false,
		},
		{
			name:    "empty text",
			text:    "",
			wantErr: true,
		},
		{
			name:    "invalid UTF-8",
			text:    string([]byte{0xff, 0xfe, 0xfd}),
			wantErr: true,
		},
		{
			name:    "text exceeding maximum length",
			text:    strings.Repeat("ሀ", maxTextRunes+1),
			wantErr: true,
		},
		{
			name:    "text at maximum length",
			text:    strings.Repeat("ሀ", maxTextRunes),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("ValidateText() error type = %T, want *ValidationError", err)
				}
			}
		})
	}
}

func TestValidateOwnerID(t *testing.T) {
	tests := []struct {
		name    string
		ownerID string
		wantErr bool
	}{
		{
			name:    "valid owner",
			ownerID: "user-42",
			wantErr: false,
		},
		{
			name:    "empty owner",
			ownerID: "",
			wantErr: true,
		},
		{
			name:    "owner exceeding maximum length",
			ownerID: strings.Repeat("a", 129),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOwnerID(tt.ownerID)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOwnerID() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{
			name:    "valid https URL",
			url:     "https://example.com/article",
			wantErr: false,
		},
		{
			name:    "valid http URL",
			url:     "http://example.com/article",
			wantErr: false,
		},
		{
			name:    "valid URL with query",
			url:     "https://example.com/article?id=7",
			wantErr: false,
		},
		{
			name:    "empty URL",
			url:     "",
			wantErr: true,
		},
		{
			name:    "invalid scheme - ftp",
			url:     "ftp://example.com/article",
			wantErr: true,
		},
		{
			name:    "invalid scheme - file",
			url:     "file:///etc/passwd",
			wantErr: true,
		},
		{
			name:    "no host",
			url:     "https://",
			wantErr: true,
		},
		{
			name:    "no scheme",
			url:     "example.com",
			wantErr: true,
		},
		{
			name:    "URL exceeding maximum length",
			url:     "https://example.com/" + strings.Repeat("a", 2050),
			wantErr: true,
		},
		{
			name:    "localhost URL (private IP)",
			url:     "http://localhost/article",
			wantErr: true,
		},
		{
			name:    "loopback IP literal",
			url:     "http://127.0.0.1/article",
			wantErr: true,
		},
		{
			name:    "cloud metadata endpoint",
			url:     "http://169.254.169.254/latest/meta-data/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		want bool
	}{
		{"loopback v4", "127.0.0.1", true},
		{"loopback v6", "::1", true},
		{"private 10.x", "10.1.2.3", true},
		{"private 172.16.x", "172.16.0.1", true},
		{"private 192.168.x", "192.168.1.1", true},
		{"link-local metadata", "169.254.169.254", true},
		{"public v4", "93.184.216.34", false},
		{"public v6", "2606:2800:220:1:248:1893:25c8:1946", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			if ip == nil {
				t.Fatalf("bad test IP %q", tt.ip)
			}
			if got := isPrivateIP(ip); got != tt.want {
				t.Errorf("isPrivateIP(%s) = %v, want %v", tt.ip, got, tt.want)
			}
		})
	}
}
