package share

import (
	"fmt"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	generator := NewGenerator("http", 3000)

	url, qrCode, err := generator.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := fmt.Sprintf("http://%s:3000/portfolio", LocalIP())
	if url != want {
		t.Fatalf("url = %q, want %q", url, want)
	}
	if !strings.HasPrefix(qrCode, "data:image/png;base64,") {
		t.Fatalf("qr code must be a png data uri, got prefix %q", qrCode[:min(len(qrCode), 30)])
	}
}

func TestLocalIPNeverEmpty(t *testing.T) {
	ip := LocalIP()
	if ip == "" {
		t.Fatal("LocalIP must fall back to localhost")
	}
	if strings.HasPrefix(ip, "127.") {
		t.Fatalf("loopback address %q must not be selected", ip)
	}
}
