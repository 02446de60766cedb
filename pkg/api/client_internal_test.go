package api

import (
	"testing"
	"time"
)

func TestNewClientWithTimeout(t *testing.T) {
	client := NewClientWithTimeout("http://localhost", nil, 30*time.Second)
	if client.httpClient.Timeout != 30*time.Second {
		t.Fatalf("expected timeout %v actual %v", 30*time.Second, client.httpClient.Timeout)
	}

	client = NewClientWithTimeout("http://localhost", nil, 0)
	if client.httpClient.Timeout != defaultTimeout {
		t.Fatalf("expected timeout %v actual %v", defaultTimeout, client.httpClient.Timeout)
	}
}
